package apimodel

// AssetItemTag links a tag to an asset item.
type AssetItemTag struct {
	AssetItemID string `json:"AssetItemID,omitempty" yaml:"AssetItemID,omitempty"`
	TagID       string `json:"TagID,omitempty"       yaml:"TagID,omitempty"`
	CreatedOn   string `json:"CreatedOn,omitempty"   yaml:"CreatedOn,omitempty"`
}

// Tag is a document tag defined in a project.
type Tag struct {
	Text         string        `json:"Text,omitempty"         yaml:"Text,omitempty"`
	TextLower    string        `json:"TextLower,omitempty"    yaml:"TextLower,omitempty"`
	ModifiedOn   string        `json:"ModifiedOn,omitempty"   yaml:"ModifiedOn,omitempty"`
	AssetItemTag *AssetItemTag `json:"AssetItemTag,omitempty" yaml:"AssetItemTag,omitempty"`
}

// TagCollection is the tags list.
type TagCollection struct {
	Tags []Tag `json:"Tags" yaml:"Tags"`
}

// Entities implements Collection.
func (c *TagCollection) Entities() []Tag {
	return c.Tags
}

func (c *TagCollection) setEntities(items []Tag) {
	c.Tags = items
}
