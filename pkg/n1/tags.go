package n1

import (
	"fmt"
	"slices"

	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
)

// AssetItemTag links a tag to an asset item.
type AssetItemTag struct {
	assetItemID string
	tagID       string
	createdOn   string
}

// AssetItemTagFromWire builds an AssetItemTag from its wire form. A nil wire value yields nil.
func AssetItemTagFromWire(wire *apimodel.AssetItemTag) *AssetItemTag {
	if wire == nil {
		return nil
	}

	return &AssetItemTag{
		assetItemID: wire.AssetItemID,
		tagID:       wire.TagID,
		createdOn:   wire.CreatedOn,
	}
}

// ToWire projects the AssetItemTag back to its wire form. A nil AssetItemTag yields nil.
func (a *AssetItemTag) ToWire() *apimodel.AssetItemTag {
	if a == nil {
		return nil
	}

	return &apimodel.AssetItemTag{
		AssetItemID: a.assetItemID,
		TagID:       a.tagID,
		CreatedOn:   a.createdOn,
	}
}

func (a *AssetItemTag) AssetItemID() string {
	return a.assetItemID
}

func (a *AssetItemTag) TagID() string {
	return a.tagID
}

func (a *AssetItemTag) CreatedOn() string {
	return a.createdOn
}

// Tag is a document tag defined in a project.
type Tag struct {
	app *App

	text         string
	textLower    string
	modifiedOn   string
	assetItemTag *AssetItemTag
}

// TagFromWire builds a Tag from its wire form. A nil wire value yields nil.
func TagFromWire(wire *apimodel.Tag, app *App) (*Tag, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	return &Tag{
		app:          app,
		text:         wire.Text,
		textLower:    wire.TextLower,
		modifiedOn:   wire.ModifiedOn,
		assetItemTag: AssetItemTagFromWire(wire.AssetItemTag),
	}, nil
}

// ToWire projects the Tag back to its wire form.
func (t *Tag) ToWire() apimodel.Tag {
	return apimodel.Tag{
		Text:         t.text,
		TextLower:    t.textLower,
		ModifiedOn:   t.modifiedOn,
		AssetItemTag: t.assetItemTag.ToWire(),
	}
}

// App returns the App the tag was loaded through.
func (t *Tag) App() *App {
	return t.app
}

func (t *Tag) Text() string {
	return t.text
}

func (t *Tag) TextLower() string {
	return t.textLower
}

func (t *Tag) ModifiedOn() string {
	return t.modifiedOn
}

// AssetItemTag returns the asset link. It is only populated when asset items were requested.
func (t *Tag) AssetItemTag() *AssetItemTag {
	return t.assetItemTag
}

// TagCollection is an ordered list of tags.
type TagCollection struct {
	EntityCollection[*Tag]
}

// NewTagCollection creates a collection from tags that were already built.
func NewTagCollection(app *App, items ...*Tag) *TagCollection {
	return &TagCollection{EntityCollection: newEntityCollection(app, slices.Clone(items))}
}

// TagCollectionFromWire converts a wire list of tags, preserving length and order.
func TagCollectionFromWire(wire *apimodel.TagCollection, app *App) (*TagCollection, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	items, err := entitiesFromWire(wire.Tags, app, TagFromWire)
	if err != nil {
		return nil, fmt.Errorf("converting tags: %w", err)
	}

	return &TagCollection{EntityCollection: newEntityCollection(app, items)}, nil
}

// FromWire implements WireConvertible. The receiver is not used.
func (*TagCollection) FromWire(wire *apimodel.TagCollection, app *App) (*TagCollection, error) {
	return TagCollectionFromWire(wire, app)
}

// ToWire projects the collection back to its wire form. A nil collection projects to an empty one.
func (c *TagCollection) ToWire() apimodel.TagCollection {
	if c == nil {
		return apimodel.TagCollection{}
	}

	return apimodel.TagCollection{Tags: entitiesToWire[*Tag, apimodel.Tag](c.items)}
}
