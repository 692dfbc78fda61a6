package apimodel

// ProjectMember is a user's membership in a project.
type ProjectMember struct {
	ID                   string `json:"ID,omitempty"                   yaml:"ID,omitempty"`
	CreatedOn            string `json:"CreatedOn,omitempty"            yaml:"CreatedOn,omitempty"`
	OrganizationID       string `json:"OrganizationID,omitempty"       yaml:"OrganizationID,omitempty"`
	ProjectID            string `json:"ProjectID,omitempty"            yaml:"ProjectID,omitempty"`
	ProjectName          string `json:"ProjectName,omitempty"          yaml:"ProjectName,omitempty"`
	OrganizationMemberID string `json:"OrganizationMemberID,omitempty" yaml:"OrganizationMemberID,omitempty"`
	UserID               string `json:"UserID,omitempty"               yaml:"UserID,omitempty"`
	UserName             string `json:"UserName,omitempty"             yaml:"UserName,omitempty"`
	UserEmail            string `json:"UserEmail,omitempty"            yaml:"UserEmail,omitempty"`
	Disabled             bool   `json:"Disabled"                       yaml:"Disabled"`
	IsAdmin              bool   `json:"IsAdmin"                        yaml:"IsAdmin"`
	IsReadOnly           bool   `json:"IsReadOnly"                     yaml:"IsReadOnly"`
}

// ProjectMemberCollection is the project members list.
type ProjectMemberCollection struct {
	ProjectMembers []ProjectMember `json:"ProjectMembers" yaml:"ProjectMembers"`
}

// Entities implements Collection.
func (c *ProjectMemberCollection) Entities() []ProjectMember {
	return c.ProjectMembers
}

func (c *ProjectMemberCollection) setEntities(items []ProjectMember) {
	c.ProjectMembers = items
}

// Field is a document index field defined on a project.
type Field struct {
	ID                         string  `json:"ID,omitempty"               yaml:"ID,omitempty"`
	CreatedOn                  string  `json:"CreatedOn,omitempty"        yaml:"CreatedOn,omitempty"`
	Name                       string  `json:"Name,omitempty"             yaml:"Name,omitempty"`
	NameLower                  string  `json:"NameLower,omitempty"        yaml:"NameLower,omitempty"`
	Label                      string  `json:"Label,omitempty"            yaml:"Label,omitempty"`
	Type                       string  `json:"Type,omitempty"             yaml:"Type,omitempty"`
	ListType                   string  `json:"ListType,omitempty"         yaml:"ListType,omitempty"`
	ParentFieldID              string  `json:"ParentFieldID,omitempty"    yaml:"ParentFieldID,omitempty"`
	Rank                       float64 `json:"Rank"                       yaml:"Rank"`
	Required                   bool    `json:"Required"                   yaml:"Required"`
	Sensitive                  bool    `json:"Sensitive"                  yaml:"Sensitive"`
	UseCreatedOnAsDefaultValue bool    `json:"UseCreatedOnAsDefaultValue" yaml:"UseCreatedOnAsDefaultValue"`
	AllowMultipleLines         bool    `json:"AllowMultipleLines"         yaml:"AllowMultipleLines"`
	RegexPattern               string  `json:"RegexPattern,omitempty"     yaml:"RegexPattern,omitempty"`
	DecimalPlaces              int     `json:"DecimalPlaces"              yaml:"DecimalPlaces"`
	SaveNewValues              bool    `json:"SaveNewValues"              yaml:"SaveNewValues"`
	DisplaySelectionList       bool    `json:"DisplaySelectionList"       yaml:"DisplaySelectionList"`
	AllowMultipleValues        bool    `json:"AllowMultipleValues"        yaml:"AllowMultipleValues"`
}

// FieldCollection is the fields list.
type FieldCollection struct {
	Fields []Field `json:"Fields" yaml:"Fields"`
}

// Entities implements Collection.
func (c *FieldCollection) Entities() []Field {
	return c.Fields
}

func (c *FieldCollection) setEntities(items []Field) {
	c.Fields = items
}

// FieldListItem is one value in a field's selection list.
type FieldListItem struct {
	ID          string `json:"ID,omitempty"          yaml:"ID,omitempty"`
	Value       string `json:"Value,omitempty"       yaml:"Value,omitempty"`
	ParentValue string `json:"ParentValue,omitempty" yaml:"ParentValue,omitempty"`
}

// FieldListItemCollection is a field's selection list.
type FieldListItemCollection struct {
	FieldListItems []FieldListItem `json:"FieldListItems" yaml:"FieldListItems"`
}

// Entities implements Collection.
func (c *FieldListItemCollection) Entities() []FieldListItem {
	return c.FieldListItems
}

func (c *FieldListItemCollection) setEntities(items []FieldListItem) {
	c.FieldListItems = items
}

// IDList is the request body used by bulk delete and document actions.
type IDList struct {
	IDs []string `json:"IDs" yaml:"IDs"`
}

// MetaFieldFilter is one element of the metaFieldFilters_json query parameter.
type MetaFieldFilter struct {
	FieldID    string `json:"FieldID"    yaml:"FieldID"`
	FieldType  string `json:"FieldType"  yaml:"FieldType"`
	FieldValue string `json:"FieldValue" yaml:"FieldValue"`
	Operator   string `json:"Operator"   yaml:"Operator"`
}
