package n1

import (
	"fmt"
	"slices"

	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
)

// ProjectMember is a user's membership in a project.
type ProjectMember struct {
	app *App

	id                   string
	createdOn            string
	organizationID       string
	projectID            string
	projectName          string
	organizationMemberID string
	userID               string
	userName             string
	userEmail            string
	disabled             bool
	isAdmin              bool
	isReadOnly           bool
}

// ProjectMemberFromWire builds a ProjectMember from its wire form. A nil wire value yields nil.
func ProjectMemberFromWire(wire *apimodel.ProjectMember, app *App) (*ProjectMember, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	return &ProjectMember{
		app:                  app,
		id:                   wire.ID,
		createdOn:            wire.CreatedOn,
		organizationID:       wire.OrganizationID,
		projectID:            wire.ProjectID,
		projectName:          wire.ProjectName,
		organizationMemberID: wire.OrganizationMemberID,
		userID:               wire.UserID,
		userName:             wire.UserName,
		userEmail:            wire.UserEmail,
		disabled:             wire.Disabled,
		isAdmin:              wire.IsAdmin,
		isReadOnly:           wire.IsReadOnly,
	}, nil
}

// ToWire projects the ProjectMember back to its wire form.
func (m *ProjectMember) ToWire() apimodel.ProjectMember {
	return apimodel.ProjectMember{
		ID:                   m.id,
		CreatedOn:            m.createdOn,
		OrganizationID:       m.organizationID,
		ProjectID:            m.projectID,
		ProjectName:          m.projectName,
		OrganizationMemberID: m.organizationMemberID,
		UserID:               m.userID,
		UserName:             m.userName,
		UserEmail:            m.userEmail,
		Disabled:             m.disabled,
		IsAdmin:              m.isAdmin,
		IsReadOnly:           m.isReadOnly,
	}
}

// App returns the App the project member was loaded through.
func (m *ProjectMember) App() *App {
	return m.app
}

func (m *ProjectMember) ID() string {
	return m.id
}

func (m *ProjectMember) CreatedOn() string {
	return m.createdOn
}

func (m *ProjectMember) OrganizationID() string {
	return m.organizationID
}

func (m *ProjectMember) ProjectID() string {
	return m.projectID
}

func (m *ProjectMember) ProjectName() string {
	return m.projectName
}

func (m *ProjectMember) OrganizationMemberID() string {
	return m.organizationMemberID
}

func (m *ProjectMember) UserID() string {
	return m.userID
}

func (m *ProjectMember) UserName() string {
	return m.userName
}

func (m *ProjectMember) UserEmail() string {
	return m.userEmail
}

func (m *ProjectMember) Disabled() bool {
	return m.disabled
}

func (m *ProjectMember) IsAdmin() bool {
	return m.isAdmin
}

func (m *ProjectMember) IsReadOnly() bool {
	return m.isReadOnly
}

// ProjectMemberCollection is an ordered list of project members.
type ProjectMemberCollection struct {
	EntityCollection[*ProjectMember]
}

// NewProjectMemberCollection creates a collection from project members that were already built.
func NewProjectMemberCollection(app *App, items ...*ProjectMember) *ProjectMemberCollection {
	return &ProjectMemberCollection{EntityCollection: newEntityCollection(app, slices.Clone(items))}
}

// ProjectMemberCollectionFromWire converts a wire list of project members, preserving length and order.
func ProjectMemberCollectionFromWire(wire *apimodel.ProjectMemberCollection, app *App) (*ProjectMemberCollection, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	items, err := entitiesFromWire(wire.ProjectMembers, app, ProjectMemberFromWire)
	if err != nil {
		return nil, fmt.Errorf("converting project members: %w", err)
	}

	return &ProjectMemberCollection{EntityCollection: newEntityCollection(app, items)}, nil
}

// FromWire implements WireConvertible. The receiver is not used.
func (*ProjectMemberCollection) FromWire(wire *apimodel.ProjectMemberCollection, app *App) (*ProjectMemberCollection, error) {
	return ProjectMemberCollectionFromWire(wire, app)
}

// ToWire projects the collection back to its wire form. A nil collection projects to an empty one.
func (c *ProjectMemberCollection) ToWire() apimodel.ProjectMemberCollection {
	if c == nil {
		return apimodel.ProjectMemberCollection{}
	}

	return apimodel.ProjectMemberCollection{ProjectMembers: entitiesToWire[*ProjectMember, apimodel.ProjectMember](c.items)}
}

// Field is a document index field defined on a project.
type Field struct {
	app *App

	id                         string
	createdOn                  string
	name                       string
	nameLower                  string
	label                      string
	fieldType                  string
	listType                   string
	parentFieldID              string
	rank                       float64
	required                   bool
	sensitive                  bool
	useCreatedOnAsDefaultValue bool
	allowMultipleLines         bool
	regexPattern               string
	decimalPlaces              int
	saveNewValues              bool
	displaySelectionList       bool
	allowMultipleValues        bool
}

// FieldFromWire builds a Field from its wire form. A nil wire value yields nil.
func FieldFromWire(wire *apimodel.Field, app *App) (*Field, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	return &Field{
		app:                        app,
		id:                         wire.ID,
		createdOn:                  wire.CreatedOn,
		name:                       wire.Name,
		nameLower:                  wire.NameLower,
		label:                      wire.Label,
		fieldType:                  wire.Type,
		listType:                   wire.ListType,
		parentFieldID:              wire.ParentFieldID,
		rank:                       wire.Rank,
		required:                   wire.Required,
		sensitive:                  wire.Sensitive,
		useCreatedOnAsDefaultValue: wire.UseCreatedOnAsDefaultValue,
		allowMultipleLines:         wire.AllowMultipleLines,
		regexPattern:               wire.RegexPattern,
		decimalPlaces:              wire.DecimalPlaces,
		saveNewValues:              wire.SaveNewValues,
		displaySelectionList:       wire.DisplaySelectionList,
		allowMultipleValues:        wire.AllowMultipleValues,
	}, nil
}

// ToWire projects the Field back to its wire form.
func (f *Field) ToWire() apimodel.Field {
	return apimodel.Field{
		ID:                         f.id,
		CreatedOn:                  f.createdOn,
		Name:                       f.name,
		NameLower:                  f.nameLower,
		Label:                      f.label,
		Type:                       f.fieldType,
		ListType:                   f.listType,
		ParentFieldID:              f.parentFieldID,
		Rank:                       f.rank,
		Required:                   f.required,
		Sensitive:                  f.sensitive,
		UseCreatedOnAsDefaultValue: f.useCreatedOnAsDefaultValue,
		AllowMultipleLines:         f.allowMultipleLines,
		RegexPattern:               f.regexPattern,
		DecimalPlaces:              f.decimalPlaces,
		SaveNewValues:              f.saveNewValues,
		DisplaySelectionList:       f.displaySelectionList,
		AllowMultipleValues:        f.allowMultipleValues,
	}
}

// App returns the App the field was loaded through.
func (f *Field) App() *App {
	return f.app
}

// ID returns the field ID.
func (f *Field) ID() string {
	return f.id
}

func (f *Field) CreatedOn() string {
	return f.createdOn
}

func (f *Field) Name() string {
	return f.name
}

func (f *Field) NameLower() string {
	return f.nameLower
}

func (f *Field) Label() string {
	return f.label
}

// Type returns the value type, such as "Text" or "Date".
func (f *Field) Type() string {
	return f.fieldType
}

func (f *Field) ListType() string {
	return f.listType
}

// ParentFieldID returns the ID of the field this one depends on, if any.
func (f *Field) ParentFieldID() string {
	return f.parentFieldID
}

func (f *Field) Rank() float64 {
	return f.rank
}

func (f *Field) Required() bool {
	return f.required
}

func (f *Field) Sensitive() bool {
	return f.sensitive
}

func (f *Field) UseCreatedOnAsDefaultValue() bool {
	return f.useCreatedOnAsDefaultValue
}

func (f *Field) AllowMultipleLines() bool {
	return f.allowMultipleLines
}

func (f *Field) RegexPattern() string {
	return f.regexPattern
}

func (f *Field) DecimalPlaces() int {
	return f.decimalPlaces
}

func (f *Field) SaveNewValues() bool {
	return f.saveNewValues
}

func (f *Field) DisplaySelectionList() bool {
	return f.displaySelectionList
}

func (f *Field) AllowMultipleValues() bool {
	return f.allowMultipleValues
}

// FieldCollection is an ordered list of fields.
type FieldCollection struct {
	EntityCollection[*Field]
}

// NewFieldCollection creates a collection from fields that were already built.
func NewFieldCollection(app *App, items ...*Field) *FieldCollection {
	return &FieldCollection{EntityCollection: newEntityCollection(app, slices.Clone(items))}
}

// FieldCollectionFromWire converts a wire list of fields, preserving length and order.
func FieldCollectionFromWire(wire *apimodel.FieldCollection, app *App) (*FieldCollection, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	items, err := entitiesFromWire(wire.Fields, app, FieldFromWire)
	if err != nil {
		return nil, fmt.Errorf("converting fields: %w", err)
	}

	return &FieldCollection{EntityCollection: newEntityCollection(app, items)}, nil
}

// FromWire implements WireConvertible. The receiver is not used.
func (*FieldCollection) FromWire(wire *apimodel.FieldCollection, app *App) (*FieldCollection, error) {
	return FieldCollectionFromWire(wire, app)
}

// ToWire projects the collection back to its wire form. A nil collection projects to an empty one.
func (c *FieldCollection) ToWire() apimodel.FieldCollection {
	if c == nil {
		return apimodel.FieldCollection{}
	}

	return apimodel.FieldCollection{Fields: entitiesToWire[*Field, apimodel.Field](c.items)}
}

// FieldListItem is one value in a field's selection list.
type FieldListItem struct {
	app *App

	id          string
	value       string
	parentValue string
}

// FieldListItemFromWire builds a FieldListItem from its wire form. A nil wire value yields nil.
func FieldListItemFromWire(wire *apimodel.FieldListItem, app *App) (*FieldListItem, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	return &FieldListItem{
		app:         app,
		id:          wire.ID,
		value:       wire.Value,
		parentValue: wire.ParentValue,
	}, nil
}

// ToWire projects the FieldListItem back to its wire form.
func (i *FieldListItem) ToWire() apimodel.FieldListItem {
	return apimodel.FieldListItem{
		ID:          i.id,
		Value:       i.value,
		ParentValue: i.parentValue,
	}
}

// App returns the App the list item was loaded through.
func (i *FieldListItem) App() *App {
	return i.app
}

// ID returns the item ID. Items read from a flat file have none.
func (i *FieldListItem) ID() string {
	return i.id
}

// Value returns the item text.
func (i *FieldListItem) Value() string {
	return i.value
}

// ParentValue returns the parent field value for dependent lists.
func (i *FieldListItem) ParentValue() string {
	return i.parentValue
}

// FieldListItemCollection is an ordered list of field list items.
type FieldListItemCollection struct {
	EntityCollection[*FieldListItem]
}

// NewFieldListItemCollection creates a collection from field list items that were already built.
func NewFieldListItemCollection(app *App, items ...*FieldListItem) *FieldListItemCollection {
	return &FieldListItemCollection{EntityCollection: newEntityCollection(app, slices.Clone(items))}
}

// FieldListItemCollectionFromWire converts a wire list of field list items, preserving length and order.
func FieldListItemCollectionFromWire(wire *apimodel.FieldListItemCollection, app *App) (*FieldListItemCollection, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	items, err := entitiesFromWire(wire.FieldListItems, app, FieldListItemFromWire)
	if err != nil {
		return nil, fmt.Errorf("converting field list items: %w", err)
	}

	return &FieldListItemCollection{EntityCollection: newEntityCollection(app, items)}, nil
}

// FromWire implements WireConvertible. The receiver is not used.
func (*FieldListItemCollection) FromWire(wire *apimodel.FieldListItemCollection, app *App) (*FieldListItemCollection, error) {
	return FieldListItemCollectionFromWire(wire, app)
}

// ToWire projects the collection back to its wire form. A nil collection projects to an empty one.
func (c *FieldListItemCollection) ToWire() apimodel.FieldListItemCollection {
	if c == nil {
		return apimodel.FieldListItemCollection{}
	}

	return apimodel.FieldListItemCollection{FieldListItems: entitiesToWire[*FieldListItem, apimodel.FieldListItem](c.items)}
}
