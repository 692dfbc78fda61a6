package n1

import (
	"fmt"
	"slices"

	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
)

// ProjectAccess describes how the calling user may access a project.
type ProjectAccess struct {
	accessType string
	isAdmin    bool
	isReadOnly bool
}

// ProjectAccessFromWire builds a ProjectAccess from its wire form. A nil wire value yields nil.
func ProjectAccessFromWire(wire *apimodel.ProjectAccess) *ProjectAccess {
	if wire == nil {
		return nil
	}

	return &ProjectAccess{
		accessType: wire.AccessType,
		isAdmin:    wire.IsAdmin,
		isReadOnly: wire.IsReadOnly,
	}
}

// ToWire projects the ProjectAccess back to its wire form. A nil ProjectAccess yields nil.
func (a *ProjectAccess) ToWire() *apimodel.ProjectAccess {
	if a == nil {
		return nil
	}

	return &apimodel.ProjectAccess{
		AccessType: a.accessType,
		IsAdmin:    a.isAdmin,
		IsReadOnly: a.isReadOnly,
	}
}

func (a *ProjectAccess) AccessType() string {
	return a.accessType
}

func (a *ProjectAccess) IsAdmin() bool {
	return a.isAdmin
}

func (a *ProjectAccess) IsReadOnly() bool {
	return a.isReadOnly
}

// DocumentFolder is a folder in a project's document tree.
type DocumentFolder struct {
	app *App

	id                           string
	uniqueID                     string
	parentID                     string
	ancestorIDs                  []string
	organizationID               string
	projectID                    string
	projectName                  string
	projectAccess                *ProjectAccess
	createdOn                    string
	createdByUserEmail           string
	createdByUserName            string
	createdByUserID              string
	createdByWorkflow            bool
	modifiedOn                   string
	modifiedByUserEmail          string
	modifiedByUserName           string
	modifiedByUserID             string
	name                         string
	nameLower                    string
	depth                        int
	ancestorAssignmentUserEmails []string
	assignmentUserEmails         []string
	hexColor                     string
}

// DocumentFolderFromWire builds a DocumentFolder from its wire form. A nil wire value yields nil.
func DocumentFolderFromWire(wire *apimodel.DocumentFolder, app *App) (*DocumentFolder, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	return &DocumentFolder{
		app:                          app,
		id:                           wire.ID,
		uniqueID:                     wire.UniqueID,
		parentID:                     wire.ParentID,
		ancestorIDs:                  slices.Clone(wire.AncestorIDs),
		organizationID:               wire.OrganizationID,
		projectID:                    wire.ProjectID,
		projectName:                  wire.ProjectName,
		projectAccess:                ProjectAccessFromWire(wire.ProjectAccess),
		createdOn:                    wire.CreatedOn,
		createdByUserEmail:           wire.CreatedByUserEmail,
		createdByUserName:            wire.CreatedByUserName,
		createdByUserID:              wire.CreatedByUserID,
		createdByWorkflow:            wire.CreatedByWorkflow,
		modifiedOn:                   wire.ModifiedOn,
		modifiedByUserEmail:          wire.ModifiedByUserEmail,
		modifiedByUserName:           wire.ModifiedByUserName,
		modifiedByUserID:             wire.ModifiedByUserID,
		name:                         wire.Name,
		nameLower:                    wire.NameLower,
		depth:                        wire.Depth,
		ancestorAssignmentUserEmails: slices.Clone(wire.AncestorAssignmentUserEmails),
		assignmentUserEmails:         slices.Clone(wire.AssignmentUserEmails),
		hexColor:                     wire.HexColor,
	}, nil
}

// ToWire projects the DocumentFolder back to its wire form.
func (d *DocumentFolder) ToWire() apimodel.DocumentFolder {
	return apimodel.DocumentFolder{
		ID:                           d.id,
		UniqueID:                     d.uniqueID,
		ParentID:                     d.parentID,
		AncestorIDs:                  slices.Clone(d.ancestorIDs),
		OrganizationID:               d.organizationID,
		ProjectID:                    d.projectID,
		ProjectName:                  d.projectName,
		ProjectAccess:                d.projectAccess.ToWire(),
		CreatedOn:                    d.createdOn,
		CreatedByUserEmail:           d.createdByUserEmail,
		CreatedByUserName:            d.createdByUserName,
		CreatedByUserID:              d.createdByUserID,
		CreatedByWorkflow:            d.createdByWorkflow,
		ModifiedOn:                   d.modifiedOn,
		ModifiedByUserEmail:          d.modifiedByUserEmail,
		ModifiedByUserName:           d.modifiedByUserName,
		ModifiedByUserID:             d.modifiedByUserID,
		Name:                         d.name,
		NameLower:                    d.nameLower,
		Depth:                        d.depth,
		AncestorAssignmentUserEmails: slices.Clone(d.ancestorAssignmentUserEmails),
		AssignmentUserEmails:         slices.Clone(d.assignmentUserEmails),
		HexColor:                     d.hexColor,
	}
}

// App returns the App the document folder was loaded through.
func (d *DocumentFolder) App() *App {
	return d.app
}

// ID returns the folder ID.
func (d *DocumentFolder) ID() string {
	return d.id
}

func (d *DocumentFolder) UniqueID() string {
	return d.uniqueID
}

// ParentID returns the parent folder ID, empty for a root folder.
func (d *DocumentFolder) ParentID() string {
	return d.parentID
}

func (d *DocumentFolder) AncestorIDs() []string {
	return slices.Clone(d.ancestorIDs)
}

func (d *DocumentFolder) OrganizationID() string {
	return d.organizationID
}

func (d *DocumentFolder) ProjectID() string {
	return d.projectID
}

func (d *DocumentFolder) ProjectName() string {
	return d.projectName
}

// ProjectAccess returns the access summary, or nil when the server omitted it.
func (d *DocumentFolder) ProjectAccess() *ProjectAccess {
	return d.projectAccess
}

func (d *DocumentFolder) CreatedOn() string {
	return d.createdOn
}

func (d *DocumentFolder) CreatedByUserEmail() string {
	return d.createdByUserEmail
}

func (d *DocumentFolder) CreatedByUserName() string {
	return d.createdByUserName
}

func (d *DocumentFolder) CreatedByUserID() string {
	return d.createdByUserID
}

func (d *DocumentFolder) CreatedByWorkflow() bool {
	return d.createdByWorkflow
}

func (d *DocumentFolder) ModifiedOn() string {
	return d.modifiedOn
}

func (d *DocumentFolder) ModifiedByUserEmail() string {
	return d.modifiedByUserEmail
}

func (d *DocumentFolder) ModifiedByUserName() string {
	return d.modifiedByUserName
}

func (d *DocumentFolder) ModifiedByUserID() string {
	return d.modifiedByUserID
}

func (d *DocumentFolder) Name() string {
	return d.name
}

func (d *DocumentFolder) NameLower() string {
	return d.nameLower
}

func (d *DocumentFolder) Depth() int {
	return d.depth
}

func (d *DocumentFolder) AncestorAssignmentUserEmails() []string {
	return slices.Clone(d.ancestorAssignmentUserEmails)
}

func (d *DocumentFolder) AssignmentUserEmails() []string {
	return slices.Clone(d.assignmentUserEmails)
}

func (d *DocumentFolder) HexColor() string {
	return d.hexColor
}

// DocumentFolderCollection is an ordered list of document folders.
type DocumentFolderCollection struct {
	EntityCollection[*DocumentFolder]
}

// NewDocumentFolderCollection creates a collection from document folders that were already built.
func NewDocumentFolderCollection(app *App, items ...*DocumentFolder) *DocumentFolderCollection {
	return &DocumentFolderCollection{EntityCollection: newEntityCollection(app, slices.Clone(items))}
}

// DocumentFolderCollectionFromWire converts a wire list of document folders, preserving length and order.
func DocumentFolderCollectionFromWire(wire *apimodel.DocumentFolderCollection, app *App) (*DocumentFolderCollection, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	items, err := entitiesFromWire(wire.DocumentFolders, app, DocumentFolderFromWire)
	if err != nil {
		return nil, fmt.Errorf("converting document folders: %w", err)
	}

	return &DocumentFolderCollection{EntityCollection: newEntityCollection(app, items)}, nil
}

// FromWire implements WireConvertible. The receiver is not used.
func (*DocumentFolderCollection) FromWire(wire *apimodel.DocumentFolderCollection, app *App) (*DocumentFolderCollection, error) {
	return DocumentFolderCollectionFromWire(wire, app)
}

// ToWire projects the collection back to its wire form. A nil collection projects to an empty one.
func (c *DocumentFolderCollection) ToWire() apimodel.DocumentFolderCollection {
	if c == nil {
		return apimodel.DocumentFolderCollection{}
	}

	return apimodel.DocumentFolderCollection{DocumentFolders: entitiesToWire[*DocumentFolder, apimodel.DocumentFolder](c.items)}
}
