package n1

import (
	"context"
	"io"
	"time"
)

// Client is the root of the Nucleus One hierarchy. It is bound to one App.
type Client interface {
	// App returns the App the client was created for.
	App() *App
	// Organization returns a handle for operations inside one organization. No request is made.
	Organization(organizationID string) (OrganizationClient, error)
	// GetOrganization returns the organization with the given ID, or nil when the service
	// answers with a different organization.
	GetOrganization(ctx context.Context, organizationID string) (*OrganizationForClient, error)
	GetOrganizationsPaged(ctx context.Context, cursor string) (*QueryResult[*OrganizationForClientCollection], error)
	GetAllOrganizations(ctx context.Context) (*OrganizationForClientCollection, error)
}

// OrganizationClient performs operations scoped to one organization.
type OrganizationClient interface {
	ID() string
	App() *App
	// Project returns a handle for operations inside one project. No request is made.
	Project(projectID string) (ProjectClient, error)

	GetProjectsPaged(ctx context.Context, query *ProjectsQuery, cursor string) (*QueryResult[*OrganizationProjectCollection], error)
	GetAllProjects(ctx context.Context, query *ProjectsQuery) (*OrganizationProjectCollection, error)
	// CreateProject creates a project and returns it, or nil when the service reports nothing
	// created.
	CreateProject(ctx context.Context, request *CreateProjectRequest) (*OrganizationProject, error)

	GetMembersPaged(ctx context.Context, cursor string) (*QueryResult[*OrganizationMemberCollection], error)
	GetAllMembers(ctx context.Context) (*OrganizationMemberCollection, error)
	AddMembers(ctx context.Context, members *OrganizationMemberCollection) (*OrganizationMemberCollection, error)
}

// ProjectClient performs operations scoped to one project.
type ProjectClient interface {
	ID() string
	OrganizationID() string
	App() *App
	Field(fieldID string) (FieldClient, error)
	DocumentFolder(documentFolderID string) (DocumentFolderClient, error)

	// GetDocumentUploadReservation reserves an upload slot. Most callers want UploadDocument,
	// which runs the whole upload.
	GetDocumentUploadReservation(ctx context.Context) (*DocumentUpload, error)
	UploadDocument(ctx context.Context, request *UploadDocumentRequest) error

	CreateDocumentFolder(ctx context.Context, name, parentID string) (*DocumentFolder, error)
	GetDocumentFoldersPaged(ctx context.Context, parentID, cursor string) (*QueryResult[*DocumentFolderCollection], error)
	GetAllDocumentFolders(ctx context.Context, parentID string) (*DocumentFolderCollection, error)
	DeleteDocumentFolder(ctx context.Context, documentFolderID string) error

	GetField(ctx context.Context, fieldID string) (*Field, error)
	UpdateField(ctx context.Context, field *Field) (*Field, error)
	DeleteField(ctx context.Context, fieldID string) error
	GetFieldsPaged(ctx context.Context, cursor string) (*QueryResult[*FieldCollection], error)
	GetAllFields(ctx context.Context) (*FieldCollection, error)
	CreateFields(ctx context.Context, fields *FieldCollection) (*FieldCollection, error)

	// GetMemberByEmailAddress returns nil when no member has that address.
	GetMemberByEmailAddress(ctx context.Context, emailAddress string) (*ProjectMember, error)
	GetMembersPaged(ctx context.Context, cursor string) (*QueryResult[*ProjectMemberCollection], error)
	GetAllMembers(ctx context.Context) (*ProjectMemberCollection, error)
	AddMembers(ctx context.Context, members *ProjectMemberCollection) (*ProjectMemberCollection, error)

	GetTagsPaged(ctx context.Context, includeAssetItems *bool, cursor string) (*QueryResult[*TagCollection], error)
	GetAllTags(ctx context.Context, includeAssetItems *bool) (*TagCollection, error)

	// SearchDocumentsPaged searches documents whose text fields equal the given values.
	SearchDocumentsPaged(ctx context.Context, fieldIDsAndValues map[string]string, cursor string) (*QueryResult[*SearchResultCollection], error)
	SearchAllDocuments(ctx context.Context, fieldIDsAndValues map[string]string) (*SearchResultCollection, error)
	SendDocumentToRecycleBin(ctx context.Context, documentID string) error
}

// FieldClient performs operations on one field's selection list.
type FieldClient interface {
	ID() string
	App() *App

	GetListItems(ctx context.Context, query *ListItemsQuery) (*FieldListItemCollection, error)
	// GetAllListItemsNoIDs downloads the whole list as a flat file. The returned items carry no
	// IDs.
	GetAllListItemsNoIDs(ctx context.Context, valueFilter, parentValue string) (*FieldListItemCollection, error)
	AddListItems(ctx context.Context, items *FieldListItemCollection) error
	// SetListItems replaces the list with values.
	SetListItems(ctx context.Context, values []string) error
}

// DocumentFolderClient performs operations on one document folder.
type DocumentFolderClient interface {
	ID() string
	App() *App
	// UploadDocument uploads into this folder; request.DocumentFolderID is overwritten.
	UploadDocument(ctx context.Context, request *UploadDocumentRequest) error
}

// ProjectAccessLevel picks the sharing model of a new project.
type ProjectAccessLevel int

const (
	// ProjectAccessUnrestricted shares content with every organization member by default.
	ProjectAccessUnrestricted ProjectAccessLevel = iota
	// ProjectAccessRestrictive limits content to project members by assignment.
	ProjectAccessRestrictive
)

// AccessType returns the service value for the level.
func (l ProjectAccessLevel) AccessType() ProjectAccessType {
	if l == ProjectAccessRestrictive {
		return ProjectAccessTypeMembersOnlyAssignmentsMemberContentByAssignment
	}

	return ProjectAccessTypeGlobalAssignmentsMemberContentByDefault
}

// CreateProjectRequest represents a request to create a project.
type CreateProjectRequest struct {
	// Name is the project name.
	Name string
	// AccessLevel selects the sharing model.
	AccessLevel ProjectAccessLevel
	// TemplateID optionally names a project to copy structure from.
	TemplateID string
	// SourceContentCopy copies the template's documents as well.
	SourceContentCopy bool
}

// UploadDocumentRequest describes a document to upload.
type UploadDocumentRequest struct {
	FileName    string
	ContentType string
	// Body is read to EOF in chunks; Size must match its length.
	Body io.Reader
	Size int64
	// DocumentFolderID places the document in a folder; empty uploads to the project root.
	DocumentFolderID  string
	FieldIDsAndValues map[string][]string
	// Tags are de-duplicated case-insensitively, first spelling wins.
	Tags    []string
	SkipOCR bool
}

// Config represents client configuration for building a Client.
type Config struct {
	// APIBaseURL is the service root, without "/api/v1". Defaults to DefaultAPIBaseURL. A
	// missing scheme defaults to https and a trailing slash is trimmed.
	APIBaseURL string
	// APIKey authenticates every request as a bearer token.
	APIKey string

	UserAgent   string
	HTTPTimeout time.Duration

	// Transport retries on 5xx, 429 and connection errors. Zero values use the defaults.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// UploadChunkSize is the size of each cloud storage chunk. Defaults to 1 MiB. It is rounded
	// down to a multiple of 256 KiB, with 256 KiB as the minimum.
	UploadChunkSize int

	Debug        bool
	Logger       Logger
	Interceptors *InterceptorChain
}
