package n1

import (
	"fmt"
	"slices"

	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
)

// TaskDocument is the document attached to a search hit.
type TaskDocument struct {
	documentID       string
	documentName     string
	pageCount        int
	fileSize         int64
	thumbnailURL     string
	documentFolderID string
}

// TaskDocumentFromWire builds a TaskDocument from its wire form. A nil wire value yields nil.
func TaskDocumentFromWire(wire *apimodel.TaskDocument) (*TaskDocument, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	if wire.DocumentID == "" {
		return nil, fmt.Errorf("task document without DocumentID: %w", ErrMalformedEntity)
	}

	return &TaskDocument{
		documentID:       wire.DocumentID,
		documentName:     wire.DocumentName,
		pageCount:        wire.PageCount,
		fileSize:         wire.FileSize,
		thumbnailURL:     wire.ThumbnailURL,
		documentFolderID: wire.DocumentFolderID,
	}, nil
}

// ToWire projects the TaskDocument back to its wire form. A nil TaskDocument yields nil.
func (d *TaskDocument) ToWire() *apimodel.TaskDocument {
	if d == nil {
		return nil
	}

	return &apimodel.TaskDocument{
		DocumentID:       d.documentID,
		DocumentName:     d.documentName,
		PageCount:        d.pageCount,
		FileSize:         d.fileSize,
		ThumbnailURL:     d.thumbnailURL,
		DocumentFolderID: d.documentFolderID,
	}
}

// DocumentID returns the document ID. It is never empty.
func (d *TaskDocument) DocumentID() string {
	return d.documentID
}

func (d *TaskDocument) DocumentName() string {
	return d.documentName
}

func (d *TaskDocument) PageCount() int {
	return d.pageCount
}

func (d *TaskDocument) FileSize() int64 {
	return d.fileSize
}

func (d *TaskDocument) ThumbnailURL() string {
	return d.thumbnailURL
}

func (d *TaskDocument) DocumentFolderID() string {
	return d.documentFolderID
}

// SearchResult is a single hit from an organization search. Nullable counters read as zero.
type SearchResult struct {
	app *App

	contentType          string
	id                   string
	ancestorIDs          []string
	organizationID       string
	projectID            string
	projectName          string
	projectAccessType    string
	itemID               string
	itemType             string
	uniqueID             string
	name                 string
	createdOn            string
	dueOn                string
	priority             int
	tags                 []string
	pageCount            int
	fileSize             int64
	thumbnailURL         string
	isSigned             bool
	assignmentUserEmails []string
	documentID           string
	documentFolderID     string
	documentFolderPath   string
	previewMetadata      []map[string]string
	primaryDocument      *TaskDocument
	createdByUserEmail   string
	createdByUserName    string
	score                float64
}

// SearchResultFromWire builds a SearchResult from its wire form. A nil wire value yields nil.
func SearchResultFromWire(wire *apimodel.SearchResult, app *App) (*SearchResult, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	primaryDocument, err := TaskDocumentFromWire(wire.PrimaryDocument)
	if err != nil {
		return nil, fmt.Errorf("converting search result %q: %w", wire.ID, err)
	}

	return &SearchResult{
		app:                  app,
		contentType:          wire.ContentType,
		id:                   wire.ID,
		ancestorIDs:          slices.Clone(wire.AncestorIDs),
		organizationID:       wire.OrganizationID,
		projectID:            wire.ProjectID,
		projectName:          wire.ProjectName,
		projectAccessType:    wire.ProjectAccessType,
		itemID:               wire.ItemID,
		itemType:             wire.ItemType,
		uniqueID:             wire.UniqueID,
		name:                 wire.Name,
		createdOn:            wire.CreatedOn,
		dueOn:                wire.DueOn,
		priority:             valueOf(wire.Priority),
		tags:                 slices.Clone(wire.Tags),
		pageCount:            valueOf(wire.PageCount),
		fileSize:             valueOf(wire.FileSize),
		thumbnailURL:         wire.ThumbnailURL,
		isSigned:             valueOf(wire.IsSigned),
		assignmentUserEmails: slices.Clone(wire.AssignmentUserEmails),
		documentID:           wire.DocumentID,
		documentFolderID:     wire.DocumentFolderID,
		documentFolderPath:   wire.DocumentFolderPath,
		previewMetadata:      cloneMetadata(wire.PreviewMetadata),
		primaryDocument:      primaryDocument,
		createdByUserEmail:   wire.CreatedByUserEmail,
		createdByUserName:    wire.CreatedByUserName,
		score:                valueOf(wire.Score),
	}, nil
}

// ToWire projects the SearchResult back to its wire form.
func (r *SearchResult) ToWire() apimodel.SearchResult {
	return apimodel.SearchResult{
		ContentType:          r.contentType,
		ID:                   r.id,
		AncestorIDs:          slices.Clone(r.ancestorIDs),
		OrganizationID:       r.organizationID,
		ProjectID:            r.projectID,
		ProjectName:          r.projectName,
		ProjectAccessType:    r.projectAccessType,
		ItemID:               r.itemID,
		ItemType:             r.itemType,
		UniqueID:             r.uniqueID,
		Name:                 r.name,
		CreatedOn:            r.createdOn,
		DueOn:                r.dueOn,
		Priority:             ptrTo(r.priority),
		Tags:                 slices.Clone(r.tags),
		PageCount:            ptrTo(r.pageCount),
		FileSize:             ptrTo(r.fileSize),
		ThumbnailURL:         r.thumbnailURL,
		IsSigned:             ptrTo(r.isSigned),
		AssignmentUserEmails: slices.Clone(r.assignmentUserEmails),
		DocumentID:           r.documentID,
		DocumentFolderID:     r.documentFolderID,
		DocumentFolderPath:   r.documentFolderPath,
		PreviewMetadata:      cloneMetadata(r.previewMetadata),
		PrimaryDocument:      r.primaryDocument.ToWire(),
		CreatedByUserEmail:   r.createdByUserEmail,
		CreatedByUserName:    r.createdByUserName,
		Score:                ptrTo(r.score),
	}
}

// App returns the App the search result was loaded through.
func (r *SearchResult) App() *App {
	return r.app
}

// ContentType returns the kind of item that matched, such as "Document".
func (r *SearchResult) ContentType() string {
	return r.contentType
}

// ID returns the hit ID.
func (r *SearchResult) ID() string {
	return r.id
}

func (r *SearchResult) AncestorIDs() []string {
	return slices.Clone(r.ancestorIDs)
}

func (r *SearchResult) OrganizationID() string {
	return r.organizationID
}

func (r *SearchResult) ProjectID() string {
	return r.projectID
}

func (r *SearchResult) ProjectName() string {
	return r.projectName
}

func (r *SearchResult) ProjectAccessType() string {
	return r.projectAccessType
}

func (r *SearchResult) ItemID() string {
	return r.itemID
}

func (r *SearchResult) ItemType() string {
	return r.itemType
}

func (r *SearchResult) UniqueID() string {
	return r.uniqueID
}

func (r *SearchResult) Name() string {
	return r.name
}

func (r *SearchResult) CreatedOn() string {
	return r.createdOn
}

func (r *SearchResult) DueOn() string {
	return r.dueOn
}

func (r *SearchResult) Priority() int {
	return r.priority
}

func (r *SearchResult) Tags() []string {
	return slices.Clone(r.tags)
}

func (r *SearchResult) PageCount() int {
	return r.pageCount
}

func (r *SearchResult) FileSize() int64 {
	return r.fileSize
}

func (r *SearchResult) ThumbnailURL() string {
	return r.thumbnailURL
}

func (r *SearchResult) IsSigned() bool {
	return r.isSigned
}

func (r *SearchResult) AssignmentUserEmails() []string {
	return slices.Clone(r.assignmentUserEmails)
}

func (r *SearchResult) DocumentID() string {
	return r.documentID
}

func (r *SearchResult) DocumentFolderID() string {
	return r.documentFolderID
}

func (r *SearchResult) DocumentFolderPath() string {
	return r.documentFolderPath
}

func (r *SearchResult) PreviewMetadata() []map[string]string {
	return cloneMetadata(r.previewMetadata)
}

// PrimaryDocument returns the matched document, or nil when the hit has none.
func (r *SearchResult) PrimaryDocument() *TaskDocument {
	return r.primaryDocument
}

func (r *SearchResult) CreatedByUserEmail() string {
	return r.createdByUserEmail
}

func (r *SearchResult) CreatedByUserName() string {
	return r.createdByUserName
}

// Score returns the relevance score.
func (r *SearchResult) Score() float64 {
	return r.score
}

// SearchResultCollection is an ordered list of search results.
type SearchResultCollection struct {
	EntityCollection[*SearchResult]
}

// NewSearchResultCollection creates a collection from search results that were already built.
func NewSearchResultCollection(app *App, items ...*SearchResult) *SearchResultCollection {
	return &SearchResultCollection{EntityCollection: newEntityCollection(app, slices.Clone(items))}
}

// SearchResultCollectionFromWire converts a wire list of search results, preserving length and order.
func SearchResultCollectionFromWire(wire *apimodel.SearchResultCollection, app *App) (*SearchResultCollection, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	items, err := entitiesFromWire(wire.SearchResults, app, SearchResultFromWire)
	if err != nil {
		return nil, fmt.Errorf("converting search results: %w", err)
	}

	return &SearchResultCollection{EntityCollection: newEntityCollection(app, items)}, nil
}

// FromWire implements WireConvertible. The receiver is not used.
func (*SearchResultCollection) FromWire(wire *apimodel.SearchResultCollection, app *App) (*SearchResultCollection, error) {
	return SearchResultCollectionFromWire(wire, app)
}

// ToWire projects the collection back to its wire form. A nil collection projects to an empty one.
func (c *SearchResultCollection) ToWire() apimodel.SearchResultCollection {
	if c == nil {
		return apimodel.SearchResultCollection{}
	}

	return apimodel.SearchResultCollection{SearchResults: entitiesToWire[*SearchResult, apimodel.SearchResult](c.items)}
}
