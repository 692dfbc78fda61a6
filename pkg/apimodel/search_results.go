package apimodel

// TaskDocument is the document attached to a search hit.
type TaskDocument struct {
	DocumentID       string `json:"DocumentID,omitempty"       yaml:"DocumentID,omitempty"`
	DocumentName     string `json:"DocumentName,omitempty"     yaml:"DocumentName,omitempty"`
	PageCount        int    `json:"PageCount"                  yaml:"PageCount"`
	FileSize         int64  `json:"FileSize"                   yaml:"FileSize"`
	ThumbnailURL     string `json:"ThumbnailUrl,omitempty"     yaml:"ThumbnailUrl,omitempty"`
	DocumentFolderID string `json:"DocumentFolderID,omitempty" yaml:"DocumentFolderID,omitempty"`
}

// SearchResult is a single hit returned by the organization search endpoint.
type SearchResult struct {
	ContentType          string              `json:"ContentType,omitempty"          yaml:"ContentType,omitempty"`
	ID                   string              `json:"ID,omitempty"                   yaml:"ID,omitempty"`
	AncestorIDs          []string            `json:"AncestorIDs,omitempty"          yaml:"AncestorIDs,omitempty"`
	OrganizationID       string              `json:"OrganizationID,omitempty"       yaml:"OrganizationID,omitempty"`
	ProjectID            string              `json:"ProjectID,omitempty"            yaml:"ProjectID,omitempty"`
	ProjectName          string              `json:"ProjectName,omitempty"          yaml:"ProjectName,omitempty"`
	ProjectAccessType    string              `json:"ProjectAccessType,omitempty"    yaml:"ProjectAccessType,omitempty"`
	ItemID               string              `json:"ItemID,omitempty"               yaml:"ItemID,omitempty"`
	ItemType             string              `json:"ItemType,omitempty"             yaml:"ItemType,omitempty"`
	UniqueID             string              `json:"UniqueID,omitempty"             yaml:"UniqueID,omitempty"`
	Name                 string              `json:"Name,omitempty"                 yaml:"Name,omitempty"`
	CreatedOn            string              `json:"CreatedOn,omitempty"            yaml:"CreatedOn,omitempty"`
	DueOn                string              `json:"DueOn,omitempty"                yaml:"DueOn,omitempty"`
	Priority             *int                `json:"Priority,omitempty"             yaml:"Priority,omitempty"`
	Tags                 []string            `json:"Tags,omitempty"                 yaml:"Tags,omitempty"`
	PageCount            *int                `json:"PageCount,omitempty"            yaml:"PageCount,omitempty"`
	FileSize             *int64              `json:"FileSize,omitempty"             yaml:"FileSize,omitempty"`
	ThumbnailURL         string              `json:"ThumbnailUrl,omitempty"         yaml:"ThumbnailUrl,omitempty"`
	IsSigned             *bool               `json:"IsSigned,omitempty"             yaml:"IsSigned,omitempty"`
	AssignmentUserEmails []string            `json:"AssignmentUserEmails,omitempty" yaml:"AssignmentUserEmails,omitempty"`
	DocumentID           string              `json:"DocumentID,omitempty"           yaml:"DocumentID,omitempty"`
	DocumentFolderID     string              `json:"DocumentFolderID,omitempty"     yaml:"DocumentFolderID,omitempty"`
	DocumentFolderPath   string              `json:"DocumentFolderPath,omitempty"   yaml:"DocumentFolderPath,omitempty"`
	PreviewMetadata      []map[string]string `json:"PreviewMetadata,omitempty"      yaml:"PreviewMetadata,omitempty"`
	PrimaryDocument      *TaskDocument       `json:"PrimaryDocument,omitempty"      yaml:"PrimaryDocument,omitempty"`
	CreatedByUserEmail   string              `json:"CreatedByUserEmail,omitempty"   yaml:"CreatedByUserEmail,omitempty"`
	CreatedByUserName    string              `json:"CreatedByUserName,omitempty"    yaml:"CreatedByUserName,omitempty"`
	Score                *float64            `json:"Score,omitempty"                yaml:"Score,omitempty"`
}

// SearchResultCollection is the search results list.
type SearchResultCollection struct {
	SearchResults []SearchResult `json:"SearchResults" yaml:"SearchResults"`
}

// Entities implements Collection.
func (c *SearchResultCollection) Entities() []SearchResult {
	return c.SearchResults
}

func (c *SearchResultCollection) setEntities(items []SearchResult) {
	c.SearchResults = items
}
