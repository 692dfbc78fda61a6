package apimodel

// ProjectAccess describes how a project is shared.
type ProjectAccess struct {
	AccessType string `json:"AccessType,omitempty" yaml:"AccessType,omitempty"`
	IsAdmin    bool   `json:"IsAdmin"              yaml:"IsAdmin"`
	IsReadOnly bool   `json:"IsReadOnly"           yaml:"IsReadOnly"`
}

// DocumentFolder is a folder in a project's document tree.
type DocumentFolder struct {
	ID                           string         `json:"ID,omitempty"                           yaml:"ID,omitempty"`
	UniqueID                     string         `json:"UniqueID,omitempty"                     yaml:"UniqueID,omitempty"`
	ParentID                     string         `json:"ParentID,omitempty"                     yaml:"ParentID,omitempty"`
	AncestorIDs                  []string       `json:"AncestorIDs,omitempty"                  yaml:"AncestorIDs,omitempty"`
	OrganizationID               string         `json:"OrganizationID,omitempty"               yaml:"OrganizationID,omitempty"`
	ProjectID                    string         `json:"ProjectID,omitempty"                    yaml:"ProjectID,omitempty"`
	ProjectName                  string         `json:"ProjectName,omitempty"                  yaml:"ProjectName,omitempty"`
	ProjectAccess                *ProjectAccess `json:"ProjectAccess,omitempty"                yaml:"ProjectAccess,omitempty"`
	CreatedOn                    string         `json:"CreatedOn,omitempty"                    yaml:"CreatedOn,omitempty"`
	CreatedByUserEmail           string         `json:"CreatedByUserEmail,omitempty"           yaml:"CreatedByUserEmail,omitempty"`
	CreatedByUserName            string         `json:"CreatedByUserName,omitempty"            yaml:"CreatedByUserName,omitempty"`
	CreatedByUserID              string         `json:"CreatedByUserID,omitempty"              yaml:"CreatedByUserID,omitempty"`
	CreatedByWorkflow            bool           `json:"CreatedByWorkflow"                      yaml:"CreatedByWorkflow"`
	ModifiedOn                   string         `json:"ModifiedOn,omitempty"                   yaml:"ModifiedOn,omitempty"`
	ModifiedByUserEmail          string         `json:"ModifiedByUserEmail,omitempty"          yaml:"ModifiedByUserEmail,omitempty"`
	ModifiedByUserName           string         `json:"ModifiedByUserName,omitempty"           yaml:"ModifiedByUserName,omitempty"`
	ModifiedByUserID             string         `json:"ModifiedByUserID,omitempty"             yaml:"ModifiedByUserID,omitempty"`
	Name                         string         `json:"Name,omitempty"                         yaml:"Name,omitempty"`
	NameLower                    string         `json:"NameLower,omitempty"                    yaml:"NameLower,omitempty"`
	Depth                        int            `json:"Depth"                                  yaml:"Depth"`
	AncestorAssignmentUserEmails []string       `json:"AncestorAssignmentUserEmails,omitempty" yaml:"AncestorAssignmentUserEmails,omitempty"`
	AssignmentUserEmails         []string       `json:"AssignmentUserEmails,omitempty"         yaml:"AssignmentUserEmails,omitempty"`
	HexColor                     string         `json:"HexColor,omitempty"                     yaml:"HexColor,omitempty"`
}

// DocumentFolderCollection is the document folders list.
type DocumentFolderCollection struct {
	DocumentFolders []DocumentFolder `json:"DocumentFolders" yaml:"DocumentFolders"`
}

// Entities implements Collection.
func (c *DocumentFolderCollection) Entities() []DocumentFolder {
	return c.DocumentFolders
}

func (c *DocumentFolderCollection) setEntities(items []DocumentFolder) {
	c.DocumentFolders = items
}

// NewDocumentFolder is the request shape for creating a folder.
type NewDocumentFolder struct {
	ParentID             *string  `json:"ParentID"             yaml:"ParentID"`
	Name                 string   `json:"Name"                 yaml:"Name"`
	AssignmentUserEmails []string `json:"AssignmentUserEmails" yaml:"AssignmentUserEmails"`
	HexColor             *string  `json:"HexColor"             yaml:"HexColor"`
}
