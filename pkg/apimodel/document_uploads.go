package apimodel

// DocumentUpload is an upload reservation and, once filled in, the commit request for it.
type DocumentUpload struct {
	SignedURL         string              `json:"SignedUrl,omitempty"         yaml:"SignedUrl,omitempty"`
	SignedURL2        string              `json:"SignedUrl2,omitempty"        yaml:"SignedUrl2,omitempty"`
	ObjectName        string              `json:"ObjectName,omitempty"        yaml:"ObjectName,omitempty"`
	ObjectName2       string              `json:"ObjectName2,omitempty"       yaml:"ObjectName2,omitempty"`
	UniqueID          string              `json:"UniqueId,omitempty"          yaml:"UniqueId,omitempty"`
	OriginalFilename  string              `json:"OriginalFilename,omitempty"  yaml:"OriginalFilename,omitempty"`
	OriginalFilepath  string              `json:"OriginalFilepath,omitempty"  yaml:"OriginalFilepath,omitempty"`
	OriginalFileSize  int64               `json:"OriginalFileSize"            yaml:"OriginalFileSize"`
	FieldIDsAndValues map[string][]string `json:"FieldIDsAndValues,omitempty" yaml:"FieldIDsAndValues,omitempty"`
	DocumentFolderID  string              `json:"DocumentFolderID,omitempty"  yaml:"DocumentFolderID,omitempty"`
	ContentType       string              `json:"ContentType,omitempty"       yaml:"ContentType,omitempty"`
	Tags              []string            `json:"Tags,omitempty"              yaml:"Tags,omitempty"`
}

// DocumentUploadCollection is the document uploads list.
type DocumentUploadCollection struct {
	DocumentUploads []DocumentUpload `json:"DocumentUploads" yaml:"DocumentUploads"`
}

// Entities implements Collection.
func (c *DocumentUploadCollection) Entities() []DocumentUpload {
	return c.DocumentUploads
}

func (c *DocumentUploadCollection) setEntities(items []DocumentUpload) {
	c.DocumentUploads = items
}
