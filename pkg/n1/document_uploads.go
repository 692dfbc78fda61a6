package n1

import (
	"fmt"
	"slices"

	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
)

// DocumentUpload is an upload reservation handed out by the service. It carries the signed
// cloud storage URL the file body is sent to and, once committed, the document's metadata.
type DocumentUpload struct {
	app *App

	signedURL         string
	signedURL2        string
	objectName        string
	objectName2       string
	uniqueID          string
	originalFilename  string
	originalFilepath  string
	originalFileSize  int64
	fieldIDsAndValues map[string][]string
	documentFolderID  string
	contentType       string
	tags              []string
}

// DocumentUploadFromWire builds a DocumentUpload from its wire form. A nil wire value yields nil.
func DocumentUploadFromWire(wire *apimodel.DocumentUpload, app *App) (*DocumentUpload, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	return &DocumentUpload{
		app:               app,
		signedURL:         wire.SignedURL,
		signedURL2:        wire.SignedURL2,
		objectName:        wire.ObjectName,
		objectName2:       wire.ObjectName2,
		uniqueID:          wire.UniqueID,
		originalFilename:  wire.OriginalFilename,
		originalFilepath:  wire.OriginalFilepath,
		originalFileSize:  wire.OriginalFileSize,
		fieldIDsAndValues: cloneValuesMap(wire.FieldIDsAndValues),
		documentFolderID:  wire.DocumentFolderID,
		contentType:       wire.ContentType,
		tags:              slices.Clone(wire.Tags),
	}, nil
}

// ToWire projects the DocumentUpload back to its wire form.
func (u *DocumentUpload) ToWire() apimodel.DocumentUpload {
	return apimodel.DocumentUpload{
		SignedURL:         u.signedURL,
		SignedURL2:        u.signedURL2,
		ObjectName:        u.objectName,
		ObjectName2:       u.objectName2,
		UniqueID:          u.uniqueID,
		OriginalFilename:  u.originalFilename,
		OriginalFilepath:  u.originalFilepath,
		OriginalFileSize:  u.originalFileSize,
		FieldIDsAndValues: cloneValuesMap(u.fieldIDsAndValues),
		DocumentFolderID:  u.documentFolderID,
		ContentType:       u.contentType,
		Tags:              slices.Clone(u.tags),
	}
}

// App returns the App the document upload was loaded through.
func (u *DocumentUpload) App() *App {
	return u.app
}

// SignedURL returns the URL the file body is uploaded to.
func (u *DocumentUpload) SignedURL() string {
	return u.signedURL
}

func (u *DocumentUpload) SignedURL2() string {
	return u.signedURL2
}

func (u *DocumentUpload) ObjectName() string {
	return u.objectName
}

func (u *DocumentUpload) ObjectName2() string {
	return u.objectName2
}

// UniqueID returns the reservation ID passed back when committing.
func (u *DocumentUpload) UniqueID() string {
	return u.uniqueID
}

func (u *DocumentUpload) OriginalFilename() string {
	return u.originalFilename
}

func (u *DocumentUpload) OriginalFilepath() string {
	return u.originalFilepath
}

func (u *DocumentUpload) OriginalFileSize() int64 {
	return u.originalFileSize
}

func (u *DocumentUpload) FieldIDsAndValues() map[string][]string {
	return cloneValuesMap(u.fieldIDsAndValues)
}

func (u *DocumentUpload) DocumentFolderID() string {
	return u.documentFolderID
}

func (u *DocumentUpload) ContentType() string {
	return u.contentType
}

func (u *DocumentUpload) Tags() []string {
	return slices.Clone(u.tags)
}

// DocumentUploadCollection is an ordered list of document uploads.
type DocumentUploadCollection struct {
	EntityCollection[*DocumentUpload]
}

// NewDocumentUploadCollection creates a collection from document uploads that were already built.
func NewDocumentUploadCollection(app *App, items ...*DocumentUpload) *DocumentUploadCollection {
	return &DocumentUploadCollection{EntityCollection: newEntityCollection(app, slices.Clone(items))}
}

// DocumentUploadCollectionFromWire converts a wire list of document uploads, preserving length and order.
func DocumentUploadCollectionFromWire(wire *apimodel.DocumentUploadCollection, app *App) (*DocumentUploadCollection, error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	items, err := entitiesFromWire(wire.DocumentUploads, app, DocumentUploadFromWire)
	if err != nil {
		return nil, fmt.Errorf("converting document uploads: %w", err)
	}

	return &DocumentUploadCollection{EntityCollection: newEntityCollection(app, items)}, nil
}

// FromWire implements WireConvertible. The receiver is not used.
func (*DocumentUploadCollection) FromWire(wire *apimodel.DocumentUploadCollection, app *App) (*DocumentUploadCollection, error) {
	return DocumentUploadCollectionFromWire(wire, app)
}

// ToWire projects the collection back to its wire form. A nil collection projects to an empty one.
func (c *DocumentUploadCollection) ToWire() apimodel.DocumentUploadCollection {
	if c == nil {
		return apimodel.DocumentUploadCollection{}
	}

	return apimodel.DocumentUploadCollection{DocumentUploads: entitiesToWire[*DocumentUpload, apimodel.DocumentUpload](c.items)}
}
