package client

import (
	"context"

	"github.com/fivetwenty-io/n1-client/pkg/n1"
)

// DocumentFolderClient implements n1.DocumentFolderClient.
type DocumentFolderClient struct {
	project *ProjectClient
	id      string
}

// ID implements n1.DocumentFolderClient.ID.
func (d *DocumentFolderClient) ID() string {
	return d.id
}

// App implements n1.DocumentFolderClient.App.
func (d *DocumentFolderClient) App() *n1.App {
	return d.project.client.app
}

// UploadDocument implements n1.DocumentFolderClient.UploadDocument.
func (d *DocumentFolderClient) UploadDocument(ctx context.Context, request *n1.UploadDocumentRequest) error {
	if request == nil {
		return ErrNoUploadBody
	}

	inFolder := *request
	inFolder.DocumentFolderID = d.id

	return d.project.UploadDocument(ctx, &inFolder)
}
