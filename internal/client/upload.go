package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/n1-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/n1-client/internal/http"
	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
)

// Static errors for err113 compliance.
var (
	ErrUploadSizeMismatch = errors.New("document body length does not match its declared size")
	ErrNoUploadBody       = errors.New("document body is required")
)

// GetDocumentUploadReservation implements n1.ProjectClient.GetDocumentUploadReservation.
func (p *ProjectClient) GetDocumentUploadReservation(ctx context.Context) (*n1.DocumentUpload, error) {
	resp, err := p.client.httpClient.Get(ctx, p.path(pathProjectDocumentUploads), nil)
	if err != nil {
		return nil, fmt.Errorf("reserving document upload: %w", err)
	}

	wire, err := apimodel.FromJSON[apimodel.DocumentUpload](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing document upload reservation: %w", err)
	}

	return n1.DocumentUploadFromWire(wire, p.client.app)
}

// UploadDocument implements n1.ProjectClient.UploadDocument. The document is reserved, streamed
// to cloud storage in chunks and then committed to the project.
func (p *ProjectClient) UploadDocument(ctx context.Context, request *n1.UploadDocumentRequest) error {
	err := validateUploadRequest(request)
	if err != nil {
		return err
	}

	reservation, err := p.GetDocumentUploadReservation(ctx)
	if err != nil {
		return err
	}

	contentType := request.ContentType
	if contentType == "" {
		contentType = constants.DefaultContentType
	}

	err = p.client.uploadToCloudStorage(ctx, reservation.SignedURL(), contentType, request.Body, request.Size)
	if err != nil {
		return err
	}

	commit := reservation.ToWire()
	commit.OriginalFilename = request.FileName
	commit.OriginalFileSize = request.Size
	commit.ContentType = contentType
	commit.DocumentFolderID = request.DocumentFolderID
	commit.FieldIDsAndValues = request.FieldIDsAndValues
	commit.Tags = uniqueFold(request.Tags)

	query := url.Values{
		"uniqueId":        []string{reservation.UniqueID()},
		"captureOriginal": []string{"false"},
	}

	if request.SkipOCR {
		query.Set("skipOCR", "true")
	}

	_, err = p.client.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodPut,
		Path:   p.path(pathProjectDocumentUploads),
		Query:  query,
		Body:   []apimodel.DocumentUpload{commit},
	})
	if err != nil {
		return fmt.Errorf("committing document upload: %w", err)
	}

	p.client.logger.Info("document uploaded", map[string]interface{}{
		"project_id": p.id,
		"file_name":  request.FileName,
		"size":       request.Size,
		"unique_id":  reservation.UniqueID(),
	})

	return nil
}

func validateUploadRequest(request *n1.UploadDocumentRequest) error {
	if request == nil || request.Body == nil {
		return ErrNoUploadBody
	}

	err := n1.ValidateID("file name", request.FileName)
	if err != nil {
		return err
	}

	if request.Size < 0 {
		return fmt.Errorf("%w: size %d", ErrUploadSizeMismatch, request.Size)
	}

	return nil
}

// uploadToCloudStorage runs a resumable upload: a session is opened on the signed URL and the
// body is sent in chunks to the session URL returned in the Location header.
func (c *Client) uploadToCloudStorage(ctx context.Context, signedURL, contentType string, body io.Reader, size int64) error {
	initial, err := c.httpClient.DoURL(ctx, http.MethodPut, signedURL, []byte("{}"), map[string]string{
		"Content-Type":     constants.DefaultContentType,
		"x-goog-resumable": "start",
	})
	if err != nil {
		return fmt.Errorf("starting cloud storage upload: %w", err)
	}

	if initial.StatusCode < http.StatusOK || initial.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("starting cloud storage upload: %w", n1.ParseHTTPError(initial.StatusCode, initial.Body))
	}

	sessionURL := initial.Headers.Get("Location")
	if sessionURL == "" {
		return n1.ErrUploadSessionMissing
	}

	if size == 0 {
		return c.uploadChunk(ctx, sessionURL, contentType, []byte{}, "bytes */0")
	}

	buffer := make([]byte, c.uploadChunkSize)

	for offset := int64(0); offset < size; {
		chunkLength := min(int64(c.uploadChunkSize), size-offset)

		_, err := io.ReadFull(body, buffer[:chunkLength])
		if err != nil {
			return fmt.Errorf("%w: reading at offset %d: %w", ErrUploadSizeMismatch, offset, err)
		}

		contentRange := fmt.Sprintf("bytes %d-%d/%d", offset, offset+chunkLength-1, size)

		err = c.uploadChunk(ctx, sessionURL, contentType, buffer[:chunkLength], contentRange)
		if err != nil {
			return err
		}

		offset += chunkLength
	}

	return nil
}

func (c *Client) uploadChunk(ctx context.Context, sessionURL, contentType string, chunk []byte, contentRange string) error {
	resp, err := c.httpClient.DoURL(ctx, http.MethodPut, sessionURL, chunk, map[string]string{
		"Content-Type":  contentType,
		"Content-Range": contentRange,
	})
	if err != nil {
		return fmt.Errorf("uploading chunk %s: %w", contentRange, err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusPermanentRedirect:
		c.logger.Debug("uploaded chunk", map[string]interface{}{
			"content_range": contentRange,
			"status_code":   resp.StatusCode,
		})

		return nil
	default:
		return fmt.Errorf("%w: chunk %s: %w", n1.ErrUploadRejected, contentRange, n1.ParseHTTPError(resp.StatusCode, resp.Body))
	}
}

// uniqueFold drops case-insensitive duplicates, keeping the first spelling of each value.
func uniqueFold(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))

	for _, value := range values {
		key := strings.ToLower(value)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		unique = append(unique, value)
	}

	return unique
}
