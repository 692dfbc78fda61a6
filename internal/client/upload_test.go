package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	. "github.com/fivetwenty-io/n1-client/internal/client"
	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chunk struct {
	contentRange string
	body         string
}

// fakeStorage serves the upload reservation, a resumable cloud storage session and the commit
// endpoint from one server.
type fakeStorage struct {
	t *testing.T

	mutex     sync.Mutex
	chunks    []chunk
	commits   []apimodel.DocumentUpload
	rawCommit string
	query     map[string]string
	location  bool
	reject    bool
}

func newFakeStorage(t *testing.T) *fakeStorage {
	t.Helper()

	return &fakeStorage{t: t, location: true}
}

func (s *fakeStorage) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	t := s.t

	switch {
	case r.Method == http.MethodGet && r.URL.Path == projectAPIPath+"/documentUploads":
		WriteJSON(t, w, http.StatusOK, `{"SignedUrl":"http://`+r.Host+`/storage/start?X-Goog-Signature=secret","UniqueId":"u1","ObjectName":"obj-1"}`)

	case r.Method == http.MethodPut && r.URL.Path == "/storage/start":
		assert.Equal(t, "start", r.Header.Get("x-goog-resumable"))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "{}", ReadBody(t, r))

		if s.location {
			w.Header().Set("Location", "http://"+r.Host+"/storage/session")
		}

		w.WriteHeader(http.StatusCreated)

	case r.Method == http.MethodPut && r.URL.Path == "/storage/session":
		s.mutex.Lock()
		s.chunks = append(s.chunks, chunk{contentRange: r.Header.Get("Content-Range"), body: ReadBody(t, r)})
		s.mutex.Unlock()

		if s.reject {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		if strings.HasSuffix(r.Header.Get("Content-Range"), "-9/10") || r.Header.Get("Content-Range") == "bytes */0" {
			w.WriteHeader(http.StatusOK)

			return
		}

		w.WriteHeader(http.StatusPermanentRedirect)

	case r.Method == http.MethodPut && r.URL.Path == projectAPIPath+"/documentUploads":
		body := ReadBody(t, r)

		var commits []apimodel.DocumentUpload
		assert.NoError(t, json.Unmarshal([]byte(body), &commits))

		s.mutex.Lock()
		s.commits = append(s.commits, commits...)
		s.rawCommit = body
		s.query = map[string]string{
			"uniqueId":        r.URL.Query().Get("uniqueId"),
			"captureOriginal": r.URL.Query().Get("captureOriginal"),
			"skipOCR":         r.URL.Query().Get("skipOCR"),
		}
		s.mutex.Unlock()

		w.WriteHeader(http.StatusOK)

	default:
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *fakeStorage) recorded() ([]chunk, []apimodel.DocumentUpload, map[string]string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.chunks, s.commits, s.query
}

func (s *fakeStorage) lastCommitBody() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.rawCommit
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestProjectClient_UploadDocument(t *testing.T) {
	t.Parallel()

	t.Run("uploads in chunks and commits", func(t *testing.T) {
		t.Parallel()

		storage := newFakeStorage(t)
		project := NewTestProject(t, storage.ServeHTTP)

		err := project.UploadDocument(context.Background(), &n1.UploadDocumentRequest{
			FileName:          "invoice.pdf",
			ContentType:       "application/pdf",
			Body:              strings.NewReader("0123456789"),
			Size:              10,
			FieldIDsAndValues: map[string][]string{"vendor": {"Acme"}},
			Tags:              []string{"Urgent", "paid", "URGENT"},
			SkipOCR:           true,
		})
		require.NoError(t, err)

		chunks, commits, query := storage.recorded()
		assert.Equal(t, []chunk{
			{contentRange: "bytes 0-3/10", body: "0123"},
			{contentRange: "bytes 4-7/10", body: "4567"},
			{contentRange: "bytes 8-9/10", body: "89"},
		}, chunks)

		require.Len(t, commits, 1)

		commit := commits[0]
		assert.Equal(t, "u1", commit.UniqueID)
		assert.Equal(t, "obj-1", commit.ObjectName)
		assert.Equal(t, "invoice.pdf", commit.OriginalFilename)
		assert.Equal(t, int64(10), commit.OriginalFileSize)
		assert.Equal(t, "application/pdf", commit.ContentType)
		assert.Equal(t, []string{"Urgent", "paid"}, commit.Tags)
		assert.Equal(t, map[string][]string{"vendor": {"Acme"}}, commit.FieldIDsAndValues)
		assert.Empty(t, commit.DocumentFolderID)

		assert.Equal(t, map[string]string{"uniqueId": "u1", "captureOriginal": "false", "skipOCR": "true"}, query)
	})

	t.Run("empty document sends one empty chunk", func(t *testing.T) {
		t.Parallel()

		storage := newFakeStorage(t)
		project := NewTestProject(t, storage.ServeHTTP)

		err := project.UploadDocument(context.Background(), &n1.UploadDocumentRequest{
			FileName: "empty.txt",
			Body:     strings.NewReader(""),
		})
		require.NoError(t, err)

		chunks, commits, query := storage.recorded()
		assert.Equal(t, []chunk{{contentRange: "bytes */0", body: ""}}, chunks)
		require.Len(t, commits, 1)
		assert.Equal(t, "application/octet-stream", commits[0].ContentType)
		assert.Contains(t, storage.lastCommitBody(), `"OriginalFileSize":0`)
		assert.Empty(t, query["skipOCR"])
	})

	t.Run("rejected chunk stops the upload", func(t *testing.T) {
		t.Parallel()

		storage := newFakeStorage(t)
		storage.reject = true
		project := NewTestProject(t, storage.ServeHTTP)

		err := project.UploadDocument(context.Background(), &n1.UploadDocumentRequest{
			FileName: "invoice.pdf",
			Body:     strings.NewReader("0123456789"),
			Size:     10,
		})
		require.ErrorIs(t, err, n1.ErrUploadRejected)

		chunks, commits, _ := storage.recorded()
		assert.Len(t, chunks, 1)
		assert.Empty(t, commits)
	})

	t.Run("missing session URL", func(t *testing.T) {
		t.Parallel()

		storage := newFakeStorage(t)
		storage.location = false
		project := NewTestProject(t, storage.ServeHTTP)

		err := project.UploadDocument(context.Background(), &n1.UploadDocumentRequest{
			FileName: "invoice.pdf",
			Body:     strings.NewReader("0123456789"),
			Size:     10,
		})
		require.ErrorIs(t, err, n1.ErrUploadSessionMissing)

		chunks, _, _ := storage.recorded()
		assert.Empty(t, chunks)
	})

	t.Run("body shorter than size", func(t *testing.T) {
		t.Parallel()

		storage := newFakeStorage(t)
		project := NewTestProject(t, storage.ServeHTTP)

		err := project.UploadDocument(context.Background(), &n1.UploadDocumentRequest{
			FileName: "invoice.pdf",
			Body:     strings.NewReader("012345"),
			Size:     10,
		})
		require.ErrorIs(t, err, ErrUploadSizeMismatch)

		_, commits, _ := storage.recorded()
		assert.Empty(t, commits)
	})

	t.Run("validates before any request", func(t *testing.T) {
		t.Parallel()

		project := NewTestProject(t, func(_ http.ResponseWriter, _ *http.Request) {
			t.Error("unexpected request")
		})

		require.ErrorIs(t, project.UploadDocument(context.Background(), nil), ErrNoUploadBody)
		require.ErrorIs(t, project.UploadDocument(context.Background(), &n1.UploadDocumentRequest{
			Body: strings.NewReader("x"),
			Size: 1,
		}), n1.ErrBlankValue)
		require.ErrorIs(t, project.UploadDocument(context.Background(), &n1.UploadDocumentRequest{
			FileName: "a.txt",
			Body:     strings.NewReader("x"),
			Size:     -1,
		}), ErrUploadSizeMismatch)
	})
}

func TestDocumentFolderClient_UploadDocument(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage(t)
	project := NewTestProject(t, storage.ServeHTTP)

	folder, err := project.DocumentFolder("folder-1")
	require.NoError(t, err)

	request := &n1.UploadDocumentRequest{
		FileName:         "empty.txt",
		Body:             strings.NewReader(""),
		DocumentFolderID: "ignored",
	}

	require.NoError(t, folder.UploadDocument(context.Background(), request))

	_, commits, _ := storage.recorded()
	require.Len(t, commits, 1)
	assert.Equal(t, "folder-1", commits[0].DocumentFolderID)
	assert.Equal(t, "ignored", request.DocumentFolderID)
}
