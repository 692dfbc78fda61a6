package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/stretchr/testify/require"
)

// Fixture values shared by the client tests.
const (
	TestAPIKey         = "test-key"
	TestOrganizationID = "org-1"
	TestProjectID      = "proj-1"
	TestFieldID        = "field-1"
	TestChunkSize      = 4
)

// NewTestClient starts a server for handler and returns a client bound to it. Retries are
// kept short so error cases do not slow the suite down.
func NewTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&n1.Config{
		APIBaseURL:   server.URL,
		APIKey:       TestAPIKey,
		RetryMax:     1,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 2 * time.Millisecond,
	})
	require.NoError(t, err)

	// The fake storage servers accept any chunk size, which keeps multi-chunk uploads small.
	client.uploadChunkSize = TestChunkSize

	return client
}

// NewTestProject returns the TestProjectID handle under TestOrganizationID.
func NewTestProject(t *testing.T, handler http.HandlerFunc) n1.ProjectClient {
	t.Helper()

	organization, err := NewTestClient(t, handler).Organization(TestOrganizationID)
	require.NoError(t, err)

	project, err := organization.Project(TestProjectID)
	require.NoError(t, err)

	return project
}

// WriteJSON writes body with the given status and a JSON content type.
func WriteJSON(t *testing.T, writer http.ResponseWriter, status int, body string) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	_, err := io.WriteString(writer, body)
	if err != nil {
		t.Errorf("writing response: %v", err)
	}
}

// ReadBody returns the request body as a string.
func ReadBody(t *testing.T, request *http.Request) string {
	t.Helper()

	data, err := io.ReadAll(request.Body)
	if err != nil {
		t.Errorf("reading request body: %v", err)
	}

	return string(data)
}
