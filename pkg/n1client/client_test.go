package n1client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/fivetwenty-io/n1-client/pkg/n1client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      *n1.Config
		wantBaseURL string
		wantErr     error
	}{
		{
			name:    "nil config",
			wantErr: n1.ErrConfigRequired,
		},
		{
			name:    "missing API key",
			config:  &n1.Config{APIBaseURL: "https://example.com"},
			wantErr: n1.ErrAPIKeyRequired,
		},
		{
			name:    "blank API key",
			config:  &n1.Config{APIKey: "   "},
			wantErr: n1.ErrAPIKeyRequired,
		},
		{
			name:        "default base URL",
			config:      &n1.Config{APIKey: "key"},
			wantBaseURL: n1.DefaultAPIBaseURL,
		},
		{
			name:        "trailing slash trimmed",
			config:      &n1.Config{APIKey: "key", APIBaseURL: "https://n1.example.com/"},
			wantBaseURL: "https://n1.example.com",
		},
		{
			name:        "scheme added",
			config:      &n1.Config{APIKey: "key", APIBaseURL: "n1.example.com"},
			wantBaseURL: "https://n1.example.com",
		},
		{
			name:        "plain http kept",
			config:      &n1.Config{APIKey: "key", APIBaseURL: "http://localhost:8080"},
			wantBaseURL: "http://localhost:8080",
		},
		{
			name:    "no host",
			config:  &n1.Config{APIKey: "key", APIBaseURL: "https://"},
			wantErr: n1.ErrInvalidBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := n1client.New(context.Background(), tt.config)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBaseURL, client.App().APIBaseURL())
			assert.Equal(t, tt.wantBaseURL+n1.APIBaseURLPath, client.App().APIURL())
		})
	}
}

func TestNew_DoesNotModifyConfig(t *testing.T) {
	t.Parallel()

	config := &n1.Config{APIKey: " key ", APIBaseURL: "n1.example.com/"}

	client, err := n1client.New(context.Background(), config)
	require.NoError(t, err)
	assert.Equal(t, "key", client.App().APIKey())
	assert.Equal(t, "n1.example.com/", config.APIBaseURL)
	assert.Equal(t, " key ", config.APIKey)
}

func TestNew_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := n1client.New(ctx, &n1.Config{APIKey: "key"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := n1client.NewWithAPIKey(context.Background(), "key")
	require.NoError(t, err)
	assert.Equal(t, n1.DefaultAPIBaseURL, client.App().APIBaseURL())
}

// Not parallel: the default client is process-wide.
func TestFromContext(t *testing.T) {
	_, err := n1client.FromContext(context.Background())
	require.ErrorIs(t, err, n1.ErrNoClient)

	bound, err := n1client.NewWithAPIKey(context.Background(), "bound")
	require.NoError(t, err)

	got, err := n1.RunWithContext(context.Background(), bound, func(ctx context.Context) (n1.Client, error) {
		return n1client.FromContext(ctx)
	})
	require.NoError(t, err)
	assert.Same(t, bound, got)

	fallback, err := n1client.NewWithAPIKey(context.Background(), "fallback")
	require.NoError(t, err)

	n1.SetDefault(fallback)
	t.Cleanup(n1.ClearDefault[n1.Client])

	got, err = n1client.FromContext(context.Background())
	require.NoError(t, err)
	assert.Same(t, fallback, got)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/organizations", r.URL.Path)
		assert.Equal(t, "Bearer integration-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"PageSize":0,"Organizations":[{"ID":"org-1","Name":"Acme"}]}`))
	}))
	defer server.Close()

	client, err := n1client.New(context.Background(), &n1.Config{
		APIBaseURL: server.URL + "/",
		APIKey:     "integration-key",
	})
	require.NoError(t, err)

	organizations, err := client.GetAllOrganizations(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, organizations.Len())
	assert.Equal(t, "Acme", organizations.At(0).Name())
}
