package n1client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/n1-client/internal/client"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
)

// New creates a Nucleus One client. The base URL defaults to n1.DefaultAPIBaseURL, gains an
// https scheme when it has none and loses any trailing slash. config is not modified.
func New(ctx context.Context, config *n1.Config) (n1.Client, error) {
	if config == nil {
		return nil, n1.ErrConfigRequired
	}

	err := ctx.Err()
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	normalized := *config
	normalized.APIKey = strings.TrimSpace(config.APIKey)

	if normalized.APIKey == "" {
		return nil, n1.ErrAPIKeyRequired
	}

	normalized.APIBaseURL, err = normalizeBaseURL(config.APIBaseURL)
	if err != nil {
		return nil, err
	}

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a client for the production endpoint.
func NewWithAPIKey(ctx context.Context, apiKey string) (n1.Client, error) {
	return New(ctx, &n1.Config{APIKey: apiKey})
}

// FromContext returns the client bound in ctx, or the process default set with
// n1.SetDefault[n1.Client].
func FromContext(ctx context.Context) (n1.Client, error) {
	c, ok := n1.CurrentOrDefault[n1.Client](ctx)
	if !ok || c == nil {
		return nil, n1.ErrNoClient
	}

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	baseURL := strings.TrimSpace(raw)
	if baseURL == "" {
		return n1.DefaultAPIBaseURL, nil
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", &n1.ConfigurationError{Type: "APIBaseURL", Err: fmt.Errorf("%w: %w", n1.ErrInvalidBaseURL, err)}
	}

	if parsed.Host == "" {
		return "", &n1.ConfigurationError{Type: "APIBaseURL", Err: fmt.Errorf("%w: %q has no host", n1.ErrInvalidBaseURL, raw)}
	}

	return baseURL, nil
}
