package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/n1-client/internal/auth"
	"github.com/fivetwenty-io/n1-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/n1-client/internal/http"
	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
)

// Client implements the n1.Client interface.
type Client struct {
	httpClient      *internalhttp.Client
	tokenManager    *auth.APIKeyTokenManager
	app             *n1.App
	logger          n1.Logger
	uploadChunkSize int
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *n1.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, internalhttp.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, internalhttp.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New creates a Nucleus One client. config.APIBaseURL is expected to be normalized already.
func New(config *n1.Config) (*Client, error) {
	if config == nil {
		return nil, n1.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, n1.ErrAPIKeyRequired
	}

	app := n1.NewApp(n1.Options{
		APIBaseURL: config.APIBaseURL,
		APIKey:     config.APIKey,
	})

	tokenManager := auth.NewAPIKeyTokenManager(config.APIKey)
	httpClient := internalhttp.NewClient(app.APIURL(), tokenManager, createHTTPClientOptions(config)...)

	return newClient(app, httpClient, tokenManager, config), nil
}

func newClient(app *n1.App, httpClient *internalhttp.Client, tokenManager *auth.APIKeyTokenManager, config *n1.Config) *Client {
	var logger n1.Logger = n1.NopLogger{}
	if config.Logger != nil {
		logger = config.Logger
	}

	return &Client{
		httpClient:      httpClient,
		tokenManager:    tokenManager,
		app:             app,
		logger:          logger,
		uploadChunkSize: alignChunkSize(config.UploadChunkSize),
	}
}

// alignChunkSize rounds size down to a multiple of constants.UploadChunkAlignment, never
// below one alignment unit. Zero or negative sizes select the default.
func alignChunkSize(size int) int {
	if size <= 0 {
		return constants.UploadChunkSize
	}

	if size < constants.UploadChunkAlignment {
		return constants.UploadChunkAlignment
	}

	return size - size%constants.UploadChunkAlignment
}

// App implements n1.Client.App.
func (c *Client) App() *n1.App {
	return c.app
}

// SetAPIKey rotates the API key used by every handle derived from this client.
func (c *Client) SetAPIKey(apiKey string) {
	if c.tokenManager != nil {
		c.tokenManager.SetAPIKey(apiKey)
	}
}

// Organization implements n1.Client.Organization.
func (c *Client) Organization(organizationID string) (n1.OrganizationClient, error) {
	err := n1.ValidateID("organization ID", organizationID)
	if err != nil {
		return nil, err
	}

	return &OrganizationClient{client: c, id: organizationID}, nil
}

// GetOrganization implements n1.Client.GetOrganization.
func (c *Client) GetOrganization(ctx context.Context, organizationID string) (*n1.OrganizationForClient, error) {
	err := n1.ValidateID("organization ID", organizationID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, organizationPath(pathOrganization, organizationID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting organization: %w", err)
	}

	wire, err := apimodel.FromJSON[apimodel.OrganizationForClient](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing organization response: %w", err)
	}

	// The service has been seen answering with another organization the caller belongs to.
	if wire.ID != organizationID {
		c.logger.Warn("organization ID mismatch", map[string]interface{}{
			"requested": organizationID,
			"returned":  wire.ID,
		})

		return nil, nil //nolint:nilnil // not found is reported as nil
	}

	return n1.OrganizationForClientFromWire(wire, c.app)
}

// GetOrganizationsPaged implements n1.Client.GetOrganizationsPaged.
func (c *Client) GetOrganizationsPaged(ctx context.Context, cursor string) (*n1.QueryResult[*n1.OrganizationForClientCollection], error) {
	result, err := getItemsPaged[*n1.OrganizationForClientCollection, apimodel.OrganizationForClientCollection](ctx, c, pathOrganizations, nil, cursor)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	return result, nil
}

// GetAllOrganizations implements n1.Client.GetAllOrganizations.
func (c *Client) GetAllOrganizations(ctx context.Context) (*n1.OrganizationForClientCollection, error) {
	items, err := n1.WalkPages[*n1.OrganizationForClient](ctx, c.GetOrganizationsPaged)
	if err != nil {
		return nil, err
	}

	return n1.NewOrganizationForClientCollection(c.app, items...), nil
}
