package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/fivetwenty-io/n1-client/internal/constants"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/fivetwenty-io/n1-client/pkg/n1client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildClientConfig assembles the library configuration from viper settings.
func buildClientConfig(logger n1.Logger, timeout time.Duration) (*n1.Config, error) {
	apiKey := viper.GetString(keyAPIKey)
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	verbose := viper.GetBool(keyVerbose)

	config := &n1.Config{
		APIBaseURL:  viper.GetString(keyAPIBaseURL),
		APIKey:      apiKey,
		UserAgent:   constants.DefaultUserAgent + "-cli",
		HTTPTimeout: timeout,
		Debug:       verbose,
		Logger:      logger,
	}

	if verbose {
		config.Interceptors = n1.NewLoggingInterceptorChain(logger)
	}

	return config, nil
}

// runWithClient creates a client, binds it into the context handed to action and flushes the
// logger afterwards. action resolves the client with n1client.FromContext.
func runWithClient(cmd *cobra.Command, timeout time.Duration, action func(ctx context.Context) error) error {
	logger, err := NewLogger(viper.GetBool(keyVerbose))
	if err != nil {
		return err
	}
	defer logger.Sync()

	config, err := buildClientConfig(logger, timeout)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := n1client.New(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return n1.DoWithContext(ctx, client, action)
}

// projectFromFlags resolves the --org and --project handles against the bound client.
func projectFromFlags(ctx context.Context, organizationID, projectID string) (n1.ProjectClient, error) {
	client, err := n1client.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	organization, err := client.Organization(organizationID)
	if err != nil {
		return nil, err
	}

	return organization.Project(projectID)
}

func addOrganizationFlag(cmd *cobra.Command, organizationID *string) {
	cmd.Flags().StringVar(organizationID, "org", "", "organization ID")
	_ = cmd.MarkFlagRequired("org")
}

func addProjectFlags(cmd *cobra.Command, organizationID, projectID *string) {
	addOrganizationFlag(cmd, organizationID)
	cmd.Flags().StringVar(projectID, "project", "", "project ID")
	_ = cmd.MarkFlagRequired("project")
}

func withDefaultTimeout(cmd *cobra.Command, action func(ctx context.Context) error) error {
	return runWithClient(cmd, constants.DefaultHTTPTimeout, action)
}
