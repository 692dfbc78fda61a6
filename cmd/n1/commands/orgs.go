package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/fivetwenty-io/n1-client/pkg/n1client"
	"github.com/spf13/cobra"
)

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"organizations", "org"},
		Short:   "Manage organizations",
		Long:    "List and inspect the organizations the API key can access",
	}

	cmd.AddCommand(newOrgsListCommand())
	cmd.AddCommand(newOrgsGetCommand())

	return cmd
}

func newOrgsListCommand() *cobra.Command {
	var (
		allPages bool
		cursor   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Long:  "List organizations, one page at a time or all of them with --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				return runOrgsListCommand(ctx, cmd, allPages, cursor)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor returned by a previous page")

	return cmd
}

func runOrgsListCommand(ctx context.Context, cmd *cobra.Command, allPages bool, cursor string) error {
	client, err := n1client.FromContext(ctx)
	if err != nil {
		return err
	}

	if allPages {
		organizations, err := client.GetAllOrganizations(ctx)
		if err != nil {
			return fmt.Errorf("failed to list organizations: %w", err)
		}

		return renderOrganizations(cmd, organizations)
	}

	page, err := client.GetOrganizationsPaged(ctx, cursor)
	if err != nil {
		return fmt.Errorf("failed to list organizations: %w", err)
	}

	err = renderOrganizations(cmd, page.Results())
	if err != nil {
		return err
	}

	if page.Cursor() != "" && page.Results().Len() >= page.PageSize() && page.PageSize() > 0 {
		printNextCursor(cmd, page.Cursor())
	}

	return nil
}

func newOrgsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORG_ID",
		Short: "Get organization details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				client, err := n1client.FromContext(ctx)
				if err != nil {
					return err
				}

				organization, err := client.GetOrganization(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get organization: %w", err)
				}

				if organization == nil {
					return renderOrganizations(cmd, n1.NewOrganizationForClientCollection(client.App()))
				}

				return renderOrganizations(cmd, n1.NewOrganizationForClientCollection(client.App(), organization))
			})
		},
	}
}

func renderOrganizations(cmd *cobra.Command, organizations *n1.OrganizationForClientCollection) error {
	rows := func() [][]string {
		rows := make([][]string, 0, organizations.Len())
		for _, organization := range organizations.All() {
			rows = append(rows, []string{
				organization.ID(),
				organization.Name(),
				strconv.FormatBool(organization.UserMemberIsAdmin()),
				strconv.FormatBool(organization.Disabled()),
				valueOrNA(organization.CreatedOn()),
			})
		}

		return rows
	}

	return render(cmd.OutOrStdout(), organizations.ToWire(),
		[]string{"ID", "Name", "Admin", "Disabled", "Created"}, rows, "No organizations found")
}

// printNextCursor tells the user how to fetch the following page. It goes to stderr so that
// JSON and YAML output stay parseable.
func printNextCursor(cmd *cobra.Command, cursor string) {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "More results available, use --cursor %s\n", cursor)
}
