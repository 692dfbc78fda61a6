package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/n1-client/internal/constants"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/fivetwenty-io/n1-client/pkg/n1client"
	"github.com/spf13/cobra"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "proj"},
		Short:   "Manage projects",
		Long:    "List and create projects inside an organization",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsCreateCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		organizationID string
		nameFilter     string
		adminOnly      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List every project in an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				organization, err := organizationFromFlags(ctx, organizationID)
				if err != nil {
					return err
				}

				query := &n1.ProjectsQuery{NameFilter: nameFilter}
				if adminOnly {
					query.AdminOnly = &adminOnly
				}

				projects, err := organization.GetAllProjects(ctx, query)
				if err != nil {
					return fmt.Errorf("failed to list projects: %w", err)
				}

				return renderProjects(cmd, projects)
			})
		},
	}

	addOrganizationFlag(cmd, &organizationID)
	cmd.Flags().StringVar(&nameFilter, "name", "", "only list projects whose name contains this text")
	cmd.Flags().BoolVar(&adminOnly, "admin-only", false, "only list projects the key administers")

	return cmd
}

func newProjectsCreateCommand() *cobra.Command {
	var (
		organizationID string
		access         string
		templateID     string
		copyContent    bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accessLevel, err := parseAccessLevel(access)
			if err != nil {
				return err
			}

			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				organization, err := organizationFromFlags(ctx, organizationID)
				if err != nil {
					return err
				}

				project, err := organization.CreateProject(ctx, &n1.CreateProjectRequest{
					Name:              args[0],
					AccessLevel:       accessLevel,
					TemplateID:        templateID,
					SourceContentCopy: copyContent,
				})
				if err != nil {
					return fmt.Errorf("failed to create project: %w", err)
				}

				projects := n1.NewOrganizationProjectCollection(organization.App())
				if project != nil {
					projects = n1.NewOrganizationProjectCollection(organization.App(), project)
				}

				return renderProjects(cmd, projects)
			})
		},
	}

	addOrganizationFlag(cmd, &organizationID)
	cmd.Flags().StringVar(&access, "access", "unrestricted", "sharing model: unrestricted or restrictive")
	cmd.Flags().StringVar(&templateID, "template", "", "project ID to copy the structure from")
	cmd.Flags().BoolVar(&copyContent, "copy-content", false, "copy the template's documents as well")

	return cmd
}

func parseAccessLevel(access string) (n1.ProjectAccessLevel, error) {
	switch strings.ToLower(strings.TrimSpace(access)) {
	case "", "unrestricted":
		return n1.ProjectAccessUnrestricted, nil
	case "restrictive":
		return n1.ProjectAccessRestrictive, nil
	default:
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidAccessLevel, access)
	}
}

func organizationFromFlags(ctx context.Context, organizationID string) (n1.OrganizationClient, error) {
	client, err := n1client.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	return client.Organization(organizationID)
}

func renderProjects(cmd *cobra.Command, projects *n1.OrganizationProjectCollection) error {
	rows := func() [][]string {
		rows := make([][]string, 0, projects.Len())
		for _, project := range projects.All() {
			rows = append(rows, []string{
				project.ID(),
				project.Name(),
				valueOrNA(project.AccessType()),
				strconv.FormatBool(project.Disabled()),
				valueOrNA(project.CreatedOn()),
			})
		}

		return rows
	}

	return render(cmd.OutOrStdout(), projects.ToWire(),
		[]string{"ID", "Name", "Access", "Disabled", "Created"}, rows, "No projects found")
}
