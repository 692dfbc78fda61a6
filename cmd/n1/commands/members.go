package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/n1-client/internal/constants"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/spf13/cobra"
)

// NewMembersCommand creates the members command group.
func NewMembersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "members",
		Aliases: []string{"member"},
		Short:   "List organization and project members",
	}

	cmd.AddCommand(newMembersListCommand())
	cmd.AddCommand(newMembersFindCommand())

	return cmd
}

func newMembersListCommand() *cobra.Command {
	var organizationID, projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		Long:  "List the members of an organization, or of a project when --project is set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				if projectID == "" {
					return listOrganizationMembers(ctx, cmd, organizationID)
				}

				project, err := projectFromFlags(ctx, organizationID, projectID)
				if err != nil {
					return err
				}

				members, err := project.GetAllMembers(ctx)
				if err != nil {
					return fmt.Errorf("failed to list project members: %w", err)
				}

				return renderProjectMembers(cmd, members)
			})
		},
	}

	addOrganizationFlag(cmd, &organizationID)
	cmd.Flags().StringVar(&projectID, "project", "", "project ID")

	return cmd
}

func listOrganizationMembers(ctx context.Context, cmd *cobra.Command, organizationID string) error {
	organization, err := organizationFromFlags(ctx, organizationID)
	if err != nil {
		return err
	}

	members, err := organization.GetAllMembers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list organization members: %w", err)
	}

	rows := func() [][]string {
		rows := make([][]string, 0, members.Len())
		for _, member := range members.All() {
			rows = append(rows, []string{
				member.ID(),
				member.UserName(),
				member.UserEmail(),
				strconv.FormatBool(member.IsAdmin()),
				strconv.FormatBool(member.IsReadOnly()),
			})
		}

		return rows
	}

	return render(cmd.OutOrStdout(), members.ToWire(),
		[]string{"ID", "Name", "Email", "Admin", "Read Only"}, rows, "No members found")
}

func newMembersFindCommand() *cobra.Command {
	var organizationID, projectID string

	cmd := &cobra.Command{
		Use:   "find EMAIL",
		Short: "Find a project member by email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				project, err := projectFromFlags(ctx, organizationID, projectID)
				if err != nil {
					return err
				}

				member, err := project.GetMemberByEmailAddress(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to find project member: %w", err)
				}

				if member == nil {
					return fmt.Errorf("%w: %s", constants.ErrMemberNotFound, args[0])
				}

				return renderProjectMembers(cmd, n1.NewProjectMemberCollection(project.App(), member))
			})
		},
	}

	addProjectFlags(cmd, &organizationID, &projectID)

	return cmd
}

func renderProjectMembers(cmd *cobra.Command, members *n1.ProjectMemberCollection) error {
	rows := func() [][]string {
		rows := make([][]string, 0, members.Len())
		for _, member := range members.All() {
			rows = append(rows, []string{
				member.ID(),
				member.UserName(),
				member.UserEmail(),
				strconv.FormatBool(member.IsAdmin()),
				strconv.FormatBool(member.IsReadOnly()),
			})
		}

		return rows
	}

	return render(cmd.OutOrStdout(), members.ToWire(),
		[]string{"ID", "Name", "Email", "Admin", "Read Only"}, rows, "No members found")
}
