package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "List project tags",
	}

	cmd.AddCommand(newTagsListCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	var organizationID, projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				project, err := projectFromFlags(ctx, organizationID, projectID)
				if err != nil {
					return err
				}

				tags, err := project.GetAllTags(ctx, nil)
				if err != nil {
					return fmt.Errorf("failed to list tags: %w", err)
				}

				rows := func() [][]string {
					rows := make([][]string, 0, tags.Len())
					for _, tag := range tags.All() {
						rows = append(rows, []string{tag.Text(), valueOrNA(tag.ModifiedOn())})
					}

					return rows
				}

				return render(cmd.OutOrStdout(), tags.ToWire(), []string{"Tag", "Modified"}, rows, "No tags found")
			})
		},
	}

	addProjectFlags(cmd, &organizationID, &projectID)

	return cmd
}
