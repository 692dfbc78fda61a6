package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/spf13/cobra"
)

// NewFoldersCommand creates the document folders command group.
func NewFoldersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "folders",
		Aliases: []string{"folder"},
		Short:   "Manage document folders",
	}

	cmd.AddCommand(newFoldersListCommand())
	cmd.AddCommand(newFoldersCreateCommand())
	cmd.AddCommand(newFoldersDeleteCommand())

	return cmd
}

func newFoldersListCommand() *cobra.Command {
	var organizationID, projectID, parentID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List document folders",
		Long:  "List the folders at the project root, or under --parent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				project, err := projectFromFlags(ctx, organizationID, projectID)
				if err != nil {
					return err
				}

				folders, err := project.GetAllDocumentFolders(ctx, parentID)
				if err != nil {
					return fmt.Errorf("failed to list document folders: %w", err)
				}

				return renderFolders(cmd, folders)
			})
		},
	}

	addProjectFlags(cmd, &organizationID, &projectID)
	cmd.Flags().StringVar(&parentID, "parent", "", "parent folder ID")

	return cmd
}

func newFoldersCreateCommand() *cobra.Command {
	var organizationID, projectID, parentID string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a document folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				project, err := projectFromFlags(ctx, organizationID, projectID)
				if err != nil {
					return err
				}

				folder, err := project.CreateDocumentFolder(ctx, args[0], parentID)
				if err != nil {
					return fmt.Errorf("failed to create document folder: %w", err)
				}

				folders := n1.NewDocumentFolderCollection(project.App())
				if folder != nil {
					folders = n1.NewDocumentFolderCollection(project.App(), folder)
				}

				return renderFolders(cmd, folders)
			})
		},
	}

	addProjectFlags(cmd, &organizationID, &projectID)
	cmd.Flags().StringVar(&parentID, "parent", "", "parent folder ID")

	return cmd
}

func newFoldersDeleteCommand() *cobra.Command {
	var organizationID, projectID string

	cmd := &cobra.Command{
		Use:   "delete FOLDER_ID",
		Short: "Delete a document folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				project, err := projectFromFlags(ctx, organizationID, projectID)
				if err != nil {
					return err
				}

				err = project.DeleteDocumentFolder(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to delete document folder: %w", err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted folder %s\n", args[0])

				return nil
			})
		},
	}

	addProjectFlags(cmd, &organizationID, &projectID)

	return cmd
}

func renderFolders(cmd *cobra.Command, folders *n1.DocumentFolderCollection) error {
	rows := func() [][]string {
		rows := make([][]string, 0, folders.Len())
		for _, folder := range folders.All() {
			rows = append(rows, []string{
				folder.ID(),
				folder.Name(),
				valueOrNA(folder.ParentID()),
				strconv.Itoa(folder.Depth()),
				valueOrNA(folder.HexColor()),
			})
		}

		return rows
	}

	return render(cmd.OutOrStdout(), folders.ToWire(),
		[]string{"ID", "Name", "Parent", "Depth", "Color"}, rows, "No document folders found")
}
