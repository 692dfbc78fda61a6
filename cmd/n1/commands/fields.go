package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/spf13/cobra"
)

// NewFieldsCommand creates the fields command group.
func NewFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fields",
		Aliases: []string{"field"},
		Short:   "Manage project fields",
		Long:    "List fields and their selection lists",
	}

	cmd.AddCommand(newFieldsListCommand())
	cmd.AddCommand(newFieldsGetCommand())
	cmd.AddCommand(newFieldsDeleteCommand())
	cmd.AddCommand(newFieldsItemsCommand())
	cmd.AddCommand(newFieldsSetItemsCommand())

	return cmd
}

func newFieldsListCommand() *cobra.Command {
	var organizationID, projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				project, err := projectFromFlags(ctx, organizationID, projectID)
				if err != nil {
					return err
				}

				fields, err := project.GetAllFields(ctx)
				if err != nil {
					return fmt.Errorf("failed to list fields: %w", err)
				}

				return renderFields(cmd, fields)
			})
		},
	}

	addProjectFlags(cmd, &organizationID, &projectID)

	return cmd
}

func newFieldsGetCommand() *cobra.Command {
	var organizationID, projectID string

	cmd := &cobra.Command{
		Use:   "get FIELD_ID",
		Short: "Get field details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				project, err := projectFromFlags(ctx, organizationID, projectID)
				if err != nil {
					return err
				}

				field, err := project.GetField(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get field: %w", err)
				}

				return renderFields(cmd, n1.NewFieldCollection(project.App(), field))
			})
		},
	}

	addProjectFlags(cmd, &organizationID, &projectID)

	return cmd
}

func newFieldsDeleteCommand() *cobra.Command {
	var organizationID, projectID string

	cmd := &cobra.Command{
		Use:   "delete FIELD_ID",
		Short: "Delete a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				project, err := projectFromFlags(ctx, organizationID, projectID)
				if err != nil {
					return err
				}

				err = project.DeleteField(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to delete field: %w", err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted field %s\n", args[0])

				return nil
			})
		},
	}

	addProjectFlags(cmd, &organizationID, &projectID)

	return cmd
}

func newFieldsItemsCommand() *cobra.Command {
	var (
		organizationID string
		projectID      string
		fieldID        string
		valueFilter    string
		parentValue    string
	)

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List a field's selection list",
		Long:  "Download the whole selection list of a list field",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				field, err := fieldFromFlags(ctx, organizationID, projectID, fieldID)
				if err != nil {
					return err
				}

				items, err := field.GetAllListItemsNoIDs(ctx, valueFilter, parentValue)
				if err != nil {
					return fmt.Errorf("failed to list field items: %w", err)
				}

				rows := func() [][]string {
					rows := make([][]string, 0, items.Len())
					for _, item := range items.All() {
						rows = append(rows, []string{item.Value(), valueOrNA(item.ParentValue())})
					}

					return rows
				}

				return render(cmd.OutOrStdout(), items.ToWire(), []string{"Value", "Parent"}, rows, "No list items found")
			})
		},
	}

	addFieldFlags(cmd, &organizationID, &projectID, &fieldID)
	cmd.Flags().StringVar(&valueFilter, "filter", "", "only list values starting with this text")
	cmd.Flags().StringVar(&parentValue, "parent", "", "only list values under this parent value")

	return cmd
}

func newFieldsSetItemsCommand() *cobra.Command {
	var organizationID, projectID, fieldID string

	cmd := &cobra.Command{
		Use:   "set-items VALUE...",
		Short: "Replace a field's selection list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				field, err := fieldFromFlags(ctx, organizationID, projectID, fieldID)
				if err != nil {
					return err
				}

				err = field.SetListItems(ctx, args)
				if err != nil {
					return fmt.Errorf("failed to set field items: %w", err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %d list items on field %s\n", len(args), fieldID)

				return nil
			})
		},
	}

	addFieldFlags(cmd, &organizationID, &projectID, &fieldID)

	return cmd
}

func addFieldFlags(cmd *cobra.Command, organizationID, projectID, fieldID *string) {
	addProjectFlags(cmd, organizationID, projectID)
	cmd.Flags().StringVar(fieldID, "field", "", "field ID")
	_ = cmd.MarkFlagRequired("field")
}

func fieldFromFlags(ctx context.Context, organizationID, projectID, fieldID string) (n1.FieldClient, error) {
	project, err := projectFromFlags(ctx, organizationID, projectID)
	if err != nil {
		return nil, err
	}

	return project.Field(fieldID)
}

func renderFields(cmd *cobra.Command, fields *n1.FieldCollection) error {
	rows := func() [][]string {
		rows := make([][]string, 0, fields.Len())
		for _, field := range fields.All() {
			rows = append(rows, []string{
				field.ID(),
				field.Name(),
				valueOrNA(field.Label()),
				valueOrNA(field.Type()),
				strconv.FormatBool(field.Required()),
			})
		}

		return rows
	}

	return render(cmd.OutOrStdout(), fields.ToWire(),
		[]string{"ID", "Name", "Label", "Type", "Required"}, rows, "No fields found")
}
