package commands

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/n1-client/internal/constants"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/spf13/cobra"
)

// NewDocumentsCommand creates the documents command group.
func NewDocumentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"docs", "doc"},
		Short:   "Search, upload and recycle documents",
	}

	cmd.AddCommand(newDocumentsSearchCommand())
	cmd.AddCommand(newDocumentsUploadCommand())
	cmd.AddCommand(newDocumentsRecycleCommand())

	return cmd
}

func newDocumentsSearchCommand() *cobra.Command {
	var (
		organizationID string
		projectID      string
		filters        []string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search documents by field value",
		Long:  "Search documents whose fields equal the given values, e.g. --field vendor=Acme",
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldIDsAndValues, err := parseFieldFilters(filters)
			if err != nil {
				return err
			}

			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				project, err := projectFromFlags(ctx, organizationID, projectID)
				if err != nil {
					return err
				}

				results, err := project.SearchAllDocuments(ctx, fieldIDsAndValues)
				if err != nil {
					return fmt.Errorf("failed to search documents: %w", err)
				}

				rows := func() [][]string {
					rows := make([][]string, 0, results.Len())
					for _, result := range results.All() {
						rows = append(rows, []string{
							valueOrNA(result.DocumentID()),
							result.Name(),
							valueOrNA(result.DocumentFolderPath()),
							strconv.Itoa(result.PageCount()),
							valueOrNA(result.CreatedOn()),
						})
					}

					return rows
				}

				return render(cmd.OutOrStdout(), results.ToWire(),
					[]string{"Document ID", "Name", "Folder", "Pages", "Created"}, rows, "No documents found")
			})
		},
	}

	addProjectFlags(cmd, &organizationID, &projectID)
	cmd.Flags().StringArrayVar(&filters, "field", nil, "field filter as FIELD_ID=VALUE, repeatable")

	return cmd
}

// parseFieldFilters turns FIELD_ID=VALUE pairs into a map. A repeated field keeps its last value.
func parseFieldFilters(filters []string) (map[string]string, error) {
	fieldIDsAndValues := make(map[string]string, len(filters))

	for _, filter := range filters {
		fieldID, value, ok := strings.Cut(filter, "=")
		fieldID = strings.TrimSpace(fieldID)

		if !ok || fieldID == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidFieldFilter, filter)
		}

		fieldIDsAndValues[fieldID] = value
	}

	return fieldIDsAndValues, nil
}

func newDocumentsUploadCommand() *cobra.Command {
	var (
		organizationID string
		projectID      string
		folderID       string
		tags           []string
		fields         []string
		skipOCR        bool
	)

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a document",
		Long:  "Upload a local file into a project, optionally into a folder with field values and tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldValues, err := parseFieldFilters(fields)
			if err != nil {
				return err
			}

			return runWithClient(cmd, constants.UploadHTTPTimeout, func(ctx context.Context) error {
				project, err := projectFromFlags(ctx, organizationID, projectID)
				if err != nil {
					return err
				}

				err = uploadFile(ctx, project, args[0], &n1.UploadDocumentRequest{
					DocumentFolderID:  folderID,
					FieldIDsAndValues: multiValued(fieldValues),
					Tags:              tags,
					SkipOCR:           skipOCR,
				})
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s\n", filepath.Base(args[0]))

				return nil
			})
		},
	}

	addProjectFlags(cmd, &organizationID, &projectID)
	cmd.Flags().StringVar(&folderID, "folder", "", "document folder ID")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag to apply, repeatable")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "field value as FIELD_ID=VALUE, repeatable")
	cmd.Flags().BoolVar(&skipOCR, "skip-ocr", false, "skip text recognition")

	return cmd
}

// uploadFile opens path and uploads it with the settings in request.
func uploadFile(ctx context.Context, project n1.ProjectClient, path string, request *n1.UploadDocumentRequest) error {
	cleanPath, err := validateUploadPath(path)
	if err != nil {
		return err
	}

	file, err := os.Open(cleanPath) //nolint:gosec // path is validated above
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", constants.ErrNotRegularFile, cleanPath)
	}

	request.FileName = filepath.Base(cleanPath)
	request.ContentType = contentTypeFor(cleanPath)
	request.Body = file
	request.Size = info.Size()

	err = project.UploadDocument(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to upload document: %w", err)
	}

	return nil
}

func validateUploadPath(path string) (string, error) {
	cleanPath := filepath.Clean(path)

	for _, part := range strings.Split(filepath.ToSlash(cleanPath), "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %s", constants.ErrDirectoryTraversalDetected, path)
		}
	}

	return cleanPath, nil
}

func contentTypeFor(path string) string {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if contentType == "" {
		return constants.DefaultContentType
	}

	return contentType
}

func multiValued(values map[string]string) map[string][]string {
	if len(values) == 0 {
		return nil
	}

	out := make(map[string][]string, len(values))
	for key, value := range values {
		out[key] = []string{value}
	}

	return out
}

func newDocumentsRecycleCommand() *cobra.Command {
	var organizationID, projectID string

	cmd := &cobra.Command{
		Use:   "recycle DOCUMENT_ID",
		Short: "Send a document to the recycle bin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDefaultTimeout(cmd, func(ctx context.Context) error {
				project, err := projectFromFlags(ctx, organizationID, projectID)
				if err != nil {
					return err
				}

				err = project.SendDocumentToRecycleBin(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to recycle document: %w", err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sent document %s to the recycle bin\n", args[0])

				return nil
			})
		},
	}

	addProjectFlags(cmd, &organizationID, &projectID)

	return cmd
}
