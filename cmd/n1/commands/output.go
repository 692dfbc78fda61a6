package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/fivetwenty-io/n1-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// outputFormat returns the --output setting, rejecting unknown values.
func outputFormat() (string, error) {
	format := viper.GetString(keyOutput)
	if format == "" {
		return constants.FormatTable, nil
	}

	err := validateOutputFormat(format)
	if err != nil {
		return "", err
	}

	return format, nil
}

func validateOutputFormat(format string) error {
	if !slices.Contains([]string{constants.FormatTable, constants.FormatJSON, constants.FormatYAML}, format) {
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}

	return nil
}

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](out io.Writer, data T) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](out io.Writer, data T) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// renderTable writes rows under header, or emptyMessage when there are no rows.
func renderTable(out io.Writer, header []string, rows [][]string, emptyMessage string) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(out, emptyMessage)

		return nil
	}

	headerCells := make([]any, len(header))
	for i, cell := range header {
		headerCells[i] = cell
	}

	table := tablewriter.NewWriter(out)
	table.Header(headerCells...)

	for _, row := range rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// render writes wire as JSON or YAML, or the table built by rows.
func render[W any](out io.Writer, wire W, header []string, rows func() [][]string, emptyMessage string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		return StandardJSONRenderer(out, wire)
	case constants.FormatYAML:
		return StandardYAMLRenderer(out, wire)
	default:
		return renderTable(out, header, rows(), emptyMessage)
	}
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
