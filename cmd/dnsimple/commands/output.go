package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

func validOutput(format string) bool {
	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return true
	default:
		return false
	}
}

func outputFormat() (string, error) {
	format := viper.GetString(keyOutput)
	if format == "" {
		return OutputFormatTable, nil
	}

	if !validOutput(format) {
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidOutput, format)
	}

	return format, nil
}

// encode writes v as JSON or YAML according to the output setting.
func encode(out io.Writer, v interface{}) error {
	if viper.GetString(keyOutput) == OutputFormatYAML {
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(defaultJSONIndent)

		err := encoder.Encode(v)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// renderResponse writes resp in the selected format. An error response is
// rendered and then returned as an error so the process exits non-zero.
func renderResponse(cmd *cobra.Command, resp *dnsimple.Response, wrapper string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch {
	case format != OutputFormatTable:
		err = encode(out, resp)
	case resp.IsError():
		err = renderErrorTable(cmd.ErrOrStderr(), resp)
	case resp.Kind() == dnsimple.ResponseList:
		err = renderListTable(out, resp, wrapper)
	default:
		err = renderObjectTable(out, resp, wrapper)
	}

	if err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("%w: %w", constants.ErrRemoteFailure, resp.Err())
	}

	return nil
}

func renderListTable(out io.Writer, resp *dnsimple.Response, wrapper string) error {
	objects, err := resp.List()
	if err != nil {
		return fmt.Errorf("reading list: %w", err)
	}

	if len(objects) == 0 {
		_, _ = fmt.Fprintln(out, "No results found")

		return nil
	}

	rows := make([]*dnsimple.Object, 0, len(objects))
	for _, obj := range objects {
		rows = append(rows, obj.Unwrap(wrapper))
	}

	columns := dnsimple.ColumnsOf(rows)

	table := tablewriter.NewWriter(out)
	table.Header(headerCells(columns)...)

	for _, obj := range rows {
		cells := make([]string, len(columns))

		for i, column := range columns {
			value, ok := obj.Get(column)
			if ok {
				cells[i] = truncate(value.Text())
			}
		}

		_ = table.Append(cells)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderObjectTable(out io.Writer, resp *dnsimple.Response, wrapper string) error {
	obj, err := resp.Object()
	if err != nil {
		return fmt.Errorf("reading object: %w", err)
	}

	obj = obj.Unwrap(wrapper)

	if obj.Len() == 0 {
		_, _ = fmt.Fprintln(out, "OK")

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	for _, key := range obj.Keys() {
		value, _ := obj.Get(key)
		_ = table.Append(key, truncate(value.Text()))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderErrorTable(out io.Writer, resp *dnsimple.Response) error {
	message := resp.Message()
	if message == "" {
		message = NotAvailable
	}

	_, _ = fmt.Fprintf(out, "Error %d: %s\n", resp.StatusCode(), message)

	fieldErrors := resp.FieldErrors()
	if len(fieldErrors) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header("Field", "Errors")

	for _, field := range dnsimple.SortedFieldNames(fieldErrors) {
		_ = table.Append(field, strings.Join(fieldErrors[field], "; "))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func headerCells(columns []string) []any {
	cells := make([]any, len(columns))
	for i, column := range columns {
		cells[i] = strings.ToUpper(column)
	}

	return cells
}

// truncate shortens text to at most MaxTableCellWidth bytes without
// splitting a rune.
func truncate(text string) string {
	if len(text) <= constants.MaxTableCellWidth {
		return text
	}

	cut := constants.MaxTableCellWidth - len("...")
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}

	return text[:cut] + "..."
}
