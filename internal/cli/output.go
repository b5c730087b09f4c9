// Package cli formats command results as tables, JSON or YAML.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Printer writes values in one output format.
type Printer struct {
	w      io.Writer
	format OutputFormat
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, format OutputFormat) *Printer {
	return &Printer{w: w, format: format}
}

// Print writes v. Tables render objects as property/value pairs and
// slices of objects with one row each, using columns in the given order.
func (p *Printer) Print(v any, columns ...string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	switch p.format {
	case OutputFormatJSON:
		return p.outputJSON(data)
	case OutputFormatYAML:
		return p.outputYAML(data)
	case OutputFormatTable:
		return p.outputTable(data, columns)
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

func (p *Printer) outputJSON(data []byte) error {
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	out, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.w, string(out))
	return err
}

// outputYAML converts JSON to YAML so both formats share field names.
func (p *Printer) outputYAML(data []byte) error {
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = fmt.Fprint(p.w, string(out))
	return err
}

func (p *Printer) outputTable(data []byte, columns []string) error {
	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	switch d := generic.(type) {
	case map[string]any:
		p.keyValueTable(d, columns)
	case []any:
		p.rowsTable(d, columns)
	default:
		fmt.Fprintln(p.w, string(data))
	}
	return nil
}

func (p *Printer) keyValueTable(data map[string]any, order []string) {
	t := p.newTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("PROPERTY"),
		text.FgHiCyan.Sprint("VALUE"),
	})
	for _, key := range orderedKeys(data, order) {
		t.AppendRow(table.Row{text.FgYellow.Sprint(key), formatCellValue(data[key])})
	}
	t.Render()
}

func (p *Printer) rowsTable(items []any, columns []string) {
	if len(items) == 0 {
		fmt.Fprintln(p.w, text.FgYellow.Sprint("No items found"))
		return
	}
	if len(columns) == 0 {
		if first, ok := items[0].(map[string]any); ok {
			columns = orderedKeys(first, nil)
		}
	}

	t := p.newTable()
	header := make(table.Row, len(columns))
	for i, col := range columns {
		header[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	t.AppendHeader(header)

	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			t.AppendRow(table.Row{item})
			continue
		}
		row := make(table.Row, len(columns))
		for i, col := range columns {
			row[i] = formatCellValue(obj[col])
		}
		t.AppendRow(row)
	}
	t.Render()
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleRounded)
	return t
}

// orderedKeys returns the keys of data in order first, then the rest sorted.
func orderedKeys(data map[string]any, order []string) []string {
	seen := make(map[string]bool, len(data))
	keys := make([]string, 0, len(data))
	for _, k := range order {
		if _, ok := data[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range data {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func formatCellValue(value any) any {
	switch v := value.(type) {
	case nil:
		return text.FgHiBlack.Sprint("-")
	case string:
		if v == "" {
			return text.FgHiBlack.Sprint("-")
		}
		return v
	case bool:
		if v {
			return text.FgGreen.Sprint("yes")
		}
		return text.FgRed.Sprint("no")
	default:
		return v
	}
}
