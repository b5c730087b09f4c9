package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Step     string `json:"step"`
	BackStep string `json:"backStep"`
	Saves    bool   `json:"saves"`
}

func TestMain(m *testing.M) {
	text.DisableColors()
	m.Run()
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", OutputFormatTable, false},
		{"table", OutputFormatTable, false},
		{"JSON", OutputFormatJSON, false},
		{" yaml ", OutputFormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrint_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatJSON).Print(sample{Step: "gift-card", BackStep: "payment-complete"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "gift-card", got["step"])
}

func TestPrint_YAMLUsesJSONNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatYAML).Print(sample{Step: "gift-card", BackStep: "payment-complete"}))

	assert.Contains(t, buf.String(), "step: gift-card")
	assert.Contains(t, buf.String(), "backStep: payment-complete")
}

func TestPrint_KeyValueTableOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).Print(sample{Step: "connect-square", Saves: true}, "step", "saves"))

	out := buf.String()
	assert.Contains(t, out, "PROPERTY")
	assert.Contains(t, out, "connect-square")
	assert.Contains(t, out, "yes")
	assert.Less(t, strings.Index(out, "step"), strings.Index(out, "saves"))
	assert.Less(t, strings.Index(out, "saves"), strings.Index(out, "backStep"))
}

func TestPrint_RowsTable(t *testing.T) {
	var buf bytes.Buffer
	rows := []sample{{Step: "payment-methods", BackStep: "business-location"}, {Step: "credit-card", BackStep: "payment-complete"}}
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).Print(rows, "step", "backStep"))

	out := buf.String()
	assert.Contains(t, out, "STEP")
	assert.Contains(t, out, "BACKSTEP")
	assert.Contains(t, out, "business-location")
	assert.NotContains(t, out, "SAVES")
}

func TestPrint_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).Print([]sample{}))
	assert.Contains(t, buf.String(), "No items found")
}
