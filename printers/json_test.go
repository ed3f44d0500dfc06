package printers_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pouriyajamshidi/kindof/internal/testdata"
	"github.com/pouriyajamshidi/kindof/lang"
	"github.com/pouriyajamshidi/kindof/printers"
	"github.com/pouriyajamshidi/kindof/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONPrinter(buf *bytes.Buffer, opts ...printers.JSONPrinterOption) *printers.JSONPrinter {
	return printers.NewJSONPrinter(append(opts, printers.WithWriter[*printers.JSONPrinter](buf))...)
}

func TestJSONPrinter_PrintStart(t *testing.T) {
	var buf bytes.Buffer
	newJSONPrinter(&buf).PrintStart(testdata.TestSource)

	events := testdata.DecodeJSONEvents(t, buf.String())
	require.Len(t, events, 1)
	assert.Equal(t, printers.JSONEventType("start"), events[0].Type)
	assert.Equal(t, testdata.TestSource, events[0].Source)
	assert.Equal(t, "Inspecting people.json", events[0].Message)
}

func TestJSONPrinter_PrintEntry(t *testing.T) {
	tests := []struct {
		name          string
		entry         *report.Entry
		opts          []printers.JSONPrinterOption
		wantPlain     bool
		wantTimestamp string
		wantPreview   string
	}{
		{
			name:      "plain object",
			entry:     testdata.Entry(report.RootPath, lang.KindObject, true, "{1 key}"),
			wantPlain: true,
		},
		{
			name:  "non plain value keeps plain=false",
			entry: testdata.Entry("$.n", lang.KindNumber, false, "7"),
		},
		{
			name:          "with timestamp and preview",
			entry:         testdata.Entry("$.n", lang.KindNumber, false, "7"),
			opts:          []printers.JSONPrinterOption{printers.WithTimestamp[*printers.JSONPrinter](), printers.WithPreview[*printers.JSONPrinter]()},
			wantTimestamp: "2024-01-15 10:30:45",
			wantPreview:   "7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newJSONPrinter(&buf, tt.opts...).PrintEntry(tt.entry)

			assert.Contains(t, buf.String(), `"plain":`)

			events := testdata.DecodeJSONEvents(t, buf.String())
			require.Len(t, events, 1)

			got := events[0]
			assert.Equal(t, printers.JSONEventType("entry"), got.Type)
			assert.Equal(t, tt.entry.Path, got.Path)
			assert.Equal(t, tt.entry.Kind.String(), got.Kind)
			require.NotNil(t, got.Plain)
			assert.Equal(t, tt.wantPlain, *got.Plain)
			assert.Equal(t, tt.wantTimestamp, got.Timestamp)
			assert.Equal(t, tt.wantPreview, got.Preview)
		})
	}
}

func TestJSONPrinter_HintAndErrorOmitEntryFields(t *testing.T) {
	var buf bytes.Buffer
	p := newJSONPrinter(&buf)

	p.PrintHint("key %q not found", "x")
	p.PrintError("broken %d", 1)

	assert.NotContains(t, buf.String(), `"plain"`)

	events := testdata.DecodeJSONEvents(t, buf.String())
	require.Len(t, events, 2)
	assert.Equal(t, printers.JSONEventType("hint"), events[0].Type)
	assert.Equal(t, `key "x" not found`, events[0].Message)
	assert.Equal(t, printers.JSONEventType("error"), events[1].Type)
	assert.Equal(t, "broken 1", events[1].Message)
}

func TestJSONPrinter_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := newJSONPrinter(&buf)

	p.PrintSummary(testdata.Summary())

	events := testdata.DecodeJSONEvents(t, buf.String())
	require.Len(t, events, 1)

	got := events[0]
	assert.Equal(t, printers.JSONEventType("summary"), got.Type)
	assert.Equal(t, "1 sources | 1 documents | 4 values", got.Message)
	assert.Equal(t, testdata.TestRunID, got.RunID)
	assert.Equal(t, []string{testdata.TestSource}, got.Sources)
	assert.Equal(t, uint(4), got.Entries)
	assert.Equal(t, map[string]uint{"object": 1, "string": 2, "number": 1}, got.Kinds)
	assert.Equal(t, "2024-01-15 10:31:00", got.EndTimestamp)
	assert.InDelta(t, 15.0, got.Duration, 0.001)
	assert.NoError(t, p.Done())
}

func TestJSONPrinter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	newJSONPrinter(&buf, printers.WithPrettyJSON()).PrintStart(testdata.TestSource)

	assert.True(t, strings.HasPrefix(buf.String(), "{\n\t\"type\": \"start\""))
}
