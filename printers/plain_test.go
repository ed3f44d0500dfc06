package printers_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pouriyajamshidi/kindof/internal/testdata"
	"github.com/pouriyajamshidi/kindof/lang"
	"github.com/pouriyajamshidi/kindof/printers"
	"github.com/pouriyajamshidi/kindof/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlainPrinter(t *testing.T) {
	p := printers.NewPlainPrinter()
	require.NotNil(t, p)
}

func TestPlainPrinter_PrintStart(t *testing.T) {
	var buf bytes.Buffer
	p := printers.NewPlainPrinter(printers.WithWriter[*printers.PlainPrinter](&buf))

	p.PrintStart(testdata.TestSource)

	assert.Equal(t, "Inspecting people.json\n", buf.String())
}

func TestPlainPrinter_DefaultsToStdout(t *testing.T) {
	output := testdata.CaptureOutput(t, func() {
		printers.NewPlainPrinter().PrintStart(testdata.TestSource)
	})

	assert.Equal(t, "Inspecting people.json\n", output)
}

func TestPlainPrinter_PrintEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry *report.Entry
		opts  []printers.PlainPrinterOption
		want  string
	}{
		{
			name:  "plain object root",
			entry: testdata.Entry(report.RootPath, lang.KindObject, true, "{2 keys}"),
			want:  "people.json $ object (plain)\n",
		},
		{
			name:  "member without preview",
			entry: testdata.Entry("$.name", lang.KindString, false, `"ada"`),
			want:  "people.json $.name string\n",
		},
		{
			name:  "member with preview",
			entry: testdata.Entry("$.name", lang.KindString, false, `"ada"`),
			opts:  []printers.PlainPrinterOption{printers.WithPreview[*printers.PlainPrinter]()},
			want:  "people.json $.name string = \"ada\"\n",
		},
		{
			name:  "with timestamp",
			entry: testdata.Entry("$.age", lang.KindNumber, false, "36"),
			opts:  []printers.PlainPrinterOption{printers.WithTimestamp[*printers.PlainPrinter]()},
			want:  "2024-01-15 10:30:45 people.json $.age number\n",
		},
		{
			name:  "empty preview is skipped",
			entry: testdata.Entry("$.x", lang.KindNull, false, ""),
			opts:  []printers.PlainPrinterOption{printers.WithPreview[*printers.PlainPrinter]()},
			want:  "people.json $.x null\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := append([]printers.PlainPrinterOption{printers.WithWriter[*printers.PlainPrinter](&buf)}, tt.opts...)
			p := printers.NewPlainPrinter(opts...)

			p.PrintEntry(tt.entry)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPlainPrinter_PrintHintAndError(t *testing.T) {
	var buf bytes.Buffer
	p := printers.NewPlainPrinter(printers.WithWriter[*printers.PlainPrinter](&buf))

	p.PrintHint("key %q not found, did you mean %q?", "nmae", "name")
	p.PrintError("read %s: %s", "x.json", "boom")

	assert.Equal(t,
		"hint: key \"nmae\" not found, did you mean \"name\"?\nerror: read x.json: boom\n",
		buf.String())
}

func TestPlainPrinter_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := printers.NewPlainPrinter(printers.WithWriter[*printers.PlainPrinter](&buf))

	p.PrintSummary(testdata.Summary())
	output := buf.String()

	for _, want := range []string{
		"--- kindof summary ---",
		"1 source | 1 document | 4 values",
		"number:    1 (25.00%)",
		"string:    2 (50.00%)",
		"object:    1 (25.00%)",
		"plain objects: 1",
		"omitted keys:  1",
		"run id:     " + testdata.TestRunID,
		"started at: 2024-01-15 10:30:45",
		"ended at:   2024-01-15 10:31:00",
		"duration:   15s",
	} {
		assert.Contains(t, output, want)
	}

	assert.NotContains(t, output, "boolean:", "kinds with no entries are not listed")
}

func TestPlainPrinter_PrintSummary_Unfinished(t *testing.T) {
	var buf bytes.Buffer
	p := printers.NewPlainPrinter(printers.WithWriter[*printers.PlainPrinter](&buf))

	s := testdata.Summary()
	s.EndTime = time.Time{}
	s.OmittedKeys = 0

	p.PrintSummary(s)
	output := buf.String()

	assert.True(t, strings.HasPrefix(output, "\n--- kindof summary ---"))
	assert.NotContains(t, output, "ended at:")
	assert.NotContains(t, output, "omitted keys:")
}

func TestPlainPrinter_Done(t *testing.T) {
	assert.NoError(t, printers.NewPlainPrinter().Done())
}
