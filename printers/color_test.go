package printers_test

import (
	"bytes"
	"testing"

	"github.com/gookit/color"
	"github.com/pouriyajamshidi/kindof/internal/testdata"
	"github.com/pouriyajamshidi/kindof/lang"
	"github.com/pouriyajamshidi/kindof/printers"
	"github.com/pouriyajamshidi/kindof/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ColorPrinter prints the same text as PlainPrinter, so most of the layout
// is covered in plain_test.go. These tests strip the escape codes and check
// the text that is left.

func newColorPrinter(buf *bytes.Buffer, opts ...printers.ColorPrinterOption) *printers.ColorPrinter {
	return printers.NewColorPrinter(append(opts, printers.WithWriter[*printers.ColorPrinter](buf))...)
}

func TestNewColorPrinter(t *testing.T) {
	p := printers.NewColorPrinter(
		printers.WithTimestamp[*printers.ColorPrinter](),
		printers.WithPreview[*printers.ColorPrinter](),
	)
	require.NotNil(t, p)
}

func TestColorPrinter_PrintEntry(t *testing.T) {
	var buf bytes.Buffer
	p := newColorPrinter(&buf, printers.WithPreview[*printers.ColorPrinter]())

	p.PrintEntry(testdata.Entry(report.RootPath, lang.KindObject, true, "{2 keys}"))

	assert.Equal(t, "people.json $ object (plain) = {2 keys}\n", color.ClearCode(buf.String()))
}

func TestColorPrinter_PrintHintAndError(t *testing.T) {
	var buf bytes.Buffer
	p := newColorPrinter(&buf)

	p.PrintHint("nothing to omit in %s", "people.json")
	p.PrintError("bad input")

	assert.Equal(t, "hint: nothing to omit in people.json\nbad input\n", color.ClearCode(buf.String()))
}

func TestColorPrinter_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := newColorPrinter(&buf)

	p.PrintSummary(testdata.Summary())
	output := color.ClearCode(buf.String())

	assert.Contains(t, output, "1 source | 1 document | 4 values")
	assert.Contains(t, output, "string:    2 (50.00%)")
	assert.Contains(t, output, "plain objects: 1")
	assert.Contains(t, output, "run id:     "+testdata.TestRunID)
	assert.NoError(t, p.Done())
}

func TestKindColor(t *testing.T) {
	assert.Equal(t, color.FgGreen, printers.KindColor(lang.KindString))
	assert.Equal(t, color.FgCyan, printers.KindColor(lang.KindObject))
	assert.Equal(t, printers.KindColor(lang.KindNull), printers.KindColor(lang.KindUndefined))
}
