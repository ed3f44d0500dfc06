package printers

import (
	"fmt"
	"time"

	"github.com/gookit/color"
	"github.com/pouriyajamshidi/kindof/lang"
	"github.com/pouriyajamshidi/kindof/option"
	"github.com/pouriyajamshidi/kindof/report"
)

// ColorPrinter prints the same lines as PlainPrinter, coloured by kind.
type ColorPrinter struct {
	opt options
}

type ColorPrinterOption = option.Option[ColorPrinter]

func (p *ColorPrinter) options() *options {
	return &p.opt
}

// NewColorPrinter creates a new ColorPrinter instance.
func NewColorPrinter(opts ...ColorPrinterOption) *ColorPrinter {
	p := &ColorPrinter{}
	option.Apply(p, opts...)
	return p
}

// KindColor returns the colour a kind is printed in.
func KindColor(k lang.Kind) color.Color {
	switch k {
	case lang.KindUndefined, lang.KindNull:
		return color.FgDarkGray
	case lang.KindBoolean:
		return color.FgMagenta
	case lang.KindNumber:
		return color.FgLightBlue
	case lang.KindString:
		return color.FgGreen
	case lang.KindSymbol:
		return color.FgLightYellow
	case lang.KindFunction:
		return color.FgRed
	default:
		return color.FgCyan
	}
}

func (p *ColorPrinter) printf(c color.Color, format string, args ...any) {
	fmt.Fprint(p.opt.writer(), c.Sprintf(format, args...))
}

// PrintStart prints the name of the source about to be inspected.
func (p *ColorPrinter) PrintStart(source string) {
	p.printf(color.FgLightCyan, "Inspecting %s\n", source)
}

// PrintEntry prints the classification of a single value.
func (p *ColorPrinter) PrintEntry(e *report.Entry) {
	if p.opt.ShowTimestamp {
		p.printf(color.FgYellow, "%s ", e.TimestampFormatted())
	}

	p.printf(color.FgLightCyan, "%s ", e.Source)
	p.printf(color.FgYellow, "%s ", e.Path)
	p.printf(KindColor(e.Kind), "%s", e.Kind)

	if e.Plain {
		p.printf(color.FgLightGreen, " (plain)")
	}

	if p.opt.ShowPreview && e.Preview != "" {
		p.printf(color.FgYellow, " = ")
		p.printf(KindColor(e.Kind), "%s", e.Preview)
	}

	fmt.Fprintln(p.opt.writer())
}

// PrintHint prints a non-fatal remark in yellow.
func (p *ColorPrinter) PrintHint(format string, args ...any) {
	p.printf(color.FgLightYellow, "hint: "+format+"\n", args...)
}

// PrintError prints an error message in red.
func (p *ColorPrinter) PrintError(format string, args ...any) {
	p.printf(color.FgRed, format+"\n", args...)
}

// PrintSummary prints the counts gathered over the run.
func (p *ColorPrinter) PrintSummary(s *report.Summary) {
	p.printf(color.FgYellow, "\n--- kindof summary ---\n")
	p.printf(color.FgYellow, "%d %s | ", len(s.Sources), plural(len(s.Sources), "source", "sources"))
	p.printf(color.FgYellow, "%d %s | ", s.Documents, plural(int(s.Documents), "document", "documents"))
	p.printf(color.FgGreen, "%d %s\n", s.Entries, plural(int(s.Entries), "value", "values"))

	for _, kind := range lang.Kinds() {
		if s.Count(kind) == 0 {
			continue
		}
		p.printf(color.FgYellow, "%-10s ", kind.String()+":")
		p.printf(KindColor(kind), "%d ", s.Count(kind))
		p.printf(color.FgYellow, "(%.2f%%)\n", s.Percent(kind))
	}

	p.printf(color.FgYellow, "plain objects: ")
	p.printf(color.FgLightGreen, "%d\n", s.PlainObjects)

	if s.OmittedKeys > 0 {
		p.printf(color.FgYellow, "omitted keys:  ")
		p.printf(color.FgRed, "%d\n", s.OmittedKeys)
	}

	p.printf(color.FgYellow, "--------------------------------------\n")
	p.printf(color.FgYellow, "run id:     %s\n", s.RunID)
	p.printf(color.FgYellow, "started at: %s\n", s.StartTimeFormatted())

	if !s.EndTime.IsZero() {
		p.printf(color.FgYellow, "ended at:   %s\n", s.EndTimeFormatted())
	}

	p.printf(color.FgYellow, "duration:   %s\n", s.Duration().Round(time.Millisecond))
}

// Done satisfies the printer interface; there is nothing to release.
func (p *ColorPrinter) Done() error {
	return nil
}
