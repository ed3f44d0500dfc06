// Package printers contains the logic for printing information
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/pouriyajamshidi/kindof/lang"
	"github.com/pouriyajamshidi/kindof/option"
	"github.com/pouriyajamshidi/kindof/report"
)

// PlainPrinter prints results as plain text, one line per value.
type PlainPrinter struct {
	opt options
}

type PlainPrinterOption = option.Option[PlainPrinter]

func (p *PlainPrinter) options() *options {
	return &p.opt
}

// NewPlainPrinter creates a new PlainPrinter instance.
func NewPlainPrinter(opts ...PlainPrinterOption) *PlainPrinter {
	p := &PlainPrinter{}
	option.Apply(p, opts...)
	return p
}

// PrintStart prints the name of the source about to be inspected.
func (p *PlainPrinter) PrintStart(source string) {
	fmt.Fprintf(p.opt.writer(), "Inspecting %s\n", source)
}

// PrintEntry prints the classification of a single value.
func (p *PlainPrinter) PrintEntry(e *report.Entry) {
	fmt.Fprintln(p.opt.writer(), entryLine(e, &p.opt))
}

// PrintHint prints a non-fatal remark.
func (p *PlainPrinter) PrintHint(format string, args ...any) {
	fmt.Fprintf(p.opt.writer(), "hint: "+format+"\n", args...)
}

// PrintError prints an error message.
func (p *PlainPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(p.opt.writer(), "error: "+format+"\n", args...)
}

// PrintSummary prints the counts gathered over the run.
func (p *PlainPrinter) PrintSummary(s *report.Summary) {
	w := p.opt.writer()

	fmt.Fprintf(w, "\n--- kindof summary ---\n")
	fmt.Fprintf(w, "%d %s | %d %s | %d %s\n",
		len(s.Sources), plural(len(s.Sources), "source", "sources"),
		s.Documents, plural(int(s.Documents), "document", "documents"),
		s.Entries, plural(int(s.Entries), "value", "values"))

	for _, kind := range lang.Kinds() {
		if s.Count(kind) == 0 {
			continue
		}
		fmt.Fprintf(w, "%-10s %d (%.2f%%)\n", kind.String()+":", s.Count(kind), s.Percent(kind))
	}

	fmt.Fprintf(w, "plain objects: %d\n", s.PlainObjects)
	if s.OmittedKeys > 0 {
		fmt.Fprintf(w, "omitted keys:  %d\n", s.OmittedKeys)
	}

	fmt.Fprintf(w, "--------------------------------------\n")
	fmt.Fprintf(w, "run id:     %s\n", s.RunID)
	fmt.Fprintf(w, "started at: %s\n", s.StartTimeFormatted())

	// a run that has not finished has no end time
	if !s.EndTime.IsZero() {
		fmt.Fprintf(w, "ended at:   %s\n", s.EndTimeFormatted())
	}

	fmt.Fprintf(w, "duration:   %s\n", s.Duration().Round(time.Millisecond))
}

// Done satisfies the printer interface; there is nothing to release.
func (p *PlainPrinter) Done() error {
	return nil
}

// entryLine renders an entry as "[timestamp ]source path kind[ (plain)][ = preview]".
func entryLine(e *report.Entry, opt *options) string {
	var b strings.Builder

	if opt.ShowTimestamp {
		b.WriteString(e.TimestampFormatted())
		b.WriteByte(' ')
	}

	fmt.Fprintf(&b, "%s %s %s", e.Source, e.Path, e.Kind)

	if e.Plain {
		b.WriteString(" (plain)")
	}

	if opt.ShowPreview && e.Preview != "" {
		b.WriteString(" = ")
		b.WriteString(e.Preview)
	}

	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
