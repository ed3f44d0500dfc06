// Package kindof classifies untyped documents into a closed set of runtime
// kinds and reports the result through a Printer.
package kindof

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/pouriyajamshidi/kindof/lang"
	"github.com/pouriyajamshidi/kindof/object"
	"github.com/pouriyajamshidi/kindof/option"
	"github.com/pouriyajamshidi/kindof/printers"
	"github.com/pouriyajamshidi/kindof/report"
)

// maxSuggestionDistance is the largest edit distance at which an existing
// key is offered for a mistyped exclusion.
const maxSuggestionDistance = 2

// Inspector classifies documents and keeps a running summary.
type Inspector struct {
	printer    Printer
	exclusions []string
	members    bool
	summary    *report.Summary
}

type InspectorOption = option.Option[Inspector]

// WithPrinter configures where entries, hints and the summary are printed.
func WithPrinter(printer Printer) InspectorOption {
	return func(in *Inspector) {
		in.printer = printer
	}
}

// WithExclusions configures the keys removed from plain-object documents
// before they are classified.
func WithExclusions(keys []string) InspectorOption {
	return func(in *Inspector) {
		in.exclusions = keys
	}
}

// WithMembers configures whether top-level members are classified
// in addition to the document itself.
func WithMembers(enabled bool) InspectorOption {
	return func(in *Inspector) {
		in.members = enabled
	}
}

// WithRunID overrides the generated run id, so that it can be shared with
// a printer created beforehand.
func WithRunID(id string) InspectorOption {
	return func(in *Inspector) {
		if id != "" {
			in.summary.RunID = id
		}
	}
}

// NewInspector creates an inspector that prints in colour and classifies
// members unless configured otherwise.
func NewInspector(opts ...InspectorOption) *Inspector {
	in := Inspector{
		printer: printers.NewColorPrinter(),
		members: true,
		summary: report.NewSummary(),
	}

	option.Apply(&in, opts...)

	return &in
}

// Summary returns the counts gathered so far.
func (in *Inspector) Summary() *report.Summary {
	return in.summary
}

// Finish stamps the end of the run and returns the summary.
func (in *Inspector) Finish() *report.Summary {
	in.summary.EndTime = time.Now()
	return in.summary
}

// Inspect classifies every document read from source. It stops between
// documents once ctx is done.
func (in *Inspector) Inspect(ctx context.Context, source string, docs []any) error {
	in.summary.AddSource(source)
	in.printer.PrintStart(source)

	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("inspect %s: %w", source, err)
		}

		name := documentName(source, i, len(docs))

		if len(in.exclusions) > 0 && lang.IsPlainObject(doc) {
			doc = in.omit(name, doc)
		}

		in.record(name, report.RootPath, doc)

		if in.members {
			in.inspectMembers(name, doc)
		}
	}

	return nil
}

// documentName tells documents of a multi-document source apart.
func documentName(source string, index, total int) string {
	if total <= 1 {
		return source
	}
	return fmt.Sprintf("%s#%d", source, index+1)
}

func (in *Inspector) record(source, path string, value any) {
	e := report.NewEntry(source, path, value)
	in.summary.Add(e)
	in.printer.PrintEntry(&e)
}

func (in *Inspector) omit(source string, doc any) any {
	keys := object.Keys(doc)

	for _, key := range in.exclusions {
		if slices.Contains(keys, key) {
			continue
		}

		if suggestion := closestKey(key, keys); suggestion != "" {
			in.printer.PrintHint("%s: key %q not found, did you mean %q?", source, key, suggestion)
		} else {
			in.printer.PrintHint("%s: key %q not found", source, key)
		}
	}

	shaped := object.OmitAny(doc, in.exclusions)
	in.summary.OmittedKeys += uint(len(keys) - len(object.Keys(shaped)))

	return shaped
}

// closestKey returns the key nearest to want, or "" when none is close enough.
func closestKey(want string, keys []string) string {
	best, bestDistance := "", maxSuggestionDistance+1

	for _, key := range keys {
		if d := levenshtein.ComputeDistance(want, key); d < bestDistance {
			best, bestDistance = key, d
		}
	}

	return best
}

func (in *Inspector) inspectMembers(source string, doc any) {
	if lang.KindOf(doc) != lang.KindObject {
		return
	}

	v := reflect.ValueOf(doc)
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		for i := range v.Len() {
			in.record(source, report.ElementPath(i), v.Index(i).Interface())
		}
		return
	}

	for _, m := range object.Members(doc) {
		in.record(source, report.MemberPath(m.Key), m.Value)
	}
}
