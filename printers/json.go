package printers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pouriyajamshidi/kindof/option"
	"github.com/pouriyajamshidi/kindof/report"
)

// JSONEventType is a special type for each method
// in the printer interface so that automatic tools
// can understand what kind of an event they've received.
type JSONEventType string

const (
	startEvent   JSONEventType = "start"   // Event type for `PrintStart` method.
	entryEvent   JSONEventType = "entry"   // Event type for `PrintEntry` method.
	hintEvent    JSONEventType = "hint"    // Event type for `PrintHint` method.
	summaryEvent JSONEventType = "summary" // Event type for `PrintSummary` method.
	errorEvent   JSONEventType = "error"   // Event type for `PrintError` method.
)

// JSONData contains all possible fields for JSON output.
// Because one event usually contains only a subset of fields,
// other fields will be omitted in the output.
type JSONData struct {
	Type      JSONEventType `json:"type"`
	Message   string        `json:"message"`
	Timestamp string        `json:"timestamp,omitempty"`
	Source    string        `json:"source,omitempty"`
	Path      string        `json:"path,omitempty"`
	Kind      string        `json:"kind,omitempty"`
	// Plain is a pointer so that plain=false is still printed on entries
	// while being omitted from every other event.
	Plain   *bool  `json:"plain,omitempty"`
	Preview string `json:"preview,omitempty"`

	RunID          string          `json:"runId,omitempty"`
	Sources        []string        `json:"sources,omitempty"`
	Documents      uint            `json:"documents,omitempty"`
	Entries        uint            `json:"entries,omitempty"`
	PlainObjects   uint            `json:"plainObjects,omitempty"`
	OmittedKeys    uint            `json:"omittedKeys,omitempty"`
	Kinds          map[string]uint `json:"kinds,omitempty"`
	StartTimestamp string          `json:"startTimestamp,omitempty"`
	EndTimestamp   string          `json:"endTimestamp,omitempty"`
	Duration       float64         `json:"duration,omitempty"` // Duration of the run in seconds.
}

// JSONPrinter prints one JSON object per event.
type JSONPrinter struct {
	encoder *json.Encoder
	pretty  bool
	opt     options
}

type JSONPrinterOption = option.Option[JSONPrinter]

func (p *JSONPrinter) options() *options {
	return &p.opt
}

// WithPrettyJSON indents the JSON output.
func WithPrettyJSON() JSONPrinterOption {
	return func(p *JSONPrinter) {
		p.pretty = true
	}
}

// NewJSONPrinter creates a new JSONPrinter instance.
func NewJSONPrinter(opts ...JSONPrinterOption) *JSONPrinter {
	p := &JSONPrinter{}
	option.Apply(p, opts...)

	p.encoder = json.NewEncoder(p.opt.writer())
	if p.pretty {
		p.encoder.SetIndent("", "\t")
	}

	return p
}

func (p *JSONPrinter) encode(data JSONData) {
	// a failed write to stdout leaves nothing useful to report to
	_ = p.encoder.Encode(data)
}

// PrintStart prints the name of the source about to be inspected.
func (p *JSONPrinter) PrintStart(source string) {
	p.encode(JSONData{
		Type:    startEvent,
		Message: fmt.Sprintf("Inspecting %s", source),
		Source:  source,
	})
}

// PrintEntry prints the classification of a single value.
func (p *JSONPrinter) PrintEntry(e *report.Entry) {
	plain := e.Plain

	data := JSONData{
		Type:    entryEvent,
		Message: fmt.Sprintf("%s %s %s", e.Source, e.Path, e.Kind),
		Source:  e.Source,
		Path:    e.Path,
		Kind:    e.Kind.String(),
		Plain:   &plain,
	}

	if p.opt.ShowTimestamp {
		data.Timestamp = e.TimestampFormatted()
	}

	if p.opt.ShowPreview {
		data.Preview = e.Preview
	}

	p.encode(data)
}

// PrintHint prints a non-fatal remark.
func (p *JSONPrinter) PrintHint(format string, args ...any) {
	p.encode(JSONData{
		Type:    hintEvent,
		Message: fmt.Sprintf(format, args...),
	})
}

// PrintError formats and prints an error message in JSON format.
func (p *JSONPrinter) PrintError(format string, args ...any) {
	p.encode(JSONData{
		Type:    errorEvent,
		Message: fmt.Sprintf(format, args...),
	})
}

// PrintSummary prints all gathered counts.
func (p *JSONPrinter) PrintSummary(s *report.Summary) {
	data := JSONData{
		Type: summaryEvent,
		Message: fmt.Sprintf("%d sources | %d documents | %d values",
			len(s.Sources), s.Documents, s.Entries),
		RunID:          s.RunID,
		Sources:        s.Sources,
		Documents:      s.Documents,
		Entries:        s.Entries,
		PlainObjects:   s.PlainObjects,
		OmittedKeys:    s.OmittedKeys,
		StartTimestamp: s.StartTimeFormatted(),
		Duration:       s.Duration().Round(time.Millisecond).Seconds(),
	}

	if len(s.Kinds) > 0 {
		data.Kinds = make(map[string]uint, len(s.Kinds))
		for kind, count := range s.Kinds {
			data.Kinds[kind.String()] = count
		}
	}

	if !s.EndTime.IsZero() {
		data.EndTimestamp = s.EndTimeFormatted()
	}

	p.encode(data)
}

// Done satisfies the printer interface; there is nothing to release.
func (p *JSONPrinter) Done() error {
	return nil
}
