// Package report holds the per-value entries and the run summary produced
// while inspecting documents.
package report

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pouriyajamshidi/kindof/lang"
)

// RootPath is the path of a document's top-level value.
const RootPath = "$"

// maxPreviewRunes bounds the length of a rendered preview.
const maxPreviewRunes = 40

// Entry is the classification of one value.
type Entry struct {
	Source    string
	Path      string
	Kind      lang.Kind
	Plain     bool
	Preview   string
	Timestamp time.Time
}

// NewEntry classifies value and returns the resulting entry.
func NewEntry(source, path string, value any) Entry {
	return Entry{
		Source:    source,
		Path:      path,
		Kind:      lang.KindOf(value),
		Plain:     lang.IsPlainObject(value),
		Preview:   Preview(value),
		Timestamp: time.Now(),
	}
}

// TimestampFormatted returns the entry time in the format used by every printer.
func (e *Entry) TimestampFormatted() string {
	return e.Timestamp.Format(time.DateTime)
}

// IsRoot reports whether the entry describes a whole document.
func (e *Entry) IsRoot() bool {
	return e.Path == RootPath
}

// MemberPath returns the path of a member of the document root.
func MemberPath(key string) string {
	return RootPath + "." + key
}

// ElementPath returns the path of an element of a root array.
func ElementPath(index int) string {
	return RootPath + "[" + strconv.Itoa(index) + "]"
}

// Summary accumulates counts over a whole run.
type Summary struct {
	RunID        string
	Sources      []string
	Documents    uint
	Entries      uint
	PlainObjects uint
	OmittedKeys  uint
	Kinds        map[lang.Kind]uint

	StartTime time.Time
	EndTime   time.Time
}

// NewSummary returns an empty summary with a fresh run id.
func NewSummary() *Summary {
	return &Summary{
		RunID:     uuid.NewString(),
		Kinds:     make(map[lang.Kind]uint),
		StartTime: time.Now(),
	}
}

// Add counts an entry.
func (s *Summary) Add(e Entry) {
	if s.Kinds == nil {
		s.Kinds = make(map[lang.Kind]uint)
	}

	s.Entries++
	s.Kinds[e.Kind]++

	if e.Plain {
		s.PlainObjects++
	}

	if e.IsRoot() {
		s.Documents++
	}
}

// AddSource records that a source was read.
func (s *Summary) AddSource(source string) {
	s.Sources = append(s.Sources, source)
}

// Count returns the number of entries of the given kind.
func (s *Summary) Count(kind lang.Kind) uint {
	return s.Kinds[kind]
}

// Percent returns the share of entries of the given kind, from 0 to 100.
func (s *Summary) Percent(kind lang.Kind) float64 {
	if s.Entries == 0 {
		return 0
	}
	return float64(s.Kinds[kind]) / float64(s.Entries) * 100
}

// Duration returns how long the run took, or has taken so far.
func (s *Summary) Duration() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

func (s *Summary) StartTimeFormatted() string {
	return s.StartTime.Format(time.DateTime)
}

func (s *Summary) EndTimeFormatted() string {
	return s.EndTime.Format(time.DateTime)
}

// Preview renders a short description of value.
func Preview(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return truncate(strconv.Quote(v))
	case json.Number:
		return v.String()
	case *lang.Symbol:
		if v == nil {
			return "null"
		}
		return truncate(v.String())
	}

	switch lang.KindOf(value) {
	case lang.KindUndefined:
		return "undefined"
	case lang.KindNull:
		return "null"
	case lang.KindFunction:
		return "func"
	case lang.KindObject:
		return previewObject(value)
	default:
		return truncate(fmt.Sprint(value))
	}
}

func previewObject(value any) string {
	v := reflect.ValueOf(value)

	switch v.Kind() { //nolint:exhaustive
	case reflect.Map:
		return fmt.Sprintf("{%d %s}", v.Len(), plural(v.Len(), "key", "keys"))
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("[%d %s]", v.Len(), plural(v.Len(), "item", "items"))
	case reflect.Pointer:
		return "&" + v.Elem().Type().String()
	default:
		return truncate(fmt.Sprint(value))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxPreviewRunes {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxPreviewRunes-1]) + "…"
}
