// Package testdata provides shared test helpers and fixtures.
package testdata

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pouriyajamshidi/kindof/lang"
	"github.com/pouriyajamshidi/kindof/printers"
	"github.com/pouriyajamshidi/kindof/report"
)

// Common test fixture values
const (
	TestSource  = "people.json"
	TestSource2 = "orders.yaml"
	TestRunID   = "5f0c7b52-1d7e-4c1b-9a53-2f1f5f1d0c11"
)

var (
	TestTimestamp  = time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)
	TestTimestamp2 = time.Date(2024, 1, 15, 10, 31, 0, 0, time.UTC)
)

// Entry returns an entry with a fixed timestamp.
func Entry(path string, kind lang.Kind, plain bool, preview string) *report.Entry {
	return &report.Entry{
		Source:    TestSource,
		Path:      path,
		Kind:      kind,
		Plain:     plain,
		Preview:   preview,
		Timestamp: TestTimestamp,
	}
}

// Summary returns a finished summary of a single object document
// with two string members and one number member.
func Summary() *report.Summary {
	return &report.Summary{
		RunID:        TestRunID,
		Sources:      []string{TestSource},
		Documents:    1,
		Entries:      4,
		PlainObjects: 1,
		OmittedKeys:  1,
		Kinds: map[lang.Kind]uint{
			lang.KindObject: 1,
			lang.KindString: 2,
			lang.KindNumber: 1,
		},
		StartTime: TestTimestamp,
		EndTime:   TestTimestamp2,
	}
}

// CaptureOutput captures stdout during function execution and returns it as a string.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	w.Close()
	output := <-done
	os.Stdout = oldStdout

	return output
}

// DecodeJSONEvents parses newline-delimited JSON printer events.
func DecodeJSONEvents(t *testing.T, output string) []printers.JSONData {
	t.Helper()

	var events []printers.JSONData

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var data printers.JSONData
		if err := json.Unmarshal([]byte(line), &data); err != nil {
			t.Fatalf("failed to parse JSON line %q: %v", line, err)
		}
		events = append(events, data)
	}

	return events
}
