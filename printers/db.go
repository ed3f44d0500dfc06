package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/pouriyajamshidi/kindof/lang"
	"github.com/pouriyajamshidi/kindof/option"
	"github.com/pouriyajamshidi/kindof/report"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const (
	entriesTableSchema = `CREATE TABLE IF NOT EXISTS entries (
    id INTEGER PRIMARY KEY,
    run_id TEXT NOT NULL,
    timestamp DATETIME,
    source TEXT,
    path TEXT,
    kind TEXT NOT NULL,
    plain INTEGER, -- 1 if the value is a plain object
    preview TEXT
	);`

	summariesTableSchema = `CREATE TABLE IF NOT EXISTS summaries (
    id INTEGER PRIMARY KEY,
    run_id TEXT NOT NULL,
    sources TEXT,
    documents INTEGER,
    entries INTEGER,
    plain_objects INTEGER,
    omitted_keys INTEGER,

    undefined_count INTEGER,
    null_count INTEGER,
    boolean_count INTEGER,
    number_count INTEGER,
    string_count INTEGER,
    symbol_count INTEGER,
    function_count INTEGER,
    object_count INTEGER,

    start_time DATETIME,
    end_time DATETIME,
    total_duration TEXT
	);`

	entrySaveSchema = `INSERT INTO entries (
	run_id,
	timestamp,
	source,
	path,
	kind,
	plain,
	preview) VALUES (?, ?, ?, ?, ?, ?, ?);`

	summarySaveSchema = `INSERT INTO summaries (
	run_id,
	sources,
	documents,
	entries,
	plain_objects,
	omitted_keys,
	undefined_count,
	null_count,
	boolean_count,
	number_count,
	string_count,
	symbol_count,
	function_count,
	object_count,
	start_time,
	end_time,
	total_duration) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
)

// DatabasePrinter stores entries and summaries in a SQLite database.
type DatabasePrinter struct {
	Conn   *sqlite.Conn
	DbPath string
	RunID  string
	opt    options
}

type DatabasePrinterOption = option.Option[DatabasePrinter]

func (p *DatabasePrinter) options() *options {
	return &p.opt
}

// NewDatabasePrinter opens (or creates) the database at dbPath and makes sure
// both tables exist. Every row written is tagged with runID.
func NewDatabasePrinter(dbPath, runID string, opts ...DatabasePrinterOption) (*DatabasePrinter, error) {
	filename := addDbExtension(dbPath)

	conn, err := sqlite.OpenConn(filename, sqlite.OpenCreate, sqlite.OpenReadWrite)
	if err != nil {
		return nil, fmt.Errorf("create database %q: %w", filename, err)
	}

	for _, schema := range []string{entriesTableSchema, summariesTableSchema} {
		if err := sqlitex.Execute(conn, schema, &sqlitex.ExecOptions{}); err != nil {
			conn.Close()
			return nil, fmt.Errorf("create table: %w", err)
		}
	}

	p := &DatabasePrinter{Conn: conn, DbPath: filename, RunID: runID}
	option.Apply(p, opts...)

	return p, nil
}

func addDbExtension(filename string) string {
	if strings.HasSuffix(filename, ".db") {
		return filename
	}

	return filename + ".db"
}

// PrintStart tells the user where results are being saved.
func (p *DatabasePrinter) PrintStart(source string) {
	fmt.Fprintf(p.opt.writer(), "Inspecting %s - saving results to: %s\n", source, p.DbPath)
}

// PrintEntry saves an entry row.
func (p *DatabasePrinter) PrintEntry(e *report.Entry) {
	var timestamp, preview string

	if p.opt.ShowTimestamp {
		timestamp = e.TimestampFormatted()
	}

	if p.opt.ShowPreview {
		preview = e.Preview
	}

	err := sqlitex.Execute(p.Conn, entrySaveSchema, &sqlitex.ExecOptions{
		Args: []any{p.RunID, timestamp, e.Source, e.Path, e.Kind.String(), e.Plain, preview},
	})
	if err != nil {
		p.PrintError("Error while writing entry to the database %q: %s", p.DbPath, err)
	}
}

func (p *DatabasePrinter) saveSummary(s *report.Summary) error {
	var endTime string
	if !s.EndTime.IsZero() {
		endTime = s.EndTimeFormatted()
	}

	args := []any{
		p.RunID,
		strings.Join(s.Sources, ";"),
		s.Documents,
		s.Entries,
		s.PlainObjects,
		s.OmittedKeys,
	}

	for _, count := range kindCounts(s) {
		args = append(args, count)
	}

	args = append(args,
		s.StartTimeFormatted(),
		endTime,
		s.Duration().String(),
	)

	return sqlitex.Execute(p.Conn, summarySaveSchema, &sqlitex.ExecOptions{Args: args})
}

// kindCounts returns the per-kind counts in lang.Kinds order, matching the
// *_count columns.
func kindCounts(s *report.Summary) []uint {
	kinds := lang.Kinds()
	counts := make([]uint, 0, len(kinds))

	for _, kind := range kinds {
		counts = append(counts, s.Count(kind))
	}

	return counts
}

// PrintSummary saves the run summary.
func (p *DatabasePrinter) PrintSummary(s *report.Summary) {
	if err := p.saveSummary(s); err != nil {
		p.PrintError("Error while writing the summary to the database %q: %s", p.DbPath, err)
		return
	}

	fmt.Fprintf(p.opt.writer(), "Summary of run %s has been saved to %q\n", p.RunID, p.DbPath)
}

// PrintHint prints a non-fatal remark to the terminal; hints are not saved.
func (p *DatabasePrinter) PrintHint(format string, args ...any) {
	fmt.Fprintf(p.opt.writer(), "hint: "+format+"\n", args...)
}

// PrintError prints an error message to stderr.
func (p *DatabasePrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Done closes the database connection.
func (p *DatabasePrinter) Done() error {
	if p.Conn == nil {
		return nil
	}

	if err := p.Conn.Close(); err != nil {
		return fmt.Errorf("close database %q: %w", p.DbPath, err)
	}

	p.Conn = nil

	return nil
}
