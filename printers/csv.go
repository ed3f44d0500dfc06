package printers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pouriyajamshidi/kindof/lang"
	"github.com/pouriyajamshidi/kindof/option"
	"github.com/pouriyajamshidi/kindof/report"
)

const (
	colTimestamp string = "Timestamp"
	colSource    string = "Source"
	colPath      string = "Path"
	colKind      string = "Kind"
	colPlain     string = "Plain"
	colPreview   string = "Preview"
)

const (
	filePermission os.FileMode = 0644
	fileFlag       int         = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
)

// CSVPrinter writes entries and the run summary to two CSV files.
type CSVPrinter struct {
	EntryWriter   *csv.Writer
	SummaryWriter *csv.Writer
	EntryFile     *os.File
	SummaryFile   *os.File
	headerWritten bool
	opt           options
}

type CSVPrinterOption = option.Option[CSVPrinter]

func (p *CSVPrinter) options() *options {
	return &p.opt
}

// NewCSVPrinter creates <filePath>.csv for entries and <filePath>_summary.csv
// for the summary.
func NewCSVPrinter(filePath string, opts ...CSVPrinterOption) (*CSVPrinter, error) {
	entryFilename := addCSVExtension(filePath, false)

	entryFile, err := os.OpenFile(entryFilename, fileFlag, filePermission)
	if err != nil {
		return nil, fmt.Errorf("create entry CSV file %s: %w", entryFilename, err)
	}

	summaryFilename := addCSVExtension(filePath, true)

	summaryFile, err := os.OpenFile(summaryFilename, fileFlag, filePermission)
	if err != nil {
		entryFile.Close()
		return nil, fmt.Errorf("create summary CSV file %s: %w", summaryFilename, err)
	}

	p := &CSVPrinter{
		EntryWriter:   csv.NewWriter(entryFile),
		SummaryWriter: csv.NewWriter(summaryFile),
		EntryFile:     entryFile,
		SummaryFile:   summaryFile,
	}

	option.Apply(p, opts...)

	return p, nil
}

func addCSVExtension(filename string, withSummaryExt bool) string {
	if withSummaryExt {
		// Remove .csv extension if present, then add _summary.csv
		base := strings.TrimSuffix(filename, ".csv")
		return base + "_summary.csv"
	}

	if strings.HasSuffix(filename, ".csv") {
		return filename
	}

	return filename + ".csv"
}

func (p *CSVPrinter) writeEntryHeader() error {
	headers := []string{}

	if p.opt.ShowTimestamp {
		headers = append(headers, colTimestamp)
	}

	headers = append(headers, colSource, colPath, colKind, colPlain)

	if p.opt.ShowPreview {
		headers = append(headers, colPreview)
	}

	if err := p.EntryWriter.Write(headers); err != nil {
		return fmt.Errorf("write entry headers: %w", err)
	}

	p.headerWritten = true
	p.EntryWriter.Flush()

	return p.EntryWriter.Error()
}

// PrintStart writes the entry header once and tells the user where results go.
func (p *CSVPrinter) PrintStart(source string) {
	if !p.headerWritten {
		if err := p.writeEntryHeader(); err != nil {
			p.PrintError("%v", err)
		}
	}

	fmt.Fprintf(p.opt.writer(), "Inspecting %s - saving the results to: %s\n", source, p.EntryFile.Name())
}

// PrintEntry appends an entry row.
func (p *CSVPrinter) PrintEntry(e *report.Entry) {
	if !p.headerWritten {
		if err := p.writeEntryHeader(); err != nil {
			p.PrintError("%v", err)
			return
		}
	}

	record := []string{}

	if p.opt.ShowTimestamp {
		record = append(record, e.TimestampFormatted())
	}

	record = append(record, e.Source, e.Path, e.Kind.String(), strconv.FormatBool(e.Plain))

	if p.opt.ShowPreview {
		record = append(record, e.Preview)
	}

	if err := p.EntryWriter.Write(record); err != nil {
		p.PrintError("write entry: %v", err)
		return
	}

	p.EntryWriter.Flush()
}

// PrintHint prints a non-fatal remark to the terminal; hints are not saved.
func (p *CSVPrinter) PrintHint(format string, args ...any) {
	fmt.Fprintf(p.opt.writer(), "hint: "+format+"\n", args...)
}

// PrintError prints an error message to stderr.
func (p *CSVPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// PrintSummary writes the summary as Metric,Value rows.
func (p *CSVPrinter) PrintSummary(s *report.Summary) {
	rows := [][]string{
		{"Metric", "Value"},
		{"Run ID", s.RunID},
		{"Sources", strings.Join(s.Sources, ";")},
		{"Documents", strconv.FormatUint(uint64(s.Documents), 10)},
		{"Values", strconv.FormatUint(uint64(s.Entries), 10)},
	}

	for _, kind := range lang.Kinds() {
		rows = append(rows, []string{
			"Kind " + kind.String(),
			strconv.FormatUint(uint64(s.Count(kind)), 10),
		})
	}

	rows = append(rows,
		[]string{"Plain objects", strconv.FormatUint(uint64(s.PlainObjects), 10)},
		[]string{"Omitted keys", strconv.FormatUint(uint64(s.OmittedKeys), 10)},
		[]string{"Start time", s.StartTimeFormatted()},
	)

	if !s.EndTime.IsZero() {
		rows = append(rows, []string{"End time", s.EndTimeFormatted()})
	}

	rows = append(rows, []string{"Duration", s.Duration().String()})

	if err := p.SummaryWriter.WriteAll(rows); err != nil {
		p.PrintError("write summary: %v", err)
		return
	}

	fmt.Fprintf(p.opt.writer(), "Summary saved to: %s\n", p.SummaryFile.Name())
}

// Done flushes the buffer of writers and closes the entry and summary files
func (p *CSVPrinter) Done() error {
	var errs []error

	if p.EntryWriter != nil {
		p.EntryWriter.Flush()
		errs = append(errs, p.EntryWriter.Error())
	}

	if p.EntryFile != nil {
		errs = append(errs, p.EntryFile.Close())
	}

	if p.SummaryWriter != nil {
		p.SummaryWriter.Flush()
		errs = append(errs, p.SummaryWriter.Error())
	}

	if p.SummaryFile != nil {
		errs = append(errs, p.SummaryFile.Close())
	}

	return errors.Join(errs...)
}
