package kindof

import (
	"fmt"

	"github.com/pouriyajamshidi/kindof/printers"
	"github.com/pouriyajamshidi/kindof/report"
)

var (
	_ Printer = (*printers.ColorPrinter)(nil)
	_ Printer = (*printers.JSONPrinter)(nil)
	_ Printer = (*printers.CSVPrinter)(nil)
	_ Printer = (*printers.DatabasePrinter)(nil)
	_ Printer = (*printers.PlainPrinter)(nil)
)

// Printer defines a set of methods that any printer implementation must provide.
// Printers are responsible for outputting information, but should not modify data or perform calculations.
type Printer interface {
	// PrintStart is called once per source, before any of its entries.
	PrintStart(source string)

	// PrintEntry is called for every classified value.
	PrintEntry(e *report.Entry)

	// PrintHint should print a remark that does not stop the run,
	// such as an omitted key that is not present in a document.
	PrintHint(format string, args ...any)

	// PrintSummary should print the counts gathered over the run.
	//
	// This is called once, after the last source.
	PrintSummary(s *report.Summary)

	// PrintError should print an error message.
	// Printer should also apply \n to the given string, if needed.
	PrintError(format string, args ...any)

	// Done flushes and releases whatever the printer holds.
	Done() error
}

// PrinterConfig holds all configuration options for Printer creation
type PrinterConfig struct {
	OutputJSON    bool
	PrettyJSON    bool
	NoColor       bool
	WithTimestamp bool
	WithPreview   bool
	OutputDBPath  string
	OutputCSVPath string
	RunID         string
}

// NewPrinter creates and returns an appropriate printer based on configuration
func NewPrinter(cfg PrinterConfig) (Printer, error) {
	if cfg.PrettyJSON && !cfg.OutputJSON {
		return nil, fmt.Errorf("--pretty has no effect without the -j flag")
	}

	switch {
	case cfg.OutputJSON:
		var opts []printers.JSONPrinterOption
		if cfg.PrettyJSON {
			opts = append(opts, printers.WithPrettyJSON())
		}
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.JSONPrinter]())
		}
		if cfg.WithPreview {
			opts = append(opts, printers.WithPreview[*printers.JSONPrinter]())
		}
		return printers.NewJSONPrinter(opts...), nil

	case cfg.OutputDBPath != "":
		var opts []printers.DatabasePrinterOption
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.DatabasePrinter]())
		}
		if cfg.WithPreview {
			opts = append(opts, printers.WithPreview[*printers.DatabasePrinter]())
		}
		return printers.NewDatabasePrinter(cfg.OutputDBPath, cfg.RunID, opts...)

	case cfg.OutputCSVPath != "":
		var opts []printers.CSVPrinterOption
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.CSVPrinter]())
		}
		if cfg.WithPreview {
			opts = append(opts, printers.WithPreview[*printers.CSVPrinter]())
		}
		return printers.NewCSVPrinter(cfg.OutputCSVPath, opts...)

	case cfg.NoColor:
		var opts []printers.PlainPrinterOption
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.PlainPrinter]())
		}
		if cfg.WithPreview {
			opts = append(opts, printers.WithPreview[*printers.PlainPrinter]())
		}
		return printers.NewPlainPrinter(opts...), nil

	default:
		var opts []printers.ColorPrinterOption
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.ColorPrinter]())
		}
		if cfg.WithPreview {
			opts = append(opts, printers.WithPreview[*printers.ColorPrinter]())
		}
		return printers.NewColorPrinter(opts...), nil
	}
}
