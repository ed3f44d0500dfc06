package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/pouriyajamshidi/kindof"
	"github.com/pouriyajamshidi/kindof/decode"
)

var (
	// ErrUsageRequested indicates usage help was requested
	ErrUsageRequested = errors.New("usage requested")

	// ErrVersionRequested indicates version display was requested
	ErrVersionRequested = errors.New("version requested")

	// ErrUpdateCheckRequested indicates update check was requested
	ErrUpdateCheckRequested = errors.New("update check requested")
)

// stdinName is the file argument that stands for standard input.
const stdinName = "-"

// Config contains all configuration needed to run an inspection.
type Config struct {
	// Files to inspect; stdinName for standard input.
	Files []string

	// Format forces the input format. Empty means per-file detection.
	Format decode.Format

	// Shaping options
	Exclusions []string
	Members    bool

	// Output options
	PrinterConfig kindof.PrinterConfig
}

// FormatFor returns the format path is decoded with.
func (c Config) FormatFor(path string) decode.Format {
	if c.Format != "" {
		return c.Format
	}

	if path == stdinName {
		return decode.FormatJSON
	}

	return decode.FormatFromPath(path)
}

type options struct {
	format        *string
	omit          *string
	roots         *bool
	showTimestamp *bool
	showPreview   *bool
	outputJSON    *bool
	prettyJSON    *bool
	noColor       *bool
	saveToCSV     *string
	saveToDB      *string
	showVer       *bool
	checkUpdates  *bool
}

// newFlagSet declares every flag, using d for the defaults.
func newFlagSet(d Defaults) (*flag.FlagSet, options) {
	fs := flag.NewFlagSet("kindof", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		// no-op, we'll handle usage in app package
	}

	opts := options{
		format: fs.String("f", d.Format,
			"input format: json, ndjson or yaml. By default it is guessed from the file extension."),
		omit: fs.String("omit", strings.Join(d.Omit, ","),
			"comma separated keys to leave out of object documents before inspecting them."),
		roots:         fs.Bool("roots", d.Roots, "only classify whole documents, not their top-level members."),
		showTimestamp: fs.Bool("D", d.Timestamp, "show timestamp for each value in the output."),
		showPreview:   fs.Bool("p", d.Preview, "show a short preview of each value."),
		outputJSON:    fs.Bool("j", false, "output in JSON format."),
		prettyJSON: fs.Bool("pretty",
			false,
			"use indentation when using json output format. No effect without the '-j' flag."),
		noColor: fs.Bool("no-color", d.NoColor, "do not colorize output."),
		saveToCSV: fs.String("csv",
			"",
			"path and file name to store output to a CSV file. The summary will be saved with the same name and `_summary` suffix."),
		saveToDB:     fs.String("db", "", "path and file name to store output to a sqlite3 database."),
		showVer:      fs.Bool("v", false, "show version and exit."),
		checkUpdates: fs.Bool("u", false, "check for updates and exit."),
	}

	return fs, opts
}

// permuteArgs permute args for flag parsing stops just before the first non-flag argument.
// see: https://pkg.go.dev/flag
func permuteArgs(args []string) error {
	var flagArgs []string
	var nonFlagArgs []string

	for i := 0; i < len(args); i++ {
		v := args[i]
		if len(v) < 2 || v[0] != '-' {
			// "-" is standard input, not a flag
			nonFlagArgs = append(nonFlagArgs, v)
			continue
		}

		if v == "--" {
			flagArgs = append(flagArgs, v)
			nonFlagArgs = append(nonFlagArgs, args[i+1:]...)
			break
		}

		optionName := strings.TrimLeft(v, "-")
		switch optionName {
		case "f", "omit", "csv", "db":
			// out of index
			if len(args) <= i+1 {
				return ErrUsageRequested
			}
			// the next flag has come
			optionVal := args[i+1]
			if strings.HasPrefix(optionVal, "-") && optionVal != stdinName {
				return ErrUsageRequested
			}
			flagArgs = append(flagArgs, args[i:i+2]...)
			i++
		default:
			flagArgs = append(flagArgs, v)
		}
	}

	permutedArgs := slices.Concat(flagArgs, nonFlagArgs)

	// replace args in place
	for i := range len(args) {
		args[i] = permutedArgs[i]
	}

	return nil
}

// splitKeys turns "a, b,,c" into [a b c].
func splitKeys(s string) []string {
	var keys []string

	for _, key := range strings.Split(s, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}

// ProcessUserInput parses command-line flags. Returns ErrUsageRequested,
// ErrVersionRequested, or ErrUpdateCheckRequested for special control flow.
func ProcessUserInput(args []string, d Defaults) (Config, error) {
	fs, opts := newFlagSet(d)

	args = slices.Clone(args)
	if err := permuteArgs(args); err != nil {
		return Config{}, err
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, ErrUsageRequested
		}
		return Config{}, fmt.Errorf("%w: %v", ErrUsageRequested, err)
	}

	if *opts.showVer {
		return Config{}, ErrVersionRequested
	}

	if *opts.checkUpdates {
		return Config{}, ErrUpdateCheckRequested
	}

	config := Config{
		Files:      fs.Args(),
		Exclusions: splitKeys(*opts.omit),
		Members:    !*opts.roots,
		PrinterConfig: kindof.PrinterConfig{
			OutputJSON:    *opts.outputJSON,
			PrettyJSON:    *opts.prettyJSON,
			NoColor:       *opts.noColor,
			WithTimestamp: *opts.showTimestamp,
			WithPreview:   *opts.showPreview,
			OutputDBPath:  *opts.saveToDB,
			OutputCSVPath: *opts.saveToCSV,
		},
	}

	if len(config.Files) == 0 {
		config.Files = []string{stdinName}
	}

	if *opts.format != "" {
		format, err := decode.ParseFormat(*opts.format)
		if err != nil {
			return Config{}, fmt.Errorf("parse -f: %w", err)
		}
		config.Format = format
	}

	return config, nil
}
