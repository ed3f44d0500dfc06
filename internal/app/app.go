package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/pouriyajamshidi/kindof"
	"github.com/pouriyajamshidi/kindof/decode"
	"golang.org/x/term"
)

// Run executes the kindof application and returns an exit code
func Run() int {
	defaults, err := LoadDefaults()
	if err != nil {
		return handleError(err, nil)
	}

	config, err := ProcessUserInput(os.Args[1:], defaults)
	if err != nil {
		return handleError(err, nil)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		config.PrinterConfig.NoColor = true
	}

	runID := uuid.NewString()
	config.PrinterConfig.RunID = runID

	printer, err := kindof.NewPrinter(config.PrinterConfig)
	if err != nil {
		return handleError(err, nil)
	}

	inspector := kindof.NewInspector(
		kindof.WithPrinter(printer),
		kindof.WithExclusions(config.Exclusions),
		kindof.WithMembers(config.Members),
		kindof.WithRunID(runID),
	)

	ctx := setupSignalHandler(context.Background())

	runErr := inspectSources(ctx, inspector, printer, config, os.Stdin)
	printer.PrintSummary(inspector.Finish())

	code := handleError(runErr, printer)

	if err := printer.Done(); err != nil {
		printError(err, nil)
		return 1
	}

	return code
}

// inspectSources inspects every configured file. A file that cannot be read
// or decoded is reported and skipped; the run fails once all files are done.
func inspectSources(ctx context.Context, inspector *kindof.Inspector, printer kindof.Printer, config Config, stdin io.Reader) error {
	var failed int

	for _, path := range config.Files {
		err := inspectSource(ctx, inspector, path, config.FormatFor(path), stdin)
		if err == nil {
			continue
		}

		if errors.Is(err, context.Canceled) {
			return err
		}

		printer.PrintError("%v", err)
		failed++
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources could not be inspected", failed, len(config.Files))
	}

	return nil
}

func inspectSource(ctx context.Context, inspector *kindof.Inspector, path string, format decode.Format, stdin io.Reader) error {
	name, r, closeFn, err := openSource(path, stdin)
	if err != nil {
		return err
	}
	defer closeFn()

	docs, err := decode.Decode(r, format)
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}

	return inspector.Inspect(ctx, name, docs)
}

func openSource(path string, stdin io.Reader) (string, io.Reader, func(), error) {
	if path == stdinName {
		return "stdin", stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", nil, nil, fmt.Errorf("open source: %w", err)
	}

	return path, f, func() { f.Close() }, nil
}

func setupSignalHandler(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

func handleError(err error, printer kindof.Printer) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, ErrUsageRequested) {
		if err != ErrUsageRequested {
			printError(err, nil)
		}
		PrintUsage()
		return 1
	}

	if errors.Is(err, ErrVersionRequested) {
		PrintVersion()
		return 0
	}

	if errors.Is(err, ErrUpdateCheckRequested) {
		msg, checkErr := CheckForUpdates(context.Background())
		if checkErr != nil {
			printError(checkErr, printer)
			return 1
		}
		fmt.Println(msg)
		return 0
	}

	printError(err, printer)
	return 1
}

func printError(err error, printer kindof.Printer) {
	if printer != nil {
		printer.PrintError("%v", err)
		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
