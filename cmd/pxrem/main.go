// ABOUTME: CLI entrypoint for pxrem with tui, serve, convert, table, and mcp commands.
// ABOUTME: Resolves configuration from file, environment, and flags, then dispatches with signal handling.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/2389-research/pxrem/config"
	"go.uber.org/zap"
)

var version = "dev"

// options holds all CLI configuration parsed from global flags and the
// command word.
type options struct {
	configPath  string
	base        float64
	baseSet     bool
	clipboard   string
	logLevel    string
	showVersion bool
	command     string
	args        []string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("pxrem %s\n", version)
		os.Exit(0)
	}

	// Set up context with signal handling for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
		cancel()
	}()

	code := run(ctx, opts, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// parseFlags parses global flags from args. The first positional argument is
// the command; everything after it belongs to the command.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("pxrem", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/pxrem/config.yaml)")
	fs.Float64Var(&opts.base, "base", 0, "Base font size in px (default: 16)")
	fs.StringVar(&opts.clipboard, "clipboard", "", "Clipboard backend: auto, system, osc52, none")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level: none, debug, info, warn, error")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	fs.Usage = func() {
		printHelp(stderr, version)
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "base" {
			opts.baseSet = true
		}
	})

	if fs.NArg() > 0 {
		opts.command = fs.Arg(0)
		opts.args = fs.Args()[1:]
	}

	return opts, nil
}

// usageError marks failures caused by bad invocation rather than by the
// environment; run maps them to exit code 2.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// loadSettings reads the config file and environment, then applies flag
// overrides on top. Validation runs once, on the merged result.
func loadSettings(opts options) (*config.Config, error) {
	settings, err := config.Read(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.baseSet {
		settings.BaseSize = opts.base
	}
	if opts.clipboard != "" {
		settings.Clipboard = opts.clipboard
	}
	if opts.logLevel != "" {
		settings.Log.Level = opts.logLevel
	}
	if err := settings.Validate(); err != nil {
		return nil, usageError{err}
	}
	return settings, nil
}

// run dispatches to the command named in opts.
// Returns an exit code: 0 for success, 1 for failure, 2 for usage errors.
func run(ctx context.Context, opts options, stdout, stderr io.Writer) int {
	if opts.command == "help" {
		printHelp(stdout, version)
		return 0
	}

	settings, err := loadSettings(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		var ue usageError
		if errors.As(err, &ue) {
			return 2
		}
		return 1
	}

	// The terminal UI owns the screen, so it only logs to a file.
	console := stderr
	if opts.command == "" || opts.command == "tui" {
		console = io.Discard
	}
	logger, closeLog, err := settings.Log.Build(console)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer closeLog()

	logger.Debug("settings loaded",
		zap.String("command", opts.command),
		zap.Float64("base_size", settings.BaseSize),
		zap.String("clipboard", settings.Clipboard),
	)

	switch opts.command {
	case "", "tui":
		return runTUI(ctx, settings, logger, stderr)
	case "serve":
		return runServe(ctx, settings, opts.args, logger, stderr)
	case "convert":
		return runConvert(ctx, settings, opts.args, logger, stdout, stderr)
	case "table":
		return runTable(settings, opts.args, stdout, stderr)
	case "mcp":
		return runMCP(ctx, settings, logger, stderr)
	default:
		fmt.Fprintf(stderr, "error: unknown command %q\n", opts.command)
		fmt.Fprintln(stderr, "Run 'pxrem -help' for usage.")
		return 2
	}
}
