// ABOUTME: Implementations of the pxrem commands: the terminal UI, the web server, one-shot
// ABOUTME: conversion, the reference table printer, and the MCP stdio server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/2389-research/pxrem/clipboard"
	"github.com/2389-research/pxrem/config"
	"github.com/2389-research/pxrem/convert"
	"github.com/2389-research/pxrem/mcpserver"
	"github.com/2389-research/pxrem/tui"
	"github.com/2389-research/pxrem/web"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// errInvalidQuantity is returned by parseQuantity for input that is not a
// number with an optional px or rem suffix.
var errInvalidQuantity = errors.New("expected a number with an optional px or rem suffix")

// isTerminal reports whether stdin and stdout are both attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runTUI starts the interactive terminal UI.
func runTUI(ctx context.Context, settings *config.Config, logger *zap.Logger, stderr io.Writer) int {
	if !isTerminal() {
		fmt.Fprintln(stderr, "error: the terminal UI needs an interactive terminal")
		fmt.Fprintln(stderr, "Try 'pxrem convert <value>' or 'pxrem table' instead.")
		return 1
	}

	w, err := clipboard.NewWriter(settings.Clipboard, os.Stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	model := tui.NewAppModel(ctx, tui.Options{
		BaseSize:   settings.BaseSize,
		Writer:     w,
		CopyWindow: settings.CopyWindow,
		Logger:     logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runServe starts the local web UI.
func runServe(ctx context.Context, settings *config.Config, args []string, logger *zap.Logger, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", settings.Addr, "Listen address (loopback only)")
	if err := fs.Parse(args); err != nil {
		return exitForFlagError(err)
	}

	settings.Addr = *addr
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	srv, err := web.NewServer(web.ServerConfig{
		Addr:       settings.Addr,
		BaseSize:   settings.BaseSize,
		CopyWindow: settings.CopyWindow,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stderr, "pxrem web UI on http://%s\n", settings.Addr)
	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runConvert converts one value and prints the result, e.g. "24px" -> "1.5rem".
func runConvert(ctx context.Context, settings *config.Config, args []string, logger *zap.Logger, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	doCopy := fs.Bool("copy", false, "Copy the result to the clipboard")
	if err := fs.Parse(args); err != nil {
		return exitForFlagError(err)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: pxrem convert [-copy] <value>[px|rem]")
		return 2
	}

	field, raw, err := parseQuantity(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "error: %q: %v\n", fs.Arg(0), err)
		return 2
	}

	st := convert.New(settings.BaseSize)
	target := convert.FieldRem
	if field == convert.FieldPx {
		st = convert.Reduce(st, convert.Event{Kind: convert.EventPxEdited, Value: raw})
	} else {
		st = convert.Reduce(st, convert.Event{Kind: convert.EventRemEdited, Value: raw})
		target = convert.FieldPx
	}
	text, _ := st.CopyText(target)
	fmt.Fprintln(stdout, text)

	if *doCopy {
		w, err := clipboard.NewWriter(settings.Clipboard, os.Stderr)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 2
		}
		helper := clipboard.NewHelper(w,
			clipboard.WithLogger(logger),
			clipboard.WithWindow(settings.CopyWindow),
		)
		defer helper.Close()
		if helper.Copy(ctx, target, text) {
			fmt.Fprintln(stderr, "copied to clipboard")
		}
	}
	return 0
}

// parseQuantity splits a command-line value into its unit and numeric text.
// Values without a unit are pixels.
func parseQuantity(arg string) (convert.Field, string, error) {
	s := strings.ToLower(strings.TrimSpace(arg))
	field := convert.FieldPx
	switch {
	case strings.HasSuffix(s, "rem"):
		field = convert.FieldRem
		s = strings.TrimSuffix(s, "rem")
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	if _, ok := convert.ParseValue(s); !ok {
		return convert.FieldNone, "", errInvalidQuantity
	}
	return field, strings.TrimSpace(s), nil
}

// runTable prints the reference table in the requested format.
func runTable(settings *config.Config, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatName := fs.String("format", "text", "Output format: text, json, yaml, css")
	if err := fs.Parse(args); err != nil {
		return exitForFlagError(err)
	}

	format, err := convert.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	rows := convert.GenerateTable(settings.BaseSize)
	if err := convert.WriteTable(stdout, rows, settings.BaseSize, format); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runMCP serves the conversion tools over stdio.
func runMCP(ctx context.Context, settings *config.Config, logger *zap.Logger, stderr io.Writer) int {
	err := mcpserver.Run(ctx, mcpserver.Options{
		Name:     "pxrem",
		Version:  version,
		BaseSize: settings.BaseSize,
		Logger:   logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// exitForFlagError maps a command flag parse failure to an exit code.
func exitForFlagError(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}
