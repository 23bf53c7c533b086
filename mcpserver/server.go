// ABOUTME: MCP tool server exposing px/rem conversion and the reference table to agents over stdio.
// ABOUTME: Tools share the converter core; a missing base falls back to the configured default.
package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/2389-research/pxrem/convert"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// ErrInvalidBase is returned as a tool error when a caller passes base <= 0.
var ErrInvalidBase = errors.New("base must be a positive number")

// PxToRemInput is the argument object of the px_to_rem tool.
type PxToRemInput struct {
	Px   float64  `json:"px" jsonschema:"length in CSS pixels"`
	Base *float64 `json:"base,omitempty" jsonschema:"root font size in pixels; defaults to the server's base size"`
}

// RemToPxInput is the argument object of the rem_to_px tool.
type RemToPxInput struct {
	Rem  float64  `json:"rem" jsonschema:"length in rem"`
	Base *float64 `json:"base,omitempty" jsonschema:"root font size in pixels; defaults to the server's base size"`
}

// TableInput is the argument object of the conversion_table tool.
type TableInput struct {
	Base *float64 `json:"base,omitempty" jsonschema:"root font size in pixels; defaults to the server's base size"`
}

// Conversion is the result of a single conversion. Text is ready to paste
// into a stylesheet.
type Conversion struct {
	Px   float64 `json:"px"`
	Rem  float64 `json:"rem"`
	Base float64 `json:"base"`
	Text string  `json:"text"`
}

// TableRow is one reference table entry with its display label.
type TableRow struct {
	Px    float64 `json:"px"`
	Rem   float64 `json:"rem"`
	Label string  `json:"label"`
}

// Table is the conversion_table result.
type Table struct {
	Base float64    `json:"base"`
	Rows []TableRow `json:"rows"`
}

// Options configures New.
type Options struct {
	Name     string
	Version  string
	BaseSize float64
	Logger   *zap.Logger
}

// tools holds the handler state shared by every tool.
type tools struct {
	base   float64
	logger *zap.Logger
}

// New builds an MCP server with the conversion tools registered.
func New(opts Options) *mcp.Server {
	if opts.Name == "" {
		opts.Name = "pxrem"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if !convert.ValidBase(opts.BaseSize) {
		opts.BaseSize = convert.DefaultBaseSize
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	t := &tools{base: opts.BaseSize, logger: opts.Logger}
	server := mcp.NewServer(&mcp.Implementation{Name: opts.Name, Version: opts.Version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "px_to_rem",
		Description: "Convert a CSS pixel length to rem (rem = px / base).",
	}, t.pxToRem)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "rem_to_px",
		Description: "Convert a rem length to CSS pixels (px = rem * base).",
	}, t.remToPx)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "conversion_table",
		Description: "List common pixel sizes with their rem equivalents for a base size.",
	}, t.table)

	return server
}

// Run serves the tools on stdin/stdout until ctx is cancelled or the client
// disconnects.
func Run(ctx context.Context, opts Options) error {
	if err := New(opts).Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

func (t *tools) resolveBase(base *float64) (float64, error) {
	if base == nil {
		return t.base, nil
	}
	if !convert.ValidBase(*base) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBase, *base)
	}
	return *base, nil
}

func (t *tools) pxToRem(_ context.Context, _ *mcp.CallToolRequest, in PxToRemInput) (*mcp.CallToolResult, Conversion, error) {
	base, err := t.resolveBase(in.Base)
	if err != nil {
		return nil, Conversion{}, err
	}
	rem := convert.PxToRem(in.Px, base)
	t.logger.Debug("px_to_rem", zap.Float64("px", in.Px), zap.Float64("base", base))
	return nil, Conversion{Px: in.Px, Rem: rem, Base: base, Text: convert.FormatNumber(rem) + "rem"}, nil
}

func (t *tools) remToPx(_ context.Context, _ *mcp.CallToolRequest, in RemToPxInput) (*mcp.CallToolResult, Conversion, error) {
	base, err := t.resolveBase(in.Base)
	if err != nil {
		return nil, Conversion{}, err
	}
	px := convert.RemToPx(in.Rem, base)
	t.logger.Debug("rem_to_px", zap.Float64("rem", in.Rem), zap.Float64("base", base))
	return nil, Conversion{Px: px, Rem: in.Rem, Base: base, Text: convert.FormatNumber(px) + "px"}, nil
}

func (t *tools) table(_ context.Context, _ *mcp.CallToolRequest, in TableInput) (*mcp.CallToolResult, Table, error) {
	base, err := t.resolveBase(in.Base)
	if err != nil {
		return nil, Table{}, err
	}
	rows := convert.GenerateTable(base)
	out := Table{Base: base, Rows: make([]TableRow, 0, len(rows))}
	for _, r := range rows {
		out.Rows = append(out.Rows, TableRow{Px: r.Px, Rem: r.Rem, Label: r.RemLabel()})
	}
	return nil, out, nil
}
