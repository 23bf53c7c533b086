// ABOUTME: Clipboard writers: the native system clipboard, OSC 52 terminal sequences, and an ordered fallback chain.
// ABOUTME: NewWriter selects a writer from the configured mode name ("auto", "system", "osc52", "none").
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

var (
	// ErrUnsupported is returned when no native clipboard utility is available.
	ErrUnsupported = errors.New("system clipboard unsupported")
	// ErrDisabled is returned by the writer for mode "none".
	ErrDisabled = errors.New("clipboard disabled")
	// ErrUnknownMode is returned by NewWriter for an unrecognized mode name.
	ErrUnknownMode = errors.New("unknown clipboard mode")
)

// Modes accepted by NewWriter.
const (
	ModeAuto   = "auto"
	ModeSystem = "system"
	ModeOSC52  = "osc52"
	ModeNone   = "none"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(ctx context.Context, text string) error

// WriteText calls f.
func (f WriterFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// SystemWriter writes to the native clipboard (pbcopy, xclip/xsel/wl-copy,
// or the Windows clipboard API).
type SystemWriter struct{}

// WriteText implements Writer.
func (SystemWriter) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// OSC52Writer asks the terminal emulator to set the clipboard by writing an
// OSC 52 escape sequence to Out. This works over SSH where no native
// clipboard exists on the host.
type OSC52Writer struct {
	Out io.Writer
	// Tmux wraps the sequence in a tmux passthrough.
	Tmux bool
}

// WriteText implements Writer.
func (w OSC52Writer) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	seq := osc52.New(text)
	if w.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(w.Out); err != nil {
		return fmt.Errorf("writing osc52 sequence: %w", err)
	}
	return nil
}

// FallbackWriter tries each writer in order and stops at the first success.
type FallbackWriter []Writer

// WriteText implements Writer. When every writer fails the errors are joined.
func (fw FallbackWriter) WriteText(ctx context.Context, text string) error {
	var errs []error
	for _, w := range fw {
		err := w.WriteText(ctx, text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == 0 {
		return ErrDisabled
	}
	return errors.Join(errs...)
}

// NewWriter builds the writer for mode. out receives OSC 52 sequences and is
// normally the terminal (os.Stdout).
func NewWriter(mode string, out io.Writer) (Writer, error) {
	osc := OSC52Writer{Out: out, Tmux: os.Getenv("TMUX") != ""}

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeAuto:
		return FallbackWriter{SystemWriter{}, osc}, nil
	case ModeSystem:
		return SystemWriter{}, nil
	case ModeOSC52:
		return osc, nil
	case ModeNone:
		return WriterFunc(func(context.Context, string) error { return ErrDisabled }), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// ValidMode reports whether NewWriter accepts mode.
func ValidMode(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeAuto, ModeSystem, ModeOSC52, ModeNone:
		return true
	default:
		return false
	}
}
