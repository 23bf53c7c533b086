// ABOUTME: Bridge connecting clipboard writes and copied-flag timers to the Bubble Tea message loop.
// ABOUTME: Provides tea.Cmd factories that run the write off the event loop and schedule the flag reset.
package tui

import (
	"context"
	"time"

	"github.com/2389-research/pxrem/clipboard"
	"github.com/2389-research/pxrem/convert"
	tea "github.com/charmbracelet/bubbletea"
)

// CopyCmd returns a tea.Cmd that writes text to the clipboard and reports the
// outcome as a CopyResultMsg. The context allows cancellation when the user
// quits the TUI.
func CopyCmd(ctx context.Context, w clipboard.Writer, field convert.Field, text string) tea.Cmd {
	return func() tea.Msg {
		err := w.WriteText(ctx, text)
		return CopyResultMsg{Field: field, Text: text, Err: err}
	}
}

// ExpireCopyCmd returns a tea.Cmd that delivers CopyExpiredMsg for field and
// tok once window has elapsed.
func ExpireCopyCmd(window time.Duration, field convert.Field, tok clipboard.Token) tea.Cmd {
	return tea.Tick(window, func(time.Time) tea.Msg {
		return CopyExpiredMsg{Field: field, Token: tok}
	})
}
