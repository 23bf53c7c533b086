// ABOUTME: Implements a single-line status bar for the bottom of the TUI showing the active base size.
// ABOUTME: Displays the rem/px ratio, which field drove the last conversion, and key hints.
package tui

import (
	"fmt"

	"github.com/2389-research/pxrem/convert"
	"github.com/charmbracelet/lipgloss"
)

// StatusBarModel displays converter status in a single line.
type StatusBarModel struct {
	base   float64
	source convert.Field
	width  int
}

// NewStatusBarModel creates a StatusBarModel for the given base size.
func NewStatusBarModel(base float64) StatusBarModel {
	return StatusBarModel{base: base}
}

// SetBase updates the displayed base size.
func (m *StatusBarModel) SetBase(base float64) {
	m.base = base
}

// SetSource records which field the user edited last.
func (m *StatusBarModel) SetSource(f convert.Field) {
	m.source = f
}

// SetWidth sets the bar width for rendering.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// View renders the status bar as a single styled line.
func (m StatusBarModel) View() string {
	source := "-"
	if m.source != convert.FieldNone {
		source = m.source.String()
	}

	base := convert.FormatNumber(m.base)
	content := fmt.Sprintf("1rem = %spx | last edit: %s | tab focus · enter copy/select · ctrl+s settings · ctrl+g guide · esc quit",
		base, source)

	style := StatusBarStyle.Width(m.width)

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, style.Render(content))
}
