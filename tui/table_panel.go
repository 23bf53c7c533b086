// ABOUTME: Reference table panel rendering common px values and their rem equivalents as a grid.
// ABOUTME: Tracks a cursor cell; the table is regenerated from the base size on every render.
package tui

import (
	"fmt"
	"strings"

	"github.com/2389-research/pxrem/convert"
	"github.com/charmbracelet/lipgloss"
)

const (
	cellWidth      = 16
	defaultColumns = 6
)

// TablePanelModel renders the reference table and tracks the selected cell.
type TablePanelModel struct {
	cursor int
	width  int
}

// NewTablePanelModel creates a table panel with the cursor on the first row.
func NewTablePanelModel() TablePanelModel {
	return TablePanelModel{}
}

// SetWidth sets the available width; it decides how many columns fit.
func (m *TablePanelModel) SetWidth(w int) {
	m.width = w
}

// Columns returns how many cells fit on one line.
func (m TablePanelModel) Columns() int {
	if m.width <= 0 {
		return defaultColumns
	}
	cols := (m.width - 4) / cellWidth
	if cols < 1 {
		cols = 1
	}
	if cols > len(convert.CommonPxValues) {
		cols = len(convert.CommonPxValues)
	}
	return cols
}

// Cursor returns the index of the highlighted row.
func (m TablePanelModel) Cursor() int {
	return m.cursor
}

// Move shifts the cursor by delta cells, clamped to the table bounds.
func (m *TablePanelModel) Move(delta int) {
	m.cursor += delta
	last := len(convert.CommonPxValues) - 1
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > last {
		m.cursor = last
	}
}

// Selected returns the row under the cursor for base.
func (m TablePanelModel) Selected(base float64) convert.Row {
	return convert.GenerateTable(base)[m.cursor]
}

// View renders the table for base inside a bordered panel.
func (m TablePanelModel) View(base float64, focused bool) string {
	rows := convert.GenerateTable(base)
	cols := m.Columns()

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Conversion Table"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("Common pixel to rem conversions (base: %spx)", convert.FormatNumber(base))))
	b.WriteString("\n\n")

	var line []string
	for i, r := range rows {
		cell := r.PxLabel() + " " + RemCellStyle.Render(r.RemLabel())
		line = append(line, StyleForCell(i == m.cursor, focused).Render(cell))
		if len(line) == cols || i == len(rows)-1 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, line...))
			b.WriteString("\n")
			line = line[:0]
		}
	}
	if focused {
		b.WriteString(HintStyle.Render("arrows move · enter loads the value into the converter"))
	}

	style := BorderStyle
	if focused {
		style = FocusedBorderStyle
	}
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}
