// ABOUTME: Defines lipgloss styles for the converter card, table grid, guide panel, and status bar.
// ABOUTME: Provides StyleForCell to pick the table cell style from cursor and focus state.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("75")).
				Padding(0, 1)

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// Field labels and values
	UnitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Bold(true).
			Width(5)
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Width(16)
	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	HintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Copy acknowledgment
	CopiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

	// Reference table cells
	CellStyle = lipgloss.NewStyle().
			Width(16).
			Padding(0, 1).
			Foreground(lipgloss.Color("252"))
	CursorCellStyle = lipgloss.NewStyle().
			Width(16).
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("237"))
	ActiveCellStyle = lipgloss.NewStyle().
			Width(16).
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("25"))
	RemCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
)

// StyleForCell returns the style for a table cell. The cursor cell is
// highlighted more strongly while the table has focus.
func StyleForCell(isCursor, tableFocused bool) lipgloss.Style {
	switch {
	case isCursor && tableFocused:
		return ActiveCellStyle
	case isCursor:
		return CursorCellStyle
	default:
		return CellStyle
	}
}
