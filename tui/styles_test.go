// ABOUTME: Tests for lipgloss style definitions and the StyleForCell helper.
// ABOUTME: Validates the cell-style mapping and that every exported style renders text.
package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStyleForCell(t *testing.T) {
	tests := []struct {
		name         string
		isCursor     bool
		tableFocused bool
		wantSame     lipgloss.Style
	}{
		{"plain", false, false, CellStyle},
		{"plain focused table", false, true, CellStyle},
		{"cursor unfocused", true, false, CursorCellStyle},
		{"cursor focused", true, true, ActiveCellStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StyleForCell(tt.isCursor, tt.tableFocused)
			testStr := "16px"
			gotRendered := got.Render(testStr)
			wantRendered := tt.wantSame.Render(testStr)
			if gotRendered != wantRendered {
				t.Errorf("StyleForCell(%v, %v).Render(%q) = %q, want %q",
					tt.isCursor, tt.tableFocused, testStr, gotRendered, wantRendered)
			}
		})
	}
}

func TestStylesRenderContent(t *testing.T) {
	styles := map[string]lipgloss.Style{
		"BorderStyle":        BorderStyle,
		"FocusedBorderStyle": FocusedBorderStyle,
		"TitleStyle":         TitleStyle,
		"SubtitleStyle":      SubtitleStyle,
		"UnitStyle":          UnitStyle,
		"LabelStyle":         LabelStyle,
		"ValueStyle":         ValueStyle,
		"HintStyle":          HintStyle,
		"CopiedStyle":        CopiedStyle,
		"CellStyle":          CellStyle,
		"CursorCellStyle":    CursorCellStyle,
		"ActiveCellStyle":    ActiveCellStyle,
		"RemCellStyle":       RemCellStyle,
		"StatusBarStyle":     StatusBarStyle,
	}
	for name, s := range styles {
		if got := s.Render("abc"); !strings.Contains(got, "abc") {
			t.Errorf("%s.Render(%q) = %q, missing content", name, "abc", got)
		}
	}
}
