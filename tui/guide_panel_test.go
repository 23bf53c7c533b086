// ABOUTME: Tests for GuidePanelModel rendering the embedded guide into a viewport.
package tui

import (
	"strings"
	"testing"
)

func TestGuidePanelSetSize(t *testing.T) {
	m := NewGuidePanelModel()
	m.SetSize(80, 30)

	if m.viewport.Width != 78 || m.viewport.Height != 28 {
		t.Errorf("viewport = %dx%d, want 78x28", m.viewport.Width, m.viewport.Height)
	}
	if m.renderedWidth != 78 {
		t.Errorf("renderedWidth = %d, want 78", m.renderedWidth)
	}
}

func TestGuidePanelSetSizeMinimums(t *testing.T) {
	m := NewGuidePanelModel()
	m.SetSize(5, 1)
	if m.viewport.Width != 20 || m.viewport.Height != 3 {
		t.Errorf("viewport = %dx%d, want 20x3", m.viewport.Width, m.viewport.Height)
	}
}

func TestGuidePanelView(t *testing.T) {
	m := NewGuidePanelModel()
	m.SetSize(100, 40)
	if view := m.View(); !strings.Contains(view, "REM") {
		t.Errorf("View() missing guide heading, got %q", view)
	}
}
