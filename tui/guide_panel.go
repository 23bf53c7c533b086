// ABOUTME: Scrollable guide panel rendering the embedded rem/px markdown with glamour inside a viewport.
// ABOUTME: Re-renders only when the width changes; falls back to the raw markdown if rendering fails.
package tui

import (
	"github.com/2389-research/pxrem/guide"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// GuidePanelModel shows the "Understanding REM vs PX" guide.
type GuidePanelModel struct {
	viewport      viewport.Model
	renderedWidth int
}

// NewGuidePanelModel creates an empty guide panel; content is rendered on the
// first SetSize.
func NewGuidePanelModel() GuidePanelModel {
	return GuidePanelModel{viewport: viewport.New(80, 20)}
}

// SetSize resizes the viewport and re-renders the markdown for the new width.
func (m *GuidePanelModel) SetSize(w, h int) {
	vpWidth := w - 2
	vpHeight := h - 2
	if vpWidth < 20 {
		vpWidth = 20
	}
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = vpWidth
	m.viewport.Height = vpHeight
	if vpWidth != m.renderedWidth {
		m.viewport.SetContent(renderGuide(vpWidth))
		m.renderedWidth = vpWidth
	}
}

// renderGuide renders the guide markdown wrapped to width.
func renderGuide(width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		return guide.Markdown()
	}
	out, err := r.Render(guide.Markdown())
	if err != nil {
		return guide.Markdown()
	}
	return out
}

// Update forwards scroll keys to the viewport.
func (m GuidePanelModel) Update(msg tea.Msg) (GuidePanelModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the guide inside a border.
func (m GuidePanelModel) View() string {
	return FocusedBorderStyle.Render(m.viewport.View())
}
