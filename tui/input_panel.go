// ABOUTME: Converter card holding the px, rem, and base size text inputs.
// ABOUTME: Forwards keys to the focused input and mirrors converter state back into the unfocused ones.
package tui

import (
	"strings"

	"github.com/2389-research/pxrem/clipboard"
	"github.com/2389-research/pxrem/convert"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputPanelModel owns the three text inputs of the converter card.
type InputPanelModel struct {
	px    textinput.Model
	rem   textinput.Model
	base  textinput.Model
	width int
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.Width = 20
	return ti
}

// NewInputPanelModel creates the inputs with the base field showing base.
func NewInputPanelModel(base float64) InputPanelModel {
	m := InputPanelModel{
		px:   newInput("Enter px value"),
		rem:  newInput("Enter rem value"),
		base: newInput("16"),
	}
	m.base.CharLimit = 8
	m.base.Width = 8
	m.base.SetValue(convert.FormatNumber(base))
	return m
}

// input returns the text input behind target, or nil for non-input targets.
func (m *InputPanelModel) input(target FocusTarget) *textinput.Model {
	switch target {
	case FocusPx:
		return &m.px
	case FocusRem:
		return &m.rem
	case FocusBase:
		return &m.base
	default:
		return nil
	}
}

// Focus focuses the input for target and blurs the others. Targets that are
// not inputs (the table) blur everything.
func (m *InputPanelModel) Focus(target FocusTarget) tea.Cmd {
	var cmd tea.Cmd
	for _, t := range []FocusTarget{FocusPx, FocusRem, FocusBase} {
		in := m.input(t)
		if t == target {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

// Value returns the raw text of the input for target.
func (m InputPanelModel) Value(target FocusTarget) string {
	if in := m.input(target); in != nil {
		return in.Value()
	}
	return ""
}

// Update forwards msg to the input for target and reports whether its text
// changed.
func (m InputPanelModel) Update(target FocusTarget, msg tea.Msg) (InputPanelModel, tea.Cmd, bool) {
	in := m.input(target)
	if in == nil {
		return m, nil, false
	}
	before := in.Value()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd, in.Value() != before
}

// Sync copies state into every input except skip, which holds text the user is
// typing. The base input is reset to the accepted base so a rejected entry
// does not linger once the user leaves the field.
func (m *InputPanelModel) Sync(state convert.State, skip FocusTarget) {
	if skip != FocusPx && m.px.Value() != state.Px {
		m.px.SetValue(state.Px)
	}
	if skip != FocusRem && m.rem.Value() != state.Rem {
		m.rem.SetValue(state.Rem)
	}
	if skip != FocusBase {
		if want := convert.FormatNumber(state.Base); m.base.Value() != want {
			m.base.SetValue(want)
		}
	}
}

// SetWidth sets the card width.
func (m *InputPanelModel) SetWidth(w int) {
	m.width = w
}

// View renders the converter card. The base row only appears while the
// settings are open.
func (m InputPanelModel) View(state convert.State, flags *clipboard.Flags, focus FocusTarget) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Unit Converter"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Convert between pixels and rem units instantly"))
	b.WriteString("\n\n")

	if state.ShowSettings {
		b.WriteString(LabelStyle.Render("Base font size"))
		b.WriteString(m.base.View())
		b.WriteString(HintStyle.Render(" px  (browser default is 16px)"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.fieldRow(convert.FieldPx, "Pixels", m.px, state, flags, focus == FocusPx))
	b.WriteString("\n")
	b.WriteString(m.fieldRow(convert.FieldRem, "Root EM", m.rem, state, flags, focus == FocusRem))
	b.WriteString("\n\n")

	base := convert.FormatNumber(state.Base)
	b.WriteString(HintStyle.Render("Current base size: "))
	b.WriteString(ValueStyle.Render(base + "px"))
	b.WriteString(HintStyle.Render("  ·  1rem = " + base + "px"))

	style := BorderStyle
	if focus != FocusTable {
		style = FocusedBorderStyle
	}
	if m.width > 4 {
		style = style.Width(m.width - 2)
	}
	return style.Render(b.String())
}

// fieldRow renders one px/rem line with its copy indicator.
func (m InputPanelModel) fieldRow(field convert.Field, label string, in textinput.Model, state convert.State, flags *clipboard.Flags, focused bool) string {
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		UnitStyle.Render(strings.ToUpper(field.String())),
		LabelStyle.Width(10).Render(label),
		in.View(),
	)

	switch {
	case flags != nil && flags.Copied(field):
		row += " " + CopiedStyle.Render("✓ copied")
	case focused && state.Value(field) != "":
		row += " " + HintStyle.Render("enter to copy")
	}
	return row
}
