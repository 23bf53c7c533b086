// ABOUTME: Top-level Bubble Tea AppModel that owns one converter state and composes the TUI panels.
// ABOUTME: Implements tea.Model (Init, Update, View) and routes keys to inputs, the table, the guide, and copy actions.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2389-research/pxrem/clipboard"
	"github.com/2389-research/pxrem/convert"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// FocusTarget indicates which part of the screen currently has keyboard focus.
type FocusTarget int

const (
	FocusPx FocusTarget = iota
	FocusRem
	FocusBase
	FocusTable
)

// Options configures NewAppModel.
type Options struct {
	BaseSize   float64
	Writer     clipboard.Writer
	CopyWindow time.Duration
	Logger     *zap.Logger
}

// AppModel is the top-level Bubble Tea model. All converter state changes go
// through convert.Reduce; the panels only render it.
type AppModel struct {
	state     convert.State
	inputs    InputPanelModel
	table     TablePanelModel
	guide     GuidePanelModel
	statusBar StatusBarModel

	flags  *clipboard.Flags
	writer clipboard.Writer
	window time.Duration
	logger *zap.Logger
	ctx    context.Context // cancellation context for clipboard writes

	focus     FocusTarget
	showGuide bool
	width     int
	height    int
}

// NewAppModel creates an AppModel with all sub-models initialized and the px
// field focused.
func NewAppModel(ctx context.Context, opts Options) AppModel {
	if opts.Writer == nil {
		opts.Writer = clipboard.SystemWriter{}
	}
	if opts.CopyWindow <= 0 {
		opts.CopyWindow = clipboard.DefaultWindow
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	state := convert.New(opts.BaseSize)
	m := AppModel{
		state:     state,
		inputs:    NewInputPanelModel(state.Base),
		table:     NewTablePanelModel(),
		guide:     NewGuidePanelModel(),
		statusBar: NewStatusBarModel(state.Base),
		flags:     clipboard.NewFlags(),
		writer:    opts.Writer,
		window:    opts.CopyWindow,
		logger:    opts.Logger,
		ctx:       ctx,
		focus:     FocusPx,
	}
	m.inputs.Focus(FocusPx)
	return m
}

// State returns the current converter state.
func (m AppModel) State() convert.State {
	return m.state
}

// Copied reports whether field is currently acknowledged as copied.
func (m AppModel) Copied(field convert.Field) bool {
	return m.flags.Copied(field)
}

// Init implements tea.Model. Starts the cursor blink of the focused input.
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model. Routes incoming messages to the appropriate
// handler and returns the updated model with any follow-up commands.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case CopyResultMsg:
		return m.handleCopyResult(msg)

	case CopyExpiredMsg:
		m.flags.Expire(msg.Field, msg.Token)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Cursor blink and other input-internal messages.
	var cmd tea.Cmd
	m.inputs, cmd, _ = m.inputs.Update(m.focus, msg)
	return m, cmd
}

// View implements tea.Model. Renders the converter card, the table (or the
// guide when it is open), and the status bar.
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	// Minimum terminal size guard to prevent layout overflow
	if m.width < 40 || m.height < 12 {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: 40x12.", m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("PX to REM Converter"))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render("Instant bi-directional conversion between pixels and rem units"))
	b.WriteString("\n")
	b.WriteString(m.inputs.View(m.state, m.flags, m.focus))
	b.WriteString("\n")
	if m.showGuide {
		b.WriteString(m.guide.View())
	} else {
		b.WriteString(m.table.View(m.state.Base, m.focus == FocusTable))
	}
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())

	return lipgloss.NewStyle().MaxHeight(m.height).Render(b.String())
}

// handleWindowSize updates dimensions on all panels.
func (m AppModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.inputs.SetWidth(msg.Width)
	m.table.SetWidth(msg.Width)
	m.statusBar.SetWidth(msg.Width)
	// Card (about 10 lines), title and status bar leave the rest to the guide.
	m.guide.SetSize(msg.Width, msg.Height-13)
	return m, nil
}

// handleKeyMsg processes keyboard input: app-level shortcuts first, then the
// guide or table when they own the keys, then the focused input.
func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m.quit()
	case "ctrl+s":
		return m.dispatch(convert.Event{Kind: convert.EventSettingsToggled})
	case "ctrl+g":
		m.showGuide = !m.showGuide
		return m, nil
	case "tab":
		return m.setFocus(m.nextFocus(1))
	case "shift+tab":
		return m.setFocus(m.nextFocus(-1))
	case "enter":
		return m.handleEnter()
	}

	if m.showGuide {
		var cmd tea.Cmd
		m.guide, cmd = m.guide.Update(msg)
		return m, cmd
	}

	if m.focus == FocusTable {
		switch msg.String() {
		case "left", "h":
			m.table.Move(-1)
		case "right", "l":
			m.table.Move(1)
		case "up", "k":
			m.table.Move(-m.table.Columns())
		case "down", "j":
			m.table.Move(m.table.Columns())
		}
		return m, nil
	}

	var (
		cmd     tea.Cmd
		changed bool
	)
	m.inputs, cmd, changed = m.inputs.Update(m.focus, msg)
	if !changed {
		return m, cmd
	}

	raw := m.inputs.Value(m.focus)
	var ev convert.Event
	switch m.focus {
	case FocusPx:
		ev = convert.Event{Kind: convert.EventPxEdited, Value: raw}
	case FocusRem:
		ev = convert.Event{Kind: convert.EventRemEdited, Value: raw}
	case FocusBase:
		ev = convert.Event{Kind: convert.EventBaseEdited, Value: raw}
	}
	updated, dispatchCmd := m.dispatch(ev)
	return updated, tea.Batch(cmd, dispatchCmd)
}

// handleEnter copies the focused field or loads the highlighted table row.
func (m AppModel) handleEnter() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusPx:
		return m.copyField(convert.FieldPx)
	case FocusRem:
		return m.copyField(convert.FieldRem)
	case FocusTable:
		row := m.table.Selected(m.state.Base)
		return m.dispatch(convert.Event{Kind: convert.EventRowSelected, Row: row})
	}
	return m, nil
}

// dispatch reduces ev into the state and mirrors the result into the panels.
func (m AppModel) dispatch(ev convert.Event) (tea.Model, tea.Cmd) {
	m.state = convert.Reduce(m.state, ev)
	m.inputs.Sync(m.state, m.focus)
	m.statusBar.SetBase(m.state.Base)
	m.statusBar.SetSource(m.state.Source)

	if !m.state.ShowSettings && m.focus == FocusBase {
		return m.setFocus(FocusPx)
	}
	return m, nil
}

// copyField starts an asynchronous clipboard write for field. Empty fields
// cannot be copied.
func (m AppModel) copyField(field convert.Field) (tea.Model, tea.Cmd) {
	text, ok := m.state.CopyText(field)
	if !ok {
		return m, nil
	}
	return m, CopyCmd(m.ctx, m.writer, field, text)
}

// handleCopyResult raises the field's copied flag after a successful write
// and schedules its reset. Failures are logged and otherwise ignored.
func (m AppModel) handleCopyResult(msg CopyResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("clipboard write failed",
			zap.Stringer("field", msg.Field),
			zap.Error(msg.Err),
		)
		return m, nil
	}
	tok := m.flags.Raise(msg.Field)
	if tok == 0 {
		return m, nil
	}
	m.logger.Debug("copied to clipboard", zap.Stringer("field", msg.Field), zap.String("text", msg.Text))
	return m, ExpireCopyCmd(m.window, msg.Field, tok)
}

// setFocus moves focus to target, resyncing the input that lost focus.
func (m AppModel) setFocus(target FocusTarget) (tea.Model, tea.Cmd) {
	m.focus = target
	m.inputs.Sync(m.state, target)
	return m, m.inputs.Focus(target)
}

// nextFocus cycles through the focusable targets in direction dir (+1 or -1).
// The base input only takes part while the settings are open.
func (m AppModel) nextFocus(dir int) FocusTarget {
	order := []FocusTarget{FocusPx, FocusRem, FocusTable}
	if m.state.ShowSettings {
		order = []FocusTarget{FocusBase, FocusPx, FocusRem, FocusTable}
	}
	idx := 0
	for i, t := range order {
		if t == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(order)) % len(order)
	return order[idx]
}

// quit tears down pending copy resets and exits the program.
func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.flags.Close()
	return m, tea.Quit
}
