// ABOUTME: State record for one converter instance and the pure reducer that applies edit events to it.
// ABOUTME: Whichever of px/rem was edited last drives the other; a base change always recomputes rem from px.
package convert

// Field identifies one of the two linked length fields.
type Field int

const (
	FieldNone Field = iota
	FieldPx
	FieldRem
)

// String returns the CSS unit the field holds.
func (f Field) String() string {
	switch f {
	case FieldPx:
		return "px"
	case FieldRem:
		return "rem"
	default:
		return "none"
	}
}

// ParseField maps a unit name ("px" or "rem") to its Field.
func ParseField(name string) (Field, bool) {
	switch name {
	case "px":
		return FieldPx, true
	case "rem":
		return FieldRem, true
	default:
		return FieldNone, false
	}
}

// State is everything one converter instance shows. Px and Rem hold the raw
// field text; Source records which of them the user typed into last.
type State struct {
	Px           string  `json:"px"`
	Rem          string  `json:"rem"`
	Base         float64 `json:"base"`
	ShowSettings bool    `json:"show_settings"`
	Source       Field   `json:"-"`
}

// New returns an empty converter state. A base that is not a positive finite
// number falls back to DefaultBaseSize.
func New(base float64) State {
	if !ValidBase(base) {
		base = DefaultBaseSize
	}
	return State{Base: base}
}

// EditPx stores raw as the px field and derives rem from it. When raw does not
// parse the rem field is cleared instead of being left stale.
func (s State) EditPx(raw string) State {
	s.Px = raw
	s.Source = FieldPx
	if px, ok := ParseValue(raw); ok {
		s.Rem = FormatNumber(PxToRem(px, s.Base))
	} else {
		s.Rem = ""
	}
	return s
}

// EditRem stores raw as the rem field and derives px from it.
func (s State) EditRem(raw string) State {
	s.Rem = raw
	s.Source = FieldRem
	if rem, ok := ParseValue(raw); ok {
		s.Px = FormatNumber(RemToPx(rem, s.Base))
	} else {
		s.Px = ""
	}
	return s
}

// EditBase adopts raw as the new base size if it is a positive number, then
// recomputes rem from px. Px is never recomputed here, even when rem was the
// field last edited. Rejected input leaves the state untouched.
func (s State) EditBase(raw string) State {
	base, ok := ParseValue(raw)
	if !ok || !ValidBase(base) {
		return s
	}
	s.Base = base
	if px, ok := ParseValue(s.Px); ok {
		s.Rem = FormatNumber(PxToRem(px, s.Base))
	}
	return s
}

// SelectRow copies a reference table row into both fields using its exact,
// unrounded numbers.
func (s State) SelectRow(row Row) State {
	s.Px = FormatNumber(row.Px)
	s.Rem = FormatNumber(row.Rem)
	s.Source = FieldPx
	return s
}

// ToggleSettings flips the visibility of the base size settings.
func (s State) ToggleSettings() State {
	s.ShowSettings = !s.ShowSettings
	return s
}

// CopyText is the clipboard text for field: the raw value followed by its
// unit. It reports false for an empty field, which cannot be copied.
func (s State) CopyText(field Field) (string, bool) {
	switch field {
	case FieldPx:
		if s.Px == "" {
			return "", false
		}
		return s.Px + "px", true
	case FieldRem:
		if s.Rem == "" {
			return "", false
		}
		return s.Rem + "rem", true
	default:
		return "", false
	}
}

// Value returns the raw text of field.
func (s State) Value(field Field) string {
	switch field {
	case FieldPx:
		return s.Px
	case FieldRem:
		return s.Rem
	default:
		return ""
	}
}

// Table is the reference table for the state's current base.
func (s State) Table() []Row {
	return GenerateTable(s.Base)
}

// EventKind enumerates the user actions a converter reacts to.
type EventKind int

const (
	EventPxEdited EventKind = iota
	EventRemEdited
	EventBaseEdited
	EventRowSelected
	EventSettingsToggled
)

// Event is one user action. Value carries the raw text for edit events; Row
// carries the selected table row.
type Event struct {
	Kind  EventKind
	Value string
	Row   Row
}

// Reduce applies ev to s and returns the resulting state. Unknown event kinds
// return s unchanged.
func Reduce(s State, ev Event) State {
	switch ev.Kind {
	case EventPxEdited:
		return s.EditPx(ev.Value)
	case EventRemEdited:
		return s.EditRem(ev.Value)
	case EventBaseEdited:
		return s.EditBase(ev.Value)
	case EventRowSelected:
		return s.SelectRow(ev.Row)
	case EventSettingsToggled:
		return s.ToggleSettings()
	default:
		return s
	}
}
