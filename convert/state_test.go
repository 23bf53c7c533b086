// ABOUTME: Tests for the converter state record and its reducer.
// ABOUTME: Exercises px/rem edits, base-size changes and rejections, row selection, and copy serialization.
package convert

import "testing"

func TestNewFallsBackToDefaultBase(t *testing.T) {
	for _, base := range []float64{0, -1} {
		if got := New(base).Base; got != DefaultBaseSize {
			t.Errorf("New(%v).Base = %v, want %v", base, got, DefaultBaseSize)
		}
	}
	if got := New(10).Base; got != 10 {
		t.Errorf("New(10).Base = %v, want 10", got)
	}
}

func TestEditPx(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantRem string
	}{
		{"whole", "32", "2"},
		{"fraction", "14", "0.875"},
		{"empty clears", "", ""},
		{"garbage clears", "abc", ""},
		{"negative", "-8", "-0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(16).EditRem("3").EditPx(tt.raw)
			if s.Px != tt.raw {
				t.Errorf("Px = %q, want verbatim %q", s.Px, tt.raw)
			}
			if s.Rem != tt.wantRem {
				t.Errorf("Rem = %q, want %q", s.Rem, tt.wantRem)
			}
			if s.Source != FieldPx {
				t.Errorf("Source = %v, want px", s.Source)
			}
		})
	}
}

func TestEditRem(t *testing.T) {
	s := New(16).EditRem("1.5")
	if s.Px != "24" {
		t.Errorf("Px = %q, want %q", s.Px, "24")
	}
	if s.Rem != "1.5" {
		t.Errorf("Rem = %q, want %q", s.Rem, "1.5")
	}

	s = s.EditRem("1.")
	if s.Px != "16" {
		t.Errorf("mid-edit %q: Px = %q, want %q", "1.", s.Px, "16")
	}

	s = s.EditRem("x")
	if s.Px != "" {
		t.Errorf("Px = %q after invalid rem, want empty", s.Px)
	}
}

func TestEditBaseRecomputesRemFromPx(t *testing.T) {
	s := New(16).EditPx("20").EditBase("10")
	if s.Base != 10 {
		t.Fatalf("Base = %v, want 10", s.Base)
	}
	if s.Px != "20" {
		t.Errorf("Px = %q, want it unchanged at %q", s.Px, "20")
	}
	if s.Rem != "2" {
		t.Errorf("Rem = %q, want %q", s.Rem, "2")
	}
}

func TestEditBaseKeepsPxEvenWhenRemWasEdited(t *testing.T) {
	s := New(16).EditRem("1.5") // px = 24
	s = s.EditBase("8")
	if s.Px != "24" {
		t.Errorf("Px = %q, want %q", s.Px, "24")
	}
	if s.Rem != "3" {
		t.Errorf("Rem = %q, want %q (recomputed from px)", s.Rem, "3")
	}
}

func TestEditBaseWithoutPxLeavesRem(t *testing.T) {
	s := New(16)
	s.Rem = "stale"
	s = s.EditBase("20")
	if s.Base != 20 {
		t.Errorf("Base = %v, want 20", s.Base)
	}
	if s.Rem != "stale" {
		t.Errorf("Rem = %q, want untouched", s.Rem)
	}
}

func TestEditBaseRejectsInvalid(t *testing.T) {
	for _, raw := range []string{"0", "-5", "", "abc", "Inf"} {
		t.Run(raw, func(t *testing.T) {
			before := New(16).EditPx("24")
			after := before.EditBase(raw)
			if after != before {
				t.Errorf("EditBase(%q) changed state: %+v -> %+v", raw, before, after)
			}
		})
	}
}

func TestSelectRowUsesExactValues(t *testing.T) {
	s := New(12)
	row, ok := FindRow(14, s.Base)
	if !ok {
		t.Fatal("expected 14px to be a table row")
	}
	s = s.SelectRow(row)
	if s.Px != "14" {
		t.Errorf("Px = %q, want %q", s.Px, "14")
	}
	if s.Rem != "1.1666666666666667" {
		t.Errorf("Rem = %q, want the unrounded quotient", s.Rem)
	}
}

func TestCopyText(t *testing.T) {
	s := New(16).EditPx("24")

	if got, ok := s.CopyText(FieldPx); !ok || got != "24px" {
		t.Errorf("CopyText(px) = %q, %v; want %q, true", got, ok, "24px")
	}
	if got, ok := s.CopyText(FieldRem); !ok || got != "1.5rem" {
		t.Errorf("CopyText(rem) = %q, %v; want %q, true", got, ok, "1.5rem")
	}

	empty := New(16)
	if _, ok := empty.CopyText(FieldPx); ok {
		t.Error("expected empty px field to be uncopyable")
	}
	if _, ok := empty.CopyText(FieldNone); ok {
		t.Error("expected FieldNone to be uncopyable")
	}
}

func TestReduce(t *testing.T) {
	s := New(16)
	events := []Event{
		{Kind: EventPxEdited, Value: "32"},
		{Kind: EventSettingsToggled},
		{Kind: EventBaseEdited, Value: "-1"},
		{Kind: EventBaseEdited, Value: "8"},
	}
	for _, ev := range events {
		s = Reduce(s, ev)
	}
	if s.Px != "32" || s.Rem != "4" || s.Base != 8 || !s.ShowSettings {
		t.Errorf("unexpected state after events: %+v", s)
	}

	s = Reduce(s, Event{Kind: EventRowSelected, Row: Row{Px: 16, Rem: 2}})
	if s.Px != "16" || s.Rem != "2" {
		t.Errorf("row selection: got px=%q rem=%q", s.Px, s.Rem)
	}

	unchanged := Reduce(s, Event{Kind: EventKind(99)})
	if unchanged != s {
		t.Error("unknown event kind should not change state")
	}
}

func TestParseField(t *testing.T) {
	if f, ok := ParseField("px"); !ok || f != FieldPx {
		t.Errorf("ParseField(px) = %v, %v", f, ok)
	}
	if f, ok := ParseField("rem"); !ok || f != FieldRem {
		t.Errorf("ParseField(rem) = %v, %v", f, ok)
	}
	if _, ok := ParseField("em"); ok {
		t.Error("ParseField(em) should fail")
	}
}
