// ABOUTME: Tests for reference table export in text, JSON, YAML, and CSS formats.
// ABOUTME: Verifies format name parsing and that every encoding carries base and row data.
package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{"yml", FormatYAML},
		{"yaml", FormatYAML},
		{" css ", FormatCSS},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if err != nil {
			t.Errorf("ParseFormat(%q): unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestWriteTableText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, GenerateTable(16), 16, FormatText); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "1rem = 16px") {
		t.Errorf("expected base line, got:\n%s", out)
	}
	if !strings.Contains(out, "16px  1rem") {
		t.Errorf("expected 16px row, got:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != 20 {
		t.Errorf("expected 20 lines (base, header, 18 rows), got %d", lines)
	}
}

func TestWriteTableJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, GenerateTable(10), 10, FormatJSON); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	var doc exportTable
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if doc.Base != 10 || len(doc.Rows) != 18 {
		t.Fatalf("unexpected document: base=%v rows=%d", doc.Base, len(doc.Rows))
	}
	if doc.Rows[6].Px != 20 || doc.Rows[6].Label != "2rem" {
		t.Errorf("row 6 = %+v, want 20px / 2rem", doc.Rows[6])
	}
}

func TestWriteTableYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, GenerateTable(16), 16, FormatYAML); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	var doc exportTable
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}
	if doc.Base != 16 || len(doc.Rows) != 18 {
		t.Fatalf("unexpected document: base=%v rows=%d", doc.Base, len(doc.Rows))
	}
	if doc.Rows[0].Rem != 0.5 {
		t.Errorf("first row rem = %v, want 0.5", doc.Rows[0].Rem)
	}
}

func TestWriteTableCSS(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, GenerateTable(16), 16, FormatCSS); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	out := buf.String()
	for _, want := range []string{":root {", "--size-16: 1rem;", "--size-14: 0.875rem;", "}\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in CSS output:\n%s", want, out)
		}
	}
}

func TestWriteTableUnknownFormat(t *testing.T) {
	err := WriteTable(&bytes.Buffer{}, nil, 16, Format("toml"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
