// ABOUTME: Writes the reference table in text, JSON, YAML, or CSS custom-property form.
// ABOUTME: YAML output uses gopkg.in/yaml.v3; all formats carry the base size the rows were derived from.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown table format")

// Format selects the table export encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSS  Format = "css"
)

// ParseFormat maps a user-supplied name to a Format. "yml" is accepted as an
// alias for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "css":
		return FormatCSS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// exportRow is the serialized form of a Row, carrying both the exact value
// and the display label.
type exportRow struct {
	Px    float64 `json:"px" yaml:"px"`
	Rem   float64 `json:"rem" yaml:"rem"`
	Label string  `json:"label" yaml:"label"`
}

// exportTable is the top-level JSON/YAML document.
type exportTable struct {
	Base float64     `json:"base" yaml:"base"`
	Rows []exportRow `json:"rows" yaml:"rows"`
}

func newExportTable(rows []Row, base float64) exportTable {
	out := exportTable{Base: base, Rows: make([]exportRow, 0, len(rows))}
	for _, r := range rows {
		out.Rows = append(out.Rows, exportRow{Px: r.Px, Rem: r.Rem, Label: r.RemLabel()})
	}
	return out
}

// WriteTable writes rows, derived from base, to w in the requested format.
func WriteTable(w io.Writer, rows []Row, base float64, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, rows, base)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newExportTable(rows, base))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newExportTable(rows, base)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatCSS:
		return writeCSS(w, rows, base)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

func writeText(w io.Writer, rows []Row, base float64) error {
	var b strings.Builder
	fmt.Fprintf(&b, "base: %spx (1rem = %spx)\n", FormatNumber(base), FormatNumber(base))
	fmt.Fprintf(&b, "%8s  %s\n", "px", "rem")
	for _, r := range rows {
		fmt.Fprintf(&b, "%8s  %s\n", r.PxLabel(), r.RemLabel())
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeCSS emits one custom property per row, named after the pixel size.
func writeCSS(w io.Writer, rows []Row, base float64) error {
	var b strings.Builder
	fmt.Fprintf(&b, "/* 1rem = %spx */\n", FormatNumber(base))
	b.WriteString(":root {\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  --size-%s: %s;\n", FormatNumber(r.Px), r.RemLabel())
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
