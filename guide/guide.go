// ABOUTME: Embedded "Understanding REM vs PX" guide shown by the web page and the terminal UI.
// ABOUTME: HTML renders the markdown with goldmark; raw HTML in the source is not passed through.
package guide

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
)

//go:embed guide.md
var source string

// Markdown returns the guide's markdown source.
func Markdown() string {
	return source
}

// HTML renders the guide for embedding in a page.
func HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering guide: %w", err)
	}
	return template.HTML(buf.String()), nil
}
