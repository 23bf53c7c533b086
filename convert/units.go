// ABOUTME: Pixel/rem arithmetic plus the numeric parsing and formatting rules shared by every surface.
// ABOUTME: FormatNumber mirrors the browser's default number-to-string conversion so field text matches the web UI.
package convert

import (
	"math"
	"strconv"
	"strings"
)

// DefaultBaseSize is the root font size browsers use unless the user changes it.
const DefaultBaseSize = 16.0

// PxToRem converts a pixel length to rem for the given root font size.
// base must be positive; callers enforce that through ValidBase.
func PxToRem(px, base float64) float64 {
	return px / base
}

// RemToPx converts a rem length to pixels for the given root font size.
func RemToPx(rem, base float64) float64 {
	return rem * base
}

// ValidBase reports whether v is usable as a root font size.
func ValidBase(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// ParseValue interprets the text of an input field as a number. Empty,
// whitespace-only, non-numeric and non-finite input all report false; none of
// those are errors, they are just fields the user is still typing into.
func ParseValue(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// FormatNumber renders v the way a browser stringifies a number: the shortest
// decimal that round-trips, switching to exponent notation below 1e-6 and from
// 1e21 upward.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		// Covers negative zero too.
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
