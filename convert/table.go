// ABOUTME: Reference table of common pixel sizes and their rem equivalents for a given base size.
// ABOUTME: FormatRem applies the table's display rounding (3 decimals, ties upward, trailing zeros dropped).
package convert

import (
	"math"
	"math/big"
)

// CommonPxValues are the pixel sizes listed in the reference table, in display order.
var CommonPxValues = []float64{8, 10, 12, 14, 16, 18, 20, 24, 28, 32, 36, 40, 48, 56, 64, 72, 80, 96}

// remDisplayPlaces is how many decimals the table shows for rem values.
const remDisplayPlaces = 3

// Row is one reference table entry. Rem is the exact quotient; only its
// label is rounded.
type Row struct {
	Px  float64 `json:"px" yaml:"px"`
	Rem float64 `json:"rem" yaml:"rem"`
}

// PxLabel renders the row's pixel value with its unit, e.g. "16px".
func (r Row) PxLabel() string {
	return FormatNumber(r.Px) + "px"
}

// RemLabel renders the row's rounded rem value with its unit, e.g. "0.875rem".
func (r Row) RemLabel() string {
	return FormatRem(r.Rem) + "rem"
}

// GenerateTable derives the reference rows for base. It is a pure function of
// base and is meant to be called on every render rather than cached.
func GenerateTable(base float64) []Row {
	rows := make([]Row, len(CommonPxValues))
	for i, px := range CommonPxValues {
		rows[i] = Row{Px: px, Rem: PxToRem(px, base)}
	}
	return rows
}

// FindRow returns the table row for px at the given base, if px is one of the
// common values.
func FindRow(px, base float64) (Row, bool) {
	for _, v := range CommonPxValues {
		if v == px {
			return Row{Px: v, Rem: PxToRem(v, base)}, true
		}
	}
	return Row{}, false
}

// FormatRem rounds rem to three decimals and drops trailing zeros. Rounding
// works on the exact binary value and breaks ties toward positive infinity,
// so 0.0625 shows as "0.063" and 1.0005 (stored just below the tie) as "1".
func FormatRem(rem float64) string {
	if math.IsInf(rem, 0) || math.IsNaN(rem) || math.Abs(rem) >= 1e21 {
		return FormatNumber(rem)
	}
	return FormatNumber(roundHalfUp(rem, remDisplayPlaces))
}

// roundHalfUp returns the float nearest to n/10^places where n is the integer
// closest to v*10^places, picking the larger n on an exact tie.
func roundHalfUp(v float64, places int) float64 {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)

	r := new(big.Rat).SetFloat64(v)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))

	// Rat denominators are positive, so Euclidean division is a floor.
	n := new(big.Int).Div(r.Num(), r.Denom())

	out, _ := new(big.Rat).SetFrac(n, scale).Float64()
	return out
}
