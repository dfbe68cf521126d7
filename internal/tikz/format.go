package tikz

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders v as the shortest text that reads back to v. Integral values
// keep a trailing ".0"; magnitudes below 1e-4 or from 1e16 use exponent form.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// EscapeTitle escapes underscores, which LaTeX reserves for subscripts.
func EscapeTitle(s string) string {
	return strings.ReplaceAll(s, "_", `\_`)
}
