package calc

import (
	"math"
	"strconv"
	"strings"
)

const (
	minInt64Float = -float64(1 << 63)
	maxInt64Float = float64(1 << 63) // exclusive
)

// FormatResult renders v for the display.
//
// Integral values inside the int64 range print without a decimal point.
// Everything else prints with six fractional digits, then trailing zeros and
// a dangling point are stripped: 1/3 -> "0.333333", 2.5 -> "2.5".
func FormatResult(v float64) string {
	if s, ok := formatSpecial(v); ok {
		return s
	}
	if v >= minInt64Float && v < maxInt64Float && v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatOperand renders an operand for annotations and history records.
//
// The form is the shortest decimal that round-trips, always with a
// fractional part ("5.0", "0.25"). Magnitudes outside [1e-3, 1e7) use
// scientific notation with an upper-case exponent ("1.0E7", "1.5E-4").
func FormatOperand(v float64) string {
	if s, ok := formatSpecial(v); ok {
		return s
	}
	if v == 0 {
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	a := math.Abs(v)
	if a >= 1e-3 && a < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mant + "E" + strconv.Itoa(n)
}

func formatSpecial(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "Infinity", true
	case math.IsInf(v, -1):
		return "-Infinity", true
	}
	return "", false
}
