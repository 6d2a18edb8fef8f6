package models

import (
	"math"
	"strconv"
	"strings"
)

// NumberFromFloat returns f in canonical form. Non-finite values have no JSON
// form and become null.
func NumberFromFloat(f float64) JSONValue {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Null
	}
	return JSONNumber(FormatNumber(f))
}

// FormatNumber renders f the shortest way that reads back exactly, using
// exponent notation below 1e-6 and from 1e21 upward.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0" // also covers negative zero
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
