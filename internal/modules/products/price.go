package products

import (
	"math"
	"strconv"
	"strings"
)

// CoercePrice turns form input into a non-negative price. Blank, unparseable,
// negative and non-finite values become 0. A decimal comma is accepted.
func CoercePrice(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// FormatPrice renders a price without trailing zeros, e.g. 150 -> "150", 12.5 -> "12.5".
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
