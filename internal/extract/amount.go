package extract

import (
	"strconv"
	"strings"
)

// ParseAmount converts a European-formatted amount string (e.g. "1.234,56")
// into a float64. Dots are thousands separators, the comma is the decimal
// separator. Malformed input degrades to 0 so that a single bad token never
// aborts the invoice; the caller decides what a zero-value line means.
func ParseAmount(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
