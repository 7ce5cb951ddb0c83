package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SanitizeAmountText normalizes free-text monetary input as the console forms
// do: thousands separators are stripped, anything from a second decimal point
// on is discarded, non-numeric characters are dropped, and the fraction is
// capped at 2 digits.
func SanitizeAmountText(s string) string {
	var b strings.Builder
	seenPoint := false
	fractionDigits := 0
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9':
			if seenPoint {
				if fractionDigits >= 2 {
					continue
				}
				fractionDigits++
			}
			b.WriteRune(r)
		case r == '.':
			if seenPoint {
				// Second decimal point: truncate the rest
				return b.String()
			}
			seenPoint = true
			b.WriteRune(r)
		case r == '-':
			// Keep a leading sign so negative input is recognized and
			// rejected by ParseAmount instead of silently turning positive
			if b.Len() == 0 {
				b.WriteRune(r)
			}
		case r == ',':
			// Thousands separator
		default:
			// Currency symbols, spaces, stray characters
		}
	}
	return b.String()
}

// ParseAmount parses free-text monetary input after sanitation. Blank,
// non-numeric, or non-positive text degrades to zero rather than failing; the
// calculators must never block the user on malformed input.
func ParseAmount(s string) float64 {
	clean := SanitizeAmountText(s)
	if clean == "" || clean == "." || clean == "-" {
		return 0
	}
	d, err := decimal.NewFromString(clean)
	if err != nil || d.IsNegative() {
		return 0
	}
	v, _ := d.Float64()
	return v
}

// Round2 rounds to 2 decimal places using half-up rounding.
func Round2(v float64) float64 {
	r, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return r
}

// FormatAmount renders a monetary value with exactly 2 decimal places.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// ConvertAmount converts a working-currency value for display using an
// exchange rate expressed in working-currency units per display-currency
// unit. A non-positive rate yields zero.
func ConvertAmount(v, rate float64) float64 {
	if rate <= 0 {
		return 0
	}
	return Round2(v / rate)
}
