// Package numerals converts Arabic digit characters to localized digit glyphs
// for display. Only the ten digit symbols are replaced; signs, decimal points
// and any other characters pass through untouched. No rounding or grouping
// is ever applied.
package numerals

import "strconv"

var bengaliDigits = [10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

var latinDigits = [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// Digits returns the ten-symbol digit map for the given locale.
// Unknown locales fall back to Latin digits (identity mapping).
func Digits(locale string) [10]rune {
	if locale == "bn" {
		return bengaliDigits
	}
	return latinDigits
}

// ToLocalizedDigits replaces every Arabic digit in s with the corresponding
// glyph of the given locale, preserving all other characters in place.
func ToLocalizedDigits(locale, s string) string {
	if locale != "bn" {
		return s
	}
	return ToBengaliDigits(s)
}

// ToBengaliDigits replaces every Arabic digit in s with its Bengali glyph.
func ToBengaliDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, bengaliDigits[r-'0'])
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

// FormatInt renders n in the given locale's digits.
func FormatInt(locale string, n int64) string {
	return ToLocalizedDigits(locale, strconv.FormatInt(n, 10))
}

// FormatFloat renders f with the given precision in the locale's digits.
// Precision -1 uses the shortest representation that round-trips.
func FormatFloat(locale string, f float64, precision int) string {
	return ToLocalizedDigits(locale, strconv.FormatFloat(f, 'f', precision, 64))
}
