package numerals

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBengaliDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "all digits", input: "0123456789", want: "০১২৩৪৫৬৭৮৯"},
		{name: "float keeps decimal point", input: "23.81", want: "২৩.৮১"},
		{name: "sign passes through", input: "-42", want: "-৪২"},
		{name: "mixed text untouched", input: "AQI 51", want: "AQI ৫১"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToBengaliDigits(tt.input))
		})
	}
}

func TestToLocalizedDigitsLatinIsIdentity(t *testing.T) {
	assert.Equal(t, "1013.25", ToLocalizedDigits("en", "1013.25"))
	assert.Equal(t, "1013.25", ToLocalizedDigits("xx", "1013.25"))
}

func TestDigitMapIsBijection(t *testing.T) {
	digits := Digits("bn")
	seen := make(map[rune]bool, 10)
	for _, r := range digits {
		require.False(t, seen[r], "digit glyph %q mapped twice", r)
		seen[r] = true
	}
	assert.Len(t, seen, 10)
}

func TestFormatIntPreservesRuneLength(t *testing.T) {
	for _, n := range []int64{0, 7, 42, 999, 100000, 999999} {
		plain := strconv.FormatInt(n, 10)
		localized := FormatInt("bn", n)
		assert.Equal(t, len([]rune(plain)), len([]rune(localized)), "n=%d", n)
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "২.১", FormatFloat("bn", 2.1, 1))
	assert.Equal(t, "10.1", FormatFloat("en", 10.1, 1))
}
