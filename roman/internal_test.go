package roman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDeriveMaximum checks the parity formula for alphabet prefixes.
func TestDeriveMaximum(t *testing.T) {
	cases := map[int]int{
		0: 0,    // empty
		1: 3,    // I
		2: 8,    // IV
		3: 39,   // IVX
		4: 89,   // IVXL
		5: 399,  // IVXLC
		6: 899,  // IVXLCD
		7: 3999, // IVXLCDM
	}
	for n, want := range cases {
		assert.Equal(t, want, deriveMaximum(n), "alphabet of %d symbols", n)
	}
	assert.Equal(t, Maximum, deriveMaximum(len(Alphabet)))
}

// TestConvert_ShortAlphabets converts the full derived range of each
// alphabet prefix, which must never hit a missing symbol.
func TestConvert_ShortAlphabets(t *testing.T) {
	for n := 1; n <= len(Alphabet); n++ {
		alphabet := Alphabet[:n]
		for v := 1; v <= deriveMaximum(n); v++ {
			assert.NotPanics(t, func() { convert(v, alphabet) }, "alphabet %q value %d", alphabet, v)
		}
	}
	assert.Equal(t, "CCCXCIX", convert(399, "IVXLC"))
}

// TestConvert_MissingSymbolPanics checks that a value beyond what the
// alphabet can express aborts instead of producing a truncated numeral.
func TestConvert_MissingSymbolPanics(t *testing.T) {
	cases := []struct {
		alphabet string
		value    int
	}{
		{"IVX", 40},        // needs L
		{"IVX", 90},        // needs C
		{"IVXLC", 400},     // needs D
		{"IVXLCD", 900},    // needs M
		{"IVXLCDM", 4000},  // needs a five for thousands
		{"IVXLCDM", 10000}, // needs a unit for ten thousands
	}
	for _, tc := range cases {
		assert.Panics(t, func() { convert(tc.value, tc.alphabet) }, "alphabet %q value %d", tc.alphabet, tc.value)
	}
}

func TestAppendDigit_RejectsNonDigit(t *testing.T) {
	assert.Panics(t, func() {
		var sb strings.Builder
		appendDigit(&sb, 10, "I", "V", "X")
	})
}
