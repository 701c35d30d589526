package roman

import (
	"errors"
	"fmt"
)

// Alphabet holds the numeral symbols in ascending order of magnitude.
// Symbol 2p is the unit of magnitude 10^p, symbol 2p+1 its five.
const Alphabet = "IVXLCDM"

// Minimum is the smallest convertible value. Zero has no numeral.
const Minimum = 1

// Maximum is the largest convertible value for Alphabet.
// It must equal deriveMaximum(len(Alphabet)); init enforces this.
const Maximum = 3999

// ErrOutOfRange is wrapped by every OutOfRangeError.
var ErrOutOfRange = errors.New("roman: value out of range")

// OutOfRangeError is returned when a value falls outside [Min, Max].
type OutOfRangeError struct {
	Value    int
	Min, Max int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("roman: value %d out of range [%d, %d]", e.Value, e.Min, e.Max)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// deriveMaximum returns the largest value an alphabet of n symbols can
// express in subtractive notation.
//
//	n even: the top symbol is a five, so the top digit goes up to 8
//	        and Maximum = 9·10^(n/2-1) - 1.
//	n odd:  the top symbol is a unit without five, so the top digit
//	        goes up to 3 and Maximum = 4·10^(n/2) - 1.
func deriveMaximum(n int) int {
	if n < 1 {
		return 0
	}
	if n%2 == 0 {
		return pow10(n/2-1)*9 - 1
	}

	return pow10(n/2)*4 - 1
}

// pow10 returns 10^k for k >= 0.
func pow10(k int) int {
	p := 1
	for ; k > 0; k-- {
		p *= 10
	}

	return p
}

func init() {
	if got := deriveMaximum(len(Alphabet)); got != Maximum {
		panic(fmt.Sprintf("roman: Maximum %d does not match alphabet %q (derived %d)", Maximum, Alphabet, got))
	}
}
