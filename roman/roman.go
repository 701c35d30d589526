package roman

import (
	"fmt"
	"strconv"
	"strings"
)

// Convert returns the Roman numeral for value.
//
// Algorithm:
//  1. Reject value outside [Minimum, Maximum] with an OutOfRangeError.
//  2. Walk the decimal digits, most significant first.
//  3. For the digit at magnitude p pick unit, five and ten symbols
//     from Alphabet[2p], Alphabet[2p+1] and Alphabet[2p+2].
//  4. Append the fragment for the digit (see appendDigit).
//
// Convert is pure and safe for concurrent use.
//
// Example:
//
//	s, err := Convert(3999) // "MMMCMXCIX", nil
//	_, err = Convert(0)     // OutOfRangeError{Value: 0, Min: 1, Max: 3999}
func Convert(value int) (string, error) {
	if !InRange(value) {
		return "", OutOfRangeError{Value: value, Min: Minimum, Max: Maximum}
	}

	return convert(value, Alphabet), nil
}

// MustConvert is like Convert but panics if value is out of range.
// It simplifies initialization of package-level tables.
func MustConvert(value int) string {
	s, err := Convert(value)
	if err != nil {
		panic(err)
	}

	return s
}

// InRange reports whether value lies in [Minimum, Maximum].
func InRange(value int) bool {
	return value >= Minimum && value <= Maximum
}

// convert assumes value is positive and representable with alphabet.
// A digit whose symbols are missing from alphabet means the bounds and
// the alphabet disagree; that is a defect, so convert panics.
func convert(value int, alphabet string) string {
	digits := strconv.Itoa(value)

	var sb strings.Builder
	sb.Grow(4 * len(digits))
	for i := 0; i < len(digits); i++ {
		d := digits[i] - '0'
		p := len(digits) - i - 1
		unit, five, ten := symbol(alphabet, 2*p), symbol(alphabet, 2*p+1), symbol(alphabet, 2*p+2)
		if (d != 0 && unit == "") || (d >= 4 && d <= 8 && five == "") || (d == 9 && ten == "") {
			panic(fmt.Sprintf("roman: alphabet %q lacks symbols for digit %d at magnitude 10^%d", alphabet, d, p))
		}
		appendDigit(&sb, d, unit, five, ten)
	}

	return sb.String()
}

// symbol returns alphabet[i] as a string, or "" past the end.
func symbol(alphabet string, i int) string {
	if i >= len(alphabet) {
		return ""
	}

	return alphabet[i : i+1]
}

// appendDigit writes the fragment for decimal digit d.
func appendDigit(sb *strings.Builder, d byte, unit, five, ten string) {
	switch d {
	case 0:
	case 1:
		sb.WriteString(unit)
	case 2:
		sb.WriteString(strings.Repeat(unit, 2))
	case 3:
		sb.WriteString(strings.Repeat(unit, 3))
	case 4:
		sb.WriteString(unit + five)
	case 5:
		sb.WriteString(five)
	case 6:
		sb.WriteString(five + unit)
	case 7:
		sb.WriteString(five + strings.Repeat(unit, 2))
	case 8:
		sb.WriteString(five + strings.Repeat(unit, 3))
	case 9:
		sb.WriteString(unit + ten)
	default:
		panic(fmt.Sprintf("roman: not a decimal digit: %d", d))
	}
}
