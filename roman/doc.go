// Package roman converts integers into their Roman numeral representation.
//
// 🚀 What is a Roman numeral?
//
//	An additive/subtractive notation over seven symbols:
//	  I=1  V=5  X=10  L=50  C=100  D=500  M=1000
//	Each decimal digit is written with the unit, five and ten symbols
//	of its magnitude. Digits 4 and 9 use subtractive notation (IV, IX,
//	XL, XC, CD, CM); everything else is additive.
//
// ✨ Key features:
//   - Convert: one pure, allocation-light conversion routine
//   - OutOfRangeError: structured error carrying the rejected value and bounds
//   - Alphabet, Minimum, Maximum: exported so callers can pre-validate
//   - Safe for concurrent use; there is no shared mutable state
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numeral/roman"
//
//	s, err := roman.Convert(1994) // "MCMXCIV", nil
//	if errors.Is(err, roman.ErrOutOfRange) {
//	  // value outside [roman.Minimum, roman.Maximum]
//	}
//
// Range:
//
//	Zero has no Roman numeral, so Minimum is 1. Maximum is derived from
//	the alphabet size: with seven symbols the last one (M) has no five
//	or ten partner, so the thousands digit can go up to 3 and
//	Maximum = 3999.
//
// Performance:
//
//   - Time:   O(d), d = number of decimal digits (at most 4)
//   - Memory: at most 4 symbols per decimal digit
package roman
