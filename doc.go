// Package numeral is a small, dependency-free library for writing
// integers in historical numeral systems.
//
// 🚀 What is in numeral?
//
//	roman/ — integers 1..3999 to canonical Roman numerals
//	         (I, V, X, L, C, D, M with subtractive notation)
//
// ✨ Why choose numeral?
//
//   - Pure functions: no I/O, no global mutable state, safe for concurrent use
//   - Structured errors: out-of-range input reports the value and the bounds
//   - Exported bounds: validate input yourself before converting
//
// Quick example:
//
//	s, err := roman.Convert(1994) // "MCMXCIV"
//
//	go get github.com/katalvlaran/numeral/roman
package numeral
