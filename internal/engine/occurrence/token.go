// Package occurrence highlights the other occurrences of a selected token.
//
// A selection is a token when the whole selected text is an identifier or
// a numeric literal. Numeric literals cover decimal, octal, hex and binary
// integers with optional digit separators (12'345) and u/l suffixes, and
// decimal or hex floating-point literals with optional exponent and f/l
// suffix. Numeric literals are matched case-insensitively.
package occurrence

import "regexp"

const (
	identifier = `[_a-zA-Z][_a-zA-Z0-9]*`

	decDigits = `\d+(?:'\d+)*`
	hexDigits = `[0-9a-f]+(?:'[0-9a-f]+)*`
	decExp    = `e[+-]?` + decDigits
	hexExp    = `p[+-]?` + decDigits

	floatLiteral = `(?:` +
		`(?:` + decDigits + `)?\.` + decDigits + `(?:` + decExp + `)?` +
		`|` + decDigits + `\.(?:` + decExp + `)?` +
		`|` + decDigits + decExp +
		`|0x(?:` + hexDigits + `)?\.` + hexDigits + hexExp +
		`|0x` + hexDigits + `\.?` + hexExp +
		`)[lf]?`

	intLiteral = `(?:` +
		`[1-9]\d*(?:'\d+)*` +
		`|0[0-7]*(?:'[0-7]+)*` +
		`|0x` + hexDigits +
		`|0b[01]+(?:'[01]+)*` +
		`)(?:u?l{0,2}|l{0,2}u?)`
)

// tokenPattern accepts a whole identifier or numeric literal and nothing
// else.
var tokenPattern = regexp.MustCompile(`^(?:` + identifier + `|(?i:` + floatLiteral + `|` + intLiteral + `))$`)

// IsToken reports whether s, in its entirety, is an identifier or a numeric
// literal.
func IsToken(s string) bool {
	return s != "" && tokenPattern.MatchString(s)
}
