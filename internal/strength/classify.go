// Package strength scores passwords and derives remediation suggestions.
package strength

// ClassPresence reports which character classes appear in a password.
type ClassPresence struct {
	Lower  bool
	Upper  bool
	Digit  bool
	Symbol bool
}

// Classify inspects every rune of password. Anything outside [A-Za-z0-9],
// including whitespace and non-ASCII runes, counts as a symbol.
func Classify(password string) ClassPresence {
	var c ClassPresence
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.Lower = true
		case r >= 'A' && r <= 'Z':
			c.Upper = true
		case r >= '0' && r <= '9':
			c.Digit = true
		default:
			c.Symbol = true
		}
	}
	return c
}

// Count returns the number of classes present.
func (c ClassPresence) Count() int {
	n := 0
	for _, present := range []bool{c.Lower, c.Upper, c.Digit, c.Symbol} {
		if present {
			n++
		}
	}
	return n
}
