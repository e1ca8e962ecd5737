package format

import "unicode"

// asciiDigit is a character guaranteed to be in the range '0' through '9'.
// The formatter produces these from the decimal rendering of a big.Int and
// from literal zero padding, so the guarantee holds by construction.
type asciiDigit byte

// digitFamily identifies the decimal-digit family of a script by its
// representative zero character.
// For example, the family of '٣' (Arabic-Indic three) is '٠'.
type digitFamily rune

// newDigitFamily returns the digit family containing c.
// It scans the decimal-number ranges of the Unicode tables; within a range
// starting at lo, the family zero is lo + (c-lo)/10.
// It returns false if c is not a decimal digit in any range.
func newDigitFamily(c rune) (digitFamily, bool) {
	u := uint32(c)
	// Decimal digits span multiple Unicode ranges, the ASCII digits versus
	// all the other scripts, so each range has to be checked in turn.
	for _, r := range unicode.Nd.R16 {
		if uint32(r.Lo) <= u && u <= uint32(r.Hi) {
			return digitFamily(uint32(r.Lo) + (u-uint32(r.Lo))/10), true
		}
	}
	for _, r := range unicode.Nd.R32 {
		if r.Lo <= u && u <= r.Hi {
			return digitFamily(r.Lo + (u-r.Lo)/10), true
		}
	}
	return 0, false
}

// digit returns the character representing d in family f.
func (f digitFamily) digit(d asciiDigit) rune {
	return rune(f) + rune(d-'0')
}

// isGroupSeparator reports whether c is legal as a group separator in a
// picture string.
// Characters whose general category is a number (Nd, Nl, No) or a letter
// (Lu, Ll, Lt, Lm, Lo) are not allowed; every other category, including
// punctuation, symbols, and spaces, is.
func isGroupSeparator(c rune) bool {
	return !unicode.In(c, unicode.N, unicode.L)
}
