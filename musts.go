package format

import (
	"fmt"
	"math/big"
)

// MustParse is like [Parse] but panics if the picture cannot be parsed.
// It simplifies safe initialization of global variables holding pictures.
func MustParse(pict string) Picture {
	p, err := Parse(pict)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", pict, err))
	}
	return p
}

// MustFormatInt is like [FormatInt] but panics if the picture cannot be
// parsed.
func MustFormatInt(z *big.Int, pict string) string {
	s, err := FormatInt(z, pict)
	if err != nil {
		panic(fmt.Sprintf("MustFormatInt(%v, %q) failed: %v", z, pict, err))
	}
	return s
}
