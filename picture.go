package format

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidPicture is returned by [Parse] when a picture string is
// malformed. It is the only failure kind this package produces; errors
// returned by [Parse] wrap it together with the offending character.
var ErrInvalidPicture = errors.New("invalid picture string")

// signKind distinguishes the three kinds of positions in a picture string.
type signKind uint8

const (
	optionalDigit  signKind = iota // '#', filled only if a digit remains
	mandatoryDigit                 // a decimal digit, filled or zero-padded
	groupSeparator                 // any non-letter non-number character
)

// A sign is one position of a picture string.
type sign struct {
	kind signKind
	sep  rune // the separator character, set only for groupSeparator
}

// pattern is the classified sign sequence of a picture.
// A regular pattern reduces to a single separator and group size that
// repeat indefinitely leftward; a non-regular pattern replays its explicit
// sign list once and then yields optional digits forever.
type pattern struct {
	regular   bool
	sep       rune   // regular only: the group separator
	size      int    // regular only: digits per group
	signs     []sign // non-regular only: signs, least significant first
	mandatory int    // number of mandatory digits in the picture
	family    digitFamily
	hasFamily bool
}

// reader returns a stream over the pattern's signs ordered from the least
// significant digit position upward. The stream never runs out; digit
// exhaustion, not sign exhaustion, terminates formatting.
func (p *pattern) reader() signReader {
	return signReader{pat: p}
}

// signReader produces the unbounded sign stream of a pattern.
type signReader struct {
	pat *pattern
	pos int
}

// next returns the sign for the next more significant position.
func (r *signReader) next() sign {
	p := r.pat
	if p.regular {
		if r.pos < p.size {
			r.pos++
			return sign{kind: mandatoryDigit}
		}
		r.pos = 0
		return sign{kind: groupSeparator, sep: p.sep}
	}
	if r.pos < len(p.signs) {
		s := p.signs[r.pos]
		r.pos++
		return s
	}
	return sign{kind: optionalDigit}
}

// Picture is a parsed, validated, and classified picture string.
// It is immutable and safe for concurrent use by multiple goroutines.
// The zero value is not a valid picture; use [Parse] or [MustParse].
type Picture struct {
	text string
	pat  pattern
}

// Parse converts a picture string to a [Picture].
//
// The input string must be non-empty and may contain:
//
//   - '#', an optional digit, filled only if the number has a digit left
//     for it;
//   - any decimal digit, a mandatory digit, filled or padded with the
//     digit family's zero;
//   - any character that is neither a letter nor a number, a group
//     separator.
//
// All digits in one picture must belong to a single digit family, and that
// family also selects the script of the output digits.
//
// Parse returns an error wrapping [ErrInvalidPicture] if:
//   - the picture is empty or contains a character matching none of the
//     three kinds above;
//   - a group separator starts or ends the picture, or two group
//     separators are adjacent;
//   - an optional digit follows a mandatory digit or ends the picture;
//   - digits from more than one digit family appear.
func Parse(pict string) (Picture, error) {
	signs, family, hasFamily, err := parsePicture(pict)
	if err != nil {
		return Picture{}, err
	}
	if err = validate(signs); err != nil {
		return Picture{}, err
	}
	return Picture{text: pict, pat: classify(signs, family, hasFamily)}, nil
}

// parsePicture converts the picture characters to signs and detects the
// digit family of the mandatory digits. Structural rules between adjacent
// signs are left to validate, except the rule that optional digits may
// only precede mandatory digits, which needs the running scan state.
func parsePicture(pict string) ([]sign, digitFamily, bool, error) {
	if pict == "" {
		return nil, 0, false, fmt.Errorf("empty picture: %w", ErrInvalidPicture)
	}
	var (
		signs         []sign
		family        digitFamily
		hasFamily     bool
		mandatorySeen bool
	)
	for _, c := range pict {
		switch {
		case c == '#':
			if mandatorySeen {
				return nil, 0, false, fmt.Errorf("optional digit after mandatory digit: %w", ErrInvalidPicture)
			}
			signs = append(signs, sign{kind: optionalDigit})
		case isGroupSeparator(c):
			signs = append(signs, sign{kind: groupSeparator, sep: c})
		default:
			f, ok := newDigitFamily(c)
			if !ok {
				return nil, 0, false, fmt.Errorf("invalid character %q: %w", c, ErrInvalidPicture)
			}
			if hasFamily && f != family {
				return nil, 0, false, fmt.Errorf("digit %q is not in the digit family of %q: %w", c, family.digit('0'), ErrInvalidPicture)
			}
			family, hasFamily = f, true
			mandatorySeen = true
			signs = append(signs, sign{kind: mandatoryDigit})
		}
	}
	return signs, family, hasFamily, nil
}

// validate checks the structural rules between adjacent signs in a single
// left-to-right pass with one sign of lookahead.
func validate(signs []sign) error {
	if signs[0].kind == groupSeparator {
		return fmt.Errorf("leading group separator %q: %w", signs[0].sep, ErrInvalidPicture)
	}
	for i, s := range signs {
		last := i == len(signs)-1
		switch s.kind {
		case optionalDigit:
			if last {
				return fmt.Errorf("trailing optional digit: %w", ErrInvalidPicture)
			}
		case groupSeparator:
			if last {
				return fmt.Errorf("trailing group separator %q: %w", s.sep, ErrInvalidPicture)
			}
			if signs[i+1].kind == groupSeparator {
				return fmt.Errorf("adjacent group separators: %w", ErrInvalidPicture)
			}
		}
	}
	return nil
}

// classify scans the signs from the most significant position down,
// establishing groups from the low-order end. If every group uses the same
// separator character and the same size, the pattern collapses to a
// regular group that repeats indefinitely leftward, so an arbitrarily
// large number never runs out of sign positions. The group preceding the
// leftmost separator may be shorter; it is never compared.
func classify(signs []sign, family digitFamily, hasFamily bool) pattern {
	var (
		sep       rune
		hasSep    bool
		size      int
		hasSize   bool
		count     int
		mandatory int
	)
	regular := true
	for i := len(signs) - 1; i >= 0; i-- {
		switch s := signs[i]; s.kind {
		case groupSeparator:
			if hasSep && s.sep != sep {
				regular = false
			}
			if hasSize && count != size {
				regular = false
			}
			sep, hasSep = s.sep, true
			size, hasSize = count, true
			count = 0
		case mandatoryDigit:
			mandatory++
			count++
		case optionalDigit:
			count++
		}
	}
	if regular && hasSep {
		return pattern{
			regular:   true,
			sep:       sep,
			size:      size,
			mandatory: mandatory,
			family:    family,
			hasFamily: hasFamily,
		}
	}
	// The sign stream runs from the least significant position upward, so
	// a non-regular pattern keeps its signs reversed.
	rev := make([]sign, len(signs))
	for i, s := range signs {
		rev[len(signs)-1-i] = s
	}
	return pattern{
		signs:     rev,
		mandatory: mandatory,
		family:    family,
		hasFamily: hasFamily,
	}
}

// String method implements the [fmt.Stringer] interface and returns the
// original picture text.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Picture) String() string {
	return p.text
}

// Format renders z according to the picture.
// Formatting never fails once a picture has been parsed.
//
// The number's decimal digits are consumed from the least significant end
// in lockstep with the picture's sign stream. A number shorter than the
// picture's mandatory digits is padded with the digit family's zero; a
// number longer than the picture keeps consuming signs, which a regular
// pattern supplies by repeating its group and a non-regular pattern by
// yielding optional digits past the end of its list.
func (p Picture) Format(z *big.Int) string {
	digits := z.String() // ASCII decimal digits, most significant first
	neg := z.Sign() < 0
	if neg {
		digits = digits[1:] // drop the minus
	}

	// Zero padding for mandatory positions beyond the number's own
	// digits. It sits past the number's digits in the walk below.
	zeros := p.pat.mandatory - len(digits)
	if zeros < 0 {
		zeros = 0
	}
	total := len(digits) + zeros

	out := make([]rune, 0, total+total/3+2)
	rd := p.pat.reader()
	for used := 0; ; {
		s := rd.next()
		if used == total {
			// Out of digits. Stopping here, before emitting, also keeps
			// a separator from leading the output.
			break
		}
		if s.kind == groupSeparator {
			out = append(out, s.sep)
			continue
		}
		d := asciiDigit('0')
		if used < len(digits) {
			d = asciiDigit(digits[len(digits)-1-used])
		}
		used++
		if p.pat.hasFamily {
			out = append(out, p.pat.family.digit(d))
		} else {
			out = append(out, rune(d))
		}
	}
	if neg {
		out = append(out, '-')
	}

	// The walk was least significant first; flip to reading order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// FormatInt formats z according to the picture string pict.
// It is shorthand for [Parse] followed by [Picture.Format].
//
// FormatInt returns an error wrapping [ErrInvalidPicture] if the picture
// string is malformed; see [Parse] for the rules.
func FormatInt(z *big.Int, pict string) (string, error) {
	p, err := Parse(pict)
	if err != nil {
		return "", err
	}
	return p.Format(z), nil
}
