// Package rank implements the fractional-indexing order keys that keep
// sibling items sorted without renumbering on every insert. A rank is an
// opaque, densely-representable token: a signed, length-prefixed base-62
// integer part followed by arbitrary-precision fractional digits. Byte-wise
// lexicographic order of the tokens IS the total order, so ranks can be
// compared, stored, and indexed as plain strings.
//
// Key shape:
//   - digits are 0-9A-Za-z in ASCII order
//   - the head byte encodes the sign and length of the integer part:
//     'a'..'z' mean a positive integer of 1..26 digits, 'A'..'Z' mean a
//     negative one of 26..1 digits
//   - any digits after the integer part are the fraction, with no trailing
//     zero (the canonical form of x.50 is x.5)
//
// The zero-integer key "a0" is the middle sentinel handed out for empty
// sibling sets. The integer parts "A" + 26 zeros and "z" + 26 z's are the
// absolute minimum and maximum; stepping past them is a hard stop
// (no_headroom). Nothing in this package retries or renormalizes.
package rank

import (
	"strings"

	"github.com/torvane/daybook/errors"
)

const digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Rank is an order key. The zero value is not a valid rank; use Middle or
// the service operations to obtain one.
type Rank string

// Middle is the sentinel handed out when a sibling set is empty.
const Middle Rank = "a0"

var (
	minIntegerPart = "A" + strings.Repeat("0", 26)
	maxIntegerPart = "z" + strings.Repeat("z", 26)
)

// integerLength decodes the head byte into the total length of the integer
// part, including the head itself.
func integerLength(head byte) (int, error) {
	switch {
	case head >= 'a' && head <= 'z':
		return int(head-'a') + 2, nil
	case head >= 'A' && head <= 'Z':
		return int('Z'-head) + 2, nil
	default:
		return 0, errors.Newf("rank head %q must be a letter", string(head))
	}
}

func digitIndex(c byte) int {
	return strings.IndexByte(digits, c)
}

// Validate checks that r is a well-formed rank.
func Validate(r Rank) error {
	s := string(r)
	if s == "" {
		return errors.New("empty rank")
	}
	n, err := integerLength(s[0])
	if err != nil {
		return err
	}
	if len(s) < n {
		return errors.Newf("rank %q shorter than its declared integer part", s)
	}
	for i := 1; i < len(s); i++ {
		if digitIndex(s[i]) < 0 {
			return errors.Newf("rank %q contains invalid digit %q", s, string(s[i]))
		}
	}
	if len(s) > n && s[len(s)-1] == '0' {
		return errors.Newf("rank %q has a trailing fractional zero", s)
	}
	return nil
}

// integerPart splits r into its integer part; the remainder is the fraction.
func integerPart(r Rank) (string, string, error) {
	if err := Validate(r); err != nil {
		return "", "", err
	}
	n, _ := integerLength(r[0])
	return string(r[:n]), string(r[n:]), nil
}

// incrementInteger returns the next integer key, or false at the absolute
// maximum.
func incrementInteger(x string) (string, bool) {
	head := x[0]
	digs := []byte(x[1:])
	carry := true
	for i := len(digs) - 1; carry && i >= 0; i-- {
		d := digitIndex(digs[i]) + 1
		if d == len(digits) {
			digs[i] = '0'
		} else {
			digs[i] = digits[d]
			carry = false
		}
	}
	if carry {
		switch {
		case head == 'Z':
			// Negative magnitude exhausted: cross into the positives.
			return "a0", true
		case head == 'z':
			return "", false
		case head >= 'a':
			// Positive growing one magnitude longer.
			return string(head+1) + string(digs) + "0", true
		default:
			// Negative shrinking one magnitude shorter.
			return string(head+1) + string(digs[:len(digs)-1]), true
		}
	}
	return string(head) + string(digs), true
}

// decrementInteger returns the previous integer key, or false at the
// absolute minimum.
func decrementInteger(x string) (string, bool) {
	head := x[0]
	digs := []byte(x[1:])
	borrow := true
	for i := len(digs) - 1; borrow && i >= 0; i-- {
		d := digitIndex(digs[i]) - 1
		if d < 0 {
			digs[i] = digits[len(digits)-1]
		} else {
			digs[i] = digits[d]
			borrow = false
		}
	}
	if borrow {
		switch {
		case head == 'a':
			// Positive magnitude exhausted: cross into the negatives.
			return "Zz", true
		case head == 'A':
			return "", false
		case head <= 'Z':
			// Negative growing one magnitude longer.
			return string(head-1) + string(digs) + string(digits[len(digits)-1]), true
		default:
			// Positive shrinking one magnitude shorter.
			return string(head-1) + string(digs[:len(digs)-1]), true
		}
	}
	return string(head) + string(digs), true
}

// midpoint returns a fraction strictly between a and b. An empty b means an
// open upper bound. Preconditions: a < b when b is bounded, and neither side
// carries a trailing zero; both hold for fractions split off valid ranks.
func midpoint(a, b string, bounded bool) string {
	if bounded {
		// Shared prefix recurses so only the first differing digit matters.
		n := 0
		for n < len(b) {
			ca := byte('0')
			if n < len(a) {
				ca = a[n]
			}
			if ca != b[n] {
				break
			}
			n++
		}
		if n > 0 {
			return b[:n] + midpoint(trimPrefix(a, n), b[n:], true)
		}
	}

	digitA := 0
	if a != "" {
		digitA = digitIndex(a[0])
	}
	digitB := len(digits)
	if bounded {
		digitB = digitIndex(b[0])
	}
	if digitB-digitA > 1 {
		mid := (digitA + digitB + 1) / 2
		return string(digits[mid])
	}
	if bounded && len(b) > 1 {
		return b[:1]
	}
	return string(digits[digitA]) + midpoint(trimPrefix(a, 1), "", false)
}

func trimPrefix(s string, n int) string {
	if n >= len(s) {
		return ""
	}
	return s[n:]
}
