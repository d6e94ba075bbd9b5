package mac

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// AddrLen is the length of a MAC-48 address in bytes.
	AddrLen = 6
	// MaxPrefixLen leaves at least one byte of every address to the source.
	MaxPrefixLen = AddrLen - 1
)

// Prefix is a validated run of 0 to 5 leading address bytes.
// The zero value is the empty prefix.
type Prefix struct {
	bytes []byte
}

// ParsePrefix canonicalizes s and decodes it into a Prefix.
//
// Every rune that is not a letter or digit is dropped and the rest is
// upper-cased, so "02:ab", "02-AB" and "02ab" are the same prefix. The
// canonical form must hold an even number of hex digits, at most 10.
// Only ASCII hex digits are accepted; other Unicode letters and digits
// survive canonicalization and then fail with ErrInvalidHexDigit.
func ParsePrefix(s string) (Prefix, error) {
	canon := canonicalHex(s)
	if len(canon)%2 != 0 || len(canon) > MaxPrefixLen*2 {
		return Prefix{}, fmt.Errorf("%w: %q has %d hex characters", ErrInvalidPrefix, s, len(canon))
	}

	out := make([]byte, 0, len(canon)/2)
	for i := 0; i < len(canon); i += 2 {
		hi, ok1 := hexNibble(canon[i])
		lo, ok2 := hexNibble(canon[i+1])
		if !ok1 || !ok2 {
			return Prefix{}, fmt.Errorf("%w: %q in prefix %q", ErrInvalidHexDigit, string(canon[i:i+2]), s)
		}
		out = append(out, hi<<4|lo)
	}
	return Prefix{bytes: out}, nil
}

// MustParsePrefix is like ParsePrefix but panics on error.
func MustParsePrefix(s string) Prefix {
	p, err := ParsePrefix(s)
	if err != nil {
		panic(fmt.Sprintf("mac.MustParsePrefix(%q): %v", s, err))
	}
	return p
}

// Len returns the number of fixed bytes.
func (p Prefix) Len() int { return len(p.bytes) }

// Bytes returns a copy of the fixed bytes.
func (p Prefix) Bytes() []byte {
	out := make([]byte, len(p.bytes))
	copy(out, p.bytes)
	return out
}

// String returns the prefix as colon-separated uppercase hex pairs.
func (p Prefix) String() string {
	var sb strings.Builder
	for i, b := range p.bytes {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteByte(hexUpper[b>>4])
		sb.WriteByte(hexUpper[b&0x0f])
	}
	return sb.String()
}

// FirstByteAltered reports whether normalizing for local rewrites the
// first byte supplied by the prefix.
func (p Prefix) FirstByteAltered(local bool) bool {
	if len(p.bytes) == 0 {
		return false
	}
	return NormalizeFirstByte(p.bytes[0], local) != p.bytes[0]
}

// canonicalHex keeps letters and digits of s, upper-cased.
// Non-ASCII letters survive here and fail later as invalid hex digits.
func canonicalHex(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			out = append(out, unicode.ToUpper(r))
		}
	}
	return out
}

func hexNibble(r rune) (byte, bool) {
	switch {
	case '0' <= r && r <= '9':
		return byte(r - '0'), true
	case 'A' <= r && r <= 'F':
		return byte(r - 'A' + 10), true //nolint:mnd
	default:
		return 0, false
	}
}
