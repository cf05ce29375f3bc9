package packet

import (
	"fmt"
	"strings"
)

// Bits is a bit stream, one element per bit, each 0 or 1, most-significant first.
type Bits []uint8

// ParseHex expands a hexadecimal transmission into its bit stream.
// Surrounding whitespace is ignored; digits may be either case.
func ParseHex(s string) (Bits, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInput
	}

	out := make(Bits, 0, len(s)*nibbleBits)
	for i := 0; i < len(s); i++ {
		v, ok := hexValue(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidHex, s[i], i)
		}
		for shift := nibbleBits - 1; shift >= 0; shift-- {
			out = append(out, (v>>uint(shift))&1)
		}
	}

	return out, nil
}

// ParseBits reads a string of '0' and '1' symbols.
func ParseBits(s string) (Bits, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInput
	}

	out := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			out[i] = 0
		case '1':
			out[i] = 1
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, s[i], i)
		}
	}

	return out, nil
}

// String renders b as a run of '0' and '1'.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteByte('0' + bit)
	}

	return sb.String()
}

// Hex packs b into upper-case hex, padding the final nibble with zeros.
func (b Bits) Hex() string {
	const digits = "0123456789ABCDEF"
	var sb strings.Builder
	sb.Grow((len(b) + nibbleBits - 1) / nibbleBits)
	for i := 0; i < len(b); i += nibbleBits {
		var v uint8
		for j := 0; j < nibbleBits; j++ {
			v <<= 1
			if i+j < len(b) {
				v |= b[i+j]
			}
		}
		sb.WriteByte(digits[v])
	}

	return sb.String()
}

// allZero reports whether every bit in b is 0.
func (b Bits) allZero() bool {
	for _, bit := range b {
		if bit != 0 {
			return false
		}
	}

	return true
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}

// reader is a forward-only cursor over a bit stream.
// One reader is owned by exactly one Decode call.
type reader struct {
	bits  Bits
	pos   int
	limit int // end of the innermost length-type 0 window, 0 if none
}

// read consumes n bits (n ≤ 64) and returns them as an unsigned integer.
// Crossing the end of an enclosing length window is a length mismatch;
// crossing the end of the stream first is a truncation.
func (r *reader) read(n int) (uint64, error) {
	if r.limit > 0 && r.limit < len(r.bits) && r.pos+n > r.limit {
		return 0, fmt.Errorf("%w: need %d bits at offset %d, window ends at %d",
			ErrLengthMismatch, n, r.pos, r.limit)
	}
	if r.pos+n > len(r.bits) {
		return 0, fmt.Errorf("%w: need %d bits at offset %d, have %d",
			ErrTruncated, n, r.pos, len(r.bits)-r.pos)
	}

	var v uint64
	for _, bit := range r.bits[r.pos : r.pos+n] {
		v = v<<1 | uint64(bit)
	}
	r.pos += n

	return v, nil
}

// writer appends fixed-width fields to a bit stream.
type writer struct {
	bits Bits
}

// write appends the low n bits of v, most-significant first.
func (w *writer) write(v uint64, n int) {
	for shift := n - 1; shift >= 0; shift-- {
		w.bits = append(w.bits, uint8(v>>uint(shift))&1)
	}
}
