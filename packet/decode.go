package packet

import (
	"fmt"
)

// Decode parses one packet from the head of bits.
//
// Returns:
//
//   - p:         the decoded packet tree.
//   - consumed:  number of bits the packet occupies (header + body).
//   - rest:      the unconsumed suffix of bits (shares the backing array).
//   - err:       a wrapped sentinel on any format violation; no partial tree is returned.
//
// Decoding is single-pass and never backtracks. Sub-packets are decoded
// recursively from the same cursor, so the consumed count of an operator is
// exactly its header plus the sum of its children.
func Decode(bits Bits) (*Packet, int, Bits, error) {
	if len(bits) == 0 {
		return nil, 0, nil, ErrEmptyInput
	}

	r := &reader{bits: bits}
	p, err := r.packet()
	if err != nil {
		return nil, 0, nil, err
	}

	return p, r.pos, bits[r.pos:], nil
}

// DecodeHex parses a full hexadecimal transmission. Bits after the
// outermost packet are padding and must all be zero.
func DecodeHex(s string) (*Packet, error) {
	bits, err := ParseHex(s)
	if err != nil {
		return nil, err
	}

	p, consumed, rest, err := Decode(bits)
	if err != nil {
		return nil, err
	}
	if !rest.allZero() {
		return nil, fmt.Errorf("%w: after bit %d", ErrTrailingData, consumed)
	}

	return p, nil
}

// packet decodes one packet at the current cursor position.
func (r *reader) packet() (*Packet, error) {
	start := r.pos

	// 1) Header: version then type id.
	version, err := r.read(versionBits)
	if err != nil {
		return nil, err
	}
	typeID, err := r.read(typeBits)
	if err != nil {
		return nil, err
	}
	t := Type(typeID)

	// 2) Literal body.
	if t == Literal {
		v, err := r.literal()
		if err != nil {
			return nil, err
		}

		return NewLiteral(uint8(version), v), nil
	}

	// 3) Operator body: sub-packets bounded by length or by count.
	children, err := r.subPackets()
	if err != nil {
		return nil, err
	}
	if err = t.checkOperands(len(children)); err != nil {
		return nil, fmt.Errorf("%w: type %d with %d children at offset %d", err, t, len(children), start)
	}

	return NewOperator(uint8(version), t, children...), nil
}

// literal reads 5-bit groups until a group with a clear continuation bit.
func (r *reader) literal() (uint64, error) {
	var v uint64
	for {
		group, err := r.read(groupBits)
		if err != nil {
			return 0, err
		}
		if v>>(64-nibbleBits) != 0 {
			return 0, fmt.Errorf("%w: at offset %d", ErrLiteralOverflow, r.pos-groupBits)
		}
		v = v<<nibbleBits | group&0xF
		if group>>nibbleBits == 0 {
			return v, nil
		}
	}
}

// subPackets reads the length-type bit and the sub-packets it describes.
func (r *reader) subPackets() ([]*Packet, error) {
	lengthType, err := r.read(lengthTypeBits)
	if err != nil {
		return nil, err
	}

	var children []*Packet
	if lengthType == 0 {
		total, err := r.read(totalLenBits)
		if err != nil {
			return nil, err
		}
		begin := r.pos
		outer := r.limit
		if end := begin + int(total); outer == 0 || end < outer {
			r.limit = end
		}
		for r.pos-begin < int(total) {
			child, err := r.packet()
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		r.limit = outer
		// A child that crosses the declared boundary is a format violation,
		// not a reason to keep reading.
		if used := r.pos - begin; used != int(total) {
			return nil, fmt.Errorf("%w: declared %d bits, sub-packets used %d", ErrLengthMismatch, total, used)
		}

		return children, nil
	}

	count, err := r.read(subCountBits)
	if err != nil {
		return nil, err
	}
	children = make([]*Packet, 0, count)
	for i := uint64(0); i < count; i++ {
		child, err := r.packet()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return children, nil
}
