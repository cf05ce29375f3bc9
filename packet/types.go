// Package packet defines the core types, sentinel errors and encoding
// options for the hierarchical binary packet format.
//
// A transmission is a hexadecimal string. Every hex digit expands to four
// bits, most-significant bit first, and the resulting bit stream carries a
// single outermost packet followed by zero padding.
//
// Packet header (6 bits):
//
//	VVV TTT
//	 │   └── type id: 4 = literal, anything else = operator
//	 └────── version (0..7)
//
// Literal body: 5-bit groups "Cxxxx". C=1 means another group follows,
// C=0 marks the final group. The value is the concatenation of the xxxx nibbles.
//
// Operator body: one length-type bit I, then
//
//	I=0 → 15-bit total length in bits of the sub-packet section,
//	I=1 → 11-bit number of immediately contained sub-packets.
//
// Errors (sentinel):
//
//	– ErrEmptyInput      if the input string carries no symbols.
//	– ErrInvalidHex      if a character is not a hex digit.
//	– ErrInvalidBit      if a character is not '0' or '1'.
//	– ErrTruncated       if the stream ends inside a header or a literal group.
//	– ErrLengthMismatch  if type-0 sub-packets do not fill their declared length exactly.
//	– ErrOperandCount    if an operator has the wrong number of children.
//	– ErrUnknownType     if a type id has no operator meaning.
//	– ErrLiteralOverflow if a literal does not fit in 64 bits.
//	– ErrTrailingData    if non-zero bits follow the outermost packet.
//	– ErrFieldOverflow   if Encode cannot fit a field into its bit width.
package packet

import (
	"errors"
)

// Sentinel errors returned by the decoder, evaluator and encoder.
var (
	// ErrEmptyInput indicates that there was nothing to parse.
	ErrEmptyInput = errors.New("packet: empty input")

	// ErrInvalidHex indicates a character outside [0-9A-Fa-f].
	ErrInvalidHex = errors.New("packet: invalid hex digit")

	// ErrInvalidBit indicates a character other than '0' or '1'.
	ErrInvalidBit = errors.New("packet: invalid bit symbol")

	// ErrTruncated indicates the bit stream ended before a field was complete.
	ErrTruncated = errors.New("packet: truncated bit stream")

	// ErrLengthMismatch indicates that sub-packets of a length-type 0 operator
	// consumed a different number of bits than the operator declared.
	ErrLengthMismatch = errors.New("packet: sub-packet length mismatch")

	// ErrOperandCount indicates an operator with an invalid number of children.
	ErrOperandCount = errors.New("packet: invalid operand count")

	// ErrUnknownType indicates a type id without operator semantics.
	ErrUnknownType = errors.New("packet: unknown type id")

	// ErrLiteralOverflow indicates a literal value wider than 64 bits.
	ErrLiteralOverflow = errors.New("packet: literal overflows uint64")

	// ErrTrailingData indicates non-zero bits after the outermost packet.
	ErrTrailingData = errors.New("packet: non-zero trailing data")

	// ErrFieldOverflow indicates that a value does not fit its fixed-width field on encode.
	ErrFieldOverflow = errors.New("packet: field overflows its bit width")
)

// Field widths of the wire format.
const (
	versionBits    = 3
	typeBits       = 3
	headerBits     = versionBits + typeBits
	groupBits      = 5
	nibbleBits     = 4
	lengthTypeBits = 1
	totalLenBits   = 15
	subCountBits   = 11
)

// Type is the 3-bit type id of a packet.
type Type uint8

const (
	// Sum adds the values of all children.
	Sum Type = 0
	// Product multiplies the values of all children.
	Product Type = 1
	// Minimum yields the smallest child value.
	Minimum Type = 2
	// Maximum yields the largest child value.
	Maximum Type = 3
	// Literal carries an unsigned integer and no children.
	Literal Type = 4
	// GreaterThan yields 1 if the first child is greater than the second, else 0.
	GreaterThan Type = 5
	// LessThan yields 1 if the first child is less than the second, else 0.
	LessThan Type = 6
	// EqualTo yields 1 if both children are equal, else 0.
	EqualTo Type = 7
)

// String returns the operator symbol used by Packet.String.
func (t Type) String() string {
	switch t {
	case Sum:
		return "+"
	case Product:
		return "*"
	case Minimum:
		return "min"
	case Maximum:
		return "max"
	case Literal:
		return "lit"
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	case EqualTo:
		return "=="
	default:
		return "?"
	}
}

// IsComparison reports whether t is one of the binary comparison operators.
func (t Type) IsComparison() bool {
	return t == GreaterThan || t == LessThan || t == EqualTo
}

// checkOperands validates the child count of an operator of type t.
// Comparisons take exactly two children; every other operator needs at least one.
func (t Type) checkOperands(n int) error {
	switch {
	case t == Literal:
		if n != 0 {
			return ErrOperandCount
		}
	case t > EqualTo:
		return ErrUnknownType
	case t.IsComparison():
		if n != 2 {
			return ErrOperandCount
		}
	default:
		if n < 1 {
			return ErrOperandCount
		}
	}

	return nil
}

// Packet is one node of a decoded expression tree.
//
// Value is meaningful only when Type == Literal; Children only for operators.
// Packets are built bottom-up by Decode and are not mutated afterwards.
type Packet struct {
	Version  uint8
	Type     Type
	Value    uint64
	Children []*Packet
}

// NewLiteral returns a literal packet.
func NewLiteral(version uint8, value uint64) *Packet {
	return &Packet{Version: version, Type: Literal, Value: value}
}

// NewOperator returns an operator packet over the given children.
// The child count is validated by Eval and Encode, not here.
func NewOperator(version uint8, t Type, children ...*Packet) *Packet {
	return &Packet{Version: version, Type: t, Children: children}
}

// LengthMode selects the sub-packet header that Encode emits for operators.
type LengthMode int

const (
	// LengthBits emits length-type 0 with a 15-bit total sub-packet length.
	LengthBits LengthMode = iota
	// LengthCount emits length-type 1 with an 11-bit sub-packet count.
	LengthCount
)

// EncodeOptions configures Encode.
type EncodeOptions struct {
	Mode LengthMode // header style for every operator in the tree
}

// EncodeOption represents a functional option for Encode.
type EncodeOption func(*EncodeOptions)

// WithLengthMode sets the operator header style.
func WithLengthMode(m LengthMode) EncodeOption {
	return func(o *EncodeOptions) {
		o.Mode = m
	}
}

// DefaultEncodeOptions returns the defaults: LengthBits.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Mode: LengthBits}
}
