package packet

import (
	"fmt"
	"strconv"
	"strings"
)

// VersionSum returns the sum of the version fields of p and all its descendants.
func (p *Packet) VersionSum() uint64 {
	sum := uint64(p.Version)
	for _, c := range p.Children {
		sum += c.VersionSum()
	}

	return sum
}

// Eval computes the value of the expression rooted at p.
// Children are evaluated first, left to right. Arithmetic wraps at 64 bits.
//
// Operand rules (fail fast, never guessed):
//   - GreaterThan, LessThan, EqualTo require exactly two children.
//   - Sum, Product, Minimum, Maximum require at least one child.
func (p *Packet) Eval() (uint64, error) {
	if p.Type == Literal {
		return p.Value, nil
	}
	if err := p.Type.checkOperands(len(p.Children)); err != nil {
		return 0, fmt.Errorf("%w: type %d with %d children", err, p.Type, len(p.Children))
	}

	vals := make([]uint64, len(p.Children))
	for i, c := range p.Children {
		v, err := c.Eval()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}

	switch p.Type {
	case Sum:
		var acc uint64
		for _, v := range vals {
			acc += v
		}
		return acc, nil
	case Product:
		acc := uint64(1)
		for _, v := range vals {
			acc *= v
		}
		return acc, nil
	case Minimum:
		acc := vals[0]
		for _, v := range vals[1:] {
			acc = min(acc, v)
		}
		return acc, nil
	case Maximum:
		acc := vals[0]
		for _, v := range vals[1:] {
			acc = max(acc, v)
		}
		return acc, nil
	case GreaterThan:
		return boolValue(vals[0] > vals[1]), nil
	case LessThan:
		return boolValue(vals[0] < vals[1]), nil
	case EqualTo:
		return boolValue(vals[0] == vals[1]), nil
	}

	// unreachable: checkOperands rejects every other type
	return 0, ErrUnknownType
}

func boolValue(b bool) uint64 {
	if b {
		return 1
	}

	return 0
}

// String renders p as an s-expression, e.g. "(+ 1 (< 10 11))".
func (p *Packet) String() string {
	var sb strings.Builder
	p.writeTo(&sb)

	return sb.String()
}

func (p *Packet) writeTo(sb *strings.Builder) {
	if p.Type == Literal {
		sb.WriteString(strconv.FormatUint(p.Value, 10))
		return
	}
	sb.WriteByte('(')
	sb.WriteString(p.Type.String())
	for _, c := range p.Children {
		sb.WriteByte(' ')
		c.writeTo(sb)
	}
	sb.WriteByte(')')
}
