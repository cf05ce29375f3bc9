package packet

import (
	"fmt"
)

// Encode serializes p into its bit stream without trailing padding.
//
// Literals are written in the minimal number of 5-bit groups. Operators use
// the header chosen by WithLengthMode (LengthBits by default). Encode is the
// inverse of Decode: Decode(Encode(p)) yields a tree equal to p.
func Encode(p *Packet, opts ...EncodeOption) (Bits, error) {
	cfg := DefaultEncodeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &writer{}
	if err := w.packet(p, cfg); err != nil {
		return nil, err
	}

	return w.bits, nil
}

func (w *writer) packet(p *Packet, cfg EncodeOptions) error {
	if p.Version >= 1<<versionBits {
		return fmt.Errorf("%w: version %d", ErrFieldOverflow, p.Version)
	}
	if err := p.Type.checkOperands(len(p.Children)); err != nil {
		return fmt.Errorf("%w: type %d with %d children", err, p.Type, len(p.Children))
	}

	w.write(uint64(p.Version), versionBits)
	w.write(uint64(p.Type), typeBits)

	if p.Type == Literal {
		w.literal(p.Value)
		return nil
	}

	// Encode children into a scratch writer so the header can carry their size.
	body := &writer{}
	for _, c := range p.Children {
		if err := body.packet(c, cfg); err != nil {
			return err
		}
	}

	switch cfg.Mode {
	case LengthCount:
		if len(p.Children) >= 1<<subCountBits {
			return fmt.Errorf("%w: %d sub-packets", ErrFieldOverflow, len(p.Children))
		}
		w.write(1, lengthTypeBits)
		w.write(uint64(len(p.Children)), subCountBits)
	default:
		if len(body.bits) >= 1<<totalLenBits {
			return fmt.Errorf("%w: %d sub-packet bits", ErrFieldOverflow, len(body.bits))
		}
		w.write(0, lengthTypeBits)
		w.write(uint64(len(body.bits)), totalLenBits)
	}
	w.bits = append(w.bits, body.bits...)

	return nil
}

// literal writes v as continuation-flagged nibble groups.
func (w *writer) literal(v uint64) {
	groups := 1
	for rest := v >> nibbleBits; rest != 0; rest >>= nibbleBits {
		groups++
	}
	for g := groups - 1; g >= 0; g-- {
		var cont uint64
		if g > 0 {
			cont = 1
		}
		w.write(cont, 1)
		w.write(v>>(uint(g)*nibbleBits)&0xF, nibbleBits)
	}
}
