package disasm

import "x86dis/internal/optable"

func signExtend(v uint64, bits int) int64 {
	switch bits {
	case 8:
		return int64(int8(v))
	case 16:
		return int64(int16(v))
	case 32:
		return int64(int32(v))
	}
	return int64(v)
}

func sizeMask(bits int) uint64 {
	if bits >= 64 || bits <= 0 {
		return ^uint64(0)
	}
	return 1<<uint(bits) - 1
}

// SignExtended returns the value of an immediate operand widened the way
// the processor widens it:
//
//	8 bits, sign-extending form   sign-extend, masked to the operand size
//	8 bits, otherwise             zero-extend
//	16 bits                       zero-extend
//	32 bits                       sign-extend under a 64-bit operand size
//	64 bits                       as is
//
// Immediates of OpSI and OpJ operands are the sign-extending forms.
func (i *Instruction) SignExtended(op int) uint64 {
	if op < 0 || op >= len(i.Operands) {
		return 0
	}
	o := &i.Operands[op]
	switch o.Size {
	case 8:
		if o.Code == optable.OpSI || o.Code == optable.OpJ {
			v := uint64(int64(int8(o.Value)))
			if i.OprSize < 64 {
				v &= sizeMask(i.OprSize)
			}
			return v
		}
		return o.Value & 0xff
	case 16:
		return o.Value & 0xffff
	case 32:
		if i.OprSize == 64 {
			return uint64(int64(int32(o.Value)))
		}
		return o.Value & 0xffffffff
	}
	return o.Value
}

// Target returns the destination of a relative branch operand: the address
// after the instruction plus the displacement, truncated to the operand
// size.
func (i *Instruction) Target(op int) (uint64, bool) {
	if op < 0 || op >= len(i.Operands) || i.Operands[op].Type != OperandJimm {
		return 0, false
	}
	o := &i.Operands[op]
	next := i.Offset + uint64(i.Len)
	return (next + uint64(signExtend(o.Value, o.Size))) & sizeMask(i.OprSize), true
}
