package disasm

import (
	"strings"

	"x86dis/internal/optable"
)

var attSuffix = map[int]string{8: "b", 16: "w", 32: "l", 64: "q"}

func (d *Decoder) translateATT() {
	i := &d.insn
	if !i.Valid() {
		d.out.WriteString(i.Mnemonic.String())
		return
	}
	d.writePrefixes(false)

	ops := &i.Operands
	name := i.Mnemonic.String()
	star := false
	reverse := true
	switch i.Mnemonic {
	case optable.Retf:
		name = "lret"
	case optable.Jmp, optable.Call:
		if i.Far || ops[0].Type == OperandPtr {
			name = "l" + name
		}
		star = ops[0].Type == OperandReg || ops[0].Type == OperandMem
	case optable.Bound, optable.Enter:
		reverse = false
	default:
		// x87 memory forms carry their size in the mnemonic already.
		if needsCast(i, 0) && !strings.HasPrefix(name, "f") {
			name += attSuffix[ops[0].Size]
		}
	}
	d.out.WriteString(name)

	n := i.NumOperands()
	if n == 0 {
		return
	}
	d.out.WriteString(" ")
	if star {
		d.out.WriteString("*")
	}
	for k := 0; k < n; k++ {
		idx := k
		if reverse {
			idx = n - 1 - k
		}
		if k > 0 {
			d.out.WriteString(", ")
		}
		d.attOperand(idx)
	}
}

func (d *Decoder) attOperand(n int) {
	op := &d.insn.Operands[n]
	switch op.Type {
	case OperandReg:
		d.out.WriteString("%" + op.Base.String())
	case OperandMem:
		if op.Segment != optable.RegNone {
			d.out.WriteString("%" + op.Segment.String() + ":")
		}
		if op.Offset != 0 {
			d.printMemDisp(op, false)
		}
		if op.Base == optable.RegNone && op.Index == optable.RegNone {
			return
		}
		d.out.WriteString("(")
		if op.Base != optable.RegNone {
			d.out.WriteString("%" + op.Base.String())
		}
		if op.Index != optable.RegNone {
			d.out.WriteString(",%" + op.Index.String())
			if op.Scale != 0 {
				d.out.printf(",%d", op.Scale)
			}
		}
		d.out.WriteString(")")
	case OperandImm:
		d.out.WriteString("$")
		d.printImm(op)
	case OperandJimm:
		target, _ := d.insn.Target(n)
		d.printAddr(target)
	case OperandPtr:
		off := op.PtrOff
		if op.Size == 32 {
			off &= 0xffff
		}
		d.out.printf("$0x%x, $0x%x", op.PtrSeg, off)
	case OperandConst:
		d.out.printf("$0x%x", op.Value)
	}
}
