package disasm

import "x86dis/internal/optable"

func (d *Decoder) translateIntel() {
	i := &d.insn
	if !i.Valid() {
		d.out.WriteString(i.Mnemonic.String())
		return
	}
	d.writePrefixes(true)
	d.out.WriteString(i.Mnemonic.String())
	for n := range i.Operands {
		op := &i.Operands[n]
		if op.Type == OperandNone {
			break
		}
		if n == 0 {
			d.out.WriteString(" ")
		} else {
			d.out.WriteString(", ")
		}
		d.intelOperand(n, needsCast(i, n))
	}
}

func (d *Decoder) intelCast(op *Operand) {
	if d.insn.Far {
		d.out.WriteString("far ")
	}
	d.out.WriteString(castNames[op.Size])
}

func (d *Decoder) intelOperand(n int, cast bool) {
	op := &d.insn.Operands[n]
	switch op.Type {
	case OperandReg:
		d.out.WriteString(op.Base.String())
	case OperandMem:
		if cast {
			d.intelCast(op)
		}
		d.out.WriteString("[")
		if op.Segment != optable.RegNone {
			d.out.WriteString(op.Segment.String() + ":")
		}
		if op.Base != optable.RegNone {
			d.out.WriteString(op.Base.String())
		}
		if op.Index != optable.RegNone {
			if op.Base != optable.RegNone {
				d.out.WriteString("+")
			}
			d.out.WriteString(op.Index.String())
			if op.Scale != 0 {
				d.out.printf("*%d", op.Scale)
			}
		}
		if op.Offset != 0 {
			d.printMemDisp(op, op.Base != optable.RegNone || op.Index != optable.RegNone)
		}
		d.out.WriteString("]")
	case OperandImm:
		d.printImm(op)
	case OperandJimm:
		target, _ := d.insn.Target(n)
		d.printAddr(target)
	case OperandPtr:
		if op.Size == 32 {
			d.out.printf("word 0x%x:0x%x", op.PtrSeg, op.PtrOff&0xffff)
		} else {
			d.out.printf("dword 0x%x:0x%x", op.PtrSeg, op.PtrOff)
		}
	case OperandConst:
		if cast {
			d.intelCast(op)
		}
		d.out.printf("%d", op.Value)
	}
}
