package disasm

import (
	"fmt"

	"x86dis/internal/optable"
)

// textBuffer collects rendered text. It appends to an owned slice unless
// an external buffer is set, in which case writes stop at its end.
type textBuffer struct {
	own    []byte
	ext    []byte
	useExt bool
	n      int
}

func (t *textBuffer) setExternal(b []byte) {
	t.ext, t.useExt = b, b != nil
	t.reset()
}

func (t *textBuffer) reset() {
	t.own = t.own[:0]
	t.n = 0
}

func (t *textBuffer) WriteString(s string) {
	if t.useExt {
		t.n += copy(t.ext[t.n:], s)
		return
	}
	t.own = append(t.own, s...)
}

func (t *textBuffer) printf(format string, args ...any) {
	t.WriteString(fmt.Sprintf(format, args...))
}

func (t *textBuffer) String() string {
	if t.useExt {
		return string(t.ext[:t.n])
	}
	return string(t.own)
}

var castNames = map[int]string{
	8:   "byte ",
	16:  "word ",
	32:  "dword ",
	64:  "qword ",
	80:  "tword ",
	128: "oword ",
	256: "yword ",
}

// printAddr writes addr, as symbol or symbol+offset when the resolver
// knows it.
func (d *Decoder) printAddr(addr uint64) {
	if d.resolver != nil {
		if name, off, ok := d.resolver.ResolveSymbol(addr); ok {
			if off != 0 {
				d.out.printf("%s%+d", name, off)
			} else {
				d.out.WriteString(name)
			}
			return
		}
	}
	d.out.printf("0x%x", addr)
}

// printImm writes an immediate. Sign-extending immediates narrower than
// the operand size are widened and masked to it.
func (d *Decoder) printImm(op *Operand) {
	i := &d.insn
	v := op.Value & sizeMask(op.Size)
	if op.Code == optable.OpSI && op.Size != i.OprSize {
		v = uint64(signExtend(op.Value, op.Size))
		if i.OprSize < 64 {
			v &= sizeMask(i.OprSize)
		}
	}
	d.out.printf("0x%x", v)
}

// printMemDisp writes the displacement of a memory operand. A bare
// displacement is an absolute address; otherwise it is signed.
func (d *Decoder) printMemDisp(op *Operand, sign bool) {
	if op.Base == optable.RegNone && op.Index == optable.RegNone {
		d.printAddr(op.Value & sizeMask(op.Offset))
		return
	}
	v := op.Disp()
	switch {
	case v < 0:
		d.out.printf("-0x%x", uint64(-v))
	case v > 0 && sign:
		d.out.printf("+0x%x", v)
	case v > 0:
		d.out.printf("0x%x", v)
	}
}

// writePrefixes writes size overrides the instruction did not use, then
// lock and repeat prefixes.
func (d *Decoder) writePrefixes(withSeg bool) {
	i := &d.insn
	p := &i.Prefix
	if p.Opr && !i.Entry.Prefix.Has(optable.PfxOso) {
		if i.Mode == 16 {
			d.out.WriteString("o32 ")
		} else {
			d.out.WriteString("o16 ")
		}
	}
	if p.Adr && !i.Entry.Prefix.Has(optable.PfxAso) {
		if i.Mode == 32 {
			d.out.WriteString("a16 ")
		} else {
			d.out.WriteString("a32 ")
		}
	}
	if withSeg && p.Seg != optable.RegNone && !i.hasMemOperand() {
		d.out.WriteString(p.Seg.String() + " ")
	}
	if p.Lock {
		d.out.WriteString("lock ")
	}
	switch {
	case p.Rep:
		d.out.WriteString("rep ")
	case p.Repe:
		d.out.WriteString("repe ")
	case p.Repne:
		d.out.WriteString("repne ")
	}
}

func isShiftOrRotate(m optable.Mnemonic) bool {
	switch m {
	case optable.Rcl, optable.Rcr, optable.Rol, optable.Ror, optable.Shl, optable.Shr, optable.Sar:
		return true
	}
	return false
}

// needsCast reports whether operand n of i needs an explicit size because
// the other operands do not imply it.
func needsCast(i *Instruction, n int) bool {
	ops := &i.Operands
	switch n {
	case 0:
		if ops[0].Type != OperandMem {
			return false
		}
		switch ops[1].Type {
		case OperandImm, OperandConst, OperandNone:
			return true
		case OperandReg:
			return ops[1].Base == optable.CL && isShiftOrRotate(i.Mnemonic)
		}
		return ops[0].Size != ops[1].Size
	case 1:
		return ops[1].Type == OperandMem && ops[0].Size != ops[1].Size &&
			!(ops[0].Type == OperandReg && ops[0].Base.Class() == optable.ClassSegment)
	case 2:
		return ops[2].Type == OperandMem && ops[2].Size != ops[1].Size
	}
	return false
}
