package disasm

import (
	"fmt"

	"x86dis/internal/optable"
)

// maxInsnLen is the architectural limit on instruction length.
const maxInsnLen = 15

// state is the scratch of one decode call.
type state struct {
	start     int
	opcode    byte
	str       byte // last f2 or f3 prefix, until consumed
	rex       byte // REX bits the entry honours
	modrm     byte
	haveModRM bool
	err       error
}

type regClass uint8

const (
	classGPR regClass = iota
	classMMX
	classXMM
	classCR
	classDR
	classSeg
	classX87
)

var segOverrides = map[byte]optable.Reg{
	0x26: optable.ES,
	0x2e: optable.CS,
	0x36: optable.SS,
	0x3e: optable.DS,
	0x64: optable.FS,
	0x65: optable.GS,
}

func (d *Decoder) fail(err error, format string, args ...any) {
	if d.st.err == nil {
		d.st.err = fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
	}
}

// next reads one byte of the current instruction.
func (d *Decoder) next() (byte, bool) {
	if d.st.err != nil {
		return 0, false
	}
	b, ok := d.in.next(d.opaque)
	if !ok {
		d.fail(ErrTruncated, "after %d bytes", len(d.insn.bytes))
		return 0, false
	}
	d.insn.bytes = append(d.insn.bytes, b)
	return b, true
}

// readUint reads an n-byte little-endian value.
func (d *Decoder) readUint(n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		b, ok := d.next()
		if !ok {
			return 0
		}
		v |= uint64(b) << (8 * i)
	}
	return v
}

func (d *Decoder) modrm() (byte, bool) {
	if !d.st.haveModRM {
		b, ok := d.next()
		if !ok {
			return 0, false
		}
		d.st.modrm, d.st.haveModRM = b, true
	}
	return d.st.modrm, true
}

func (d *Decoder) decode() {
	d.insn = Instruction{Mode: d.mode, bytes: make([]byte, 0, 16)}
	d.st = state{start: d.in.pos}

	if d.decodePrefixes() && d.walk() && len(d.insn.bytes) > maxInsnLen {
		d.fail(ErrTooLong, "%d bytes", len(d.insn.bytes))
	}
	if d.st.err != nil {
		d.insn = Instruction{
			Mnemonic: optable.Invalid,
			Mode:     d.mode,
			Err:      d.st.err,
			bytes:    d.insn.bytes,
		}
	} else if !d.insn.Entry.Prefix.Has(optable.PfxSeg) && !d.insn.hasMemOperand() {
		d.insn.Prefix.Seg = optable.RegNone
	}
	d.insn.Len = len(d.insn.bytes)
}

// decodePrefixes consumes legacy and REX prefixes and the first opcode
// byte. A REX prefix counts only when it immediately precedes the opcode.
func (d *Decoder) decodePrefixes() bool {
	p := &d.insn.Prefix
	var last byte
	for {
		if len(d.insn.bytes) == maxInsnLen {
			d.fail(ErrTooLong, "%d prefix bytes", len(d.insn.bytes))
			return false
		}
		b, ok := d.next()
		if !ok {
			return false
		}
		if seg, ok := segOverrides[b]; ok {
			p.Seg = seg
			last = b
			continue
		}
		switch b {
		case 0x66:
			p.Opr = true
		case 0x67:
			p.Adr = true
		case 0xf0:
			p.Lock = true
		case 0xf2, 0xf3:
			d.st.str = b
		default:
			if d.mode == 64 && b&0xf0 == 0x40 {
				break
			}
			if d.mode == 64 && last&0xf0 == 0x40 {
				p.Rex = last
			}
			d.st.opcode = b
			return true
		}
		last = b
	}
}

func effOprSize(mode int, rexW, opr bool) int {
	switch mode {
	case 64:
		if rexW {
			return 64
		}
		if opr {
			return 16
		}
		return 32
	case 32:
		if opr {
			return 16
		}
		return 32
	}
	if opr {
		return 32
	}
	return 16
}

func effAdrSize(mode int, adr bool) int {
	switch mode {
	case 64:
		if adr {
			return 32
		}
		return 64
	case 32:
		if adr {
			return 16
		}
		return 32
	}
	if adr {
		return 32
	}
	return 16
}

// walk follows the opcode trie from the primary table to an entry.
func (d *Decoder) walk() bool {
	t := optable.Root()
	idx := int(d.st.opcode)
	for {
		switch n := t.Slot(idx).(type) {
		case *optable.Entry:
			return d.decodeEntry(n)
		case *optable.Table:
			if n.Kind == optable.Kind3DNow {
				return d.decode3DNow(n)
			}
			var ok bool
			if idx, ok = d.selectSlot(n); !ok {
				return false
			}
			t = n
		default:
			d.fail(ErrNoMatch, "% x", d.insn.bytes)
			return false
		}
	}
}

func (d *Decoder) selectSlot(t *optable.Table) (int, bool) {
	p := &d.insn.Prefix
	switch t.Kind {
	case optable.KindOpcode:
		b, ok := d.next()
		return int(b), ok
	case optable.KindSSE:
		return d.selectMandatory(t), true
	case optable.KindMod:
		m, ok := d.modrm()
		if m>>6 == 3 {
			return 1, ok
		}
		return 0, ok
	case optable.KindX87:
		m, ok := d.modrm()
		if ok && m < 0xc0 {
			d.fail(ErrNoMatch, "x87 register form with modrm %#02x", m)
			return 0, false
		}
		return int(m) - 0xc0, ok
	case optable.KindReg:
		m, ok := d.modrm()
		return int(m>>3) & 7, ok
	case optable.KindRM:
		m, ok := d.modrm()
		return int(m) & 7, ok
	case optable.KindOSize:
		return effOprSize(d.mode, p.Rex&8 != 0, p.Opr) / 32, true
	case optable.KindASize:
		return effAdrSize(d.mode, p.Adr) / 32, true
	case optable.KindMode:
		if d.mode == 64 {
			return 1, true
		}
		return 0, true
	case optable.KindVendor:
		switch d.vendor {
		case optable.VendorAny:
			if t.Slot(0) != nil {
				return 0, true
			}
			return 1, true
		case optable.VendorIntel:
			return 1, true
		}
		return 0, true
	}
	d.fail(ErrNoMatch, "unexpected %s table", t.Kind)
	return 0, false
}

// selectMandatory picks the slot of an SSE table. f2 and f3 take
// precedence over 66. A prefix that selects a populated slot is consumed
// as part of the opcode.
func (d *Decoder) selectMandatory(t *optable.Table) int {
	p := &d.insn.Prefix
	pfx := d.st.str
	if pfx == 0 && p.Opr {
		pfx = 0x66
	}
	idx := (int(pfx&0xf) + 1) / 2
	if t.Slot(idx) == nil {
		return optable.SSENone
	}
	if idx != optable.SSENone {
		d.st.str = 0
		if pfx == 0x66 {
			p.Opr = false
		}
		d.insn.MandatoryPrefix = pfx
	}
	return idx
}

// decode3DNow decodes the shared operand form, then picks the mnemonic
// from the suffix byte that follows the operands.
func (d *Decoder) decode3DNow(t *optable.Table) bool {
	form, ok := t.Slot(0x0c).(*optable.Entry)
	if !ok {
		d.fail(ErrNoMatch, "3dnow table without operand form")
		return false
	}
	if !d.decodeEntry(form) {
		return false
	}
	suffix, ok := d.next()
	if !ok {
		return false
	}
	e, ok := t.Slot(int(suffix)).(*optable.Entry)
	if !ok {
		d.fail(ErrNoMatch, "3dnow suffix %#02x", suffix)
		return false
	}
	d.insn.Entry = e
	d.insn.Mnemonic = e.Mnemonic
	for i := range d.insn.Operands {
		d.insn.Operands[i].Access = e.Access[i]
	}
	return true
}

func (d *Decoder) decodeEntry(e *optable.Entry) bool {
	d.insn.Entry = e
	d.insn.Mnemonic = e.Mnemonic
	if !d.resolveMode(e) {
		return false
	}
	d.resolveRep(e)
	for i, spec := range e.Operands {
		if spec.IsNone() {
			break
		}
		op := &d.insn.Operands[i]
		d.decodeOperand(op, spec)
		if d.st.err != nil {
			return false
		}
		op.Code = spec.Code
		op.Access = e.Access[i]
	}
	return d.resolveMnemonic(e)
}

func (d *Decoder) resolveMode(e *optable.Entry) bool {
	p := &d.insn.Prefix
	if d.mode == 64 {
		if e.Prefix.Has(optable.PfxInv64) {
			d.fail(ErrInvalidIn64, "%s", e.Mnemonic)
			return false
		}
		d.st.rex = p.Rex & e.Prefix.RexMask()
		switch {
		case d.st.rex&8 != 0:
			d.insn.OprSize = 64
		case p.Opr:
			d.insn.OprSize = 16
		case e.Prefix.Has(optable.PfxDef64):
			d.insn.OprSize = 64
		default:
			d.insn.OprSize = 32
		}
	} else {
		d.insn.OprSize = effOprSize(d.mode, false, p.Opr)
	}
	d.insn.AdrSize = effAdrSize(d.mode, p.Adr)
	return true
}

func (d *Decoder) resolveRep(e *optable.Entry) {
	p := &d.insn.Prefix
	switch d.st.str {
	case 0xf3:
		if e.Prefix.Has(optable.PfxStr) {
			p.Rep = true
		} else {
			p.Repe = true
		}
	case 0xf2:
		p.Repne = true
	}
}

func (d *Decoder) resolveMnemonic(e *optable.Entry) bool {
	ops := &d.insn.Operands
	switch d.insn.Mnemonic {
	case optable.Swapgs:
		if d.mode != 64 {
			d.fail(ErrNoMatch, "swapgs outside 64-bit mode")
			return false
		}
	case optable.Xchg:
		// 90 exchanges the accumulator with itself unless REX.B is set.
		if e.Operands[0].Code == optable.OpR0 &&
			ops[0].Type == OperandReg && ops[1].Type == OperandReg &&
			ops[0].Base == ops[1].Base {
			ops[0], ops[1] = Operand{}, Operand{}
			d.insn.Mnemonic = optable.Nop
		}
	}
	if d.insn.Mnemonic == optable.Nop && d.insn.Prefix.Repe {
		d.insn.Prefix.Repe = false
		d.insn.Mnemonic = optable.Pause
	}
	return true
}

func (d *Decoder) resolveSize(s optable.Size) int {
	opr := d.insn.OprSize
	switch s {
	case optable.SzV:
		return opr
	case optable.SzZ:
		if opr == 16 {
			return 16
		}
		return 32
	case optable.SzY:
		if opr == 16 {
			return 32
		}
		return opr
	case optable.SzRDQ:
		if d.mode == 64 {
			return 64
		}
		return 32
	case optable.SzP:
		return opr + 16
	}
	return int(s)
}

func (d *Decoder) rexBit(mask byte) int {
	if d.st.rex&mask != 0 {
		return 8
	}
	return 0
}

func (d *Decoder) decodeOperand(op *Operand, spec optable.OperandSpec) {
	size := d.resolveSize(spec.Size)
	switch c := spec.Code; c {
	case optable.OpA:
		d.decodePtr(op)
	case optable.OpMR:
		m, ok := d.modrm()
		if !ok {
			return
		}
		if m>>6 == 3 {
			size = d.resolveSize(spec.RegSize)
		}
		d.decodeRM(op, classGPR, size)
	case optable.OpF, optable.OpM:
		if c == optable.OpF {
			d.insn.Far = true
		}
		if d.requireMod(false) {
			d.decodeRM(op, classGPR, size)
		}
	case optable.OpE:
		d.decodeRM(op, classGPR, size)
	case optable.OpR:
		if d.requireMod(true) {
			d.decodeRM(op, classGPR, size)
		}
	case optable.OpG:
		d.decodeModRMReg(op, classGPR, size)
	case optable.OpI, optable.OpSI:
		d.decodeImm(op, size)
	case optable.OpJ:
		d.decodeImm(op, size)
		op.Type = OperandJimm
	case optable.OpO:
		d.decodeMOffset(op, size)
	case optable.OpS:
		d.decodeModRMReg(op, classSeg, size)
	case optable.OpC:
		d.decodeModRMReg(op, classCR, size)
	case optable.OpD:
		d.decodeModRMReg(op, classDR, size)
	case optable.OpN:
		if d.requireMod(true) {
			d.decodeRM(op, classMMX, size)
		}
	case optable.OpQ:
		d.decodeRM(op, classMMX, size)
	case optable.OpP:
		d.decodeModRMReg(op, classMMX, size)
	case optable.OpU:
		if d.requireMod(true) {
			d.decodeRM(op, classXMM, size)
		}
	case optable.OpW:
		d.decodeRM(op, classXMM, size)
	case optable.OpV:
		d.decodeModRMReg(op, classXMM, size)
	case optable.OpI1:
		op.Type, op.Value = OperandConst, 1
	case optable.OpI3:
		op.Type, op.Value = OperandConst, 3
	case optable.OpAcc:
		d.decodeReg(op, classGPR, 0, size)
	case optable.OpCL:
		d.decodeReg(op, classGPR, 1, size)
	case optable.OpDX:
		d.decodeReg(op, classGPR, 2, size)
	case optable.OpR0, optable.OpR1, optable.OpR2, optable.OpR3,
		optable.OpR4, optable.OpR5, optable.OpR6, optable.OpR7:
		d.decodeReg(op, classGPR, d.rexBit(1)|int(c-optable.OpR0), size)
	case optable.OpES, optable.OpCS, optable.OpSS, optable.OpDS, optable.OpFS, optable.OpGS:
		if d.mode == 64 && c != optable.OpFS && c != optable.OpGS {
			d.fail(ErrInvalidIn64, "segment register operand")
			return
		}
		d.decodeReg(op, classSeg, int(c-optable.OpES), size)
	case optable.OpST0, optable.OpST1, optable.OpST2, optable.OpST3,
		optable.OpST4, optable.OpST5, optable.OpST6, optable.OpST7:
		d.decodeReg(op, classX87, int(c-optable.OpST0), size)
	default:
		d.fail(ErrBadOperand, "operand code %d", c)
	}
}

// requireMod checks ModRM.mod against the register (true) or memory
// (false) form the operand demands.
func (d *Decoder) requireMod(register bool) bool {
	m, ok := d.modrm()
	if !ok {
		return false
	}
	if (m>>6 == 3) != register {
		if register {
			d.fail(ErrBadOperand, "modrm %#02x: register form expected", m)
		} else {
			d.fail(ErrBadOperand, "modrm %#02x: memory form expected", m)
		}
		return false
	}
	return true
}

func (d *Decoder) register(c regClass, num, size int) optable.Reg {
	switch c {
	case classGPR:
		r := optable.GPR(size, num, d.insn.Prefix.Rex != 0)
		if r == optable.RegNone {
			d.fail(ErrBadOperand, "general register of %d bits", size)
		}
		return r
	case classMMX:
		return optable.MM0 + optable.Reg(num&7)
	case classXMM:
		return optable.XMM0 + optable.Reg(num)
	case classCR:
		return optable.CR0 + optable.Reg(num)
	case classDR:
		return optable.DR0 + optable.Reg(num)
	case classSeg:
		if num&7 > 5 {
			d.fail(ErrBadOperand, "segment register %d", num&7)
			return optable.RegNone
		}
		return optable.ES + optable.Reg(num&7)
	case classX87:
		return optable.ST0 + optable.Reg(num)
	}
	return optable.RegNone
}

func (d *Decoder) decodeReg(op *Operand, c regClass, num, size int) {
	op.Type = OperandReg
	op.Base = d.register(c, num, size)
	op.Size = size
}

func (d *Decoder) decodeModRMReg(op *Operand, c regClass, size int) {
	m, ok := d.modrm()
	if !ok {
		return
	}
	d.decodeReg(op, c, d.rexBit(4)|int(m>>3)&7, size)
}

var (
	bases16   = [8]optable.Reg{optable.BX, optable.BX, optable.BP, optable.BP, optable.SI, optable.DI, optable.BP, optable.BX}
	indexes16 = [8]optable.Reg{optable.SI, optable.DI, optable.SI, optable.DI}
)

// decodeRM decodes the ModRM.rm operand, with its SIB byte and
// displacement.
func (d *Decoder) decodeRM(op *Operand, c regClass, size int) {
	m, ok := d.modrm()
	if !ok {
		return
	}
	mod := m >> 6
	rm := d.rexBit(1) | int(m&7)
	if mod == 3 {
		d.decodeReg(op, c, rm, size)
		return
	}

	op.Type = OperandMem
	op.Size = size
	op.Segment = d.insn.Prefix.Seg

	switch d.insn.AdrSize {
	case 64, 32:
		first, rsp := optable.RAX, optable.RSP
		if d.insn.AdrSize == 32 {
			first, rsp = optable.EAX, optable.ESP
		}
		op.Base = first + optable.Reg(rm)
		switch {
		case mod == 1:
			op.Offset = 8
		case mod == 2:
			op.Offset = 32
		case mod == 0 && rm&7 == 5:
			if d.insn.AdrSize == 64 {
				op.Base = optable.RIP
			} else {
				op.Base = optable.RegNone
			}
			op.Offset = 32
		}
		if rm&7 == 4 {
			sib, ok := d.next()
			if !ok {
				return
			}
			op.Base = first + optable.Reg(d.rexBit(1)|int(sib&7))
			op.Index = first + optable.Reg(d.rexBit(2)|int(sib>>3)&7)
			if op.Index == rsp {
				op.Index, op.Scale = optable.RegNone, 0
			} else {
				op.Scale = uint8(1<<(sib>>6)) &^ 1
			}
			if sib&7 == 5 {
				if mod == 0 {
					op.Base = optable.RegNone
				}
				if mod == 1 {
					op.Offset = 8
				} else {
					op.Offset = 32
				}
			}
		}
	default:
		op.Base = bases16[rm&7]
		op.Index = indexes16[rm&7]
		switch {
		case mod == 0 && rm&7 == 6:
			op.Base, op.Offset = optable.RegNone, 16
		case mod == 1:
			op.Offset = 8
		case mod == 2:
			op.Offset = 16
		}
	}
	op.Value = d.readUint(op.Offset / 8)
}

func (d *Decoder) decodeImm(op *Operand, size int) {
	op.Type = OperandImm
	op.Size = size
	switch size {
	case 8, 16, 32, 64:
		op.Value = d.readUint(size / 8)
	default:
		d.fail(ErrBadOperand, "immediate of %d bits", size)
	}
}

func (d *Decoder) decodeMOffset(op *Operand, size int) {
	op.Type = OperandMem
	op.Size = size
	op.Segment = d.insn.Prefix.Seg
	op.Offset = d.insn.AdrSize
	op.Value = d.readUint(op.Offset / 8)
}

func (d *Decoder) decodePtr(op *Operand) {
	op.Type = OperandPtr
	if d.insn.OprSize == 16 {
		op.Size = 32
		op.PtrOff = uint32(d.readUint(2))
	} else {
		op.Size = 48
		op.PtrOff = uint32(d.readUint(4))
	}
	op.PtrSeg = uint16(d.readUint(2))
}
