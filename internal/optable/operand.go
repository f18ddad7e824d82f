package optable

// OperandCode names the addressing form of an operand in a table entry.
type OperandCode uint8

const (
	OpNone OperandCode = iota
	OpA               // far pointer immediate, seg:off
	OpE               // ModRM.rm, general register or memory
	OpF               // ModRM.rm, memory holding a far pointer
	OpM               // ModRM.rm, memory only
	OpMR              // ModRM.rm, memory and register widths differ
	OpG               // ModRM.reg, general register
	OpR               // ModRM.rm, general register only
	OpI               // immediate
	OpSI              // sign-extended immediate
	OpJ               // relative branch displacement
	OpO               // absolute memory offset
	OpS               // ModRM.reg, segment register
	OpC               // ModRM.reg, control register
	OpD               // ModRM.reg, debug register
	OpN               // ModRM.rm, mmx register only
	OpP               // ModRM.reg, mmx register
	OpQ               // ModRM.rm, mmx register or memory
	OpU               // ModRM.rm, xmm register only
	OpV               // ModRM.reg, xmm register
	OpW               // ModRM.rm, xmm register or memory
	OpI1              // constant 1
	OpI3              // constant 3
	OpAcc             // accumulator sized by the operand size
	OpCL
	OpDX
	OpR0 // opcode low bits select the register, extended by REX.B
	OpR1
	OpR2
	OpR3
	OpR4
	OpR5
	OpR6
	OpR7
	OpES
	OpCS
	OpSS
	OpDS
	OpFS
	OpGS
	OpST0
	OpST1
	OpST2
	OpST3
	OpST4
	OpST5
	OpST6
	OpST7
)

// UsesModRM reports whether decoding the operand reads the ModRM byte.
func (c OperandCode) UsesModRM() bool {
	switch c {
	case OpE, OpF, OpM, OpMR, OpG, OpR, OpS, OpC, OpD, OpN, OpP, OpQ, OpU, OpV, OpW:
		return true
	}
	return false
}

// MayBeMemory reports whether the operand can address memory.
func (c OperandCode) MayBeMemory() bool {
	switch c {
	case OpE, OpF, OpM, OpMR, OpO, OpQ, OpW:
		return true
	}
	return false
}

// Size is a declared operand size. Values below SzBits are resolved
// against the effective operand size at decode time; the rest are widths
// in bits.
type Size uint16

const (
	SzNone Size = iota
	SzV         // effective operand size
	SzZ         // 16 with a 16-bit operand size, 32 otherwise
	SzY         // 32 with a 16-bit operand size, the operand size otherwise
	SzRDQ       // 64 in 64-bit mode, 32 otherwise
	SzP         // far pointer, 16-bit selector plus an operand-size offset
	SzBits

	Sz8   Size = 8
	Sz16  Size = 16
	Sz32  Size = 32
	Sz64  Size = 64
	Sz80  Size = 80
	Sz128 Size = 128
)

// OperandSpec is one operand of a table entry.
type OperandSpec struct {
	Code OperandCode
	Size Size
	// RegSize is the register width of OpMR operands; Size is then the
	// memory width.
	RegSize Size
}

// IsNone reports whether the slot is unused.
func (s OperandSpec) IsNone() bool { return s.Code == OpNone }

var (
	eb   = OperandSpec{Code: OpE, Size: Sz8}
	ew   = OperandSpec{Code: OpE, Size: Sz16}
	ed   = OperandSpec{Code: OpE, Size: Sz32}
	eq   = OperandSpec{Code: OpE, Size: Sz64}
	ev   = OperandSpec{Code: OpE, Size: SzV}
	ey   = OperandSpec{Code: OpE, Size: SzY}
	erdq = OperandSpec{Code: OpE, Size: SzRDQ}

	gb   = OperandSpec{Code: OpG, Size: Sz8}
	gd   = OperandSpec{Code: OpG, Size: Sz32}
	gv   = OperandSpec{Code: OpG, Size: SzV}
	gw   = OperandSpec{Code: OpG, Size: Sz16}
	gy   = OperandSpec{Code: OpG, Size: SzY}
	gz   = OperandSpec{Code: OpG, Size: SzZ}
	grdq = OperandSpec{Code: OpG, Size: SzRDQ}

	mem = OperandSpec{Code: OpM}
	mb  = OperandSpec{Code: OpM, Size: Sz8}
	mw  = OperandSpec{Code: OpM, Size: Sz16}
	md  = OperandSpec{Code: OpM, Size: Sz32}
	mq  = OperandSpec{Code: OpM, Size: Sz64}
	mt  = OperandSpec{Code: OpM, Size: Sz80}
	mo  = OperandSpec{Code: OpM, Size: Sz128}
	mv  = OperandSpec{Code: OpM, Size: SzV}
	my  = OperandSpec{Code: OpM, Size: SzY}
	fv  = OperandSpec{Code: OpF, Size: SzV}

	mrwv = OperandSpec{Code: OpMR, Size: Sz16, RegSize: SzV}
	mrwd = OperandSpec{Code: OpMR, Size: Sz16, RegSize: Sz32}
	mrbd = OperandSpec{Code: OpMR, Size: Sz8, RegSize: Sz32}

	rw  = OperandSpec{Code: OpR, Size: Sz16}
	rv  = OperandSpec{Code: OpR, Size: SzV}
	ry  = OperandSpec{Code: OpR, Size: SzY}
	rdq = OperandSpec{Code: OpR, Size: SzRDQ}
	cr  = OperandSpec{Code: OpC, Size: SzRDQ}
	dr  = OperandSpec{Code: OpD, Size: SzRDQ}
	sw  = OperandSpec{Code: OpS, Size: Sz16}

	ib  = OperandSpec{Code: OpI, Size: Sz8}
	iw  = OperandSpec{Code: OpI, Size: Sz16}
	iv  = OperandSpec{Code: OpI, Size: SzV}
	sib = OperandSpec{Code: OpSI, Size: Sz8}
	siz = OperandSpec{Code: OpSI, Size: SzZ}
	i1  = OperandSpec{Code: OpI1}
	jb  = OperandSpec{Code: OpJ, Size: Sz8}
	jz  = OperandSpec{Code: OpJ, Size: SzZ}
	ob  = OperandSpec{Code: OpO, Size: Sz8}
	ov  = OperandSpec{Code: OpO, Size: SzV}
	ap  = OperandSpec{Code: OpA, Size: SzP}

	al   = OperandSpec{Code: OpAcc, Size: Sz8}
	ax   = OperandSpec{Code: OpAcc, Size: Sz16}
	accv = OperandSpec{Code: OpAcc, Size: SzV}
	accz = OperandSpec{Code: OpAcc, Size: SzZ}
	cl   = OperandSpec{Code: OpCL, Size: Sz8}
	dx   = OperandSpec{Code: OpDX, Size: Sz16}

	es = OperandSpec{Code: OpES, Size: Sz16}
	cs = OperandSpec{Code: OpCS, Size: Sz16}
	ss = OperandSpec{Code: OpSS, Size: Sz16}
	ds = OperandSpec{Code: OpDS, Size: Sz16}
	fs = OperandSpec{Code: OpFS, Size: Sz16}
	gs = OperandSpec{Code: OpGS, Size: Sz16}

	nq = OperandSpec{Code: OpN, Size: Sz64}
	pq = OperandSpec{Code: OpP, Size: Sz64}
	qq = OperandSpec{Code: OpQ, Size: Sz64}
	qd = OperandSpec{Code: OpQ, Size: Sz32}
	ux = OperandSpec{Code: OpU, Size: Sz128}
	vx = OperandSpec{Code: OpV, Size: Sz128}
	wx = OperandSpec{Code: OpW, Size: Sz128}
	wq = OperandSpec{Code: OpW, Size: Sz64}
	wd = OperandSpec{Code: OpW, Size: Sz32}
	ww = OperandSpec{Code: OpW, Size: Sz16}
)

var (
	r0b, r1b, r2b, r3b, r4b, r5b, r6b, r7b = rn(Sz8)
	r0v, r1v, r2v, r3v, r4v, r5v, r6v, r7v = rn(SzV)
	r0y, r1y, r2y, r3y, r4y, r5y, r6y, r7y = rn(SzY)

	st0, st1, st2, st3, st4, st5, st6, st7 = stn()
)

func rn(s Size) (r0, r1, r2, r3, r4, r5, r6, r7 OperandSpec) {
	var r [8]OperandSpec
	for i := range r {
		r[i] = OperandSpec{Code: OpR0 + OperandCode(i), Size: s}
	}
	return r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7]
}

func stn() (s0, s1, s2, s3, s4, s5, s6, s7 OperandSpec) {
	var s [8]OperandSpec
	for i := range s {
		s[i] = OperandSpec{Code: OpST0 + OperandCode(i), Size: Sz80}
	}
	return s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]
}
