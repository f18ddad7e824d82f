package optable

// Reg is an architectural register. Registers of one class are contiguous,
// so a class base plus a register number selects a register.
type Reg uint8

// RegNone marks an absent base, index or segment.
const RegNone Reg = 0

const (
	AL Reg = iota + 1
	CL
	DL
	BL
	AH
	CH
	DH
	BH
	SPL
	BPL
	SIL
	DIL
	R8B
	R9B
	R10B
	R11B
	R12B
	R13B
	R14B
	R15B
	AX
	CX
	DX
	BX
	SP
	BP
	SI
	DI
	R8W
	R9W
	R10W
	R11W
	R12W
	R13W
	R14W
	R15W
	EAX
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
	R8D
	R9D
	R10D
	R11D
	R12D
	R13D
	R14D
	R15D
	RAX
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	ES
	CS
	SS
	DS
	FS
	GS
	CR0
	CR1
	CR2
	CR3
	CR4
	CR5
	CR6
	CR7
	CR8
	CR9
	CR10
	CR11
	CR12
	CR13
	CR14
	CR15
	DR0
	DR1
	DR2
	DR3
	DR4
	DR5
	DR6
	DR7
	DR8
	DR9
	DR10
	DR11
	DR12
	DR13
	DR14
	DR15
	MM0
	MM1
	MM2
	MM3
	MM4
	MM5
	MM6
	MM7
	ST0
	ST1
	ST2
	ST3
	ST4
	ST5
	ST6
	ST7
	XMM0
	XMM1
	XMM2
	XMM3
	XMM4
	XMM5
	XMM6
	XMM7
	XMM8
	XMM9
	XMM10
	XMM11
	XMM12
	XMM13
	XMM14
	XMM15
	RIP
)

var regNames = [...]string{
	RegNone: "",
	AL: "al",
	CL: "cl",
	DL: "dl",
	BL: "bl",
	AH: "ah",
	CH: "ch",
	DH: "dh",
	BH: "bh",
	SPL: "spl",
	BPL: "bpl",
	SIL: "sil",
	DIL: "dil",
	R8B: "r8b",
	R9B: "r9b",
	R10B: "r10b",
	R11B: "r11b",
	R12B: "r12b",
	R13B: "r13b",
	R14B: "r14b",
	R15B: "r15b",
	AX: "ax",
	CX: "cx",
	DX: "dx",
	BX: "bx",
	SP: "sp",
	BP: "bp",
	SI: "si",
	DI: "di",
	R8W: "r8w",
	R9W: "r9w",
	R10W: "r10w",
	R11W: "r11w",
	R12W: "r12w",
	R13W: "r13w",
	R14W: "r14w",
	R15W: "r15w",
	EAX: "eax",
	ECX: "ecx",
	EDX: "edx",
	EBX: "ebx",
	ESP: "esp",
	EBP: "ebp",
	ESI: "esi",
	EDI: "edi",
	R8D: "r8d",
	R9D: "r9d",
	R10D: "r10d",
	R11D: "r11d",
	R12D: "r12d",
	R13D: "r13d",
	R14D: "r14d",
	R15D: "r15d",
	RAX: "rax",
	RCX: "rcx",
	RDX: "rdx",
	RBX: "rbx",
	RSP: "rsp",
	RBP: "rbp",
	RSI: "rsi",
	RDI: "rdi",
	R8: "r8",
	R9: "r9",
	R10: "r10",
	R11: "r11",
	R12: "r12",
	R13: "r13",
	R14: "r14",
	R15: "r15",
	ES: "es",
	CS: "cs",
	SS: "ss",
	DS: "ds",
	FS: "fs",
	GS: "gs",
	CR0: "cr0",
	CR1: "cr1",
	CR2: "cr2",
	CR3: "cr3",
	CR4: "cr4",
	CR5: "cr5",
	CR6: "cr6",
	CR7: "cr7",
	CR8: "cr8",
	CR9: "cr9",
	CR10: "cr10",
	CR11: "cr11",
	CR12: "cr12",
	CR13: "cr13",
	CR14: "cr14",
	CR15: "cr15",
	DR0: "dr0",
	DR1: "dr1",
	DR2: "dr2",
	DR3: "dr3",
	DR4: "dr4",
	DR5: "dr5",
	DR6: "dr6",
	DR7: "dr7",
	DR8: "dr8",
	DR9: "dr9",
	DR10: "dr10",
	DR11: "dr11",
	DR12: "dr12",
	DR13: "dr13",
	DR14: "dr14",
	DR15: "dr15",
	MM0: "mm0",
	MM1: "mm1",
	MM2: "mm2",
	MM3: "mm3",
	MM4: "mm4",
	MM5: "mm5",
	MM6: "mm6",
	MM7: "mm7",
	ST0: "st0",
	ST1: "st1",
	ST2: "st2",
	ST3: "st3",
	ST4: "st4",
	ST5: "st5",
	ST6: "st6",
	ST7: "st7",
	XMM0: "xmm0",
	XMM1: "xmm1",
	XMM2: "xmm2",
	XMM3: "xmm3",
	XMM4: "xmm4",
	XMM5: "xmm5",
	XMM6: "xmm6",
	XMM7: "xmm7",
	XMM8: "xmm8",
	XMM9: "xmm9",
	XMM10: "xmm10",
	XMM11: "xmm11",
	XMM12: "xmm12",
	XMM13: "xmm13",
	XMM14: "xmm14",
	XMM15: "xmm15",
	RIP: "rip",
}

// String returns the lowercase register name.
func (r Reg) String() string {
	if int(r) < len(regNames) {
		return regNames[r]
	}
	return "?"
}

// Class reports the register class r belongs to.
func (r Reg) Class() RegClass {
	switch {
	case r >= AL && r <= R15B:
		return ClassGPR8
	case r >= AX && r <= R15W:
		return ClassGPR16
	case r >= EAX && r <= R15D:
		return ClassGPR32
	case r >= RAX && r <= R15:
		return ClassGPR64
	case r >= ES && r <= GS:
		return ClassSegment
	case r >= CR0 && r <= CR15:
		return ClassControl
	case r >= DR0 && r <= DR15:
		return ClassDebug
	case r >= MM0 && r <= MM7:
		return ClassMMX
	case r >= ST0 && r <= ST7:
		return ClassX87
	case r >= XMM0 && r <= XMM15:
		return ClassXMM
	case r == RIP:
		return ClassIP
	}
	return ClassNone
}

// RegClass groups registers that are selected by the same encoding field.
type RegClass uint8

const (
	ClassNone RegClass = iota
	ClassGPR8
	ClassGPR16
	ClassGPR32
	ClassGPR64
	ClassSegment
	ClassControl
	ClassDebug
	ClassMMX
	ClassX87
	ClassXMM
	ClassIP
)

// GPR returns general purpose register num of the given width in bits.
// With rex set, byte registers 4 through 7 select spl, bpl, sil and dil
// instead of ah, ch, dh and bh.
func GPR(size int, num int, rex bool) Reg {
	switch size {
	case 64:
		return RAX + Reg(num)
	case 32:
		return EAX + Reg(num)
	case 16:
		return AX + Reg(num)
	case 8:
		if rex && num >= 4 {
			return SPL + Reg(num-4)
		}
		return AL + Reg(num)
	}
	return RegNone
}
