package disasm

import (
	"encoding/hex"

	"x86dis/internal/optable"
)

// OperandType is the kind of a decoded operand.
type OperandType uint8

const (
	OperandNone OperandType = iota
	OperandReg
	OperandMem
	OperandPtr  // far pointer immediate
	OperandImm
	OperandJimm // relative branch displacement
	OperandConst
)

func (t OperandType) String() string {
	switch t {
	case OperandReg:
		return "reg"
	case OperandMem:
		return "mem"
	case OperandPtr:
		return "ptr"
	case OperandImm:
		return "imm"
	case OperandJimm:
		return "jimm"
	case OperandConst:
		return "const"
	}
	return "none"
}

// Operand is one decoded operand.
type Operand struct {
	Type OperandType
	// Code is the addressing form from the opcode table.
	Code optable.OperandCode
	// Size is the operand width in bits.
	Size int

	// Base holds the register of a register operand, and the base of a
	// memory operand.
	Base  optable.Reg
	Index optable.Reg
	// Scale is 0 when the index is unscaled.
	Scale uint8
	// Offset is the displacement width of a memory operand: 0, 8, 16, 32
	// or 64.
	Offset  int
	Segment optable.Reg

	// Value is the raw little-endian value of an immediate, relative
	// displacement, constant or memory displacement, zero-extended.
	Value uint64

	PtrSeg uint16
	PtrOff uint32

	Access optable.Access
}

// Disp returns the memory displacement sign-extended from its width.
func (o Operand) Disp() int64 {
	return signExtend(o.Value, o.Offset)
}

// Prefixes records the legacy and REX prefixes still in effect after
// decoding. A prefix consumed as part of the opcode is cleared.
type Prefixes struct {
	Rex   byte
	Seg   optable.Reg
	Opr   bool
	Adr   bool
	Lock  bool
	Rep   bool
	Repe  bool
	Repne bool
}

// Instruction is the decoded form of one instruction. Every call to
// Decoder.Disassemble produces a fresh record.
type Instruction struct {
	Mnemonic optable.Mnemonic
	// Offset is the program counter at the start of the instruction.
	Offset uint64
	// Len is the number of bytes consumed, also for invalid records.
	Len      int
	Operands [4]Operand

	Mode    int
	OprSize int
	AdrSize int
	Prefix  Prefixes
	// MandatoryPrefix is the 66, f2 or f3 byte that selected the opcode, or
	// zero.
	MandatoryPrefix byte
	// Far is set for far branches through memory.
	Far bool

	// Entry is the matched opcode table entry; nil for invalid records.
	Entry *optable.Entry
	// Err says why the record is invalid.
	Err error

	bytes []byte
}

// Valid reports whether the bytes decoded to an instruction.
func (i *Instruction) Valid() bool { return i.Mnemonic != optable.Invalid }

// Bytes returns the bytes consumed by the instruction.
func (i *Instruction) Bytes() []byte { return i.bytes }

// Hex returns the consumed bytes as lowercase hex digits.
func (i *Instruction) Hex() string { return hex.EncodeToString(i.bytes) }

// NumOperands counts the decoded operands.
func (i *Instruction) NumOperands() int {
	n := 0
	for _, op := range i.Operands {
		if op.Type == OperandNone {
			break
		}
		n++
	}
	return n
}

// Eflags returns the flag effects of the instruction.
func (i *Instruction) Eflags() optable.Eflags {
	if i.Entry == nil {
		return optable.Eflags{}
	}
	return i.Entry.Eflags
}

// ImplicitUsed lists registers read without appearing as operands.
func (i *Instruction) ImplicitUsed() []optable.Reg {
	if i.Entry == nil {
		return nil
	}
	return i.Entry.Used
}

// ImplicitDefined lists registers written without appearing as operands.
func (i *Instruction) ImplicitDefined() []optable.Reg {
	if i.Entry == nil {
		return nil
	}
	return i.Entry.Defined
}

// hasMemOperand reports whether either of the first two operands is memory.
func (i *Instruction) hasMemOperand() bool {
	return i.Operands[0].Type == OperandMem || i.Operands[1].Type == OperandMem
}
