// Package disasm decodes x86 machine code one instruction at a time and
// renders it as Intel or AT&T assembly.
//
// A Decoder is a single decode session and is not safe for concurrent use.
// Independent Decoders may run in parallel; they share only the read-only
// opcode table.
package disasm

import "x86dis/internal/optable"

// Syntax selects the text rendering of decoded instructions.
type Syntax uint8

const (
	SyntaxNone Syntax = iota
	SyntaxIntel
	SyntaxATT
)

func (s Syntax) String() string {
	switch s {
	case SyntaxIntel:
		return "intel"
	case SyntaxATT:
		return "att"
	}
	return "none"
}

// SymbolResolver names branch and memory targets during rendering. ok is
// false when addr has no symbol; offset is addr minus the symbol's
// address.
type SymbolResolver interface {
	ResolveSymbol(addr uint64) (name string, offset int64, ok bool)
}

// SymbolResolverFunc adapts a function to SymbolResolver.
type SymbolResolverFunc func(addr uint64) (string, int64, bool)

func (f SymbolResolverFunc) ResolveSymbol(addr uint64) (string, int64, bool) { return f(addr) }

// Decoder holds the state of one decode session.
type Decoder struct {
	mode     int
	vendor   optable.Vendor
	pc       uint64
	syntax   Syntax
	resolver SymbolResolver
	opaque   any

	in  input
	out textBuffer

	insn Instruction
	st   state
}

// New returns a Decoder in 16-bit mode with no input attached.
func New() *Decoder {
	d := &Decoder{}
	d.Reset()
	return d
}

// Reset returns d to its initial state: 16-bit mode, AMD opcode choices,
// program counter 0, no input, no rendering and the internal text buffer.
func (d *Decoder) Reset() {
	*d = Decoder{}
	d.mode = 16
	d.insn.Mnemonic = optable.Invalid
}

// SetMode selects 16, 32 or 64-bit decoding. Other values select 16.
func (d *Decoder) SetMode(bits int) {
	switch bits {
	case 16, 32, 64:
		d.mode = bits
	default:
		d.mode = 16
	}
}

// Mode returns the decode mode in bits.
func (d *Decoder) Mode() int { return d.mode }

// SetVendor picks between vendor-specific opcode assignments. Unknown
// values select AMD.
func (d *Decoder) SetVendor(v optable.Vendor) {
	switch v {
	case optable.VendorIntel, optable.VendorAny:
		d.vendor = v
	default:
		d.vendor = optable.VendorAMD
	}
}

// Vendor returns the active vendor.
func (d *Decoder) Vendor() optable.Vendor { return d.vendor }

// SetPC sets the address of the next instruction.
func (d *Decoder) SetPC(pc uint64) { d.pc = pc }

// PC returns the address of the next instruction.
func (d *Decoder) PC() uint64 { return d.pc }

// SetSyntax selects the renderer. SyntaxNone disables rendering.
func (d *Decoder) SetSyntax(s Syntax) {
	switch s {
	case SyntaxIntel, SyntaxATT:
		d.syntax = s
	default:
		d.syntax = SyntaxNone
	}
}

// SetSymbolResolver installs r for naming branch targets. nil disables
// resolution.
func (d *Decoder) SetSymbolResolver(r SymbolResolver) { d.resolver = r }

// SetBuffer directs rendered text into buf, truncated to len(buf). A nil
// buf restores the internal, growable buffer. The Decoder keeps buf until
// the next SetBuffer or Reset.
func (d *Decoder) SetBuffer(buf []byte) { d.out.setExternal(buf) }

// Disassemble decodes the next instruction and returns the number of bytes
// it consumed. It returns 0 once the input is exhausted. Undecodable bytes
// produce an Invalid record with a non-zero length.
func (d *Decoder) Disassemble() int {
	d.out.reset()
	if d.in.end(d.opaque) {
		return 0
	}
	d.decode()
	if d.insn.Len == 0 {
		return 0
	}
	d.insn.Offset = d.pc
	d.pc += uint64(d.insn.Len)
	switch d.syntax {
	case SyntaxIntel:
		d.translateIntel()
	case SyntaxATT:
		d.translateATT()
	}
	return d.insn.Len
}

// Inst returns the last decoded instruction. The record is overwritten by
// the next call to Disassemble.
func (d *Decoder) Inst() *Instruction { return &d.insn }

// Asm returns the rendered text of the last instruction.
func (d *Decoder) Asm() string { return d.out.String() }

// Hex returns the bytes of the last instruction as hex digits.
func (d *Decoder) Hex() string { return d.insn.Hex() }

// Len returns the length of the last instruction.
func (d *Decoder) Len() int { return d.insn.Len }

// Offset returns the address of the last instruction.
func (d *Decoder) Offset() uint64 { return d.insn.Offset }

// Mnemonic returns the mnemonic of the last instruction.
func (d *Decoder) Mnemonic() optable.Mnemonic { return d.insn.Mnemonic }

// Err returns why the last instruction is invalid, or nil.
func (d *Decoder) Err() error { return d.insn.Err }

// Bytes returns the bytes of the last instruction. For buffer input the
// slice aliases the input buffer.
func (d *Decoder) Bytes() []byte {
	if d.in.kind == inputBuffer && d.st.start+d.insn.Len <= len(d.in.buf) {
		return d.in.buf[d.st.start : d.st.start+d.insn.Len]
	}
	return d.insn.bytes
}

// Operand returns operand i of the last instruction, or nil when it is
// absent.
func (d *Decoder) Operand(i int) *Operand {
	if i < 0 || i >= len(d.insn.Operands) || d.insn.Operands[i].Type == OperandNone {
		return nil
	}
	return &d.insn.Operands[i]
}

// Eflags returns the flag effects of the last instruction.
func (d *Decoder) Eflags() optable.Eflags { return d.insn.Eflags() }

// ImplicitUsed lists registers the last instruction reads implicitly.
func (d *Decoder) ImplicitUsed() []optable.Reg { return d.insn.ImplicitUsed() }

// ImplicitDefined lists registers the last instruction writes implicitly.
func (d *Decoder) ImplicitDefined() []optable.Reg { return d.insn.ImplicitDefined() }
