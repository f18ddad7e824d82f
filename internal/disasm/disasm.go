package disasm

import "x86dis/internal/optable"

// Inst is one line of a linear listing.
type Inst struct {
	VA   uint64 // address of the instruction
	Text string // rendered assembly
	Op   optable.Mnemonic
	Raw  []byte
	Insn Instruction
}

// Stream is a linear sequence of instructions.
type Stream []Inst

// Options configures DecodeAll.
type Options struct {
	Mode     int
	Vendor   optable.Vendor
	Syntax   Syntax
	Resolver SymbolResolver
}

// DecodeAll decodes code from start to end, placing the first byte at va.
// Undecodable bytes appear as Invalid instructions.
func DecodeAll(code []byte, va uint64, opts Options) Stream {
	d := New()
	d.SetMode(opts.Mode)
	d.SetVendor(opts.Vendor)
	d.SetSyntax(opts.Syntax)
	d.SetSymbolResolver(opts.Resolver)
	d.SetPC(va)
	d.SetInputBuffer(code)

	var out Stream
	for d.Disassemble() > 0 {
		insn := *d.Inst()
		out = append(out, Inst{
			VA:   insn.Offset,
			Text: d.Asm(),
			Op:   insn.Mnemonic,
			Raw:  d.Bytes(),
			Insn: insn,
		})
	}
	return out
}

// Find returns the index of the instruction at va, or -1.
func (s Stream) Find(va uint64) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case s[mid].VA == va:
			return mid
		case s[mid].VA < va:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return -1
}
