// Package optable holds the x86 opcode map: a read-only trie keyed by
// opcode bytes and by the prefix, ModRM and mode selectors that split an
// opcode into several instructions. The trie is built once, on first use,
// and is safe for concurrent readers afterwards.
package optable

// Vendor selects between opcode assignments that differ between AMD and
// Intel processors.
type Vendor uint8

const (
	VendorAMD Vendor = iota
	VendorIntel
	VendorAny
)

func (v Vendor) String() string {
	switch v {
	case VendorAMD:
		return "amd"
	case VendorIntel:
		return "intel"
	case VendorAny:
		return "any"
	}
	return "unknown"
}

// Prefix is a set of entry attributes describing which prefixes an
// instruction honours and how its operand size defaults.
type Prefix uint16

const (
	PfxAso   Prefix = 1 << iota // address size prefix affects the instruction
	PfxOso                      // operand size prefix affects the instruction
	PfxRexW                     // REX.W is honoured
	PfxRexR                     // REX.R is honoured
	PfxRexX                     // REX.X is honoured
	PfxRexB                     // REX.B is honoured
	PfxDef64                    // operand size defaults to 64 in 64-bit mode
	PfxInv64                    // invalid in 64-bit mode
	PfxSeg                      // segment override applies to an implicit memory operand
	PfxStr                      // F3 renders as rep rather than repe
)

// Has reports whether all bits of q are set.
func (p Prefix) Has(q Prefix) bool { return p&q == q }

// RexMask returns the REX bits (W R X B, high to low) the entry honours.
func (p Prefix) RexMask() uint8 {
	var m uint8
	if p.Has(PfxRexW) {
		m |= 8
	}
	if p.Has(PfxRexR) {
		m |= 4
	}
	if p.Has(PfxRexX) {
		m |= 2
	}
	if p.Has(PfxRexB) {
		m |= 1
	}
	return m
}

// TableKind says how a Table chooses its slot.
type TableKind uint8

const (
	KindOpcode TableKind = iota // next opcode byte, 256 slots
	KindSSE                     // mandatory prefix: none, f2, f3, 66
	KindMod                     // ModRM.mod: memory, register
	KindX87                     // ModRM byte minus 0xc0, 64 slots
	KindReg                     // ModRM.reg
	KindRM                      // ModRM.rm
	KindOSize                   // effective operand size 16, 32, 64
	KindASize                   // effective address size 16, 32, 64
	KindMode                    // decode mode: not 64, 64
	Kind3DNow                   // suffix byte after the operands
	KindVendor                  // amd, intel
)

var kindInfo = [...]struct {
	name  string
	slots int
}{
	KindOpcode: {"opcode", 256},
	KindSSE:    {"/sse", 4},
	KindMod:    {"/mod", 2},
	KindX87:    {"/x87", 64},
	KindReg:    {"/reg", 8},
	KindRM:     {"/rm", 8},
	KindOSize:  {"/o", 3},
	KindASize:  {"/a", 3},
	KindMode:   {"/m", 2},
	Kind3DNow:  {"/3dnow", 256},
	KindVendor: {"/vendor", 2},
}

func (k TableKind) String() string { return kindInfo[k].name }

// Slots returns the number of slots a table of kind k has.
func (k TableKind) Slots() int { return kindInfo[k].slots }

// SSE slot indexes.
const (
	SSENone = 0
	SSEF2   = 1
	SSEF3   = 2
	SSE66   = 3
)

// Node is a trie node: either a *Table or an *Entry.
type Node interface {
	node()
}

// Table is an interior trie node.
type Table struct {
	Kind  TableKind
	Slots []Node
}

// Slot returns the child at i, or nil when i is out of range or empty.
func (t *Table) Slot(i int) Node {
	if i < 0 || i >= len(t.Slots) {
		return nil
	}
	return t.Slots[i]
}

// Entry is an instruction template.
type Entry struct {
	Mnemonic Mnemonic
	Operands [4]OperandSpec
	Prefix   Prefix
	Vendor   Vendor
	// Path is the canonical opcode path, e.g. "0f 01 /sse=none /mod=11 /reg=7 /rm=0".
	Path    string
	Eflags  Eflags
	Access  [4]Access
	Used    []Reg
	Defined []Reg
}

func (*Table) node() {}
func (*Entry) node() {}

// NumOperands counts the populated operand slots.
func (e *Entry) NumOperands() int {
	n := 0
	for _, op := range e.Operands {
		if op.IsNone() {
			break
		}
		n++
	}
	return n
}

// def is one line of the opcode data.
type def struct {
	path    string
	mnem    Mnemonic
	ops     []OperandSpec
	pfx     Prefix
	access  string
	used    []Reg
	defined []Reg
	hasImp  bool
}

func d(path string, m Mnemonic, ops ...OperandSpec) def {
	return def{path: path, mnem: m, ops: ops}
}

func (x def) p(p Prefix) def {
	x.pfx |= p
	return x
}

// acc overrides the per-mnemonic access pattern, e.g. "W R".
func (x def) acc(s string) def {
	x.access = s
	return x
}

// imp overrides the per-mnemonic implicit register lists.
func (x def) imp(used, defined []Reg) def {
	x.used, x.defined, x.hasImp = used, defined, true
	return x
}

func regs(r ...Reg) []Reg { return r }
