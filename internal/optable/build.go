package optable

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// extOrder is the order in which selectors are applied below the opcode
// bytes. /sse comes first so a mandatory prefix is consumed before the
// operand size selector looks at 66.
var extOrder = []string{"/sse", "/mod", "/x87", "/reg", "/rm", "/o", "/a", "/m", "/3dnow", "/vendor"}

var extKinds = map[string]TableKind{
	"/sse":    KindSSE,
	"/mod":    KindMod,
	"/x87":    KindX87,
	"/reg":    KindReg,
	"/rm":     KindRM,
	"/o":      KindOSize,
	"/a":      KindASize,
	"/m":      KindMode,
	"/3dnow":  Kind3DNow,
	"/vendor": KindVendor,
}

// implicitAddressing holds instructions that address memory through rSI,
// rDI, rBX or rCX without a ModRM byte.
var implicitAddressing = map[Mnemonic]bool{
	Insb: true, Insw: true, Insd: true, Outsb: true, Outsw: true, Outsd: true,
	Movsb: true, Movsw: true, Movsd: true, Movsq: true,
	Cmpsb: true, Cmpsw: true, Cmpsd: true, Cmpsq: true,
	Stosb: true, Stosw: true, Stosd: true, Stosq: true,
	Lodsb: true, Lodsw: true, Lodsd: true, Lodsq: true,
	Scasb: true, Scasw: true, Scasd: true, Scasq: true,
	Xlatb: true, Loop: true, Loope: true, Loopne: true,
}

var (
	buildOnce sync.Once
	root      *Table
	entries   []*Entry
	buildErrs []error
)

func ensureBuilt() {
	buildOnce.Do(func() {
		loadMeta(&buildErrs)
		b := &builder{root: newTable(KindOpcode)}
		for _, group := range [][]def{oneByte, x87, twoByte, threeByte, amd3DNow} {
			for _, x := range group {
				b.add(x)
			}
		}
		root, entries = b.root, b.entries
		buildErrs = append(buildErrs, b.errs...)
	})
}

// Root returns the primary opcode table.
func Root() *Table {
	ensureBuilt()
	return root
}

// Entries returns every instruction template in definition order.
func Entries() []*Entry {
	ensureBuilt()
	return entries
}

// BuildErrors reports inconsistencies found while building the table.
// A well-formed table has none.
func BuildErrors() []error {
	ensureBuilt()
	return buildErrs
}

// Find returns the entry stored at path, which may list selectors in any
// order. It is meant for tests and tooling; decoding walks the trie.
func Find(path string) *Entry {
	steps, err := parsePath(path)
	if err != nil {
		return nil
	}
	var n Node = Root()
	for _, s := range steps {
		t, ok := n.(*Table)
		if !ok || t.Kind != s.kind {
			return nil
		}
		n = t.Slot(s.index)
	}
	e, _ := n.(*Entry)
	return e
}

type builder struct {
	root    *Table
	entries []*Entry
	errs    []error
}

type step struct {
	kind  TableKind
	index int
	text  string
}

func newTable(k TableKind) *Table {
	return &Table{Kind: k, Slots: make([]Node, k.Slots())}
}

func (b *builder) fail(x def, format string, args ...any) {
	b.errs = append(b.errs, fmt.Errorf("%s %s: %s", x.path, x.mnem, fmt.Sprintf(format, args...)))
}

func (b *builder) add(x def) {
	steps, err := parsePath(x.path)
	if err != nil {
		b.fail(x, "%v", err)
		return
	}
	if len(x.ops) > 4 {
		b.fail(x, "%d operands", len(x.ops))
		return
	}
	e := &Entry{Mnemonic: x.mnem, Prefix: x.pfx, Vendor: VendorAny}
	copy(e.Operands[:], x.ops)

	texts := make([]string, len(steps))
	for i, s := range steps {
		texts[i] = s.text
		switch s.kind {
		case KindOSize:
			e.Prefix |= PfxOso | PfxRexW
		case KindASize:
			e.Prefix |= PfxAso
		case KindVendor:
			e.Vendor = Vendor(s.index)
		}
	}
	e.Path = strings.Join(texts, " ")
	e.Prefix |= derivePrefix(e)
	if implicitAddressing[e.Mnemonic] {
		e.Prefix |= PfxAso
	}
	b.attachMeta(x, e)

	// The first step is the primary opcode byte.
	t := b.root
	idx := steps[0].index
	for _, s := range steps[1:] {
		switch n := t.Slots[idx].(type) {
		case nil:
			nt := newTable(s.kind)
			t.Slots[idx] = nt
			t = nt
		case *Table:
			if n.Kind != s.kind {
				b.fail(x, "slot holds a %s table, want %s", n.Kind, s.kind)
				return
			}
			t = n
		case *Entry:
			b.fail(x, "slot holds %s (%s), want %s table", n.Mnemonic, n.Path, s.kind)
			return
		}
		idx = s.index
	}
	if prev := t.Slots[idx]; prev != nil {
		b.fail(x, "slot already holds %v", describe(prev))
		return
	}
	t.Slots[idx] = e
	b.entries = append(b.entries, e)
}

func describe(n Node) string {
	switch n := n.(type) {
	case *Table:
		return n.Kind.String() + " table"
	case *Entry:
		return n.Mnemonic.String() + " (" + n.Path + ")"
	}
	return "nothing"
}

func (b *builder) attachMeta(x def, e *Entry) {
	e.Eflags = MnemonicEflags(e.Mnemonic)
	pattern := x.access
	if pattern == "" {
		pattern = accessByMnemonic[e.Mnemonic]
	}
	acc, err := parseAccessPattern(pattern)
	if err != nil {
		b.fail(x, "%v", err)
	}
	for i := range acc {
		if e.Operands[i].IsNone() {
			acc[i] = AccessNone
		}
	}
	e.Access = acc
	if x.hasImp {
		e.Used, e.Defined = x.used, x.defined
	} else if imp, ok := implicitRegs[e.Mnemonic]; ok {
		e.Used, e.Defined = imp.used, imp.defined
	}
}

// derivePrefix works out which prefixes an entry honours from its operands.
func derivePrefix(e *Entry) Prefix {
	var p Prefix
	sized := func(s Size) {
		switch s {
		case SzV, SzY:
			p |= PfxOso | PfxRexW
		case SzZ, SzP:
			p |= PfxOso
		}
	}
	for _, op := range e.Operands {
		switch op.Code {
		case OpE, OpF, OpM, OpMR, OpQ, OpW:
			p |= PfxAso | PfxRexX | PfxRexB
		case OpR, OpN, OpU:
			p |= PfxRexB
		case OpG, OpV, OpS, OpC, OpD, OpP:
			p |= PfxRexR
		case OpO:
			p |= PfxAso
		case OpR0, OpR1, OpR2, OpR3, OpR4, OpR5, OpR6, OpR7:
			p |= PfxRexB
		}
		sized(op.Size)
		if op.Code == OpMR {
			sized(op.RegSize)
		}
	}
	return p
}

// parsePath turns "0f 01 /reg=7 /mod=11" into trie steps. Opcode bytes
// keep their order; selectors are sorted into extOrder. Two-byte opcodes
// without a /sse selector get /sse=none.
func parsePath(path string) ([]step, error) {
	var opcodes, exts []string
	for _, tok := range strings.Fields(path) {
		if strings.HasPrefix(tok, "/") {
			exts = append(exts, tok)
		} else {
			opcodes = append(opcodes, tok)
		}
	}
	if len(opcodes) == 0 {
		return nil, fmt.Errorf("no opcode bytes")
	}
	if len(opcodes) > 1 && opcodes[0] == "0f" && opcodes[1] != "0f" {
		hasSSE := false
		for _, x := range exts {
			if strings.HasPrefix(x, "/sse=") {
				hasSSE = true
			}
		}
		if !hasSSE {
			exts = append(exts, "/sse=none")
		}
	}
	rank := func(tok string) int {
		name, _, _ := strings.Cut(tok, "=")
		for i, e := range extOrder {
			if e == name {
				return i
			}
		}
		return len(extOrder)
	}
	sort.SliceStable(exts, func(i, j int) bool { return rank(exts[i]) < rank(exts[j]) })

	steps := make([]step, 0, len(opcodes)+len(exts))
	for _, tok := range opcodes {
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("opcode byte %q: %w", tok, err)
		}
		steps = append(steps, step{kind: KindOpcode, index: int(v), text: tok})
	}
	// A step's kind is the kind of the table it indexes.
	for _, tok := range exts {
		name, val, ok := strings.Cut(tok, "=")
		kind, known := extKinds[name]
		if !ok || !known {
			return nil, fmt.Errorf("selector %q", tok)
		}
		idx, err := extIndex(kind, val)
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", tok, err)
		}
		steps = append(steps, step{kind: kind, index: idx, text: tok})
	}
	return steps, nil
}

func extIndex(k TableKind, v string) (int, error) {
	switch k {
	case KindSSE:
		switch v {
		case "none":
			return SSENone, nil
		case "f2":
			return SSEF2, nil
		case "f3":
			return SSEF3, nil
		case "66":
			return SSE66, nil
		}
	case KindMod:
		switch v {
		case "!11":
			return 0, nil
		case "11":
			return 1, nil
		}
	case KindOSize, KindASize:
		switch v {
		case "16":
			return 0, nil
		case "32":
			return 1, nil
		case "64":
			return 2, nil
		}
	case KindMode:
		switch v {
		case "!64":
			return 0, nil
		case "64":
			return 1, nil
		}
	case KindVendor:
		switch v {
		case "amd":
			return int(VendorAMD), nil
		case "intel":
			return int(VendorIntel), nil
		}
	case KindReg, KindRM:
		n, err := strconv.Atoi(v)
		if err == nil && n >= 0 && n < 8 {
			return n, nil
		}
	case KindX87, Kind3DNow:
		n, err := strconv.ParseUint(v, 16, 8)
		if err == nil && int(n) < k.Slots() {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("bad value %q for %s", v, k)
}
