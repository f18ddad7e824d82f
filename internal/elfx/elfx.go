// Package elfx opens x86 ELF binaries, locates their code, and maps
// virtual addresses to file offsets.
package elfx

import (
	"debug/elf"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"syscall"

	"x86dis/internal/disasm"
	"x86dis/internal/optable"
)

// ErrUnsupportedMachine is returned for ELF files that are not i386 or
// x86-64.
var ErrUnsupportedMachine = errors.New("unsupported ELF machine")

type Image struct {
	Path    string
	File    *elf.File
	All     []byte
	Mode    int // 32 or 64
	Loads   []Seg
	Text    Section
	Rodata  Section
	PLT     Section
	PLTSec  Section
	GOTPLT  Section
	Dynsyms []Symbol
	Syms    []Symbol
	// PLTStubs maps stub addresses to their GOT slots.
	PLTStubs []PLTStub
	PLTRels  []PLTRel
	f        *os.File
}

type Seg struct {
	Vaddr, Off, Filesz uint64
	Flags              elf.ProgFlag
}

type Section struct {
	Name          string
	VA, Off, Size uint64
}

// Contains reports whether va lies inside s.
func (s Section) Contains(va uint64) bool {
	return s.Size != 0 && va >= s.VA && va < s.VA+s.Size
}

type Symbol struct {
	Name  string
	Addr  uint64
	Size  uint64
	Type  elf.SymType
	IsPLT bool
}

type PLTStub struct {
	Addr    uint64
	GOTAddr uint64
	Index   int
}

type PLTRel struct {
	Offset   uint64
	SymIndex uint32
	SymName  string
	PLTAddr  uint64
}

func modeOf(m elf.Machine) (int, error) {
	switch m {
	case elf.EM_386:
		return 32, nil
	case elf.EM_X86_64:
		return 64, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedMachine, m)
}

func Open(path string) (*Image, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open elf: %w", err)
	}

	mode, err := modeOf(f.Machine)
	if err != nil {
		f.Close()
		return nil, err
	}

	of, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open file: %w", err)
	}

	fi, err := of.Stat()
	if err != nil {
		of.Close()
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	all, err := syscall.Mmap(int(of.Fd()), 0, int(fi.Size()), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		of.Close()
		f.Close()
		return nil, fmt.Errorf("mmap file: %w", err)
	}

	im := &Image{Path: path, File: f, All: all, Mode: mode, f: of}
	for _, p := range f.Progs {
		if p.Type != elf.PT_LOAD {
			continue
		}
		im.Loads = append(im.Loads, Seg{
			Vaddr:  p.Vaddr,
			Off:    p.Off,
			Filesz: p.Filesz,
			Flags:  p.Flags,
		})
	}

	for _, s := range f.Sections {
		sec := Section{s.Name, s.Addr, s.Offset, s.Size}
		switch s.Name {
		case ".text":
			im.Text = sec
		case ".rodata":
			im.Rodata = sec
		case ".plt":
			im.PLT = sec
		case ".plt.sec":
			im.PLTSec = sec
		case ".got.plt":
			im.GOTPLT = sec
		}
	}

	im.Dynsyms = loadSymbols(f.DynamicSymbols)
	im.Syms = loadSymbols(f.Symbols)
	im.parsePLTStubs()
	im.parsePLTRelocations()

	// Stripped of section headers: use the first executable segment.
	if im.Text.Size == 0 {
		for _, l := range im.Loads {
			if l.Flags&elf.PF_X != 0 && l.Filesz > 0 {
				im.Text = Section{"LOAD(exec)", l.Vaddr, l.Off, l.Filesz}
				break
			}
		}
	}
	return im, nil
}

// Close unmaps the memory and closes the underlying files.
func (im *Image) Close() error {
	var err1, err2 error
	if im.All != nil {
		err1 = syscall.Munmap(im.All)
		im.All = nil
	}
	if im.f != nil {
		err2 = im.f.Close()
		im.f = nil
	}
	if im.File != nil {
		err3 := im.File.Close()
		if err3 != nil && err2 == nil {
			err2 = err3
		}
		im.File = nil
	}
	if err1 != nil {
		return err1
	}
	return err2
}

// VA2Off translates a virtual address into a file offset
// using PT_LOAD segments. It returns false if VA is unmapped.
func (im *Image) VA2Off(va uint64) (uint64, bool) {
	for _, l := range im.Loads {
		if va >= l.Vaddr && va < l.Vaddr+l.Filesz {
			return l.Off + (va - l.Vaddr), true
		}
	}
	return 0, false
}

// SliceVA returns a subslice of the mapped file corresponding to the virtual address range [va, va+size).
// It returns (nil, false) if the VA is unmapped or the range is out of bounds.
func (im *Image) SliceVA(va uint64, size uint64) ([]byte, bool) {
	off, ok := im.VA2Off(va)
	if !ok {
		return nil, false
	}
	if size == 0 {
		return []byte{}, true
	}
	end := off + size
	if end > uint64(len(im.All)) {
		return nil, false
	}
	return im.All[off:end], true
}

// ReadBytesVA reads up to size bytes from va, stopping at the end of the
// segment that maps it.
func (im *Image) ReadBytesVA(va uint64, size int) ([]byte, bool) {
	for _, l := range im.Loads {
		if va < l.Vaddr || va >= l.Vaddr+l.Filesz {
			continue
		}
		off := l.Off + (va - l.Vaddr)
		end := off + uint64(size)
		if limit := l.Off + l.Filesz; end > limit {
			end = limit
		}
		if end > uint64(len(im.All)) {
			end = uint64(len(im.All))
		}
		if off >= end {
			return nil, false
		}
		return im.All[off:end], true
	}
	return nil, false
}

// InRodata reports whether va lies within .rodata.
func (im *Image) InRodata(va uint64) bool {
	return im.Rodata.Contains(va)
}

// TextBytes returns the contents of the code section.
func (im *Image) TextBytes() ([]byte, bool) {
	return im.SliceVA(im.Text.VA, im.Text.Size)
}

func loadSymbols(read func() ([]elf.Symbol, error)) []Symbol {
	syms, err := read()
	if err != nil {
		return nil
	}
	var out []Symbol
	for _, sym := range syms {
		if sym.Value == 0 || sym.Name == "" {
			continue
		}
		typ := elf.ST_TYPE(sym.Info)
		switch typ {
		case elf.STT_FUNC, elf.STT_OBJECT, elf.STT_NOTYPE, elf.STT_GNU_IFUNC:
		default:
			continue
		}
		out = append(out, Symbol{
			Name:  sym.Name,
			Addr:  sym.Value,
			Size:  sym.Size,
			Type:  typ,
			IsPLT: strings.HasSuffix(sym.Name, "@plt"),
		})
	}
	return out
}

// stubSection is where the per-symbol jump stubs live. Binaries built
// with indirect branch tracking move them to .plt.sec.
func (im *Image) stubSection() (Section, uint64) {
	if im.PLTSec.Size != 0 {
		return im.PLTSec, 0
	}
	// PLT[0] is the lazy binding trampoline.
	return im.PLT, 1
}

// parsePLTStubs decodes each 16-byte stub to find the GOT slot it jumps
// through.
func (im *Image) parsePLTStubs() {
	sec, first := im.stubSection()
	if sec.Size == 0 {
		return
	}
	const stubSize = 16
	for i := first; i*stubSize < sec.Size; i++ {
		addr := sec.VA + i*stubSize
		if got, ok := im.parsePLTStub(addr); ok {
			im.PLTStubs = append(im.PLTStubs, PLTStub{
				Addr:    addr,
				GOTAddr: got,
				Index:   int(i),
			})
		}
	}
}

// parsePLTStub finds the indirect jmp of a stub and returns the GOT slot
// it reads:
//
//	x86-64:        jmp [rip+disp32]
//	i386:          jmp [disp32]
//	i386 PIC:      jmp [ebx+disp32]   (ebx holds .got.plt)
func (im *Image) parsePLTStub(addr uint64) (uint64, bool) {
	code, ok := im.SliceVA(addr, 16)
	if !ok {
		return 0, false
	}
	d := disasm.New()
	d.SetMode(im.Mode)
	d.SetPC(addr)
	d.SetInputBuffer(code)
	for d.Disassemble() > 0 {
		if d.Mnemonic() != optable.Jmp {
			continue
		}
		op := d.Operand(0)
		if op == nil || op.Type != disasm.OperandMem || op.Index != optable.RegNone {
			return 0, false
		}
		disp := uint64(op.Disp())
		switch op.Base {
		case optable.RIP:
			return d.PC() + disp, true
		case optable.RegNone:
			return disp & 0xffffffff, true
		case optable.EBX:
			return (im.GOTPLT.VA + disp) & 0xffffffff, im.GOTPLT.Size != 0
		}
		return 0, false
	}
	return 0, false
}

// parsePLTRelocations reads .rela.plt (x86-64) or .rel.plt (i386) and
// matches each jump slot to its stub.
func (im *Image) parsePLTRelocations() {
	if im.File == nil {
		return
	}
	dynsyms, err := im.File.DynamicSymbols()
	if err != nil {
		return
	}
	stubs := make(map[uint64]uint64, len(im.PLTStubs))
	for _, s := range im.PLTStubs {
		stubs[s.GOTAddr] = s.Addr
	}

	add := func(off uint64, sym uint32) {
		var name string
		if sym > 0 && int(sym) <= len(dynsyms) {
			name = dynsyms[sym-1].Name // index 0 is the null symbol
		}
		im.PLTRels = append(im.PLTRels, PLTRel{
			Offset:   off,
			SymIndex: sym,
			SymName:  name,
			PLTAddr:  stubs[off],
		})
	}

	bo := im.File.ByteOrder
	if s := im.File.Section(".rela.plt"); s != nil {
		data, err := s.Data()
		if err != nil {
			return
		}
		for i := 0; i+24 <= len(data); i += 24 {
			add(bo.Uint64(data[i:]), uint32(bo.Uint64(data[i+8:])>>32))
		}
		return
	}
	if s := im.File.Section(".rel.plt"); s != nil {
		data, err := s.Data()
		if err != nil {
			return
		}
		for i := 0; i+8 <= len(data); i += 8 {
			add(uint64(bo.Uint32(data[i:])), bo.Uint32(data[i+4:])>>8)
		}
	}
}

// IsPLTEntry returns true if the given virtual address lies within
// the PLT, indicating it's a dynamically linked function stub.
func (im *Image) IsPLTEntry(va uint64) bool {
	return im.PLT.Contains(va) || im.PLTSec.Contains(va)
}

// PLTSymbols returns one "name@plt" symbol per resolved stub, sorted by
// address.
func (im *Image) PLTSymbols() []Symbol {
	var out []Symbol
	for _, rel := range im.PLTRels {
		if rel.PLTAddr == 0 || rel.SymName == "" {
			continue
		}
		out = append(out, Symbol{
			Name:  rel.SymName + "@plt",
			Addr:  rel.PLTAddr,
			Size:  16,
			Type:  elf.STT_FUNC,
			IsPLT: true,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Addr < out[j].Addr })
	return out
}

// FindFunctionByName searches for a function by name in the symbol tables.
func (im *Image) FindFunctionByName(name string) (Symbol, bool) {
	for _, syms := range [][]Symbol{im.Dynsyms, im.Syms} {
		for _, sym := range syms {
			if sym.Name == name && !sym.IsPLT {
				return sym, true
			}
		}
	}
	return Symbol{}, false
}
