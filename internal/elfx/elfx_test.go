package elfx

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	base    = 0x8048000
	textVA  = base + 0x100
	pltVA   = base + 0x110
	gotVA   = base + 0x130
	putsGOT = gotVA + 12
)

// The program: main calls puts through the PLT, helper returns zero.
var (
	textCode = []byte{
		0x55, 0x89, 0xe5, 0xe8, 0x18, 0x00, 0x00, 0x00, 0x5d, 0xc3, // main
		0x31, 0xc0, 0xc3, // helper
		0x90, 0x90, 0x90,
	}
	pltCode = []byte{
		0xff, 0x35, 0x34, 0x81, 0x04, 0x08, 0xff, 0x25, 0x38, 0x81, 0x04, 0x08, 0x00, 0x00, 0x00, 0x00,
		0xff, 0x25, 0x3c, 0x81, 0x04, 0x08, 0x68, 0x00, 0x00, 0x00, 0x00, 0xe9, 0xe0, 0xff, 0xff, 0xff,
	}
)

type testSection struct {
	name    string
	typ     elf.SectionType
	data    []byte
	link    uint32
	entsize uint32
	alloc   bool
}

func le(vals ...any) []byte {
	var b bytes.Buffer
	for _, v := range vals {
		if err := binary.Write(&b, binary.LittleEndian, v); err != nil {
			panic(err)
		}
	}
	return b.Bytes()
}

func sym32(name, value, size uint32, info uint8, shndx uint16) elf.Sym32 {
	return elf.Sym32{Name: name, Value: value, Size: size, Info: info, Shndx: shndx}
}

// writeI386 lays out a small dynamically linked i386 executable with one
// PT_LOAD segment covering the whole file.
func writeI386(t *testing.T, machine elf.Machine) string {
	t.Helper()
	funcInfo := elf.ST_INFO(elf.STB_GLOBAL, elf.STT_FUNC)

	sections := []testSection{
		{name: ".text", typ: elf.SHT_PROGBITS, data: textCode, alloc: true},
		{name: ".plt", typ: elf.SHT_PROGBITS, data: pltCode, alloc: true},
		{name: ".got.plt", typ: elf.SHT_PROGBITS, data: make([]byte, 16), alloc: true},
		{name: ".symtab", typ: elf.SHT_SYMTAB, link: 5, entsize: 16, data: le(
			sym32(0, 0, 0, 0, 0),
			sym32(1, textVA, 10, funcInfo, 1),
			sym32(6, textVA+10, 3, funcInfo, 1),
		)},
		{name: ".strtab", typ: elf.SHT_STRTAB, data: []byte("\x00main\x00helper\x00")},
		{name: ".dynsym", typ: elf.SHT_DYNSYM, link: 7, entsize: 16, data: le(
			sym32(0, 0, 0, 0, 0),
			sym32(1, 0, 0, funcInfo, 0),
		)},
		{name: ".dynstr", typ: elf.SHT_STRTAB, data: []byte("\x00puts\x00")},
		{name: ".rel.plt", typ: elf.SHT_REL, link: 6, entsize: 8, data: le(
			uint32(putsGOT), uint32(1<<8|uint32(elf.R_386_JMP_SLOT)),
		)},
	}

	var shstr bytes.Buffer
	shstr.WriteByte(0)
	names := make([]uint32, len(sections)+1)
	for i, s := range sections {
		names[i] = uint32(shstr.Len())
		shstr.WriteString(s.name + "\x00")
	}
	names[len(sections)] = uint32(shstr.Len())
	shstr.WriteString(".shstrtab\x00")
	sections = append(sections, testSection{name: ".shstrtab", typ: elf.SHT_STRTAB, data: shstr.Bytes()})

	body := make([]byte, 0x100)
	headers := []elf.Section32{{}}
	for i, s := range sections {
		for len(body)%16 != 0 {
			body = append(body, 0)
		}
		off := uint32(len(body))
		sh := elf.Section32{
			Name:      names[i],
			Type:      uint32(s.typ),
			Off:       off,
			Size:      uint32(len(s.data)),
			Link:      s.link,
			Addralign: 1,
			Entsize:   s.entsize,
		}
		if s.alloc {
			sh.Flags = uint32(elf.SHF_ALLOC | elf.SHF_EXECINSTR)
			sh.Addr = base + off
		}
		if s.typ == elf.SHT_SYMTAB || s.typ == elf.SHT_DYNSYM {
			sh.Info = 1
		}
		headers = append(headers, sh)
		body = append(body, s.data...)
	}
	for len(body)%4 != 0 {
		body = append(body, 0)
	}
	shoff := uint32(len(body))

	var ident [elf.EI_NIDENT]byte
	copy(ident[:], elf.ELFMAG)
	ident[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	hdr := le(elf.Header32{
		Ident:     ident,
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(machine),
		Version:   uint32(elf.EV_CURRENT),
		Entry:     textVA,
		Phoff:     52,
		Shoff:     shoff,
		Ehsize:    52,
		Phentsize: 32,
		Phnum:     1,
		Shentsize: 40,
		Shnum:     uint16(len(headers)),
		Shstrndx:  uint16(len(headers) - 1),
	}, elf.Prog32{
		Type:   uint32(elf.PT_LOAD),
		Vaddr:  base,
		Paddr:  base,
		Filesz: shoff,
		Memsz:  shoff,
		Flags:  uint32(elf.PF_R | elf.PF_X),
		Align:  0x1000,
	})
	copy(body, hdr)
	for _, sh := range headers {
		body = append(body, le(sh)...)
	}

	path := filepath.Join(t.TempDir(), "a.out")
	require.NoError(t, os.WriteFile(path, body, 0o755))
	return path
}

func TestOpenI386(t *testing.T) {
	im, err := Open(writeI386(t, elf.EM_386))
	require.NoError(t, err)
	defer im.Close()

	require.Equal(t, 32, im.Mode)
	require.Equal(t, uint64(textVA), im.Text.VA)
	code, ok := im.TextBytes()
	require.True(t, ok)
	require.Equal(t, textCode, code)

	off, ok := im.VA2Off(pltVA)
	require.True(t, ok)
	require.Equal(t, uint64(0x110), off)
	_, ok = im.VA2Off(0x1000)
	require.False(t, ok)

	sym, ok := im.FindFunctionByName("helper")
	require.True(t, ok)
	require.Equal(t, uint64(textVA+10), sym.Addr)
	require.Equal(t, uint64(3), sym.Size)
	_, ok = im.FindFunctionByName("puts")
	require.False(t, ok)
}

func TestPLT(t *testing.T) {
	im, err := Open(writeI386(t, elf.EM_386))
	require.NoError(t, err)
	defer im.Close()

	require.Equal(t, []PLTStub{{Addr: pltVA + 16, GOTAddr: putsGOT, Index: 1}}, im.PLTStubs)
	require.Len(t, im.PLTRels, 1)
	require.Equal(t, "puts", im.PLTRels[0].SymName)
	require.True(t, im.IsPLTEntry(pltVA+20))
	require.False(t, im.IsPLTEntry(textVA))

	plt := im.PLTSymbols()
	require.Len(t, plt, 1)
	require.Equal(t, "puts@plt", plt[0].Name)
	require.Equal(t, uint64(pltVA+16), plt[0].Addr)
}

func TestOpenRejectsOtherMachines(t *testing.T) {
	_, err := Open(writeI386(t, elf.EM_ARM))
	require.ErrorIs(t, err, ErrUnsupportedMachine)

	_, err = Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestOpenSelf(t *testing.T) {
	if runtime.GOOS != "linux" || runtime.GOARCH != "amd64" {
		t.Skip("needs a linux/amd64 test binary")
	}
	exe, err := os.Executable()
	require.NoError(t, err)

	im, err := Open(exe)
	require.NoError(t, err)
	defer im.Close()

	require.Equal(t, 64, im.Mode)
	require.NotZero(t, im.Text.Size)
	_, ok := im.FindFunctionByName("main.main")
	require.True(t, ok)
}
