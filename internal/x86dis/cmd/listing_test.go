package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"x86dis/internal/disasm"
	"x86dis/internal/elfx"
)

func decodeFirst(t *testing.T, mode int, code []byte) *disasm.Decoder {
	t.Helper()
	d := disasm.New()
	d.SetMode(mode)
	d.SetSyntax(disasm.SyntaxIntel)
	d.SetInputBuffer(code)
	require.Equal(t, len(code), d.Disassemble())
	return d
}

func pad(s string, n int) string {
	return s + strings.Repeat(" ", n-len(s))
}

func TestFormatLine(t *testing.T) {
	imm64 := []byte{0x48, 0xb8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}
	tests := []struct {
		name string
		mode int
		code []byte
		cfg  Config
		want string
	}{
		{
			name: "default columns",
			mode: 32,
			code: []byte{0x89, 0xc8},
			want: "0000000000000000 " + pad("89c8", 16) + " " + pad("mov eax, ecx", 24),
		},
		{
			name: "hex continuation",
			mode: 64,
			code: imm64,
			want: "0000000000000000 48b8887766554433 mov rax, 0x1122334455667788\n" +
				strings.Repeat(" ", 16) + "-" + pad("2211", 16),
		},
		{
			name: "hex continuation without offset",
			mode: 64,
			code: imm64,
			cfg:  Config{NoOffset: true},
			want: "48b8887766554433 mov rax, 0x1122334455667788\n" + pad("2211", 16),
		},
		{
			name: "no hex",
			mode: 32,
			code: []byte{0x89, 0xc8},
			cfg:  Config{NoHex: true},
			want: "0000000000000000  " + pad("mov eax, ecx", 24),
		},
		{
			name: "bare",
			mode: 32,
			code: []byte{0xc3},
			cfg:  Config{NoHex: true, NoOffset: true},
			want: " " + pad("ret", 24),
		},
		{
			name: "all metadata",
			mode: 32,
			code: []byte{0x01, 0xc0},
			cfg:  Config{NoHex: true, NoOffset: true, Eflags: true, Access: true, Implicit: true},
			want: " " + pad("add eax, eax", 24) +
				" ; of:M sf:M zf:M af:M pf:M cf:M tf:_ if:_ df:_ nt:_ rf:_" +
				", access op0=RW op1=R" +
				", implicit reg used: none, implicit reg modified: none",
		},
		{
			name: "access only",
			mode: 32,
			code: []byte{0x89, 0xc8},
			cfg:  Config{NoHex: true, NoOffset: true, Access: true},
			want: " " + pad("mov eax, ecx", 24) + " ; access op0=W op1=R",
		},
		{
			name: "access without operands",
			mode: 32,
			code: []byte{0xc3},
			cfg:  Config{NoHex: true, NoOffset: true, Access: true},
			want: " " + pad("ret", 24) + " ; ",
		},
		{
			name: "implicit registers",
			mode: 32,
			code: []byte{0x50},
			cfg:  Config{NoHex: true, NoOffset: true, Implicit: true},
			want: " " + pad("push eax", 24) + " ; implicit reg used: rsp, implicit reg modified: rsp",
		},
		{
			name: "eflags and implicit",
			mode: 32,
			code: []byte{0xc3},
			cfg:  Config{NoHex: true, NoOffset: true, Eflags: true, Implicit: true},
			want: " " + pad("ret", 24) +
				" ; of:_ sf:_ zf:_ af:_ pf:_ cf:_ tf:_ if:_ df:_ nt:_ rf:_" +
				", implicit reg used: rsp, implicit reg modified: rsp",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decodeFirst(t, tt.mode, tt.code)
			require.Equal(t, tt.want, formatLine(d.Inst(), d.Asm(), &tt.cfg, nil))
		})
	}
}

type mapLabels map[uint64]string

func (m mapLabels) Label(addr uint64) (string, bool) {
	name, ok := m[addr]
	return name, ok
}

func TestListerLabels(t *testing.T) {
	d := disasm.New()
	d.SetMode(32)
	d.SetSyntax(disasm.SyntaxIntel)
	d.SetPC(0x1000)
	d.SetInputBuffer([]byte{0x55, 0xc3, 0xc3})

	var buf bytes.Buffer
	cfg := Config{NoHex: true}
	l := newLister(&cfg, &buf, nil)
	l.labels = mapLabels{0x1000: "start", 0x1002: "tail"}
	n, err := l.run(d)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	want := "\nstart:\n" +
		"0000000000001000  " + pad("push ebp", 24) + "\n" +
		"0000000000001001  " + pad("ret", 24) + "\n" +
		"\ntail:\n" +
		"0000000000001002  " + pad("ret", 24) + "\n"
	require.Equal(t, want, buf.String())
}

func TestListerStrings(t *testing.T) {
	data := []byte("usage: x86dis\x00")
	im := &elfx.Image{
		All:    data,
		Loads:  []elfx.Seg{{Vaddr: 0x2000, Filesz: uint64(len(data))}},
		Rodata: elfx.Section{Name: ".rodata", VA: 0x2000, Size: uint64(len(data))},
	}
	d := disasm.New()
	d.SetMode(32)
	d.SetSyntax(disasm.SyntaxIntel)
	d.SetInputBuffer([]byte{0x68, 0x00, 0x20, 0x00, 0x00, 0xc3})

	var buf bytes.Buffer
	cfg := Config{NoHex: true, NoOffset: true}
	l := newLister(&cfg, &buf, nil)
	l.image = im
	_, err := l.run(d)
	require.NoError(t, err)
	require.Equal(t, " "+pad("push 0x2000", 24)+` ; "usage: x86dis"`+"\n "+pad("ret", 24)+"\n", buf.String())
}
