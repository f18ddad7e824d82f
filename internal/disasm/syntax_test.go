package disasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type renderCase struct {
	name string
	mode int
	pc   uint64
	code []byte
	want string
}

func render(t *testing.T, syntax Syntax, tc renderCase) {
	t.Helper()
	d := newDecoder(tc.mode, tc.code)
	d.SetSyntax(syntax)
	d.SetPC(tc.pc)
	require.Equal(t, len(tc.code), d.Disassemble(), "% x", tc.code)
	require.Equal(t, tc.want, d.Asm())
}

func TestIntel(t *testing.T) {
	tests := []renderCase{
		{"reg reg", 32, 0, []byte{0x89, 0xc8}, "mov eax, ecx"},
		{"base disp8", 32, 0, []byte{0x8b, 0x45, 0x08}, "mov eax, [ebp+0x8]"},
		{"sib esp base", 32, 0, []byte{0x8b, 0x44, 0x24, 0x04}, "mov eax, [esp+0x4]"},
		{"imm to memory", 32, 0, []byte{0xc7, 0x00, 0x01, 0x00, 0x00, 0x00}, "mov dword [eax], 0x1"},
		{"index only", 32, 0, []byte{0x8d, 0x04, 0x8d, 0x00, 0x00, 0x00, 0x00}, "lea eax, [ecx*4]"},
		{"operand size nop", 32, 0, []byte{0x66, 0x90}, "nop"},
		{"pause", 32, 0, []byte{0xf3, 0x90}, "pause"},
		{"rep string", 32, 0, []byte{0xf3, 0xa4}, "rep movsb"},
		{"repe compare", 32, 0, []byte{0xf3, 0xa6}, "repe cmpsb"},
		{"segment on string", 32, 0, []byte{0x26, 0xa4}, "es movsb"},
		{"segment on nop", 32, 0, []byte{0x2e, 0x90}, "nop"},
		{"call rel32", 32, 0, []byte{0xe8, 0x00, 0x00, 0x00, 0x00}, "call 0x5"},
		{"jmp self", 32, 0, []byte{0xeb, 0xfe}, "jmp 0x0"},
		{"jmp from pc", 32, 0x400000, []byte{0xeb, 0x10}, "jmp 0x400012"},
		{"syscall amd", 32, 0, []byte{0x0f, 0x05}, "syscall"},
		{"fxch", 32, 0, []byte{0xd9, 0xc9}, "fxch st0, st1"},
		{"fld memory", 32, 0, []byte{0xd9, 0x00}, "fld dword [eax]"},
		{"movups", 32, 0, []byte{0x0f, 0x10, 0xc1}, "movups xmm0, xmm1"},
		{"movss", 32, 0, []byte{0xf3, 0x0f, 0x10, 0xc1}, "movss xmm0, xmm1"},
		{"movupd", 32, 0, []byte{0x66, 0x0f, 0x10, 0xc1}, "movupd xmm0, xmm1"},
		{"movdqa", 32, 0, []byte{0x66, 0x0f, 0x6f, 0xc1}, "movdqa xmm0, xmm1"},
		{"ret", 32, 0, []byte{0xc3}, "ret"},
		{"int3", 32, 0, []byte{0xcc}, "int3"},
		{"int", 32, 0, []byte{0xcd, 0x80}, "int 0x80"},
		{"segment source", 32, 0, []byte{0x8c, 0xd8}, "mov eax, ds"},
		{"3dnow", 32, 0, []byte{0x0f, 0x0f, 0xc1, 0xb4}, "pfmul mm0, mm1"},
		{"moffs", 32, 0, []byte{0xa1, 0x78, 0x56, 0x34, 0x12}, "mov eax, [0x12345678]"},
		{"moffs fs", 32, 0, []byte{0x64, 0xa1, 0x00, 0x00, 0x00, 0x00}, "mov eax, [fs:0x0]"},
		{"movzx reg", 32, 0, []byte{0x0f, 0xb6, 0xc1}, "movzx eax, cl"},
		{"movzx mem", 32, 0, []byte{0x0f, 0xb6, 0x01}, "movzx eax, byte [ecx]"},
		{"sign-extended imm8", 32, 0, []byte{0x83, 0xc0, 0xff}, "add eax, 0xffffffff"},
		{"shift imm", 32, 0, []byte{0xc1, 0xe0, 0x04}, "shl eax, 0x4"},
		{"shift mem by cl", 32, 0, []byte{0xd3, 0x20}, "shl dword [eax], cl"},
		{"far indirect", 32, 0, []byte{0xff, 0x18}, "call far dword [eax]"},
		{"far direct", 32, 0, []byte{0x9a, 0x78, 0x56, 0x34, 0x12, 0x00, 0x10}, "call dword 0x1000:0x12345678"},
		{"enter", 32, 0, []byte{0xc8, 0x10, 0x00, 0x01}, "enter 0x10, 0x1"},
		{"lock", 32, 0, []byte{0xf0, 0x01, 0x08}, "lock add [eax], ecx"},
		{"nop modrm", 32, 0, []byte{0x0f, 0x1f, 0x00}, "nop dword [eax]"},
		{"neg mem", 32, 0, []byte{0xf7, 0x18}, "neg dword [eax]"},

		{"16 reg reg", 16, 0, []byte{0x89, 0xc8}, "mov ax, cx"},
		{"16 bx+si", 16, 0, []byte{0x8b, 0x00}, "mov ax, [bx+si]"},
		{"16 bp disp8", 16, 0, []byte{0x8b, 0x46, 0xfe}, "mov ax, [bp-0x2]"},
		{"16 moffs", 16, 0, []byte{0xa1, 0x34, 0x12}, "mov ax, [0x1234]"},
		{"16 operand size", 16, 0, []byte{0x66, 0x31, 0xc0}, "xor eax, eax"},
		{"16 sign-extended imm8", 16, 0, []byte{0x83, 0xc0, 0xff}, "add ax, 0xffff"},
		{"16 push imm8", 16, 0, []byte{0x6a, 0xff}, "push 0xffff"},

		{"64 reg reg", 64, 0, []byte{0x48, 0x89, 0xc8}, "mov rax, rcx"},
		{"64 rex.r", 64, 0, []byte{0x4c, 0x89, 0xc0}, "mov rax, r8"},
		{"64 push r8", 64, 0, []byte{0x41, 0x50}, "push r8"},
		{"64 push rax", 64, 0, []byte{0x50}, "push rax"},
		{"64 rip relative", 64, 0, []byte{0x48, 0x8b, 0x05, 0x10, 0x00, 0x00, 0x00}, "mov rax, [rip+0x10]"},
		{"64 spl", 64, 0, []byte{0x40, 0x88, 0xe0}, "mov al, spl"},
		{"64 ah", 64, 0, []byte{0x88, 0xe0}, "mov al, ah"},
		{"64 imm64", 64, 0, []byte{0x48, 0xb8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, "mov rax, 0x1122334455667788"},
		{"64 rep movsq", 64, 0, []byte{0xf3, 0x48, 0xa5}, "rep movsq"},
		{"64 swapgs", 64, 0, []byte{0x0f, 0x01, 0xf8}, "swapgs"},
		{"64 palignr", 64, 0, []byte{0x66, 0x0f, 0x3a, 0x0f, 0xc1, 0x08}, "palignr xmm0, xmm1, 0x8"},
		{"64 jmp rel32", 64, 0, []byte{0xe9, 0x00, 0x00, 0x00, 0x00}, "jmp 0x5"},
		{"64 sign-extended imm8", 64, 0, []byte{0x48, 0x83, 0xc0, 0xff}, "add rax, 0xffffffffffffffff"},
		{"64 xchg r8", 64, 0, []byte{0x41, 0x90}, "xchg r8d, eax"},
		{"64 sib rex", 64, 0, []byte{0x4a, 0x8b, 0x04, 0xc8}, "mov rax, [rax+r9*8]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			render(t, SyntaxIntel, tt)
		})
	}
}

func TestATT(t *testing.T) {
	tests := []renderCase{
		{"reg reg", 32, 0, []byte{0x89, 0xc8}, "mov %ecx, %eax"},
		{"base disp8", 32, 0, []byte{0x8b, 0x45, 0x08}, "mov 0x8(%ebp), %eax"},
		{"imm to memory", 32, 0, []byte{0xc7, 0x00, 0x01, 0x00, 0x00, 0x00}, "movl $0x1, (%eax)"},
		{"index only", 32, 0, []byte{0x8d, 0x04, 0x8d, 0x00, 0x00, 0x00, 0x00}, "lea (,%ecx,4), %eax"},
		{"fld memory", 32, 0, []byte{0xd9, 0x00}, "fld (%eax)"},
		{"moffs fs", 32, 0, []byte{0x64, 0xa1, 0x00, 0x00, 0x00, 0x00}, "mov %fs:0x0, %eax"},
		{"shift mem by cl", 32, 0, []byte{0xd3, 0x20}, "shll %cl, (%eax)"},
		{"far indirect", 32, 0, []byte{0xff, 0x18}, "lcall *(%eax)"},
		{"near indirect", 32, 0, []byte{0xff, 0xd0}, "call *%eax"},
		{"far direct", 32, 0, []byte{0x9a, 0x78, 0x56, 0x34, 0x12, 0x00, 0x10}, "lcall $0x1000, $0x12345678"},
		{"far return", 32, 0, []byte{0xcb}, "lret"},
		{"enter keeps order", 32, 0, []byte{0xc8, 0x10, 0x00, 0x01}, "enter $0x10, $0x1"},
		{"call rel32", 32, 0, []byte{0xe8, 0x00, 0x00, 0x00, 0x00}, "call 0x5"},
		{"rep string", 32, 0, []byte{0xf3, 0xa4}, "rep movsb"},
		{"no operands", 32, 0, []byte{0xc3}, "ret"},
		{"16 bp disp8", 16, 0, []byte{0x8b, 0x46, 0xfe}, "mov -0x2(%bp), %ax"},
		{"64 rip relative", 64, 0, []byte{0x48, 0x8b, 0x05, 0x10, 0x00, 0x00, 0x00}, "mov 0x10(%rip), %rax"},
		{"64 sib rex", 64, 0, []byte{0x4a, 0x8b, 0x04, 0xc8}, "mov (%rax,%r9,8), %rax"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			render(t, SyntaxATT, tt)
		})
	}
}

func TestInvalidRenders(t *testing.T) {
	for _, s := range []Syntax{SyntaxIntel, SyntaxATT} {
		d := newDecoder(64, []byte{0x06})
		d.SetSyntax(s)
		require.Equal(t, 1, d.Disassemble())
		require.Equal(t, "invalid", d.Asm())
	}
}

func TestSyntaxNone(t *testing.T) {
	d := newDecoder(32, []byte{0x89, 0xc8})
	d.SetSyntax(SyntaxNone)
	require.Equal(t, 2, d.Disassemble())
	require.Empty(t, d.Asm())
}

func TestExternalBuffer(t *testing.T) {
	d := newDecoder(32, []byte{0x89, 0xc8, 0x89, 0xc8})
	d.SetSyntax(SyntaxIntel)

	buf := make([]byte, 5)
	d.SetBuffer(buf)
	d.Disassemble()
	require.Equal(t, "mov e", d.Asm())
	require.Equal(t, "mov e", string(buf))

	d.SetBuffer(nil)
	d.Disassemble()
	require.Equal(t, "mov eax, ecx", d.Asm())
}

var branchCode = []byte{
	0x01, 0xc0, 0xeb, 0x11, 0x01, 0xc0, 0xe8, 0x14,
	0x00, 0x00, 0x00, 0x01, 0xc0, 0x01, 0xc0, 0x74,
	0x02, 0x01, 0xc0, 0x90, 0x90, 0xeb, 0xfe, 0x90,
	0x90, 0xeb, 0xf8, 0x90, 0x90, 0x74, 0xf6, 0x90,
	0x90, 0xe8, 0xf4, 0xff, 0xff, 0xff,
}

func listing(r SymbolResolver) []string {
	d := newDecoder(32, branchCode)
	d.SetSyntax(SyntaxIntel)
	d.SetSymbolResolver(r)
	var out []string
	for d.Disassemble() > 0 {
		out = append(out, d.Asm())
	}
	return out
}

func TestSymbolResolver(t *testing.T) {
	plain := []string{
		"add eax, eax", "jmp 0x15", "add eax, eax", "call 0x1f",
		"add eax, eax", "add eax, eax", "jz 0x13", "add eax, eax",
		"nop", "nop", "jmp 0x15", "nop", "nop", "jmp 0x13",
		"nop", "nop", "jz 0x15", "nop", "nop", "call 0x1a",
	}
	require.Equal(t, plain, listing(nil))

	named := []string{
		"add eax, eax", "jmp target", "add eax, eax", "call target+10",
		"add eax, eax", "add eax, eax", "jz target-2", "add eax, eax",
		"nop", "nop", "jmp target", "nop", "nop", "jmp target-2",
		"nop", "nop", "jz target", "nop", "nop", "call target+5",
	}
	resolver := SymbolResolverFunc(func(addr uint64) (string, int64, bool) {
		return "target", int64(addr) - 0x15, true
	})
	require.Equal(t, named, listing(resolver))

	declines := SymbolResolverFunc(func(uint64) (string, int64, bool) { return "", 0, false })
	require.Equal(t, plain, listing(declines))
}

func TestSignExtended(t *testing.T) {
	tests := []struct {
		name string
		mode int
		code []byte
		op   int
		want uint64
	}{
		{"imm8 sext 32", 32, []byte{0x83, 0xc0, 0xff}, 1, 0xffffffff},
		{"imm8 sext 64", 64, []byte{0x48, 0x83, 0xc0, 0xff}, 1, 0xffffffffffffffff},
		{"imm8 sext 16", 16, []byte{0x83, 0xc0, 0x80}, 1, 0xff80},
		{"imm8 plain", 32, []byte{0xc1, 0xe0, 0xff}, 1, 0xff},
		{"imm8 plain under rex.w", 64, []byte{0x48, 0xc1, 0xe0, 0x80}, 1, 0x80},
		{"imm16", 32, []byte{0xc2, 0xfe, 0xff}, 0, 0xfffe},
		{"imm32 under rex.w", 64, []byte{0x48, 0x05, 0x00, 0x00, 0x00, 0x80}, 1, 0xffffffff80000000},
		{"imm32", 32, []byte{0x05, 0x00, 0x00, 0x00, 0x80}, 1, 0x80000000},
		{"rel8", 32, []byte{0xeb, 0xfe}, 0, 0xfffffffe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecoder(tt.mode, tt.code)
			require.Equal(t, len(tt.code), d.Disassemble())
			require.Equal(t, tt.want, d.Inst().SignExtended(tt.op))
		})
	}
}

func TestTarget(t *testing.T) {
	d := newDecoder(16, []byte{0xeb, 0xfe})
	d.SetPC(0)
	d.Disassemble()
	got, ok := d.Inst().Target(0)
	require.True(t, ok)
	require.Equal(t, uint64(0), got)

	d = newDecoder(16, []byte{0xe9, 0xfd, 0xff})
	d.SetPC(0)
	d.Disassemble()
	got, _ = d.Inst().Target(0)
	require.Equal(t, uint64(0), got)

	d = newDecoder(32, []byte{0x90})
	d.Disassemble()
	_, ok = d.Inst().Target(0)
	require.False(t, ok)
}
