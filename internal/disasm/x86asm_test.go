package disasm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/arch/x86/x86asm"
)

// Lengths must agree with the Go toolchain's decoder on ordinary code.
func TestLengthMatchesX86asm(t *testing.T) {
	tests := []struct {
		mode int
		code []byte
	}{
		{32, []byte{0x55}},
		{32, []byte{0x89, 0xe5}},
		{32, []byte{0x83, 0xec, 0x18}},
		{32, []byte{0x8b, 0x45, 0x08}},
		{32, []byte{0x8b, 0x44, 0x24, 0x04}},
		{32, []byte{0x8d, 0x04, 0x8d, 0x00, 0x00, 0x00, 0x00}},
		{32, []byte{0xc7, 0x44, 0x24, 0x04, 0x01, 0x00, 0x00, 0x00}},
		{32, []byte{0x66, 0xc7, 0x00, 0x34, 0x12}},
		{32, []byte{0xe8, 0x10, 0x00, 0x00, 0x00}},
		{32, []byte{0x0f, 0x84, 0x10, 0x00, 0x00, 0x00}},
		{32, []byte{0x0f, 0xb6, 0x45, 0xff}},
		{32, []byte{0xf3, 0xa5}},
		{32, []byte{0xa1, 0x78, 0x56, 0x34, 0x12}},
		{32, []byte{0x66, 0x0f, 0x6f, 0x04, 0x24}},
		{32, []byte{0xd9, 0x45, 0xf8}},
		{32, []byte{0xc9}},
		{32, []byte{0xc2, 0x08, 0x00}},
		{16, []byte{0x8b, 0x46, 0xfe}},
		{16, []byte{0xb8, 0x34, 0x12}},
		{16, []byte{0x66, 0xb8, 0x78, 0x56, 0x34, 0x12}},
		{16, []byte{0x67, 0x8b, 0x04, 0x24}},
		{64, []byte{0x48, 0x89, 0xe5}},
		{64, []byte{0x48, 0x83, 0xec, 0x20}},
		{64, []byte{0x48, 0x8b, 0x05, 0x10, 0x00, 0x00, 0x00}},
		{64, []byte{0x4c, 0x8d, 0x0c, 0xc8}},
		{64, []byte{0x48, 0xb8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}},
		{64, []byte{0x41, 0x57}},
		{64, []byte{0x0f, 0x05}},
		{64, []byte{0xf3, 0x0f, 0x10, 0x44, 0x24, 0x08}},
		{64, []byte{0x66, 0x0f, 0x3a, 0x0f, 0xc1, 0x08}},
		{64, []byte{0x0f, 0x1f, 0x44, 0x00, 0x00}},
		{64, []byte{0x66, 0x2e, 0x0f, 0x1f, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{64, []byte{0xe9, 0x00, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		want, err := x86asm.Decode(tt.code, tt.mode)
		require.NoError(t, err, "x86asm % x", tt.code)

		d := newDecoder(tt.mode, tt.code)
		got := d.Disassemble()
		require.NoError(t, d.Err(), "% x", tt.code)
		require.Equal(t, want.Len, got, "% x: %s", tt.code, x86asm.IntelSyntax(want, 0, nil))
	}
}
