package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyLengths(t *testing.T) {
	tests := []struct {
		name    string
		mode    int
		code    []byte
		insns   int
		skipped bool
	}{
		{"32-bit frame", 32, []byte{0x55, 0x89, 0xe5, 0x83, 0xec, 0x18, 0x8b, 0x45, 0x08, 0xc9, 0xc3}, 6, false},
		{"64-bit frame", 64, []byte{0x55, 0x48, 0x89, 0xe5, 0x48, 0x83, 0xec, 0x20, 0x0f, 0x05, 0xc3}, 5, false},
		{"16-bit", 16, []byte{0x8b, 0x46, 0xfe, 0xb8, 0x34, 0x12, 0xc3}, 3, false},
		{"unassigned opcode", 32, []byte{0x90, 0x0f, 0x04, 0xc3}, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := verifyLengths(tt.code, tt.mode, 0)
			require.Empty(t, rep.Mismatches)
			require.Equal(t, tt.insns, rep.Instructions)
			require.Equal(t, tt.skipped, rep.Skipped > 0)
		})
	}
}

func TestVerifyCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x55, 0x48, 0x89, 0xe5, 0xc3}, 0o644))

	out, err := execute(t, "", "verify", "--mode", "64", path)
	require.NoError(t, err)
	require.Equal(t, "3 instructions, 0 skipped, 0 length mismatches\n", out)

	_, err = execute(t, "", "verify", filepath.Join(t.TempDir(), "absent.bin"))
	require.Error(t, err)
}
