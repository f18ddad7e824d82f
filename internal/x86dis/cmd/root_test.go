package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the command tree the way Execute does, without fang.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(normalizeArgs(args))
	root.SetIn(strings.NewReader(stdin))
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func asmLines(lines ...string) string {
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, " %-24s\n", l)
	}
	return b.String()
}

func TestListingInputs(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "code.bin")
	require.NoError(t, os.WriteFile(raw, []byte{0x55, 0x89, 0xe5, 0xc3}, 0o644))
	hexFile := filepath.Join(dir, "code.hex")
	require.NoError(t, os.WriteFile(hexFile, []byte("55\n89 e5\nc3\n"), 0o644))

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "raw stdin",
			stdin: "\x89\xc8\xc3",
			args:  []string{"-noff", "-nohex"},
			want:  asmLines("mov eax, ecx", "ret"),
		},
		{
			name:  "hex stdin att",
			stdin: "89 c8 c3",
			args:  []string{"-x", "-att", "-noff", "-nohex"},
			want:  asmLines("mov %ecx, %eax", "ret"),
		},
		{
			name: "raw file",
			args: []string{"-noff", "-nohex", raw},
			want: asmLines("push ebp", "mov ebp, esp", "ret"),
		},
		{
			name: "hex file 16-bit",
			args: []string{"--hex", "--mode", "16", "--no-offset", "--no-hex", hexFile},
			want: asmLines("push bp", "mov bp, sp", "ret"),
		},
		{
			name:  "skip and count",
			stdin: "90 90 89 c8 c3",
			args:  []string{"-x", "-s", "2", "-c", "2", "-noff", "-nohex"},
			want:  asmLines("mov eax, ecx"),
		},
		{
			name:  "count alone",
			stdin: "\x55\x89\xe5\xc3",
			args:  []string{"-c", "1", "-noff", "-nohex"},
			want:  asmLines("push ebp"),
		},
		{
			name:  "origin",
			stdin: "48 89 e5 c3",
			args:  []string{"-x", "-64", "-o", "400000", "-nohex"},
			want:  "0000000000400000  " + pad("mov rbp, rsp", 24) + "\n0000000000400003  " + pad("ret", 24) + "\n",
		},
		{
			name:  "truncated tail",
			stdin: "89",
			args:  []string{"-x", "-noff"},
			want:  pad("89", 16) + " " + pad("invalid", 24) + "\n",
		},
		{
			name:  "bad hex stops input",
			stdin: "90 zz c3",
			args:  []string{"-x", "-noff", "-nohex"},
			want:  asmLines("nop"),
		},
		{
			name:  "eflags",
			stdin: "01 c0",
			args:  []string{"-x", "-noff", "-nohex", "-eflags"},
			want:  " " + pad("add eax, eax", 24) + " ; of:M sf:M zf:M af:M pf:M cf:M tf:_ if:_ df:_ nt:_ rf:_\n",
		},
		{
			name:  "vendor intel rejects syscall in 32-bit",
			stdin: "0f 05",
			args:  []string{"-x", "-v", "intel", "-noff", "-nohex"},
			want:  asmLines("invalid"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestListingErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad mode", []string{"--mode", "8"}},
		{"bad syntax", []string{"--syntax", "masm"}},
		{"bad vendor", []string{"--vendor", "via"}},
		{"bad origin", []string{"-o", "xyz"}},
		{"symbol without elf", []string{"--symbol", "main"}},
		{"follow without file", []string{"--follow"}},
		{"missing file", []string{filepath.Join(t.TempDir(), "absent.bin")}},
		{"elf and hex", []string{"--elf", "-x", "a.out"}},
		{"strings without elf", []string{"--strings"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
		})
	}
}

func TestListingELF(t *testing.T) {
	if runtime.GOOS != "linux" || runtime.GOARCH != "amd64" {
		t.Skip("needs a linux/amd64 test binary")
	}
	exe, err := os.Executable()
	require.NoError(t, err)

	out, err := execute(t, "", "--elf", "--strings", "--symbol", "main.main", "--count", "32", exe)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "\nmain.main:\n"), "output:\n%s", out)

	_, err = execute(t, "", "--elf", "--symbol", "no.such.function", exe)
	require.Error(t, err)
}

func TestSchema(t *testing.T) {
	out, err := execute(t, "", "schema")
	require.NoError(t, err)
	for _, field := range []string{`"mode"`, `"syntax"`, `"noOffset"`, `"follow"`, `"Config"`} {
		require.Contains(t, out, field)
	}
}
