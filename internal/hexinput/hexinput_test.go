package hexinput

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"x86dis/internal/disasm"
	"x86dis/internal/optable"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr bool
	}{
		{"spaces", "55 48 89 e5", []byte{0x55, 0x48, 0x89, 0xe5}, false},
		{"newlines and tabs", "90\n\t90\r\n c3", []byte{0x90, 0x90, 0xc3}, false},
		{"0x prefix", "0x90 0XC3", []byte{0x90, 0xc3}, false},
		{"single digit", "1 f", []byte{0x01, 0x0f}, false},
		{"wide value", "1ff", []byte{0xff}, false},
		{"empty", "", []byte{}, false},
		{"garbage", "90 zz c3", []byte{0x90}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNotHex)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReaderWarnsOnWideValues(t *testing.T) {
	var logs bytes.Buffer
	r := NewReader(strings.NewReader("1c3"), log.New(&logs))
	b, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0xc3), b)
	require.Contains(t, logs.String(), "Casting non-8-bit input")

	_, err = r.ReadByte()
	require.ErrorIs(t, err, io.EOF)
	require.NoError(t, r.Err())
}

func TestReaderStopsOnGarbage(t *testing.T) {
	r := NewReader(strings.NewReader("90 xyz 90"), nil)
	b, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x90), b)

	_, err = r.ReadByte()
	require.ErrorIs(t, err, io.EOF)
	require.ErrorIs(t, r.Err(), ErrNotHex)

	_, err = r.ReadByte()
	require.ErrorIs(t, err, io.EOF)
}

func TestReaderDrivesDecoder(t *testing.T) {
	r := NewReader(strings.NewReader("55 89 e5\nc3\n"), nil)
	d := disasm.New()
	d.SetMode(32)
	d.SetSyntax(disasm.SyntaxIntel)
	d.SetInputHook(r.Hook())

	var got []string
	for d.Disassemble() > 0 {
		got = append(got, d.Asm())
	}
	require.Equal(t, []string{"push ebp", "mov ebp, esp", "ret"}, got)
}

func TestLimit(t *testing.T) {
	r := NewReader(strings.NewReader("90 90 90 90"), nil)
	hook := Limit(r.Hook(), 2)
	for i := 0; i < 2; i++ {
		_, err := hook(nil)
		require.NoError(t, err)
	}
	_, err := hook(nil)
	require.ErrorIs(t, err, io.EOF)

	unlimited := Limit(NewReader(strings.NewReader("90"), nil).Hook(), -1)
	b, err := unlimited(nil)
	require.NoError(t, err)
	require.Equal(t, byte(0x90), b)
}

func TestFollow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.hex")
	require.NoError(t, os.WriteFile(path, []byte("90 90\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	f, err := Follow(ctx, path, nil)
	require.NoError(t, err)
	defer f.Close()

	for i := 0; i < 2; i++ {
		b, err := f.ReadByte()
		require.NoError(t, err)
		require.Equal(t, byte(0x90), b)
	}

	fh, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = fh.WriteString("c3\n")
	require.NoError(t, err)
	require.NoError(t, fh.Close())

	d := disasm.New()
	d.SetMode(32)
	d.SetInputHook(f.Hook())
	require.Equal(t, 1, d.Disassemble())
	require.Equal(t, optable.Ret, d.Mnemonic())

	cancel()
	b, err := f.ReadByte()
	require.True(t, errors.Is(err, io.EOF), "byte %#x", b)
}

func TestFollowMissingFile(t *testing.T) {
	_, err := Follow(context.Background(), filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
}
