package disasm

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"x86dis/internal/optable"
)

func newDecoder(mode int, code []byte) *Decoder {
	d := New()
	d.SetMode(mode)
	d.SetInputBuffer(code)
	return d
}

func TestMovEaxEcx(t *testing.T) {
	d := newDecoder(32, []byte{0x89, 0xc8})
	require.Equal(t, 2, d.Disassemble())
	require.Equal(t, optable.Mov, d.Mnemonic())
	require.Equal(t, OperandReg, d.Operand(0).Type)
	require.Equal(t, optable.EAX, d.Operand(0).Base)
	require.Equal(t, optable.ECX, d.Operand(1).Base)
	require.Nil(t, d.Operand(2))
	require.Equal(t, "89c8", d.Hex())
	require.NoError(t, d.Err())
	require.Equal(t, 0, d.Disassemble())
}

func TestTruncated(t *testing.T) {
	d := newDecoder(32, []byte{0x89})
	require.Equal(t, 1, d.Disassemble())
	require.Equal(t, optable.Invalid, d.Mnemonic())
	require.ErrorIs(t, d.Err(), ErrTruncated)
	require.Nil(t, d.Operand(0))
	require.Equal(t, 0, d.Disassemble())
}

func TestTruncationConsumesOnlyAvailableBytes(t *testing.T) {
	tests := []struct {
		name string
		mode int
		code []byte
	}{
		{"mov reg", 32, []byte{0x89, 0xc8}},
		{"mov disp8", 32, []byte{0x8b, 0x45, 0x08}},
		{"mov imm32", 32, []byte{0xc7, 0x00, 0x01, 0x00, 0x00, 0x00}},
		{"sib disp32", 32, []byte{0x8d, 0x04, 0x8d, 0x00, 0x00, 0x00, 0x00}},
		{"rex mov", 64, []byte{0x48, 0x89, 0xc8}},
		{"movabs", 64, []byte{0x48, 0xb8, 1, 2, 3, 4, 5, 6, 7, 8}},
		{"sse", 32, []byte{0x66, 0x0f, 0x3a, 0x0f, 0xc1, 0x08}},
		{"3dnow", 32, []byte{0x0f, 0x0f, 0xc1, 0xb4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			full := newDecoder(tt.mode, tt.code)
			require.Equal(t, len(tt.code), full.Disassemble())
			require.NoError(t, full.Err())

			for n := 1; n < len(tt.code); n++ {
				d := newDecoder(tt.mode, tt.code[:n])
				require.Equal(t, n, d.Disassemble(), "prefix of %d bytes", n)
				require.Equal(t, optable.Invalid, d.Mnemonic())
				require.ErrorIs(t, d.Err(), ErrTruncated)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	code := []byte{0x89, 0xc8, 0x90}

	d := newDecoder(32, code)
	d.Skip(2)
	require.Equal(t, 1, d.Disassemble())
	require.Equal(t, optable.Nop, d.Mnemonic())

	d = newDecoder(32, code)
	d.Skip(0)
	require.Equal(t, 2, d.Disassemble())
	require.Equal(t, []byte{0x89, 0xc8}, d.Bytes())

	for _, n := range []int{3, 4, 100} {
		d = newDecoder(32, code)
		d.Skip(n)
		require.Equal(t, 0, d.Disassemble(), "skip %d", n)
		require.True(t, d.InputEnd())
	}
}

func TestSkipReader(t *testing.T) {
	d := New()
	d.SetMode(32)
	d.SetInputReader(bytes.NewReader([]byte{0x89, 0xc8, 0x90}))
	d.Skip(2)
	require.Equal(t, 1, d.Disassemble())
	require.Equal(t, optable.Nop, d.Mnemonic())

	d.SetInputReader(bytes.NewReader([]byte{0x90}))
	d.Skip(2)
	require.Equal(t, 0, d.Disassemble())
}

func nopHook(n int) InputHook {
	return func(any) (byte, error) {
		if n == 0 {
			return 0, io.EOF
		}
		n--
		return 0x90, nil
	}
}

func TestInputHook(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		d := New()
		d.SetMode(32)
		d.SetInputHook(nopHook(n))
		got := 0
		for d.Disassemble() > 0 {
			require.Equal(t, 1, d.Len())
			require.Equal(t, optable.Nop, d.Mnemonic())
			got++
		}
		require.Equal(t, n, got)
		require.Equal(t, 0, d.Disassemble())
	}
}

func TestInputHookOpaque(t *testing.T) {
	src := bytes.NewReader([]byte{0x01, 0xc0, 0xc3})
	d := New()
	d.SetMode(32)
	d.SetUserOpaque(src)
	d.SetInputHook(func(opaque any) (byte, error) {
		return opaque.(io.ByteReader).ReadByte()
	})
	require.Equal(t, 2, d.Disassemble())
	require.Equal(t, optable.Add, d.Mnemonic())
	require.Equal(t, []byte{0x01, 0xc0}, d.Bytes())
	require.Equal(t, 1, d.Disassemble())
	require.Equal(t, optable.Ret, d.Mnemonic())
	require.Equal(t, 0, d.Disassemble())
}

func TestInputHookErrorEndsInput(t *testing.T) {
	calls := 0
	d := New()
	d.SetMode(32)
	d.SetInputHook(func(any) (byte, error) {
		calls++
		if calls == 2 {
			return 0, errors.New("device gone")
		}
		return 0x89, nil
	})
	require.Equal(t, 1, d.Disassemble())
	require.ErrorIs(t, d.Err(), ErrTruncated)
	require.Equal(t, 0, d.Disassemble())
}

func TestOffsets(t *testing.T) {
	d := newDecoder(32, []byte{0x89, 0xc8, 0x90})
	d.SetPC(0x100)
	require.Equal(t, 2, d.Disassemble())
	require.Equal(t, uint64(0x100), d.Offset())
	require.Equal(t, 1, d.Disassemble())
	require.Equal(t, uint64(0x102), d.Offset())
	require.Equal(t, uint64(0x103), d.PC())
}

func TestNoOverrun(t *testing.T) {
	code := []byte{0xf0, 0x66, 0x36, 0x67, 0x65, 0x66, 0xf3, 0x67, 0xda}
	d := newDecoder(16, code)
	n := d.Disassemble()
	require.Positive(t, n)
	require.LessOrEqual(t, n, len(code))
	require.Equal(t, 0, d.Disassemble())
}

func TestDeterministic(t *testing.T) {
	code := []byte{0x48, 0x8b, 0x84, 0x8b, 0x78, 0x56, 0x34, 0x12}
	a := newDecoder(64, code)
	b := newDecoder(64, code)
	require.Equal(t, a.Disassemble(), b.Disassemble())
	if diff := cmp.Diff(a.Inst(), b.Inst(), cmp.AllowUnexported(Instruction{})); diff != "" {
		t.Errorf("records differ (-a +b):\n%s", diff)
	}
}

func TestModeAndVendorSanitized(t *testing.T) {
	d := New()
	require.Equal(t, 16, d.Mode())
	d.SetMode(48)
	require.Equal(t, 16, d.Mode())
	d.SetMode(64)
	require.Equal(t, 64, d.Mode())

	require.Equal(t, optable.VendorAMD, d.Vendor())
	d.SetVendor(optable.Vendor(9))
	require.Equal(t, optable.VendorAMD, d.Vendor())
	d.SetVendor(optable.VendorIntel)
	require.Equal(t, optable.VendorIntel, d.Vendor())
}

func TestNoInput(t *testing.T) {
	d := New()
	require.Equal(t, 0, d.Disassemble())
	require.Equal(t, optable.Invalid, d.Mnemonic())
}

func TestInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		mode int
		code []byte
		err  error
		n    int
	}{
		{"push es in 64-bit mode", 64, []byte{0x06}, ErrInvalidIn64, 1},
		{"unassigned 0f 04", 32, []byte{0x0f, 0x04}, ErrNoMatch, 2},
		{"lea with register", 32, []byte{0x8d, 0xc0}, ErrBadOperand, 2},
		{"segment register 6", 32, []byte{0x8c, 0xf0}, ErrBadOperand, 2},
		{"swapgs outside 64-bit", 32, []byte{0x0f, 0x01, 0xf8}, ErrNoMatch, 3},
		{"3dnow unknown suffix", 32, []byte{0x0f, 0x0f, 0xc1, 0x00}, ErrNoMatch, 4},
		{"15 prefixes", 32, bytes.Repeat([]byte{0x66}, 15), ErrTooLong, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecoder(tt.mode, tt.code)
			d.SetSyntax(SyntaxIntel)
			require.Equal(t, tt.n, d.Disassemble())
			require.Equal(t, optable.Invalid, d.Mnemonic())
			require.ErrorIs(t, d.Err(), tt.err)
			require.Equal(t, "invalid", d.Asm())
			require.Nil(t, d.Operand(0))
			require.Equal(t, optable.Eflags{}, d.Eflags())
		})
	}
}

func TestVendorSelection(t *testing.T) {
	code := []byte{0x0f, 0x05}
	tests := []struct {
		mode   int
		vendor optable.Vendor
		want   optable.Mnemonic
	}{
		{32, optable.VendorAMD, optable.Syscall},
		{32, optable.VendorIntel, optable.Invalid},
		{32, optable.VendorAny, optable.Syscall},
		{64, optable.VendorIntel, optable.Syscall},
	}
	for _, tt := range tests {
		d := newDecoder(tt.mode, code)
		d.SetVendor(tt.vendor)
		require.Equal(t, 2, d.Disassemble())
		require.Equal(t, tt.want, d.Mnemonic(), "mode %d vendor %s", tt.mode, tt.vendor)
	}

	vmcall := []byte{0x0f, 0x01, 0xc1}
	d := newDecoder(32, vmcall)
	d.SetVendor(optable.VendorIntel)
	d.Disassemble()
	require.Equal(t, optable.Vmcall, d.Mnemonic())
}

func TestPrefixState(t *testing.T) {
	t.Run("rex must precede opcode", func(t *testing.T) {
		d := newDecoder(64, []byte{0x48, 0x66, 0x89, 0xc8})
		require.Equal(t, 4, d.Disassemble())
		require.Equal(t, byte(0), d.Inst().Prefix.Rex)
		require.Equal(t, 16, d.Inst().OprSize)
		require.Equal(t, optable.AX, d.Operand(0).Base)
	})
	t.Run("last rex wins", func(t *testing.T) {
		d := newDecoder(64, []byte{0x41, 0x48, 0x89, 0xc8})
		d.Disassemble()
		require.Equal(t, byte(0x48), d.Inst().Prefix.Rex)
		require.Equal(t, optable.RAX, d.Operand(0).Base)
	})
	t.Run("mandatory prefix consumed", func(t *testing.T) {
		d := newDecoder(32, []byte{0xf3, 0x0f, 0x10, 0xc1})
		d.Disassemble()
		require.Equal(t, optable.Movss, d.Mnemonic())
		require.Equal(t, byte(0xf3), d.Inst().MandatoryPrefix)
		require.False(t, d.Inst().Prefix.Repe)
	})
	t.Run("stray segment dropped", func(t *testing.T) {
		d := newDecoder(32, []byte{0x2e, 0x90})
		d.Disassemble()
		require.Equal(t, optable.RegNone, d.Inst().Prefix.Seg)
	})
	t.Run("segment kept for memory", func(t *testing.T) {
		d := newDecoder(32, []byte{0x64, 0xa1, 0, 0, 0, 0})
		d.Disassemble()
		require.Equal(t, optable.FS, d.Operand(1).Segment)
	})
}

func TestMetadata(t *testing.T) {
	d := newDecoder(32, []byte{0x01, 0xc0})
	d.Disassemble()
	require.Equal(t, "of:M sf:M zf:M af:M pf:M cf:M tf:_ if:_ df:_ nt:_ rf:_", d.Eflags().String())
	require.Equal(t, optable.AccessRW, d.Operand(0).Access)
	require.Equal(t, optable.AccessRead, d.Operand(1).Access)

	d = newDecoder(32, []byte{0x50})
	d.Disassemble()
	require.Equal(t, []optable.Reg{optable.RSP}, d.ImplicitUsed())
	require.Equal(t, []optable.Reg{optable.RSP}, d.ImplicitDefined())
}

func TestConcurrentDecoders(t *testing.T) {
	code := []byte{0x55, 0x48, 0x89, 0xe5, 0x48, 0x83, 0xec, 0x10, 0xc9, 0xc3}
	want := DecodeAll(code, 0, Options{Mode: 64, Syntax: SyntaxIntel})

	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := DecodeAll(code, 0, Options{Mode: 64, Syntax: SyntaxIntel})
			if len(got) != len(want) {
				errs <- "length mismatch"
				return
			}
			for i := range got {
				if got[i].Text != want[i].Text {
					errs <- got[i].Text
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestStream(t *testing.T) {
	code := []byte{0x55, 0x89, 0xe5, 0x90, 0xc3}
	s := DecodeAll(code, 0x1000, Options{Mode: 32, Syntax: SyntaxIntel})
	require.Len(t, s, 4)
	require.Equal(t, "push ebp", s[0].Text)
	require.Equal(t, "mov ebp, esp", s[1].Text)
	require.Equal(t, optable.Ret, s[3].Op)
	require.Equal(t, 2, s.Find(0x1003))
	require.Equal(t, -1, s.Find(0x1002))
	require.Equal(t, []byte{0x89, 0xe5}, s[1].Raw)
}
