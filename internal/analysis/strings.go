package analysis

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"x86dis/internal/disasm"
	"x86dis/internal/elfx"
	"x86dis/internal/optable"
)

// StringRef is a string an instruction refers to.
type StringRef struct {
	VA    uint64
	Value string // Escaped string content
	Len   int    // Original byte length
}

// EscapeUnprintable returns a string where printable Unicode runes are preserved.
// Control and unprintable runes are escaped as \uXXXX. Invalid UTF-8 is escaped as \xXX.
func EscapeUnprintable(b []byte) string {
	var sb strings.Builder
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		switch {
		case r == utf8.RuneError && size == 1:
			sb.WriteString(fmt.Sprintf("\\x%02X", b[0]))
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '"' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case unicode.IsPrint(r):
			sb.WriteRune(r)
		default:
			sb.WriteString(fmt.Sprintf("\\u%04X", r))
		}
		b = b[size:]
	}
	return sb.String()
}

// ReadCString reads a NUL terminated string of at most maxLen bytes at va.
func ReadCString(im *elfx.Image, va uint64, maxLen int) ([]byte, bool) {
	raw, ok := im.ReadBytesVA(va, maxLen)
	if !ok {
		return nil, false
	}
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		return raw[:i], true
	}
	return raw, len(raw) == maxLen
}

// looksLikeText accepts valid UTF-8 made of printable runes and common
// whitespace.
func looksLikeText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if !unicode.IsPrint(r) && r != '\n' && r != '\t' && r != '\r' {
			return false
		}
	}
	return true
}

// OperandAddress returns the address an operand names directly: a
// RIP-relative or absolute memory operand, or an address-sized immediate.
func OperandAddress(insn *disasm.Instruction, i int) (uint64, bool) {
	if i < 0 || i >= len(insn.Operands) {
		return 0, false
	}
	op := &insn.Operands[i]
	switch op.Type {
	case disasm.OperandMem:
		if op.Index != optable.RegNone {
			return 0, false
		}
		switch op.Base {
		case optable.RIP:
			return insn.Offset + uint64(insn.Len) + uint64(op.Disp()), true
		case optable.RegNone:
			if op.Offset == 0 {
				return 0, false
			}
			return uint64(op.Disp()) & addrMask(insn.AdrSize), true
		}
	case disasm.OperandImm:
		if op.Size >= 32 {
			return insn.SignExtended(i), true
		}
	}
	return 0, false
}

func addrMask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(bits) - 1
}

// FindString returns the first .rodata string referenced by an operand of
// insn.
func FindString(im *elfx.Image, insn *disasm.Instruction) (StringRef, bool) {
	if im == nil || !insn.Valid() {
		return StringRef{}, false
	}
	for i := 0; i < insn.NumOperands(); i++ {
		va, ok := OperandAddress(insn, i)
		if !ok || !im.InRodata(va) {
			continue
		}
		raw, ok := ReadCString(im, va, MaxStringLength)
		if !ok || len(raw) < MinStringLength || !looksLikeText(raw) {
			continue
		}
		return StringRef{VA: va, Value: EscapeUnprintable(raw), Len: len(raw)}, true
	}
	return StringRef{}, false
}
