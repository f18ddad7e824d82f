// Package hexinput reads machine code written as whitespace separated
// hexadecimal bytes, such as "55 48 89 e5 c3".
package hexinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"x86dis/internal/disasm"
)

// ErrNotHex is returned for a token that is not a hexadecimal number.
var ErrNotHex = errors.New("invalid input, should be in hexadecimal form (8-bit)")

// parseToken converts one token. Values wider than a byte are truncated
// to their low eight bits and reported through wide.
func parseToken(tok string) (b byte, wide bool, err error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrNotHex, tok)
	}
	return byte(v), v > 0xff, nil
}

// Parse converts a whole hex string. Wide values are truncated silently.
func Parse(s string) ([]byte, error) {
	fields := strings.Fields(s)
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		b, _, err := parseToken(f)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Reader yields the bytes of a hex text stream one at a time.
type Reader struct {
	sc     *bufio.Scanner
	logger *log.Logger
	err    error
}

// NewReader reads hex text from r. Warnings about truncated values go to
// logger, which may be nil.
func NewReader(r io.Reader, logger *log.Logger) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc, logger: logger}
}

// ReadByte returns the next byte. A malformed token ends the stream; Err
// then reports it.
func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, io.EOF
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			r.err = err
		}
		return 0, io.EOF
	}
	return r.decode(r.sc.Text())
}

func (r *Reader) decode(tok string) (byte, error) {
	b, wide, err := parseToken(tok)
	if err != nil {
		r.err = err
		if r.logger != nil {
			r.logger.Error("Stopping hex input", "err", err)
		}
		return 0, io.EOF
	}
	if wide && r.logger != nil {
		r.logger.Warn("Casting non-8-bit input", "token", tok, "byte", fmt.Sprintf("%02x", b))
	}
	return b, nil
}

// Err returns the error that ended the stream early, if any.
func (r *Reader) Err() error { return r.err }

// Hook adapts r to a decoder input hook.
func (r *Reader) Hook() disasm.InputHook {
	return func(any) (byte, error) { return r.ReadByte() }
}

// Limit wraps hook so that it ends after n bytes. A negative n leaves the
// hook unlimited.
func Limit(hook disasm.InputHook, n int64) disasm.InputHook {
	if n < 0 {
		return hook
	}
	return func(opaque any) (byte, error) {
		if n == 0 {
			return 0, io.EOF
		}
		n--
		return hook(opaque)
	}
}
