package disasm

import (
	"bufio"
	"io"
)

// InputHook supplies one byte per call. Any error, io.EOF included, ends
// the input. opaque is the value passed to SetUserOpaque.
type InputHook func(opaque any) (byte, error)

type inputKind uint8

const (
	inputNone inputKind = iota
	inputBuffer
	inputReader
	inputHook
)

// input is the byte source behind a Decoder.
type input struct {
	kind inputKind
	buf  []byte
	pos  int
	r    *bufio.Reader
	hook InputHook

	peeked   bool
	peekByte byte
	eoi      bool
}

func (in *input) reset(k inputKind) {
	*in = input{kind: k}
}

// next returns the next byte, or false once the input is exhausted.
func (in *input) next(opaque any) (byte, bool) {
	if in.peeked {
		in.peeked = false
		return in.peekByte, true
	}
	if in.eoi {
		return 0, false
	}
	switch in.kind {
	case inputBuffer:
		if in.pos < len(in.buf) {
			b := in.buf[in.pos]
			in.pos++
			return b, true
		}
	case inputReader:
		if b, err := in.r.ReadByte(); err == nil {
			return b, true
		}
	case inputHook:
		if b, err := in.hook(opaque); err == nil {
			return b, true
		}
	}
	in.eoi = true
	return 0, false
}

// end reports whether the input is exhausted. Stream and hook sources
// have to read ahead one byte to find out; the byte is kept for next.
func (in *input) end(opaque any) bool {
	if in.peeked {
		return false
	}
	if in.eoi || in.kind == inputNone {
		return true
	}
	if in.kind == inputBuffer {
		return in.pos >= len(in.buf)
	}
	b, ok := in.next(opaque)
	if !ok {
		return true
	}
	in.peeked, in.peekByte = true, b
	return false
}

// skip discards n bytes. Running out leaves the source at end of input.
func (in *input) skip(n int, opaque any) {
	if n <= 0 || in.eoi {
		return
	}
	if in.peeked {
		in.peeked = false
		n--
	}
	switch in.kind {
	case inputBuffer:
		if n > len(in.buf)-in.pos {
			in.pos = len(in.buf)
			in.eoi = true
			return
		}
		in.pos += n
	case inputReader:
		if got, _ := in.r.Discard(n); got < n {
			in.eoi = true
		}
	case inputHook:
		for ; n > 0; n-- {
			if _, err := in.hook(opaque); err != nil {
				in.eoi = true
				return
			}
		}
	default:
		in.eoi = true
	}
}

// SetInputBuffer decodes from b. The slice is not copied.
func (d *Decoder) SetInputBuffer(b []byte) {
	d.in.reset(inputBuffer)
	d.in.buf = b
}

// SetInputReader decodes from r, buffering reads.
func (d *Decoder) SetInputReader(r io.Reader) {
	d.in.reset(inputReader)
	if br, ok := r.(*bufio.Reader); ok {
		d.in.r = br
		return
	}
	d.in.r = bufio.NewReader(r)
}

// SetInputHook decodes bytes pulled from hook. A nil hook detaches the
// input.
func (d *Decoder) SetInputHook(hook InputHook) {
	if hook == nil {
		d.in.reset(inputNone)
		return
	}
	d.in.reset(inputHook)
	d.in.hook = hook
}

// SetUserOpaque stores a value handed to the input hook on every call.
func (d *Decoder) SetUserOpaque(v any) { d.opaque = v }

// UserOpaque returns the value set by SetUserOpaque.
func (d *Decoder) UserOpaque() any { return d.opaque }

// Skip discards n bytes of pending input without decoding them. Skipping
// past the end leaves the input exhausted; the program counter is not
// moved.
func (d *Decoder) Skip(n int) { d.in.skip(n, d.opaque) }

// InputEnd reports whether the input is exhausted.
func (d *Decoder) InputEnd() bool { return d.in.end(d.opaque) }
