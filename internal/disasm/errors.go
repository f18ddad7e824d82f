package disasm

import "errors"

// Decode failures. An invalid Instruction carries one of these, wrapped
// with detail, in its Err field.
var (
	ErrTruncated   = errors.New("input ended inside instruction")
	ErrNoMatch     = errors.New("no matching opcode")
	ErrInvalidIn64 = errors.New("instruction invalid in 64-bit mode")
	ErrTooLong     = errors.New("instruction exceeds 15 bytes")
	ErrBadOperand  = errors.New("invalid operand encoding")
)
