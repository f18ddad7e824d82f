package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/arch/x86/x86asm"

	"x86dis/internal/disasm"
)

// mismatch is an instruction whose length differs between the two decoders.
type mismatch struct {
	Offset    uint64
	Bytes     []byte
	Ours      int
	Reference int
	Asm       string
	RefAsm    string
}

type verifyReport struct {
	Instructions int
	// Skipped counts instructions the reference decoder rejected.
	Skipped    int
	Mismatches []mismatch
}

// verifyLengths walks code linearly with the engine and checks each
// instruction's length against x86asm at the same position.
func verifyLengths(code []byte, mode int, pc uint64) verifyReport {
	var rep verifyReport
	stream := disasm.DecodeAll(code, pc, disasm.Options{Mode: mode, Syntax: disasm.SyntaxIntel})
	pos := 0
	for _, in := range stream {
		rep.Instructions++
		ref, err := x86asm.Decode(code[pos:], mode)
		if err != nil || !in.Insn.Valid() {
			rep.Skipped++
			pos += in.Insn.Len
			continue
		}
		if ref.Len != in.Insn.Len {
			rep.Mismatches = append(rep.Mismatches, mismatch{
				Offset:    in.VA,
				Bytes:     in.Raw,
				Ours:      in.Insn.Len,
				Reference: ref.Len,
				Asm:       in.Text,
				RefAsm:    x86asm.IntelSyntax(ref, in.VA, nil),
			})
		}
		pos += in.Insn.Len
	}
	return rep
}

func (r verifyReport) write(w io.Writer) error {
	for _, m := range r.Mismatches {
		if _, err := fmt.Fprintf(w, "%016x %-24x %d %-32s x86asm %d %s\n",
			m.Offset, m.Bytes, m.Ours, m.Asm, m.Reference, m.RefAsm); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d instructions, %d skipped, %d length mismatches\n",
		r.Instructions, r.Skipped, len(r.Mismatches))
	return err
}

func newVerifyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "verify <file>",
		Short: "Compare instruction lengths against the Go x86asm decoder",
		Long: `Decode a raw code buffer linearly and check every instruction length
against golang.org/x/arch/x86/x86asm. Instructions either decoder rejects
are counted as skipped. The command fails when any length differs.`,
		Example: `
# Check a flat 64-bit blob
x86dis verify --mode 64 code.bin
  `,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bits, _ := cmd.Flags().GetInt("mode")
			mode, err := parseMode(bits)
			if err != nil {
				return err
			}
			origin, _ := cmd.Flags().GetString("origin")
			pc, err := parseOrigin(origin)
			if err != nil {
				return err
			}
			code, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			rep := verifyLengths(code, mode, pc)
			if err := rep.write(cmd.OutOrStdout()); err != nil {
				return err
			}
			if len(rep.Mismatches) > 0 {
				return fmt.Errorf("%d length mismatches", len(rep.Mismatches))
			}
			return nil
		},
	}
	c.Flags().Int("mode", 32, "Decoding mode: 16, 32 or 64")
	c.Flags().String("origin", "", "Program counter of the first byte in hex")
	return c
}
