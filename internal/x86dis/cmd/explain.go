package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"x86dis/internal/disasm"
	"x86dis/internal/hexinput"
	"x86dis/internal/optable"
	"x86dis/internal/x86dis/styles"
)

func newExplainCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "explain <hex bytes...>",
		Short: "Describe a single instruction",
		Long: `Decode one instruction and print a report of its encoding, both
syntaxes, its operands, the flags it affects and the registers it uses
implicitly.`,
		Example: `
# Explain a 32-bit instruction
x86dis explain 8b 45 08

# Explain a 64-bit instruction written as one string
x86dis explain --mode 64 4889e5
  `,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseHexArgs(args)
			if err != nil {
				return err
			}
			cfg := defaultConfig()
			f := cmd.Flags()
			cfg.Mode, _ = f.GetInt("mode")
			cfg.Vendor, _ = f.GetString("vendor")
			cfg.Origin, _ = f.GetString("origin")
			raw, _ := f.GetBool("raw")
			theme, _ := f.GetString("theme")
			width, _ := f.GetInt("width")

			doc, err := explain(&cfg, code)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if raw || !isTerminal(out) {
				_, err = io.WriteString(out, doc)
				return err
			}
			r, err := styles.MarkdownRenderer(theme, width)
			if err != nil {
				return err
			}
			rendered, err := r.Render(doc)
			if err != nil {
				return fmt.Errorf("failed to render report: %w", err)
			}
			_, err = io.WriteString(out, rendered)
			return err
		},
	}
	c.Flags().Int("mode", 32, "Decoding mode: 16, 32 or 64")
	c.Flags().String("vendor", "any", "Vendor: any, amd or intel")
	c.Flags().String("origin", "", "Program counter of the instruction in hex")
	c.Flags().Bool("raw", false, "Print markdown without rendering")
	c.Flags().String("theme", "charm", "Report theme: "+strings.Join(styles.Themes, ", "))
	c.Flags().Int("width", 100, "Word wrap width of the rendered report")
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// parseHexArgs accepts bytes as separate arguments ("8b 45 08") or packed
// into one string ("8b4508").
func parseHexArgs(args []string) ([]byte, error) {
	if len(args) == 1 && len(args[0]) > 2 && !strings.ContainsAny(args[0], " \t") {
		s := strings.TrimPrefix(args[0], "0x")
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", hexinput.ErrNotHex, args[0])
		}
		return b, nil
	}
	return hexinput.Parse(strings.Join(args, " "))
}

func decodeOne(cfg *Config, code []byte, syntax disasm.Syntax) (*disasm.Decoder, error) {
	d := disasm.New()
	if err := cfg.configure(d); err != nil {
		return nil, err
	}
	d.SetSyntax(syntax)
	d.SetInputBuffer(code)
	if d.Disassemble() == 0 {
		return nil, fmt.Errorf("no input")
	}
	return d, nil
}

// explain builds the markdown report for the first instruction in code.
func explain(cfg *Config, code []byte) (string, error) {
	intel, err := decodeOne(cfg, code, disasm.SyntaxIntel)
	if err != nil {
		return "", err
	}
	att, err := decodeOne(cfg, code, disasm.SyntaxATT)
	if err != nil {
		return "", err
	}
	insn := intel.Inst()

	var b strings.Builder
	fmt.Fprintf(&b, "# `%s`\n\n", intel.Asm())
	if !insn.Valid() {
		fmt.Fprintf(&b, "Invalid instruction: %v\n\n", insn.Err)
	}

	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Intel | `%s` |\n", intel.Asm())
	fmt.Fprintf(&b, "| AT&T | `%s` |\n", att.Asm())
	fmt.Fprintf(&b, "| Bytes | `%s` |\n", spacedHex(insn.Bytes()))
	fmt.Fprintf(&b, "| Length | %d |\n", insn.Len)
	fmt.Fprintf(&b, "| Offset | 0x%x |\n", insn.Offset)
	fmt.Fprintf(&b, "| Mode | %d-bit |\n", insn.Mode)
	if insn.Valid() {
		fmt.Fprintf(&b, "| Operand size | %d |\n", insn.OprSize)
		fmt.Fprintf(&b, "| Address size | %d |\n", insn.AdrSize)
		if p := prefixSummary(insn); p != "" {
			fmt.Fprintf(&b, "| Prefixes | %s |\n", p)
		}
		if insn.MandatoryPrefix != 0 {
			fmt.Fprintf(&b, "| Mandatory prefix | `%02x` |\n", insn.MandatoryPrefix)
		}
	}
	if len(code) > insn.Len {
		fmt.Fprintf(&b, "| Trailing bytes | %d |\n", len(code)-insn.Len)
	}
	if !insn.Valid() {
		return b.String(), nil
	}

	if n := insn.NumOperands(); n > 0 {
		b.WriteString("\n## Operands\n\n| # | Type | Size | Access | Detail |\n|---|---|---|---|---|\n")
		for i := 0; i < n; i++ {
			op := &insn.Operands[i]
			fmt.Fprintf(&b, "| %d | %s | %d | %s | %s |\n", i, op.Type, op.Size, op.Access, operandDetail(insn, i))
		}
	}

	if affected := insn.Eflags().Affected(); len(affected) > 0 {
		b.WriteString("\n## Flags\n\n| Flag | Effect |\n|---|---|\n")
		ef := insn.Eflags()
		for _, f := range affected {
			fmt.Fprintf(&b, "| %s | %s |\n", f, flagEffect(ef[f]))
		}
	}

	used, defined := insn.ImplicitUsed(), insn.ImplicitDefined()
	if len(used) > 0 || len(defined) > 0 {
		b.WriteString("\n## Implicit registers\n\n")
		fmt.Fprintf(&b, "- used: %s\n", regList(used))
		fmt.Fprintf(&b, "- modified: %s\n", regList(defined))
	}
	return b.String(), nil
}

func spacedHex(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}

func prefixSummary(insn *disasm.Instruction) string {
	var out []string
	p := insn.Prefix
	if p.Lock {
		out = append(out, "lock")
	}
	if p.Rep {
		out = append(out, "rep")
	}
	if p.Repe {
		out = append(out, "repe")
	}
	if p.Repne {
		out = append(out, "repne")
	}
	if p.Seg != optable.RegNone {
		out = append(out, p.Seg.String())
	}
	if p.Opr {
		out = append(out, "operand size")
	}
	if p.Adr {
		out = append(out, "address size")
	}
	if p.Rex != 0 {
		out = append(out, fmt.Sprintf("rex %02x", p.Rex))
	}
	return strings.Join(out, ", ")
}

func operandDetail(insn *disasm.Instruction, i int) string {
	op := &insn.Operands[i]
	switch op.Type {
	case disasm.OperandReg:
		return "`" + op.Base.String() + "`"
	case disasm.OperandMem:
		return memDetail(op)
	case disasm.OperandImm:
		return fmt.Sprintf("0x%x, extended 0x%x", op.Value, insn.SignExtended(i))
	case disasm.OperandJimm:
		target, _ := insn.Target(i)
		return fmt.Sprintf("target 0x%x", target)
	case disasm.OperandPtr:
		return fmt.Sprintf("0x%x:0x%x", op.PtrSeg, op.PtrOff)
	case disasm.OperandConst:
		return fmt.Sprintf("%d", op.Value)
	}
	return ""
}

func memDetail(op *disasm.Operand) string {
	var parts []string
	if op.Segment != optable.RegNone {
		parts = append(parts, "segment `"+op.Segment.String()+"`")
	}
	if op.Base != optable.RegNone {
		parts = append(parts, "base `"+op.Base.String()+"`")
	}
	if op.Index != optable.RegNone {
		scale := op.Scale
		if scale == 0 {
			scale = 1
		}
		parts = append(parts, fmt.Sprintf("index `%s`*%d", op.Index, scale))
	}
	if op.Offset != 0 {
		parts = append(parts, fmt.Sprintf("disp%d %d", op.Offset, op.Disp()))
	}
	return strings.Join(parts, ", ")
}

func flagEffect(s optable.FlagState) string {
	switch s {
	case optable.FlagTested:
		return "tested"
	case optable.FlagModified:
		return "modified"
	case optable.FlagReset:
		return "cleared"
	case optable.FlagSet:
		return "set"
	case optable.FlagUndefined:
		return "undefined"
	case optable.FlagPrior:
		return "restored"
	}
	return "unchanged"
}

func regList(regs []optable.Reg) string {
	if len(regs) == 0 {
		return "none"
	}
	names := make([]string, len(regs))
	for i, r := range regs {
		names[i] = "`" + r.String() + "`"
	}
	return strings.Join(names, ", ")
}
