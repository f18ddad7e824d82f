package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"x86dis/internal/analysis"
	"x86dis/internal/disasm"
	"x86dis/internal/elfx"
	"x86dis/internal/logging"
	"x86dis/internal/optable"
	"x86dis/internal/ui/colorize"
)

// Labeler names the addresses that start a symbol.
type Labeler interface {
	Label(addr uint64) (string, bool)
}

// lister writes the udcli style listing.
type lister struct {
	cfg    *Config
	w      *bufio.Writer
	hl     *colorize.Highlighter
	logger *logging.LoggerCloser

	// labels and image are set for ELF input; image enables string
	// annotations
	labels Labeler
	image  *elfx.Image

	// flush after every line, for follow mode
	flushEach bool
}

func newLister(cfg *Config, w io.Writer, hl *colorize.Highlighter) *lister {
	if hl == nil {
		hl = colorize.New(disasm.SyntaxNone, false)
	}
	return &lister{cfg: cfg, w: bufio.NewWriter(w), hl: hl}
}

// run decodes until the input ends and returns the number of instructions.
func (l *lister) run(d *disasm.Decoder) (int, error) {
	n := 0
	for d.Disassemble() > 0 {
		n++
		if err := l.line(d); err != nil {
			return n, err
		}
		if l.flushEach {
			if err := l.w.Flush(); err != nil {
				return n, err
			}
		}
	}
	return n, l.w.Flush()
}

func (l *lister) line(d *disasm.Decoder) error {
	insn := d.Inst()
	if !insn.Valid() && l.logger != nil && logging.IsDebug() {
		l.logger.Debug("invalid instruction", "offset", fmt.Sprintf("%#x", insn.Offset), "bytes", insn.Hex(), "err", insn.Err)
	}

	var b strings.Builder
	if l.labels != nil {
		if name, ok := l.labels.Label(insn.Offset); ok {
			b.WriteString("\n")
			b.WriteString(l.hl.Label(name + ":"))
			b.WriteString("\n")
		}
	}
	b.WriteString(formatLine(insn, d.Asm(), l.cfg, l.hl))
	if ref, ok := analysis.FindString(l.image, insn); ok {
		b.WriteString(l.hl.Comment(fmt.Sprintf(" ; \"%s\"", ref.Value)))
	}
	b.WriteString("\n")
	_, err := l.w.WriteString(b.String())
	return err
}

// formatLine renders one instruction in udcli's column layout, without
// the trailing newline.
func formatLine(insn *disasm.Instruction, asm string, cfg *Config, hl *colorize.Highlighter) string {
	if hl == nil {
		hl = colorize.New(disasm.SyntaxNone, false)
	}
	var b strings.Builder
	if !cfg.NoOffset {
		b.WriteString(hl.Address(fmt.Sprintf("%016x", insn.Offset)))
		b.WriteString(" ")
	}
	hex := insn.Hex()
	if !cfg.NoHex {
		head := hex
		if len(head) > 16 {
			head = head[:16]
		}
		b.WriteString(hl.Hex(fmt.Sprintf("%-16s", head)))
		b.WriteString(" ")
		b.WriteString(hl.Asm(fmt.Sprintf("%-24s", asm)))
		if len(hex) > 16 {
			b.WriteString("\n")
			if !cfg.NoOffset {
				b.WriteString(fmt.Sprintf("%15s -", ""))
			}
			b.WriteString(hl.Hex(fmt.Sprintf("%-16s", hex[16:])))
		}
	} else {
		b.WriteString(" ")
		b.WriteString(hl.Asm(fmt.Sprintf("%-24s", asm)))
	}
	if cfg.Eflags || cfg.Access || cfg.Implicit {
		b.WriteString(hl.Comment(" ; " + metadata(insn, cfg)))
	}
	return b.String()
}

// metadata renders the optional eflags, access and implicit register
// annotations.
func metadata(insn *disasm.Instruction, cfg *Config) string {
	var b strings.Builder
	printed := false
	if cfg.Eflags {
		b.WriteString(insn.Eflags().String())
		printed = true
	}
	if cfg.Access && insn.NumOperands() > 0 {
		if printed {
			b.WriteString(", ")
		}
		b.WriteString("access")
		for i := 0; i < insn.NumOperands(); i++ {
			fmt.Fprintf(&b, " op%d=%s", i, insn.Operands[i].Access)
		}
		printed = true
	}
	if cfg.Implicit {
		if printed {
			b.WriteString(", ")
		}
		b.WriteString("implicit reg used:")
		writeRegs(&b, insn.ImplicitUsed())
		b.WriteString(", implicit reg modified:")
		writeRegs(&b, insn.ImplicitDefined())
	}
	return b.String()
}

func writeRegs(b *strings.Builder, regs []optable.Reg) {
	if len(regs) == 0 {
		b.WriteString(" none")
		return
	}
	for _, r := range regs {
		b.WriteString(" ")
		b.WriteString(r.String())
	}
}
