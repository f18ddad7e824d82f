// Package colorize highlights disassembly listings for the terminal.
package colorize

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss/v2"

	"x86dis/internal/disasm"
)

// Disabled reports whether the environment asks for plain output.
func Disabled() bool {
	return os.Getenv("X86DIS_NO_COLOR") != "" || os.Getenv("NO_COLOR") != ""
}

// getAssemblyLexer picks the lexer that matches the rendered syntax.
func getAssemblyLexer(syntax disasm.Syntax) chroma.Lexer {
	candidates := []string{"nasm", "gas"}
	if syntax == disasm.SyntaxATT {
		candidates = []string{"gas", "nasm"}
	}
	for _, name := range candidates {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return nil
}

func getDisasmStyle() *chroma.Style {
	for _, name := range []string{StyleName, "dracula", "monokai"} {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

func getTerminalFormatter() chroma.Formatter {
	for _, name := range []string{"terminal16m", "terminal256"} {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// Highlighter colors the columns of a listing line. A disabled
// Highlighter returns its input unchanged.
type Highlighter struct {
	enabled   bool
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter

	address lipgloss.Style
	hex     lipgloss.Style
	comment lipgloss.Style
	label   lipgloss.Style
}

// New returns a Highlighter for the given syntax.
func New(syntax disasm.Syntax, enabled bool) *Highlighter {
	h := &Highlighter{
		enabled:   enabled,
		lexer:     getAssemblyLexer(syntax),
		style:     getDisasmStyle(),
		formatter: getTerminalFormatter(),
		address:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4F4F4F")),
		hex:       lipgloss.NewStyle().Foreground(lipgloss.Color("#858585")),
		comment:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6A9955")),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	}
	if h.lexer == nil {
		h.enabled = false
	}
	return h
}

func (h *Highlighter) Enabled() bool { return h.enabled }

// Asm highlights rendered assembly. Padding is preserved.
func (h *Highlighter) Asm(code string) string {
	if !h.enabled {
		return code
	}
	iterator, err := h.lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return code
	}
	out := buf.String()
	// Lexers append a newline to unterminated input.
	if !strings.HasSuffix(code, "\n") {
		if i := strings.LastIndex(out, "\n"); i >= 0 {
			out = out[:i] + out[i+1:]
		}
	}
	return out
}

func (h *Highlighter) Address(s string) string { return h.render(h.address, s) }

func (h *Highlighter) Hex(s string) string { return h.render(h.hex, s) }

func (h *Highlighter) Comment(s string) string { return h.render(h.comment, s) }

func (h *Highlighter) Label(s string) string { return h.render(h.label, s) }

func (h *Highlighter) render(st lipgloss.Style, s string) string {
	if !h.enabled || s == "" {
		return s
	}
	return st.Render(s)
}

// StripANSI removes ANSI escape sequences.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
