// Package styles holds the glamour themes used for explain reports.
package styles

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/x/exp/charmtone"

	"x86dis/internal/ui/colorize"
)

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }
func uintPtr(u uint) *uint       { return &u }

// palette holds the colors of one report theme. A report is a title, a few
// section headings, tables of fields and operands, inline register names
// and a register list.
type palette struct {
	text      string
	title     string
	titleBg   string // empty for a plain "# " title
	section   string
	subtitle  string
	code      string
	codeBlock string
	border    string
}

var palettes = map[string]palette{
	"charm": {
		text:      charmtone.Smoke.Hex(),
		title:     charmtone.Zest.Hex(),
		titleBg:   charmtone.Charple.Hex(),
		section:   charmtone.Malibu.Hex(),
		subtitle:  charmtone.Guac.Hex(),
		code:      charmtone.Cheeky.Hex(),
		codeBlock: charmtone.Charcoal.Hex(),
		border:    charmtone.Charcoal.Hex(),
	},
	// VS Code dark editor colors
	"dark": {
		text:      "#D4D4D4",
		title:     "#569CD6",
		section:   "#569CD6",
		subtitle:  "#4EC9B0",
		code:      "#EACD53",
		codeBlock: "#D4D4D4",
		border:    "#858585",
	},
}

// Themes lists the names accepted by MarkdownRenderer.
var Themes = []string{"charm", "dark"}

// MarkdownRenderer returns a renderer for the named theme.
func MarkdownRenderer(theme string, width int) (*glamour.TermRenderer, error) {
	if theme == "" {
		theme = "charm"
	}
	p, ok := palettes[theme]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (want one of %v)", theme, Themes)
	}
	return glamour.NewTermRenderer(
		glamour.WithStyles(p.styleConfig()),
		glamour.WithWordWrap(width),
	)
}

func heading(prefix string, color string) ansi.StyleBlock {
	return ansi.StyleBlock{
		StylePrimitive: ansi.StylePrimitive{
			Prefix: prefix,
			Color:  stringPtr(color),
			Bold:   boolPtr(true),
		},
	}
}

func (p palette) titleBlock() ansi.StyleBlock {
	if p.titleBg == "" {
		return heading("# ", p.title)
	}
	return ansi.StyleBlock{
		StylePrimitive: ansi.StylePrimitive{
			Prefix:          " ",
			Suffix:          " ",
			Color:           stringPtr(p.title),
			BackgroundColor: stringPtr(p.titleBg),
			Bold:            boolPtr(true),
		},
	}
}

func (p palette) styleConfig() ansi.StyleConfig {
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: stringPtr(p.text)},
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockSuffix: "\n",
				Color:       stringPtr(p.section),
				Bold:        boolPtr(true),
			},
		},
		H1: p.titleBlock(),
		H2: heading("## ", p.section),
		H3: heading("### ", p.subtitle),
		List: ansi.StyleList{
			LevelIndent: 2,
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Text: ansi.StylePrimitive{Color: stringPtr(p.text)},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: stringPtr(p.code)},
		},
		// fenced assembly uses the listing's chroma style
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: stringPtr(p.codeBlock)},
				Margin:         uintPtr(2),
			},
			Theme: colorize.StyleName,
		},
		Table: ansi.StyleTable{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: stringPtr(p.text)},
			},
			CenterSeparator: stringPtr("┼"),
			ColumnSeparator: stringPtr("│"),
			RowSeparator:    stringPtr("─"),
		},
	}
}
