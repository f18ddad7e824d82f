package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// StyleName is the chroma style registered by this package. Markdown code
// fences can refer to it by name.
const StyleName = "x86dis-dark"

// X86Dark colors mnemonics white, registers teal and numbers pink.
var X86Dark = styles.Register(chroma.MustNewStyle(StyleName, chroma.StyleEntries{
	chroma.Text:       "#FFFFFF",
	chroma.Background: "bg:#1e1e1e",
	chroma.Comment:    "#6A6A6A",

	// nasm: mnemonics are functions, size casts are types.
	chroma.NameFunction: "#FFFFFF",
	chroma.Keyword:      "#FFFFFF",
	chroma.KeywordType:  "#C586C0",
	chroma.Name:         "#7C9C9D",
	chroma.NameBuiltin:  "#7C9C9D",
	chroma.NameVariable: "#7C9C9D", // gas registers
	chroma.NameLabel:    "#FFD700",

	chroma.LiteralNumber:        "#FF5F87",
	chroma.LiteralNumberHex:     "#FF5F87",
	chroma.LiteralNumberInteger: "#FF5F87",

	chroma.Operator:    "#FFFFFF",
	chroma.Punctuation: "#FFFFFF",
	chroma.String:      "#EACD53",
}))
