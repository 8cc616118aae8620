// Package highlight applies terminal syntax highlighting to asm6 listings.
package highlight

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// NoColorEnv disables highlighting when set to any value.
const NoColorEnv = "NESBANKDISASM_NO_COLOR"

// Listing is the highlighting style for bank listings.
var Listing = styles.Register(chroma.MustNewStyle("nesbank-dark", chroma.StyleEntries{
	chroma.Text:           "#FFFFFF",
	chroma.Background:     "bg:#1e1e1e",
	chroma.Comment:        "#7F7F7F",
	chroma.CommentPreproc: "#C586C0",

	chroma.Keyword:       "#FFFFFF",
	chroma.KeywordPseudo: "#C586C0", // directives like .db and .hex
	chroma.Name:          "#7C9C9D",
	chroma.NameBuiltin:   "#7C9C9D",
	chroma.NameVariable:  "#7C9C9D",

	chroma.LiteralNumber:        "#FF5F87",
	chroma.LiteralNumberHex:     "#FF5F87",
	chroma.LiteralNumberBin:     "#FF5F87",
	chroma.LiteralNumberInteger: "#FF5F87",

	chroma.NameLabel:    "#FFD700",
	chroma.NameFunction: "#FFFFFF",

	chroma.Operator:    "#FFFFFF",
	chroma.Punctuation: "#FFFFFF",
	chroma.String:      "#EACD53",
}))

// Enabled returns whether highlighting is not disabled by the environment.
func Enabled() bool {
	return os.Getenv(NoColorEnv) == ""
}

// Colorize returns the listing text with terminal color escape sequences.
// The text is returned unchanged when highlighting is disabled or no
// assembly lexer is available.
func Colorize(code string) (string, error) {
	if !Enabled() {
		return code, nil
	}

	lexer := assemblyLexer()
	if lexer == nil {
		return code, nil
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code, fmt.Errorf("tokenizing listing: %w", err)
	}

	var buf strings.Builder
	if err := terminalFormatter().Format(&buf, listingStyle(), iterator); err != nil {
		return code, fmt.Errorf("formatting listing: %w", err)
	}
	return buf.String(), nil
}

// assemblyLexer returns the 6502 assembly lexer with fallbacks to generic
// assembly lexers.
func assemblyLexer() chroma.Lexer {
	for _, name := range []string{"ca65", "nasm", "gas"} {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return nil
}

func listingStyle() *chroma.Style {
	for _, name := range []string{"nesbank-dark", "dracula", "monokai"} {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

func terminalFormatter() chroma.Formatter {
	for _, name := range []string{"terminal16m", "terminal256"} {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}
