package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightJSON colors JSON for a true-color terminal. On any failure the
// input is returned unchanged.
func HighlightJSON(content string) string {
	return highlight(content, "json")
}

func highlight(content, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.TTY16m

	var buf strings.Builder
	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	if err := formatter.Format(&buf, style, iterator); err != nil {
		return content
	}

	return buf.String()
}
