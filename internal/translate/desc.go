package translate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"namelist-generator/internal/namelist"
)

// Descriptions are nested three levels deep in the generated document
// (entry_id_pg > entry > desc), so their text block is indented three levels
// and closed at two. The width is the full line including the indent.
const (
	descLineWidth = 80
	descLevel     = 3
	closeLevel    = 2
)

// ReformatDescription turns raw registry description text into the indented
// block embedded in a desc element. Internal whitespace runs collapse to
// single spaces, surrounding periods are dropped, the first letter is
// capitalized, and the text is wrapped so no line exceeds descLineWidth
// columns. The block is framed by a leading newline and a trailing newline
// plus closing indent so it nests cleanly between the element tags.
func ReformatDescription(raw string) string {
	text := strings.Join(strings.Fields(strings.Trim(raw, ".")), " ")
	text = capitalize(text)

	textIndent := descLevel * len(namelist.IndentPerLevel)
	wrapped := wordwrap.String(text, descLineWidth-textIndent)
	wrapped = indent.String(wrapped, uint(textIndent))

	return "\n" + wrapped + "\n" + strings.Repeat(namelist.IndentPerLevel, closeLevel)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
