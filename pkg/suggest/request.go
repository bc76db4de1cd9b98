package suggest

import (
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/codeserve/internal/utils"
	"github.com/bastiangx/codeserve/pkg/lang"
)

// Request is the prefix under the cursor. Offsets are byte offsets into the
// buffer text and WordStart <= Cursor.
type Request struct {
	Prefix    string
	Cursor    int
	WordStart int
}

// Edit replaces Text[Start:End] with Insert.
type Edit struct {
	Start  int
	End    int
	Insert string
}

// RequestAt finds the word that ends at cursor.
//
// Cursors outside the text are clamped and cursors inside a multi-byte rune
// move back to its first byte. Identifier runes form the word; CSS also
// accepts '-', and a single leading sigil of the language is kept so
// directives such as "#include" or "@media" can be completed.
func RequestAt(id lang.ID, text string, cursor int) Request {
	cursor = max(0, min(cursor, len(text)))
	for cursor > 0 && cursor < len(text) && !utf8.RuneStart(text[cursor]) {
		cursor--
	}

	start := cursor
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if !isWordRune(id, r) {
			break
		}
		start -= size
	}
	if start > 0 {
		if r, size := utf8.DecodeLastRuneInString(text[:start]); strings.ContainsRune(lang.Sigils(id), r) {
			start -= size
		}
	}

	return Request{Prefix: text[start:cursor], Cursor: cursor, WordStart: start}
}

func isWordRune(id lang.ID, r rune) bool {
	if id == lang.CSS && r == '-' {
		return true
	}
	return utils.IsWordRune(r)
}

// Apply builds the edit that replaces the request's prefix with item.
func Apply(req Request, item Item) Edit {
	return Edit{Start: req.WordStart, End: req.Cursor, Insert: item.InsertText()}
}

// ApplyTo performs the edit on text and returns the new text and the cursor
// placed right after the inserted text. Offsets outside text are clamped.
func (e Edit) ApplyTo(text string) (string, int) {
	end := max(0, min(e.End, len(text)))
	start := max(0, min(e.Start, end))
	return text[:start] + e.Insert + text[end:], start + len(e.Insert)
}
