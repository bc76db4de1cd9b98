package suggest

import (
	"testing"

	"github.com/bastiangx/codeserve/pkg/lang"
	"github.com/stretchr/testify/assert"
)

func TestRequestAt(t *testing.T) {
	testCases := []struct {
		desc   string
		id     lang.ID
		text   string
		cursor int
		want   Request
	}{
		{"end of word", lang.Rust, "let val", 7, Request{Prefix: "val", Cursor: 7, WordStart: 4}},
		{"middle of word", lang.Rust, "let value", 6, Request{Prefix: "va", Cursor: 6, WordStart: 4}},
		{"after space", lang.Rust, "let ", 4, Request{Prefix: "", Cursor: 4, WordStart: 4}},
		{"start of text", lang.Rust, "abc", 0, Request{Prefix: "", Cursor: 0, WordStart: 0}},
		{"underscore and digits", lang.Rust, "x.foo_2b", 8, Request{Prefix: "foo_2b", Cursor: 8, WordStart: 2}},
		{"cursor past end", lang.Rust, "abc", 99, Request{Prefix: "abc", Cursor: 3, WordStart: 0}},
		{"negative cursor", lang.Rust, "abc", -4, Request{Prefix: "", Cursor: 0, WordStart: 0}},
		{"multibyte word", lang.Python, "x = héllo", 10, Request{Prefix: "héllo", Cursor: 10, WordStart: 4}},
		{"cursor inside rune", lang.Python, "é", 1, Request{Prefix: "", Cursor: 0, WordStart: 0}},
		{"c directive", lang.C, "#inc", 4, Request{Prefix: "#inc", Cursor: 4, WordStart: 0}},
		{"bare sigil", lang.C, "\n#", 2, Request{Prefix: "#", Cursor: 2, WordStart: 1}},
		{"css hyphen", lang.CSS, "  font-si", 9, Request{Prefix: "font-si", Cursor: 9, WordStart: 2}},
		{"css at-rule", lang.CSS, "@med", 4, Request{Prefix: "@med", Cursor: 4, WordStart: 0}},
		{"hyphen outside css", lang.JavaScript, "a-bc", 4, Request{Prefix: "bc", Cursor: 4, WordStart: 2}},
		{"no sigil in rust", lang.Rust, "!flag", 5, Request{Prefix: "flag", Cursor: 5, WordStart: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, RequestAt(tc.id, tc.text, tc.cursor))
		})
	}
}

func TestApplyKeyword(t *testing.T) {
	text := "let x = mat y"
	req := RequestAt(lang.Rust, text, 11)
	edit := Apply(req, Item{Kind: KindKeyword, Label: "match"})

	assert.Equal(t, Edit{Start: 8, End: 11, Insert: "match"}, edit)

	out, cursor := edit.ApplyTo(text)
	assert.Equal(t, "let x = match y", out)
	assert.Equal(t, 13, cursor)
}

func TestApplySnippetExpandsTemplate(t *testing.T) {
	text := "fn"
	req := RequestAt(lang.Rust, text, 2)
	edit := Apply(req, Item{Kind: KindSnippet, Label: "fn", Body: "fn ${1:name}() {}"})

	out, cursor := edit.ApplyTo(text)
	assert.Equal(t, "fn name() {}", out)
	assert.Equal(t, len(out), cursor)
}

func TestEditApplyToClampsOffsets(t *testing.T) {
	out, cursor := Edit{Start: 5, End: 50, Insert: "!"}.ApplyTo("abc")
	assert.Equal(t, "abc!", out)
	assert.Equal(t, 4, cursor)

	out, cursor = Edit{Start: -2, End: 1, Insert: "X"}.ApplyTo("abc")
	assert.Equal(t, "Xbc", out)
	assert.Equal(t, 1, cursor)
}
