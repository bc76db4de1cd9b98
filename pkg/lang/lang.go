/*
Package lang holds the static per-language tables used by the completion engine.

Every table is an array indexed by ID, so a language without an entry is a
compile-time visible gap rather than a missed map lookup. Tables are filled
once at package init and never modified afterwards; accessors hand out copies.

	id := lang.Detect("main.rs")          // lang.Rust
	kws := lang.Keywords(id)              // ordered keyword list
	doc := lang.Describe(id, "match")     // human readable description

Unknown names, file types and out of range IDs all fall back to Generic,
which carries a small language neutral table.
*/
package lang

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ID identifies one of the supported languages.
type ID uint8

const (
	Generic ID = iota
	Rust
	JavaScript
	Python
	C
	Cpp
	Java
	HTML
	CSS
	Go

	numLanguages
)

var names = [numLanguages]string{
	Generic:    "generic",
	Rust:       "rust",
	JavaScript: "javascript",
	Python:     "python",
	C:          "c",
	Cpp:        "cpp",
	Java:       "java",
	HTML:       "html",
	CSS:        "css",
	Go:         "go",
}

// aliases maps alternative spellings to an ID. Canonical names are added in init.
var aliases = map[string]ID{
	"text":       Generic,
	"plain":      Generic,
	"rs":         Rust,
	"js":         JavaScript,
	"jsx":        JavaScript,
	"node":       JavaScript,
	"ecmascript": JavaScript,
	"py":         Python,
	"py3":        Python,
	"python3":    Python,
	"h":          C,
	"c++":        Cpp,
	"cc":         Cpp,
	"cxx":        Cpp,
	"hpp":        Cpp,
	"htm":        HTML,
	"xhtml":      HTML,
	"golang":     Go,
}

// sigils holds, per language, the non-identifier runes that start a keyword
// ("#" for "#include", "@" for "@media").
var sigils [numLanguages]string

func init() {
	for id, name := range names {
		aliases[name] = ID(id)
	}
	for id, kws := range keywords {
		for _, kw := range kws {
			r, _ := utf8.DecodeRuneInString(kw)
			if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(sigils[id], r) {
				continue
			}
			sigils[id] += string(r)
		}
	}
}

// Snippet is a trigger word and the template it expands to.
type Snippet struct {
	Trigger string
	Body    string
}

// String returns the canonical lowercase name.
func (id ID) String() string {
	return names[id.normalize()]
}

// Valid reports whether id names a known language.
func (id ID) Valid() bool {
	return id < numLanguages
}

func (id ID) normalize() ID {
	if !id.Valid() {
		return Generic
	}
	return id
}

// All returns every supported language in declaration order.
func All() []ID {
	ids := make([]ID, 0, numLanguages)
	for id := Generic; id < numLanguages; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Parse maps a language name or alias to an ID. Matching is case-insensitive.
// Names chroma knows about (e.g. "C++", "Python 3") are resolved through its
// lexer registry. Anything else is Generic.
func Parse(name string) ID {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Generic
	}
	if id, ok := aliases[key]; ok {
		return id
	}
	return fromLexerName(name)
}

// Sigils returns the runes that may lead a keyword of the language.
func Sigils(id ID) string {
	return sigils[id.normalize()]
}

// Keywords returns the ordered keyword list of a language.
func Keywords(id ID) []string {
	return slices.Clone(keywords[id.normalize()])
}

// Snippets returns the ordered snippet list of a language.
func Snippets(id ID) []Snippet {
	return slices.Clone(snippets[id.normalize()])
}

// Defaults returns the curated suggestions offered when nothing has been typed yet.
// The list is sorted.
func Defaults(id ID) []string {
	return slices.Clone(defaults[id.normalize()])
}
