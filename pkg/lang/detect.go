package lang

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// lexerNames maps chroma lexer names to IDs.
var lexerNames = map[string]ID{
	"Rust":       Rust,
	"JavaScript": JavaScript,
	"JSX":        JavaScript,
	"Python":     Python,
	"Python 2":   Python,
	"C":          C,
	"C++":        Cpp,
	"Java":       Java,
	"HTML":       HTML,
	"CSS":        CSS,
	"Go":         Go,
}

// Detect returns the language of a file from its name.
// Files chroma has no lexer for, or lexers without a table here, map to Generic.
func Detect(filename string) ID {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return Generic
	}
	return fromLexer(lexers.Match(base))
}

// DetectContent guesses the language of a buffer from its text, for unnamed buffers.
func DetectContent(text string) ID {
	if strings.TrimSpace(text) == "" {
		return Generic
	}
	return fromLexer(lexers.Analyse(text))
}

func fromLexerName(name string) ID {
	return fromLexer(lexers.Get(name))
}

func fromLexer(lexer chroma.Lexer) ID {
	if lexer == nil {
		return Generic
	}
	cfg := lexer.Config()
	if cfg == nil {
		return Generic
	}
	if id, ok := lexerNames[cfg.Name]; ok {
		return id
	}
	return Generic
}
