package suggest

import "github.com/bastiangx/codeserve/pkg/snippet"

// Kind tells where a suggestion came from.
type Kind uint8

const (
	KindKeyword Kind = iota
	KindSnippet
	KindBufferWord
)

func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindSnippet:
		return "snippet"
	case KindBufferWord:
		return "word"
	default:
		return "unknown"
	}
}

// Item is a single completion candidate.
type Item struct {
	Kind  Kind
	Label string // keyword, snippet trigger or buffer word
	Body  string // snippet template, empty for other kinds
	Doc   string
}

// Display returns the text shown in the popup. Unique within one result.
func (it Item) Display() string {
	if it.Kind == KindSnippet {
		return it.Label + " (snippet)"
	}
	return it.Label
}

// InsertText returns the text that replaces the typed prefix.
func (it Item) InsertText() string {
	if it.Kind == KindSnippet {
		return snippet.Expand(it.Body)
	}
	return it.Label
}
