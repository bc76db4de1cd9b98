package suggest

import (
	"cmp"
	"slices"
	"strings"

	"github.com/bastiangx/codeserve/internal/utils"
	"github.com/bastiangx/codeserve/pkg/lang"
	"github.com/bastiangx/codeserve/pkg/snippet"
)

const (
	// DefaultMaxItems caps the number of suggestions in one result.
	DefaultMaxItems = 20
	// DefaultMinWordLen is the shortest buffer word offered as a suggestion.
	DefaultMinWordLen = 3
)

// Options tunes a Matcher. Zero values fall back to the defaults.
type Options struct {
	MaxItems   int
	MinWordLen int
}

func (o Options) normalize() Options {
	if o.MaxItems <= 0 {
		o.MaxItems = DefaultMaxItems
	}
	if o.MinWordLen <= 0 {
		o.MinWordLen = DefaultMinWordLen
	}
	return o
}

// Matcher produces completion suggestions from the static language tables
// and the words of the current buffer. It is immutable after construction
// and safe for concurrent use.
type Matcher struct {
	opts  Options
	tries []*langTrie
}

// NewMatcher indexes every language table.
func NewMatcher(opts Options) *Matcher {
	ids := lang.All()
	m := &Matcher{
		opts:  opts.normalize(),
		tries: make([]*langTrie, len(ids)),
	}
	for _, id := range ids {
		m.tries[id] = buildLangTrie(id)
	}
	return m
}

// Options returns the normalized options.
func (m *Matcher) Options() Options {
	return m.opts
}

func (m *Matcher) trie(id lang.ID) *langTrie {
	if !id.Valid() || int(id) >= len(m.tries) {
		return m.tries[lang.Generic]
	}
	return m.tries[id]
}

// Complete returns suggestions for prefix in the given language.
//
// An empty prefix yields the language's curated defaults and ignores the buffer.
// Otherwise keywords, snippet triggers and buffer words starting with the
// prefix (case-insensitive) are collected, deduplicated by display text,
// sorted and capped. No match yields an empty result.
func (m *Matcher) Complete(id lang.ID, prefix, bufferText string) []Item {
	if !id.Valid() {
		id = lang.Generic
	}
	lt := m.trie(id)
	if prefix == "" {
		return m.defaultItems(id, lt)
	}

	lowerPrefix := strings.ToLower(prefix)
	shown := utils.NewSuggestionFilter()
	taken := utils.NewSuggestionFilter()
	var items []Item

	add := func(it Item) {
		if shown.ShouldInclude(it.Display()) {
			taken.Mark(it.Label)
			items = append(items, it)
		}
	}

	searchTrie(lt.keywords, lowerPrefix, func(kw string) {
		add(Item{Kind: KindKeyword, Label: kw, Doc: lang.Describe(id, kw)})
	})
	searchTrie(lt.snippets, lowerPrefix, func(s lang.Snippet) {
		add(Item{Kind: KindSnippet, Label: s.Trigger, Body: s.Body, Doc: snippetDoc(s)})
	})

	for _, word := range bufferWords(bufferText, m.opts.MinWordLen) {
		if word == prefix || !strings.HasPrefix(strings.ToLower(word), lowerPrefix) {
			continue
		}
		if !taken.ShouldInclude(word) {
			continue
		}
		add(Item{Kind: KindBufferWord, Label: word, Doc: "Word from the current buffer."})
	}

	if len(items) == 0 {
		return nil
	}
	sortItems(items)
	return truncate(items, m.opts.MaxItems)
}

// CompleteAt derives the request at cursor and completes its prefix.
func (m *Matcher) CompleteAt(id lang.ID, text string, cursor int) (Request, []Item) {
	req := RequestAt(id, text, cursor)
	return req, m.Complete(id, req.Prefix, text)
}

func (m *Matcher) defaultItems(id lang.ID, lt *langTrie) []Item {
	items := make([]Item, 0, len(lt.defaults))
	for _, kw := range lt.defaults {
		items = append(items, Item{Kind: KindKeyword, Label: kw, Doc: lang.Describe(id, kw)})
	}
	return truncate(items, m.opts.MaxItems)
}

// bufferWords splits text on whitespace and strips non-identifier runes from
// both ends of every token. Tokens shorter than minLen runes are dropped.
func bufferWords(text string, minLen int) []string {
	fields := strings.Fields(text)
	words := fields[:0]
	for _, f := range fields {
		w := utils.TrimNonWord(f)
		if utils.RuneLen(w) < minLen {
			continue
		}
		words = append(words, w)
	}
	return words
}

func snippetDoc(s lang.Snippet) string {
	preview := snippet.Expand(s.Body)
	if nl := strings.IndexByte(preview, '\n'); nl >= 0 {
		preview = preview[:nl] + " ..."
	}
	return "Snippet: " + preview
}

// sortItems orders by display text. Ties cannot happen within one result, but
// kind and label keep the order total anyway.
func sortItems(items []Item) {
	slices.SortFunc(items, func(a, b Item) int {
		return cmp.Or(
			strings.Compare(a.Display(), b.Display()),
			cmp.Compare(a.Kind, b.Kind),
			strings.Compare(a.Label, b.Label),
		)
	})
}

func truncate(items []Item, limit int) []Item {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
