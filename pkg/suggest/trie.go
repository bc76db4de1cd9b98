package suggest

import (
	"strings"

	"github.com/bastiangx/codeserve/pkg/lang"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// langTrie indexes one language's keywords and snippets by lowercased label.
// Several entries may share a key ("self" and "Self"), so items are slices.
type langTrie struct {
	keywords *patricia.Trie
	snippets *patricia.Trie
	defaults []string
}

func buildLangTrie(id lang.ID) *langTrie {
	lt := &langTrie{
		keywords: patricia.NewTrie(),
		snippets: patricia.NewTrie(),
		defaults: lang.Defaults(id),
	}
	for _, kw := range lang.Keywords(id) {
		insertInto(lt.keywords, kw, kw)
	}
	for _, s := range lang.Snippets(id) {
		insertInto(lt.snippets, s.Trigger, s)
	}
	return lt
}

func insertInto[T any](trie *patricia.Trie, label string, value T) {
	key := patricia.Prefix(strings.ToLower(label))
	if existing := trie.Get(key); existing != nil {
		trie.Set(key, append(existing.([]T), value))
		return
	}
	trie.Insert(key, []T{value})
}

// searchTrie calls visit for every value stored under lowerPrefix.
func searchTrie[T any](trie *patricia.Trie, lowerPrefix string, visit func(T)) {
	if trie == nil {
		return
	}
	err := trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		values, ok := item.([]T)
		if !ok {
			log.Errorf("Unknown item type: %T for key %s", item, p)
			return nil
		}
		for _, v := range values {
			visit(v)
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
}
