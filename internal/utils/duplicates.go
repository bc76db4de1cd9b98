package utils

// SuggestionFilter tracks labels already emitted for one completion request.
// It is not safe for concurrent use; each request builds its own.
type SuggestionFilter struct {
	seen map[string]struct{}
}

// NewSuggestionFilter creates a filter that already rejects the given labels.
func NewSuggestionFilter(exclude ...string) *SuggestionFilter {
	seen := make(map[string]struct{}, len(exclude)+16)
	for _, label := range exclude {
		seen[label] = struct{}{}
	}
	return &SuggestionFilter{seen: seen}
}

// ShouldInclude reports whether label is new and records it.
// Returns false for duplicates.
func (f *SuggestionFilter) ShouldInclude(label string) bool {
	if _, dup := f.seen[label]; dup {
		return false
	}
	f.seen[label] = struct{}{}
	return true
}

// Mark records label without asking.
func (f *SuggestionFilter) Mark(label string) {
	f.seen[label] = struct{}{}
}

// Seen reports whether label was recorded.
func (f *SuggestionFilter) Seen(label string) bool {
	_, ok := f.seen[label]
	return ok
}
