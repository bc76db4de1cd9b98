// Package suggest is the core, matching typed prefixes against the language tables and the open buffer.
package suggest

import "github.com/bastiangx/codeserve/pkg/lang"

// ICompleter defines the interface for code completion engines
type ICompleter interface {
	// Complete returns the sorted, capped suggestions for a prefix.
	// An empty result means the popup should not be shown.
	Complete(id lang.ID, prefix, bufferText string) []Item

	// CompleteAt derives the prefix from the cursor position and completes it.
	CompleteAt(id lang.ID, text string, cursor int) (Request, []Item)

	// Options returns the limits the completer was built with.
	Options() Options
}
