/*
Package snippet turns snippet templates into plain insertable text.

Templates use a small tab-stop syntax:

	${1:name}   replaced by "name"
	${2}        replaced by "placeholder"

Defaults may contain further placeholders; the closing brace is found by
counting brace depth, so "${1:fn(${2:x})}" expands to "fn(x)". A "${" without
a matching "}" is copied through literally. Expansion never fails.

Expansion is a single pass and its output is not scanned again, so text that
only forms a marker after expansion stays as it is: "${1:$}{x}" expands to
"${x}".

Tab-stop indices are informational only. Parse reports where each placeholder
ended up in the output so a caller can highlight or select it, but there is no
interactive stepping between stops.
*/
package snippet

import (
	"strconv"
	"strings"
)

// DefaultPlaceholder is inserted for placeholders without default text.
const DefaultPlaceholder = "placeholder"

// Stop is the position of one expanded placeholder in the output text.
// Start and End are byte offsets. Index is -1 when the marker had no numeric index.
type Stop struct {
	Index int
	Start int
	End   int
}

// Expansion is the result of expanding a template.
type Expansion struct {
	Text  string
	Stops []Stop
}

// Expand returns template with every placeholder replaced by its default text.
func Expand(template string) string {
	if !strings.Contains(template, "${") {
		return template
	}
	return Parse(template).Text
}

// Parse expands template and records the placeholder spans.
// Stops are ordered by their start offset; nested placeholders come after
// the placeholder that contains them.
func Parse(template string) Expansion {
	var sb strings.Builder
	sb.Grow(len(template))
	var stops []Stop
	expandInto(&sb, &stops, template)
	return Expansion{Text: sb.String(), Stops: stops}
}

func expandInto(sb *strings.Builder, stops *[]Stop, s string) {
	for i := 0; i < len(s); {
		if s[i] != '$' || i+1 >= len(s) || s[i+1] != '{' {
			sb.WriteByte(s[i])
			i++
			continue
		}

		end := matchingBrace(s, i+2)
		if end < 0 {
			sb.WriteString("${")
			i += 2
			continue
		}

		index, def, hasDefault := splitMarker(s[i+2 : end])
		slot := len(*stops)
		*stops = append(*stops, Stop{Index: index, Start: sb.Len()})
		if hasDefault {
			expandInto(sb, stops, def)
		} else {
			sb.WriteString(DefaultPlaceholder)
		}
		(*stops)[slot].End = sb.Len()
		i = end + 1
	}
}

// matchingBrace returns the offset of the '}' closing a marker whose body starts at from.
func matchingBrace(s string, from int) int {
	depth := 1
	for j := from; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// splitMarker splits "1:text" into its index and default text.
func splitMarker(body string) (index int, def string, hasDefault bool) {
	head := body
	if colon := strings.IndexByte(body, ':'); colon >= 0 {
		head, def, hasDefault = body[:colon], body[colon+1:], true
	}
	index = -1
	if n, err := strconv.Atoi(head); err == nil && n >= 0 {
		index = n
	}
	return index, def, hasDefault
}
