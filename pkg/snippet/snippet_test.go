package snippet

import (
	"strings"
	"testing"

	"github.com/bastiangx/codeserve/pkg/lang"
	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	testCases := []struct {
		template string
		expected string
		desc     string
	}{
		{"plain text", "plain text", "no placeholders"},
		{"", "", "empty template"},
		{"${1:foo} and ${2:bar}", "foo and bar", "two placeholders"},
		{"${1}", "placeholder", "no default text"},
		{"x${}y", "xplaceholdery", "empty marker"},
		{"${1:fn(${2:x})}", "fn(x)", "nested placeholder"},
		{"${1:{a}}", "{a}", "literal braces in default"},
		{"${1:a:b}", "a:b", "colon in default"},
		{"${1:}", "", "empty default"},
		{"cost: $5 {ok}", "cost: $5 {ok}", "dollar and braces without marker"},
		{"${1:open", "${1:open", "unterminated marker"},
		{"${1:a ${2:b}", "${1:a b", "unterminated outer, closed inner"},
		{"end$", "end$", "trailing dollar"},
		{"${name:value}", "value", "non-numeric index"},
		{"${1:$}{x}", "${x}", "marker formed by expansion is not rescanned"},
		{"fn ${1:name}() {\n    ${2:body}\n}", "fn name() {\n    body\n}", "multi-line"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, Expand(tc.template))
		})
	}
}

func TestParseStops(t *testing.T) {
	exp := Parse("${1:foo} and ${2}")

	assert.Equal(t, "foo and placeholder", exp.Text)
	assert.Equal(t, []Stop{
		{Index: 1, Start: 0, End: 3},
		{Index: 2, Start: 8, End: 19},
	}, exp.Stops)
}

func TestParseNestedStops(t *testing.T) {
	exp := Parse("${1:f(${2:x})}")

	assert.Equal(t, "f(x)", exp.Text)
	assert.Equal(t, []Stop{
		{Index: 1, Start: 0, End: 4},
		{Index: 2, Start: 2, End: 3},
	}, exp.Stops)
}

func TestParseNonNumericIndex(t *testing.T) {
	exp := Parse("${abc:v}")
	assert.Equal(t, -1, exp.Stops[0].Index)
}

func TestExpandBuiltinSnippetsLeavesNoMarkers(t *testing.T) {
	for _, id := range lang.All() {
		for _, s := range lang.Snippets(id) {
			out := Expand(s.Body)
			assert.NotContains(t, out, "${", "%s/%s", id, s.Trigger)
			assert.NotEmpty(t, strings.TrimSpace(out), "%s/%s", id, s.Trigger)
		}
	}
}
