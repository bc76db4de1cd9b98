package server

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/codeserve/pkg/config"
	"github.com/bastiangx/codeserve/pkg/suggest"
)

func intPtr(i int) *int { return &i }

// run feeds requests to a fresh server and returns a decoder over its output,
// positioned after the ready message.
func run(t *testing.T, cfg *config.Config, requests ...any) *msgpack.Decoder {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range requests {
		require.NoError(t, enc.Encode(r))
	}

	srv := NewServer(suggest.NewMatcher(cfg.MatcherOptions()), cfg, &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready.Status)
	return dec
}

func displays(s []CompletionSuggestion) []string {
	out := make([]string, len(s))
	for i, sg := range s {
		out[i] = sg.Display
	}
	return out
}

func TestServerCompletePrefix(t *testing.T) {
	dec := run(t, nil, Request{ID: "c1", Lang: "rust", Prefix: "ma"})

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "c1", resp.ID)
	assert.Equal(t, "rust", resp.Lang)
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, []string{"main (snippet)", "match", "match (snippet)"}, displays(resp.Suggestions))

	first := resp.Suggestions[0]
	assert.Equal(t, "snippet", first.Kind)
	assert.Equal(t, "fn main() {\n    body\n}", first.Insert)
	assert.Equal(t, uint16(1), first.Rank)
	assert.Equal(t, uint16(3), resp.Suggestions[2].Rank)
	assert.Equal(t, "keyword", resp.Suggestions[1].Kind)
	assert.NotEmpty(t, resp.Suggestions[1].Doc)
	assert.GreaterOrEqual(t, resp.TimeTaken, int64(0))
}

func TestServerCompleteAtCursorDetectsFileLanguage(t *testing.T) {
	text := "counter = 1\nprint(cou"
	dec := run(t, nil, Request{ID: "c2", File: "script.py", Text: text, Cursor: intPtr(len(text))})

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "python", resp.Lang)
	assert.Equal(t, []string{"counter"}, displays(resp.Suggestions))
	assert.Equal(t, "word", resp.Suggestions[0].Kind)
	require.NotNil(t, resp.WordStart)
	require.NotNil(t, resp.Cursor)
	assert.Equal(t, len(text)-3, *resp.WordStart)
	assert.Equal(t, len(text), *resp.Cursor)
}

func TestServerCompleteReportsWordStartAtZero(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "z", Lang: "rust", Text: "ma", Cursor: intPtr(2)},
		Request{ID: "p", Lang: "rust", Prefix: "ma"},
	)

	var atCursor, byPrefix CompletionResponse
	require.NoError(t, dec.Decode(&atCursor))
	require.NoError(t, dec.Decode(&byPrefix))

	require.NotNil(t, atCursor.WordStart)
	assert.Equal(t, 0, *atCursor.WordStart)
	require.NotNil(t, atCursor.Cursor)
	assert.Equal(t, 2, *atCursor.Cursor)

	assert.Nil(t, byPrefix.WordStart)
	assert.Nil(t, byPrefix.Cursor)
}

func TestServerDetectsLanguageFromText(t *testing.T) {
	text := "using namespace std;\nint main() { ret"
	dec := run(t, nil,
		Request{ID: "t", Text: text, Cursor: intPtr(len(text))},
		Request{ID: "g", Text: "hello wor", Cursor: intPtr(9)},
	)

	var detected, fallback CompletionResponse
	require.NoError(t, dec.Decode(&detected))
	require.NoError(t, dec.Decode(&fallback))
	assert.Equal(t, "cpp", detected.Lang)
	assert.Equal(t, []string{"return"}, displays(detected.Suggestions))
	assert.Equal(t, "generic", fallback.Lang)
}

func TestServerCompleteDefaultsAndLimit(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "a", Action: ActionComplete, Lang: "rust"},
		Request{ID: "b", Lang: "rust", Limit: 2},
	)

	var all, limited CompletionResponse
	require.NoError(t, dec.Decode(&all))
	require.NoError(t, dec.Decode(&limited))
	assert.Equal(t, 12, all.Count)
	assert.Equal(t, "enum", all.Suggestions[0].Display)
	assert.Equal(t, 2, limited.Count)
}

func TestServerCompleteNoMatch(t *testing.T) {
	dec := run(t, nil, Request{ID: "n", Lang: "go", Prefix: "zzqx"})

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Suggestions)
}

func TestServerUsesConfiguredDefaultLanguage(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Completion.DefaultLanguage = "go"
	dec := run(t, cfg, Request{ID: "d", Prefix: "iferr"})

	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "go", resp.Lang)
	assert.Equal(t, []string{"iferr (snippet)"}, displays(resp.Suggestions))
}

func TestServerValidation(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxPrefix = 5
	cfg.Server.MaxTextBytes = 16

	dec := run(t, cfg,
		Request{ID: "long", Prefix: "abcdefgh"},
		Request{ID: "space", Prefix: "ab c"},
		Request{ID: "big", Prefix: "a", Text: strings.Repeat("x", 17)},
		Request{ID: "cur", Text: "abcdefgh", Cursor: intPtr(8)},
		Request{ID: "act", Action: "explode"},
		Request{ID: "kw", Action: ActionDoc},
		Request{ID: "file", Action: ActionDetect},
	)

	for _, id := range []string{"long", "space", "big", "cur", "act", "kw", "file"} {
		var e CompletionError
		require.NoError(t, dec.Decode(&e))
		assert.Equal(t, id, e.ID)
		assert.Equal(t, 400, e.Code)
		assert.NotEmpty(t, e.Error)
	}
}

func TestServerInvalidMessageKeepsServing(t *testing.T) {
	dec := run(t, nil, 42, Request{ID: "p", Action: ActionPing})

	var e CompletionError
	require.NoError(t, dec.Decode(&e))
	assert.Equal(t, 400, e.Code)

	var pong StatusResponse
	require.NoError(t, dec.Decode(&pong))
	assert.Equal(t, StatusResponse{ID: "p", Status: "ok"}, pong)
}

func TestServerDoc(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "d1", Action: ActionDoc, Lang: "rust", Keyword: "println!"},
		Request{ID: "d2", Action: ActionDoc, File: "x.rs", Keyword: "u16"},
	)

	var macro, integer DocResponse
	require.NoError(t, dec.Decode(&macro))
	require.NoError(t, dec.Decode(&integer))
	assert.Equal(t, "rust", macro.Lang)
	assert.NotEmpty(t, macro.Doc)
	assert.Equal(t, "u16", integer.Keyword)
	assert.Contains(t, integer.Doc, "16-bit")
}

func TestServerExpand(t *testing.T) {
	dec := run(t, nil, Request{ID: "e", Action: ActionExpand, Body: "${1:foo} and ${2:bar}"})

	var resp ExpandResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "foo and bar", resp.Text)
	assert.Equal(t, []SnippetStop{{Index: 1, Start: 0, End: 3}, {Index: 2, Start: 8, End: 11}}, resp.Stops)
}

func TestServerLanguagesAndDetect(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "l", Action: ActionLanguages},
		Request{ID: "f", Action: ActionDetect, File: "src/app/index.html"},
	)

	var langs LanguagesResponse
	require.NoError(t, dec.Decode(&langs))
	assert.Equal(t, []string{"generic", "rust", "javascript", "python", "c", "cpp", "java", "html", "css", "go"}, langs.Languages)

	var det DetectResponse
	require.NoError(t, dec.Decode(&det))
	assert.Equal(t, "html", det.Lang)
}

func TestServerEmptyInput(t *testing.T) {
	run(t, nil)
}

func TestServerUpdateConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	var in, out bytes.Buffer
	srv := NewServer(suggest.NewMatcher(cfg.MatcherOptions()), cfg, &in, &out)
	before := srv.completer

	require.NoError(t, srv.UpdateConfig(cfg))
	assert.Same(t, before, srv.completer, "unchanged options keep the completer")

	next := config.DefaultConfig()
	next.Completion.MaxItems = 2
	next.Completion.DefaultLanguage = "css"
	require.NoError(t, srv.UpdateConfig(next))
	assert.Equal(t, 2, srv.completer.Options().MaxItems)

	require.NoError(t, msgpack.NewEncoder(&in).Encode(Request{ID: "x", Prefix: "a"}))
	require.NoError(t, srv.Start())
	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	var resp CompletionResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "css", resp.Lang)
	assert.LessOrEqual(t, resp.Count, 2)

	assert.Error(t, srv.UpdateConfig(nil))
}
