package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/codeserve/pkg/lang"
	"github.com/bastiangx/codeserve/pkg/suggest"
)

// runCLI feeds lines to a handler whose clock advances one second per read
// so the session guard never blocks.
func runCLI(t *testing.T, opts Options, lines ...string) (*InputHandler, string) {
	t.Helper()
	var out bytes.Buffer
	h := NewInputHandler(suggest.NewMatcher(suggest.Options{}), opts, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	require.NoError(t, h.Start())
	return h, out.String()
}

func TestCLICompletesPrefix(t *testing.T) {
	_, out := runCLI(t, Options{Language: lang.Rust, ShowDocs: true}, "ma")

	assert.Contains(t, out, "Found 3 suggestions for 'ma'")
	assert.Contains(t, out, "main (snippet)")
	assert.Contains(t, out, "match")
	assert.Contains(t, out, "snippet")
	assert.Contains(t, out, "keyword")
}

func TestCLINoSuggestions(t *testing.T) {
	_, out := runCLI(t, Options{Language: lang.Rust}, "zzqx")
	assert.Contains(t, out, "no suggestions for 'zzqx'")
}

func TestCLIAcceptEditsLine(t *testing.T) {
	h, out := runCLI(t, Options{Language: lang.Rust}, "mat", ":down", ":accept")

	assert.Contains(t, out, "> ")
	assert.Equal(t, "match expr {\n    pattern => value,\n    _ => default,\n}", h.line)
	assert.False(t, h.ctrl.Open())
}

func TestCLIDismiss(t *testing.T) {
	h, out := runCLI(t, Options{Language: lang.Rust}, "ma", ":dismiss", ":down")

	assert.Contains(t, out, "dismissed")
	assert.Contains(t, out, "no open popup")
	assert.False(t, h.ctrl.Open())
}

func TestCLILanguageCommand(t *testing.T) {
	h, out := runCLI(t, Options{Language: lang.Rust}, ":lang", ":lang py", "defa")

	assert.Contains(t, out, "current: rust")
	assert.Contains(t, out, "available: generic, rust")
	assert.Contains(t, out, "language set to python")
	assert.Equal(t, lang.Python, h.opts.Language)
}

func TestCLIFileCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n\nvar requestCounter int\n"), 0o644))

	h, out := runCLI(t, Options{Language: lang.Rust}, ":file "+path, "requ")

	assert.Contains(t, out, "language go")
	assert.Equal(t, lang.Go, h.opts.Language)
	assert.Contains(t, out, "requestCounter")
}

func TestCLIFileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("a"), 64), 0o644))

	_, out := runCLI(t, Options{MaxFileBytes: 10}, ":file "+path, ":file")
	assert.Contains(t, out, "larger than 10 bytes")
	assert.Contains(t, out, "usage: :file <path>")
}

func TestCLIDocAndExpand(t *testing.T) {
	_, out := runCLI(t, Options{Language: lang.Go}, ":doc defer", ":expand ${1:foo} and ${2:bar}")

	assert.Contains(t, out, lang.Describe(lang.Go, "defer"))
	assert.Contains(t, out, "foo and bar")
	assert.Contains(t, out, `$2 [8:11] "bar"`)
}

func TestCLIQuitStopsReading(t *testing.T) {
	h, out := runCLI(t, Options{Language: lang.Rust}, ":quit", "ma")
	assert.NotContains(t, out, "Found")
	assert.Equal(t, 0, h.requests)
}

func TestCLIUnknownCommand(t *testing.T) {
	_, out := runCLI(t, Options{}, ":bogus", ":help")
	assert.Contains(t, out, "unknown command :bogus")
	assert.Contains(t, out, ":expand <template>")
}
