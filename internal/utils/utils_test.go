package utils

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimNonWord(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"foo_bar;", "foo_bar"},
		{"(value)", "value"},
		{"\"héllo\",", "héllo"},
		{"__init__", "__init__"},
		{"a.b", "a.b"},
		{"...", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, TrimNonWord(tc.input))
		})
	}
}

func TestIsValidPrefix(t *testing.T) {
	assert.True(t, IsValidPrefix("fn", 60))
	assert.True(t, IsValidPrefix("", 60))
	assert.True(t, IsValidPrefix("#inc", 60))
	assert.False(t, IsValidPrefix("two words", 60))
	assert.False(t, IsValidPrefix("tab\t", 60))
	assert.False(t, IsValidPrefix("abcdef", 5))
	assert.True(t, IsValidPrefix("ééééé", 5), "length counts runes")
	assert.True(t, IsValidPrefix("abcdef", 0), "zero disables the limit")
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
	assert.Equal(t, "-12,345", FormatCount(-12345))
}

func TestCreateRankList(t *testing.T) {
	assert.Equal(t, []uint16{}, CreateRankList(0))
	assert.Equal(t, []uint16{1, 2, 3}, CreateRankList(3))

	ranks := CreateRankList(math.MaxUint16 + 2)
	assert.Equal(t, uint16(math.MaxUint16), ranks[len(ranks)-1])
}

func TestSuggestionFilter(t *testing.T) {
	f := NewSuggestionFilter("fn")

	assert.False(t, f.ShouldInclude("fn"), "excluded label")
	assert.True(t, f.ShouldInclude("for"))
	assert.False(t, f.ShouldInclude("for"), "duplicate")
	assert.True(t, f.ShouldInclude("For"), "case-sensitive")

	f.Mark("match")
	assert.True(t, f.Seen("match"))
	assert.False(t, f.Seen("mod"))
}

func TestConfigDirFor(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }

	assert.Equal(t, filepath.Join("/home/u", ".config", AppDirName), configDirFor("linux", "/home/u", getenv))

	env["XDG_CONFIG_HOME"] = "/xdg"
	assert.Equal(t, filepath.Join("/xdg", AppDirName), configDirFor("linux", "/home/u", getenv))
	assert.Equal(t, filepath.Join("/home/u", "."+AppDirName), configDirFor("plan9", "/home/u", getenv))
}

func TestSaveAndLoadTOML(t *testing.T) {
	type section struct {
		Limit int  `toml:"limit"`
		On    bool `toml:"on"`
	}
	type doc struct {
		Main section `toml:"main"`
	}

	path := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, SaveTOMLFile(doc{Main: section{Limit: 7, On: true}}, path))
	assert.True(t, FileExists(path))

	raw, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	main, ok := ExtractSection(raw, "main")
	require.True(t, ok)

	limit, ok := ExtractInt64(main, "limit")
	assert.True(t, ok)
	assert.Equal(t, 7, limit)
	on, ok := ExtractBool(main, "on")
	assert.True(t, ok)
	assert.True(t, on)
	_, ok = ExtractString(main, "limit")
	assert.False(t, ok, "wrong type is not extracted")
}

func TestReadTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buf.rs")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1;"), 0644))

	text, err := ReadTextFile(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;", text)

	_, err = ReadTextFile(path, 4)
	assert.Error(t, err, "file over the limit")

	_, err = ReadTextFile(filepath.Join(t.TempDir(), "missing"), 0)
	assert.Error(t, err)
}
