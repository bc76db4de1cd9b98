package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T) (*Watcher, string, chan *Config) {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, SaveConfig(DefaultConfig(), path))

	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	reloads := make(chan *Config, 8)
	w.OnReload(func(c *Config) error {
		reloads <- c
		return nil
	})
	w.Start()
	return w, path, reloads
}

func TestWatcherReloadsOnExternalWrite(t *testing.T) {
	_, path, reloads := startWatcher(t)

	cfg := DefaultConfig()
	cfg.Completion.MaxItems = 11
	require.NoError(t, SaveConfig(cfg, path))

	select {
	case got := <-reloads:
		assert.Equal(t, 11, got.Completion.MaxItems)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config change")
	}
}

func TestWatcherIgnoresOwnSave(t *testing.T) {
	w, _, reloads := startWatcher(t)

	cfg := DefaultConfig()
	cfg.Completion.MaxItems = 9
	require.NoError(t, w.Save(cfg))

	select {
	case got := <-reloads:
		t.Fatalf("unexpected reload: %+v", got.Completion)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, _, _ := startWatcher(t)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", FileName), 0)
	assert.Error(t, err)
}
