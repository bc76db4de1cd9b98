package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/bastiangx/codeserve/internal/logger"
)

// DefaultDebounce collapses the burst of events a single save produces.
const DefaultDebounce = 200 * time.Millisecond

// ReloadCallback receives every successfully reloaded config.
type ReloadCallback func(*Config) error

// Watcher reloads a config file when it changes on disk.
//
// The parent directory is watched rather than the file itself: SaveConfig
// replaces the file by rename, which would drop a watch on the old inode.
type Watcher struct {
	path     string
	name     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *log.Logger

	mu        sync.Mutex
	callbacks []ReloadCallback
	timer     *time.Timer
	ownWrite  bool

	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher starts watching configPath's directory. Call Start to begin
// delivering reloads and Close to stop.
func NewWatcher(configPath string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", configPath)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}
	return &Watcher{
		path:     abs,
		name:     filepath.Base(abs),
		watcher:  fw,
		debounce: debounce,
		log:      logger.New("watcher"),
		done:     make(chan struct{}),
	}, nil
}

// OnReload registers a callback. Callbacks run in registration order on the
// watcher's timer goroutine.
func (w *Watcher) OnReload(cb ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// Save writes config to the watched path without triggering a reload.
func (w *Watcher) Save(config *Config) error {
	w.mu.Lock()
	w.ownWrite = true
	w.mu.Unlock()
	if err := SaveConfig(config, w.path); err != nil {
		w.mu.Lock()
		w.ownWrite = false
		w.mu.Unlock()
		return err
	}
	return nil
}

// Start runs the event loop in a new goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Close stops the watcher. Pending reloads are dropped.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("Config changed", "file", event.Name, "op", event.Op.String())
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("Watcher error", "err", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != w.name {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	select {
	case <-w.done:
		return
	default:
	}

	w.mu.Lock()
	own := w.ownWrite
	w.ownWrite = false
	callbacks := append([]ReloadCallback(nil), w.callbacks...)
	w.mu.Unlock()

	if own {
		w.log.Debug("Ignoring own write", "file", w.path)
		return
	}
	if err := w.reload(callbacks); err != nil {
		w.log.Error("Config reload failed", "err", err)
	}
}

func (w *Watcher) reload(callbacks []ReloadCallback) error {
	cfg, err := LoadConfig(w.path)
	if err != nil {
		return err
	}
	w.log.Info("Config reloaded", "file", w.path)
	for _, cb := range callbacks {
		if err := cb(cfg); err != nil {
			return errors.Wrap(err, "reload callback")
		}
	}
	return nil
}
