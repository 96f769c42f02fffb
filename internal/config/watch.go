package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a watcher waits for writes to settle before
// reloading.
const DefaultDebounce = 50 * time.Millisecond

// ReloadFunc receives the result of every reload. Exactly one of cfg and
// err is non-nil.
type ReloadFunc func(cfg *Config, err error)

// Watcher reloads a configuration file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload ReloadFunc
	fsw      *fsnotify.Watcher
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the settle delay. Non-positive values disable it.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher prepares a watcher for path. The containing directory is
// watched so that editors replacing the file through a rename are seen.
func NewWatcher(path string, fn ReloadFunc, opts ...WatchOption) (*Watcher, error) {
	if _, err := FormatOf(path); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{path: abs, debounce: DefaultDebounce, onReload: fn}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w.fsw = fsw
	return w, nil
}

// Run delivers reloads until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fsw.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if w.debounce <= 0 {
				w.reload()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.onReload(nil, fmt.Errorf("watch %s: %w", w.path, err))
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.onReload(nil, err)
		return
	}
	w.onReload(cfg, nil)
}

// Watch starts a watcher for path in its own goroutine. It stops when ctx
// is done.
func Watch(ctx context.Context, path string, fn ReloadFunc, opts ...WatchOption) error {
	w, err := NewWatcher(path, fn, opts...)
	if err != nil {
		return err
	}
	go w.Run(ctx)
	return nil
}
