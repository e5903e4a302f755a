package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watcherDebounce coalesces bursts of file events (editors often
// write a config file several times in quick succession).
const watcherDebounce = 200 * time.Millisecond

// Watcher watches the config file for changes and invokes a callback
// after a debounce interval.
type Watcher struct {
	watcher    *fsnotify.Watcher
	configPath string
	onChanged  func()
	debounce   time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	closed    bool
	closeOnce sync.Once
}

// NewWatcher watches configPath's directory; the file itself may not
// exist yet.
func NewWatcher(configPath string, onChanged func()) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:    watcher,
		configPath: filepath.Clean(configPath),
		onChanged:  onChanged,
		debounce:   watcherDebounce,
	}

	if err := watcher.Add(filepath.Dir(w.configPath)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return w, nil
}

// Run processes file events until ctx is cancelled or the watcher is
// closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.isConfigEvent(event) {
				w.scheduleNotify()
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			// Ignore errors; watcher will continue running.
		}
	}
}

func (w *Watcher) isConfigEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.configPath {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}

func (w *Watcher) scheduleNotify() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		closed := w.closed
		w.mu.Unlock()
		if !closed && w.onChanged != nil {
			w.onChanged()
		}
	})
}

// Close stops the watcher and any pending notification.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}
