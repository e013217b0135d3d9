package imagewatch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events a single save produces
const DefaultDebounce = 150 * time.Millisecond

// Watcher follows one file. It watches the parent directory so that editors
// which save by rename-over are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher

	onChanged func(path string)
	debounce  time.Duration

	mu        sync.Mutex
	path      string // cleaned target, empty when not watching
	dir       string
	timer     *time.Timer
	closed    bool
	closeOnce sync.Once
}

// New creates a watcher that calls onChanged after the target settles
func New(onChanged func(path string)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &Watcher{
		watcher:   watcher,
		onChanged: onChanged,
		debounce:  DefaultDebounce,
	}, nil
}

// Watch retargets the watcher to path
func (w *Watcher) Watch(path string) error {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return fmt.Errorf("watcher is closed")
	}
	oldDir := w.dir
	w.mu.Unlock()

	if oldDir != dir {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		if oldDir != "" {
			_ = w.watcher.Remove(oldDir)
		}
	}

	w.mu.Lock()
	w.path = path
	w.dir = dir
	w.stopTimerLocked()
	w.mu.Unlock()
	return nil
}

// Unwatch stops following the current file
func (w *Watcher) Unwatch() {
	w.mu.Lock()
	dir := w.dir
	w.path = ""
	w.dir = ""
	w.stopTimerLocked()
	w.mu.Unlock()

	if dir != "" {
		_ = w.watcher.Remove(dir)
	}
}

// Path returns the file being followed
func (w *Watcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Run dispatches events until ctx ends or the watcher is closed
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.isTargetEvent(event) {
				w.scheduleNotify()
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			// Errors are transient; keep running.
		}
	}
}

// Close stops the watcher and any pending notification
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.stopTimerLocked()
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) isTargetEvent(event fsnotify.Event) bool {
	w.mu.Lock()
	path := w.path
	w.mu.Unlock()

	if path == "" || filepath.Clean(event.Name) != path {
		return false
	}
	// removal alone leaves nothing to reload
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) scheduleNotify() {
	if w.onChanged == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.fire)
	} else {
		w.timer.Reset(w.debounce)
	}
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed || w.path == "" {
		w.mu.Unlock()
		return
	}
	path := w.path
	w.timer = nil
	w.mu.Unlock()

	w.onChanged(path)
}

func (w *Watcher) stopTimerLocked() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
