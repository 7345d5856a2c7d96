// Package watcher reloads the configuration when its file changes on disk.
//
// Two fsnotify watches are kept: one on the parent directory, which survives
// editors that save by writing a temp file and renaming it over the config,
// and one on the file itself for in-place writes. The file watch is rebuilt
// after every change so it follows the current inode.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/qiushiyan/hop/internal/logger"
)

var log = logger.Named("watcher")

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 75 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the coalescing window. Zero calls onChange once per
// qualifying event.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d < 0 {
			d = 0
		}
		w.debounce = d
	}
}

// Watcher calls onChange whenever the config file may have changed.
type Watcher struct {
	path     string
	base     string
	dir      string
	onChange func()
	debounce time.Duration

	mu          sync.Mutex
	fsw         *fsnotify.Watcher
	fileWatched bool
	timer       *time.Timer
	closed      bool

	// fireMu serializes onChange calls and the file-watch rebuild after them.
	fireMu  sync.Mutex
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New creates a watcher for the file at path. Nothing is watched until
// Start is called.
func New(path string, onChange func(), opts ...Option) *Watcher {
	path = filepath.Clean(path)
	w := &Watcher{
		path:     path,
		base:     filepath.Base(path),
		dir:      filepath.Dir(path),
		onChange: onChange,
		debounce: DefaultDebounce,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. It fails if the directory cannot be watched; the
// caller should carry on without live reload.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("watcher is closed")
	}
	if w.fsw != nil {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.fsw = fsw
	w.watchFileLocked()

	w.wg.Add(1)
	go w.loop()

	log.Debug("watching %s", w.path)
	return nil
}

// Close stops watching and cancels any pending reload. It is safe to call
// more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	fsw := w.fsw
	close(w.closeCh)
	w.mu.Unlock()

	if fsw == nil {
		return nil
	}
	w.wg.Wait()

	// Wait for an in-flight onChange before closing the underlying watcher.
	w.fireMu.Lock()
	defer w.fireMu.Unlock()
	return fsw.Close()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.qualifies(event) {
				continue
			}
			log.Debug("config changed: %s", event)
			w.schedule()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn("watch error: %v", err)
		}
	}
}

// qualifies reports whether event should trigger a reload. Chmod alone does
// not, and events for other files in the directory are dropped.
func (w *Watcher) qualifies(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	if name == w.path {
		return true
	}
	// Some editors write via temp + rename, resulting in partial paths.
	return filepath.Base(name) == w.base
}

func (w *Watcher) schedule() {
	if w.debounce == 0 {
		w.fire()
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

// fire runs onChange and then rebuilds the file watch.
func (w *Watcher) fire() {
	w.fireMu.Lock()
	defer w.fireMu.Unlock()

	if w.isClosed() {
		return
	}
	if w.onChange != nil {
		w.onChange()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.watchFileLocked()
}

func (w *Watcher) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// watchFileLocked drops the current file watch, if any, and re-adds it when
// the file exists.
func (w *Watcher) watchFileLocked() {
	if w.fileWatched {
		// The watch is gone already if the file was removed or renamed.
		_ = w.fsw.Remove(w.path)
		w.fileWatched = false
	}

	if _, err := os.Stat(w.path); err != nil {
		return
	}
	if err := w.fsw.Add(w.path); err != nil {
		log.Warn("failed to watch %s: %v", w.path, err)
		return
	}
	w.fileWatched = true
}
