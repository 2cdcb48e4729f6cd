package config

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when operating on a closed watcher.
var ErrWatcherClosed = errors.New("watcher closed")

// Handler receives the path of a changed configuration file.
type Handler func(path string)

// Watcher watches configuration files for changes. Rapid successive
// writes to the same file, as editors produce when saving, are
// coalesced into one notification.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	debounce time.Duration
	handler  Handler

	pending map[string]*time.Timer
	closed  bool
	closeCh chan struct{}
	done    sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the coalescing window for change notifications.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher creates a watcher that calls handler for each changed
// file. The handler runs on the watcher's goroutine; it must not block
// for long.
func NewWatcher(handler Handler, opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: 100 * time.Millisecond,
		handler:  handler,
		pending:  make(map[string]*time.Timer),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.done.Add(1)
	go w.loop()

	return w, nil
}

// Watch starts watching a file. The containing directory is watched
// rather than the file itself, so rename-and-replace saves are still
// observed.
func (w *Watcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return w.fsw.Add(filepath.Dir(abs))
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for _, timer := range w.pending {
		timer.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.done.Wait()
	return err
}

// loop forwards debounced fsnotify events to the handler.
func (w *Watcher) loop() {
	defer w.done.Done()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule(ev.Name)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// fsnotify errors are transient; the next event for the
			// watched directory still arrives.
		}
	}
}

// schedule arms or re-arms the debounce timer for one path.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.pending, path)
		closed := w.closed
		w.mu.Unlock()

		if !closed {
			w.handler(path)
		}
	})
}
