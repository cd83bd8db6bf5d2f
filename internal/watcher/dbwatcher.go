package watcher

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DBWatcher watches the directory holding the SQLite database and invokes
// onChange (debounced) whenever the database or its WAL sidecars are
// written. Watching the directory rather than the file survives the
// rename-and-replace that some SQLite checkpoint paths perform.
type DBWatcher struct {
	watcher   *fsnotify.Watcher
	dbPath    string
	onChange  func()
	debouncer *Debouncer

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewDBWatcher creates a watcher for the database at dbPath. A zero
// debounce means DefaultDebounce.
func NewDBWatcher(dbPath string, debounce time.Duration, onChange func()) (*DBWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &DBWatcher{
		watcher:   fsw,
		dbPath:    filepath.Clean(dbPath),
		onChange:  onChange,
		debouncer: NewDebouncer(debounce),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the event loop runs in a goroutine
// until Stop or context cancellation.
func (w *DBWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.dbPath)); err != nil {
		return err
	}
	go w.run(ctx)
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *DBWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.debouncer.Cancel()
	_ = w.watcher.Close()
}

func (w *DBWatcher) run(ctx context.Context) {
	defer close(w.doneCh)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *DBWatcher) handleEvent(event fsnotify.Event) {
	if !w.matchesDB(event.Name) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	w.debouncer.Trigger(w.onChange)
}

// matchesDB reports whether path is the database file or one of its
// SQLite sidecars (-wal, -shm, -journal).
func (w *DBWatcher) matchesDB(path string) bool {
	return strings.HasPrefix(filepath.Clean(path), w.dbPath)
}
