// Package watcher reloads the gantt view when the database file changes
// underneath a running TUI, with debouncing so a burst of SQLite writes
// (db, -wal, -shm) collapses into one reload.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the default debounce window.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback invocation.
// When Trigger is called multiple times within the window, only the last
// callback runs after the window elapses.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

// NewDebouncer creates a Debouncer. A zero duration means DefaultDebounce.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration == 0 {
		duration = DefaultDebounce
	}
	return &Debouncer{duration: duration}
}

// Trigger schedules the callback after the debounce window, cancelling any
// previously scheduled one.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// Only the most recently scheduled callback may run. Stop() can
		// return false when the timer already fired, so the sequence check
		// is what actually prevents a stale callback.
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		callback()
	})
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Duration returns the debounce window.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
