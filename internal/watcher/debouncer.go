package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of change notifications for the same
// paths into one flush. Editors commonly emit several events per save;
// without coalescing every save would trigger multiple re-indexes.
type Debouncer struct {
	window   time.Duration
	maxBatch int
	pending  map[string]struct{}
	mu       sync.Mutex
	timer    *time.Timer
	onFlush  func(paths []string)
	stopped  bool
}

func NewDebouncer(window time.Duration, maxBatch int, onFlush func([]string)) *Debouncer {
	return &Debouncer{
		window:   window,
		maxBatch: maxBatch,
		pending:  make(map[string]struct{}),
		onFlush:  onFlush,
	}
}

func (d *Debouncer) Add(path string) {
	d.mu.Lock()

	if d.stopped {
		d.mu.Unlock()
		return
	}

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.pending[path] = struct{}{}

	if len(d.pending) >= d.maxBatch {
		d.flushLocked()
		return
	}

	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if d.stopped {
			d.mu.Unlock()
			return
		}
		d.flushLocked()
	})

	d.mu.Unlock()
}

// flushLocked is entered holding the mutex and releases it before
// invoking the callback.
func (d *Debouncer) flushLocked() {
	paths := make([]string, 0, len(d.pending))
	for path := range d.pending {
		paths = append(paths, path)
	}
	d.pending = make(map[string]struct{})

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.mu.Unlock()

	if len(paths) > 0 && d.onFlush != nil {
		d.onFlush(paths)
	}
}

// Stop flushes anything pending and rejects further events.
func (d *Debouncer) Stop() {
	d.mu.Lock()

	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if len(d.pending) > 0 {
		d.flushLocked()
	} else {
		d.mu.Unlock()
	}
}
