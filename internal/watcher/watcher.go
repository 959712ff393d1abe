package watcher

import (
	"context"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/JTruax/BOIM-WP-MCP/internal/logger"
)

var log = logger.ForComponent("watcher")

// Watcher observes a docs-override directory and reports changed
// markdown files, debounced, to the onChange callback. It never
// touches the registry: the set of served topics is fixed at startup,
// only document content refreshes.
type Watcher struct {
	config    Config
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	onChange  func(paths []string)

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

func New(config Config, onChange func(paths []string)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		config:    config,
		fsWatcher: fsWatcher,
		onChange:  onChange,
	}
	w.debouncer = NewDebouncer(config.DebounceWindow, config.MaxBatchSize, w.flush)

	return w, nil
}

// Watch registers a directory. The override layout is flat, so no
// recursive walk is needed.
func (w *Watcher) Watch(dir string) error {
	log.Info("watching docs directory", "dir", dir)
	return w.fsWatcher.Add(dir)
}

func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	ctx, w.cancel = context.WithCancel(ctx)
	w.mu.Unlock()

	go w.loop(ctx)
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if w.shouldIgnore(event.Name) {
				continue
			}
			log.Debug("docs change", "path", event.Name, "op", event.Op.String())
			w.debouncer.Add(event.Name)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) flush(paths []string) {
	if w.onChange != nil {
		w.onChange(paths)
	}
}

func (w *Watcher) shouldIgnore(path string) bool {
	for _, pattern := range w.config.IgnorePatterns {
		if match, _ := doublestar.Match(pattern, path); match {
			return true
		}
	}
	return false
}

func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	cancel := w.cancel
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.debouncer.Stop()
	w.fsWatcher.Close()
}
