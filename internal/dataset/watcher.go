package dataset

import (
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/logging"
)

// DefaultDebounce is how long the watcher waits after the last change before
// reloading. Editors often write a file in several steps.
const DefaultDebounce = 50 * time.Millisecond

// Publisher receives reload notifications. *event.Bus satisfies it.
type Publisher interface {
	Publish(event.Event)
}

// Watcher reloads a dataset file whenever it changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	opts    Options

	debounce  time.Duration
	onReload  func(*Dataset)
	onError   func(error)
	publisher Publisher
	logger    *logging.Logger

	mu       sync.RWMutex
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
}

// NewWatcher creates a watcher for path. The parent directory is watched so
// that editors replacing the file by rename are noticed.
func NewWatcher(path string, opts Options, logger *logging.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	if logger == nil {
		logger = logging.NopLogger()
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		opts:     opts,
		debounce: DefaultDebounce,
		logger:   logger.WithComponent("dataset").WithSource(abs),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// SetReloadCallback sets the function called with every successful reload.
func (w *Watcher) SetReloadCallback(cb func(*Dataset)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = cb
}

// SetErrorCallback sets the function called when a reload fails.
func (w *Watcher) SetErrorCallback(cb func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = cb
}

// SetPublisher announces reload outcomes on p.
func (w *Watcher) SetPublisher(p Publisher) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.publisher = p
}

// SetDebounce changes the quiet period before a reload. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = d
}

// Start begins watching for changes.
func (w *Watcher) Start() {
	if w.started.CompareAndSwap(false, true) {
		go w.watchLoop()
	}
}

// Stop stops watching and waits for the loop to exit. It is safe to call
// more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
	if w.started.Load() {
		<-w.done
	}
}

func (w *Watcher) watchLoop() {
	defer close(w.done)

	w.mu.RLock()
	debounce := w.debounce
	w.mu.RUnlock()

	timer := time.NewTimer(0)
	<-timer.C
	pending := false

	for {
		select {
		case <-w.stopCh:
			timer.Stop()
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			timer.Reset(debounce)

		case <-timer.C:
			if pending {
				pending = false
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err.Error())
		}
	}
}

func (w *Watcher) reload() {
	ds, err := Load(w.path, w.opts)

	w.mu.RLock()
	onReload, onError, publisher := w.onReload, w.onError, w.publisher
	w.mu.RUnlock()

	if err != nil {
		w.logger.Warn("reload failed", "error", err.Error())
		if publisher != nil {
			publisher.Publish(event.NewDatasetErrorEvent(w.path, err))
		}
		if onError != nil {
			onError(err)
		}
		return
	}

	w.logger.Info("dataset reloaded", "rows", len(ds.Rows), "columns", len(ds.Columns))
	if publisher != nil {
		publisher.Publish(event.NewDatasetReloadedEvent(w.path, len(ds.Rows), len(ds.Columns)))
	}
	if onReload != nil {
		onReload(ds)
	}
}
