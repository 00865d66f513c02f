package content

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 300 * time.Millisecond

// ErrWatcherClosed is returned by Start after Stop or a failed Start
var ErrWatcherClosed = errors.New("content watcher closed")

// Watcher watches a content tree and calls onChange once a burst of
// markdown file events has settled.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	onChange func(ctx context.Context)
	debounce time.Duration
	logger   *slog.Logger

	pending   bool
	lastEvent time.Time
	running   bool
	closed    bool
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewWatcher creates a watcher for dir. onChange runs on the watcher
// goroutine and must not block for long.
func NewWatcher(dir string, onChange func(ctx context.Context), logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:  fw,
		dir:      dir,
		onChange: onChange,
		debounce: defaultDebounce,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start registers every directory of the content tree and begins watching.
// It is non-blocking. A failed Start releases the underlying watcher; the
// Watcher cannot be started again after that or after Stop.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.running {
		return nil
	}

	if err := w.addTree(w.dir); err != nil {
		w.closed = true
		w.closeWatcher()
		return err
	}
	w.running = true
	w.logger.Info("content watcher started", "dir", w.dir)

	go w.run(ctx)
	return nil
}

// Stop stops the watcher, waits for its goroutine to exit and releases the
// underlying watcher. It is safe to call on a watcher that never started.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	wasRunning := w.running
	w.running = false
	w.closed = true
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}

	w.closeWatcher()
	w.logger.Info("content watcher stopped", "dir", w.dir)
}

func (w *Watcher) closeWatcher() {
	if err := w.watcher.Close(); err != nil {
		w.logger.Error("content watcher close failed", "error", err)
	}
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != w.dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(p)
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 3)
	defer ticker.Stop()

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

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("content watcher error", "error", err)

		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// New directories need their own watch
	if event.Op&fsnotify.Create != 0 && filepath.Ext(event.Name) != ".md" {
		if err := w.addTree(event.Name); err != nil {
			w.logger.Debug("content watcher could not add path", "path", event.Name, "error", err)
		}
	}

	if filepath.Ext(event.Name) != ".md" && event.Op&(fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.logger.Debug("content change", "path", event.Name, "op", event.Op.String())
	w.pending = true
	w.lastEvent = time.Now()
}

func (w *Watcher) flush(ctx context.Context) {
	if !w.pending || time.Since(w.lastEvent) < w.debounce {
		return
	}
	w.pending = false
	w.onChange(ctx)
}
