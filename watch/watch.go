// Package watch re-renders design documents when their input files change.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config configures the input-file watcher
type Config struct {
	// Paths are the input files to watch
	Paths []string

	// DebounceDelay is how long to wait for more changes before emitting
	DebounceDelay time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// Watcher watches design input files and emits their paths when they change.
// Editors commonly replace files on save, so directory-level watches catch
// create and rename as well as plain writes.
type Watcher struct {
	config  Config
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// watched maps cleaned absolute paths back to the caller's paths
	watched map[string]string

	// Debouncing: collect changes before emitting
	pendingMu sync.Mutex
	pending   map[string]struct{}

	// Output channel
	events chan string
}

// New creates a watcher for the configured input files.
func New(config Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if config.DebounceDelay == 0 {
		config.DebounceDelay = 200 * time.Millisecond
	}

	watched := make(map[string]string, len(config.Paths))
	for _, path := range config.Paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		watched[abs] = path
	}

	return &Watcher{
		config:  config,
		watcher: fsw,
		logger:  logger,
		watched: watched,
		pending: make(map[string]struct{}),
		events:  make(chan string, 16),
	}, nil
}

// Events returns the channel of changed input-file paths
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Start begins watching the parent directories of the input files
func (w *Watcher) Start(ctx context.Context) error {
	dirs := make(map[string]struct{})
	for abs := range w.watched {
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		w.logger.Debug("Watching directory", "path", dir)
	}

	go w.processEvents(ctx)

	w.logger.Info("Input watcher started",
		"files", len(w.watched),
		"debounce", w.config.DebounceDelay)

	return nil
}

// Stop stops the watcher. The events channel is left open so a late flush
// can never send on a closed channel.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing
func (w *Watcher) processEvents(ctx context.Context) {
	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// handleFSEvent records a change to one of the watched files
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}

	path, ok := w.watched[abs]
	if !ok {
		return
	}

	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = struct{}{}
	w.pendingMu.Unlock()

	w.logger.Debug("Input change detected",
		"path", path,
		"op", event.Op.String())
}

// flushPending emits accumulated changes
func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	toEmit := make([]string, 0, len(w.pending))
	for path := range w.pending {
		toEmit = append(toEmit, path)
	}
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	for _, path := range toEmit {
		select {
		case w.events <- path:
		default:
			w.logger.Warn("Event channel full, dropping event", "path", path)
		}
	}
}
