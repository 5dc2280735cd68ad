package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the database must stay quiet before the
// callback runs.
const DefaultDebounce = 2 * time.Second

// Options tunes a Watcher.
type Options struct {
	// Debounce defaults to DefaultDebounce when zero.
	Debounce time.Duration
	// LockFile, when set, delays the callback while the file exists.
	LockFile string
}

// Watcher watches one directory and calls back after it settles.
type Watcher struct {
	dir    string
	opts   Options
	logger *log.Logger
}

// New creates a Watcher for dir. A nil logger falls back to log.Default().
func New(dir string, opts Options, logger *log.Logger) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{dir: dir, opts: opts, logger: logger}
}

// Run blocks until ctx is done, calling onChange each time the directory
// changes and then stays quiet for the debounce period. Callbacks run on
// the calling goroutine, one at a time. An error from onChange or from the
// underlying watcher ends Run; cancelling ctx ends it with nil.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.logger.Debug("watching", "dir", w.dir, "debounce", w.opts.Debounce)

	timer := time.NewTimer(w.opts.Debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("package database changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.opts.Debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			return fmt.Errorf("watch %s: %w", w.dir, err)

		case <-timer.C:
			if w.locked() {
				w.logger.Debug("package database locked, waiting", "lock", w.opts.LockFile)
				timer.Reset(w.opts.Debounce)
				continue
			}
			if err := onChange(ctx); err != nil {
				return err
			}
		}
	}
}

func (w *Watcher) locked() bool {
	if w.opts.LockFile == "" {
		return false
	}
	_, err := os.Stat(w.opts.LockFile)
	return err == nil
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Write)
}
