package catalog

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hupe1980/idkey/model"
	"golang.org/x/time/rate"
)

// Watcher reloads a catalog file whenever it changes on disk.
type Watcher struct {
	path     string
	source   Source
	onChange func(*model.Catalog, error)
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithMinReloadInterval limits how often the file is reloaded. Defaults to 250ms.
func WithMinReloadInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithWatcherLogger sets the logger.
func WithWatcherLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWatcher watches path. onChange receives the result of every reload,
// including the initial load.
func NewWatcher(path string, onChange func(*model.Catalog, error), optFns []Option, wopts ...WatcherOption) *Watcher {
	path = filepath.Clean(path)
	w := &Watcher{
		path:     path,
		source:   NewFileSource(path, optFns...),
		onChange: onChange,
		limiter:  rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
		logger:   slog.Default(),
	}
	for _, fn := range wopts {
		fn(w)
	}
	return w
}

// Run loads the catalog once and then on every change until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	// Watching the directory also catches editors that replace the file.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	w.reload(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := w.limiter.Wait(ctx); err != nil {
				return ctx.Err()
			}
			w.logger.Debug("Catalog changed", "path", w.path, "op", event.Op.String())
			w.reload(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "path", w.path, "error", err)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	cat, err := w.source.Fetch(ctx)
	if err != nil {
		w.logger.Warn("Catalog reload failed", "path", w.path, "error", err)
	}
	w.onChange(cat, err)
}
