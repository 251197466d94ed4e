// Package watcher reports changes to manifest files.
package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	domainerrors "github.com/sehnryr/cargo-component/domain/errors"
)

// watcherConfig holds configuration for the Watcher.
type watcherConfig struct {
	debounce time.Duration
	logger   *slog.Logger
}

func defaultWatcherConfig() watcherConfig {
	return watcherConfig{
		debounce: 100 * time.Millisecond,
		logger:   slog.Default(),
	}
}

// Option configures a Watcher.
type Option func(*watcherConfig)

// WithDebounce sets how long the files must stay quiet before a change is
// reported. Default is 100ms.
func WithDebounce(d time.Duration) Option {
	return func(c *watcherConfig) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *watcherConfig) {
		c.logger = logger
	}
}

// Watcher watches a fixed set of files.
//
// The parent directory of each file is watched rather than the file itself,
// so a file replaced by an editor's rename is still followed.
type Watcher struct {
	config  watcherConfig
	watcher *fsnotify.Watcher
	paths   map[string]struct{}
}

// New starts watching paths.
func New(paths []string, opts ...Option) (*Watcher, error) {
	cfg := defaultWatcherConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &domainerrors.FilesystemError{Op: "create watcher", Err: err}
	}

	w := &Watcher{
		config:  cfg,
		watcher: fsw,
		paths:   make(map[string]struct{}, len(paths)),
	}

	dirs := make(map[string]struct{})
	for _, path := range paths {
		path = filepath.Clean(path)
		w.paths[path] = struct{}{}

		dir := filepath.Dir(path)
		if _, ok := dirs[dir]; ok {
			continue
		}
		dirs[dir] = struct{}{}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, &domainerrors.FilesystemError{Op: "watch", Path: dir, Err: err}
		}
	}
	return w, nil
}

// Run reports changed files to onChange until ctx is done or the watcher is
// closed. Changes within the debounce window are batched into one sorted call.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	pending := make(map[string]struct{})
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.config.logger.Debug("manifest changed", "path", ev.Name, "op", ev.Op.String())

			pending[filepath.Clean(ev.Name)] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.config.debounce)
			} else {
				timer.Reset(w.config.debounce)
			}
			timerC = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.config.logger.Warn("watcher error", "error", err)

		case <-timerC:
			timerC = nil
			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			clear(pending)
			sort.Strings(changed)
			onChange(changed)
		}
	}
}

// Close stops watching. Run returns once its event channels close.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	_, ok := w.paths[filepath.Clean(ev.Name)]
	return ok
}
