package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a configuration file whenever it changes on disk and hands
// the parsed result to a callback. Files that fail validation after a change
// are logged and skipped; the previous configuration stays active.
type Watcher struct {
	fw       *fsnotify.Watcher
	onReload func(*Config)
	path     string
	done     chan struct{}
}

// NewWatcher creates a [Watcher] for the config file at path. The parent
// directory is watched rather than the file itself, since editors commonly
// replace the file on save.
func NewWatcher(path string, onReload func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	err = fw.Add(filepath.Dir(path))
	if err != nil {
		_ = fw.Close()

		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		fw:       fw,
		path:     path,
		onReload: onReload,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.loop()
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)

	return w.fw.Close() //nolint:wrapcheck // Return the original error.
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			w.reload()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}

			slog.Warn("config watch error", slog.Any("err", err))
		}
	}
}

func (w *Watcher) reload() {
	cl, err := NewLoaderFromFile(w.path)
	if err != nil {
		slog.Warn("reload config", slog.String("path", w.path), slog.Any("err", err))

		return
	}

	err = cl.Validate()
	if err != nil {
		slog.Warn("reloaded config is invalid, keeping previous",
			slog.String("path", w.path), slog.Any("err", err))

		return
	}

	cfg, err := cl.Load()
	if err != nil {
		slog.Warn("reloaded config is invalid, keeping previous",
			slog.String("path", w.path), slog.Any("err", err))

		return
	}

	slog.Debug("config reloaded", slog.String("path", w.path))
	w.onReload(cfg)
}
