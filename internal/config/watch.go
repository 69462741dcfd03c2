package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	themeerr "github.com/kyleking/lazytheme/internal/errors"
	"github.com/kyleking/lazytheme/internal/logging"
)

// reloadDelay coalesces the burst of events an editor save produces.
const reloadDelay = 100 * time.Millisecond

// Reload is the outcome of re-reading the config file.
type Reload struct {
	Config *Config
	Err    error
}

// Watcher re-reads the config file whenever it changes on disk.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	updates  chan Reload
	stopCh   chan struct{}
	stopOnce sync.Once
	logger   *slog.Logger
}

// Watch starts watching path. The parent directory is watched so that
// editors which save by rename are seen too; it must exist.
func Watch(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	path = filepath.Clean(path)
	if err := fs.Add(filepath.Dir(path)); err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:    path,
		fs:      fs,
		updates: make(chan Reload, 1),
		stopCh:  make(chan struct{}),
		logger:  logger,
	}
	go w.loop()

	return w, nil
}

// Updates delivers one Reload per settled change. It closes after Stop.
func (w *Watcher) Updates() <-chan Reload {
	return w.updates
}

// Stop ends the watch.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.fs.Close()
	})
}

func (w *Watcher) loop() {
	defer close(w.updates)

	timer := time.NewTimer(reloadDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(reloadDelay)

		case <-timer.C:
			cfg, err := LoadFrom(w.path)
			if err != nil {
				w.logger.Warn("config reload failed", "path", w.path, "error", err)
			} else {
				w.logger.Info("config reloaded", "path", w.path)
			}
			w.send(Reload{Config: cfg, Err: err})

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) send(r Reload) {
	select {
	case w.updates <- r:
	default:
		w.logger.Warn("config reload dropped", "error", &themeerr.ChannelFullError{Channel: "config reloads"})
	}
}
