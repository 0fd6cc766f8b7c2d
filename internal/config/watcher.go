package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/young1lin/colorwell/internal/logging"
)

// debounce coalesces the burst of events editors produce for one save
const debounce = 100 * time.Millisecond

// WatcherInterface defines the interface for config watchers
type WatcherInterface interface {
	Configs() <-chan *Config
	Errors() <-chan error
	Close() error
}

// Watcher reloads a config file whenever it changes on disk
type Watcher struct {
	watcher    *fsnotify.Watcher
	filePath   string
	configChan chan *Config
	errorChan  chan error
	done       chan struct{}
	closeOnce  sync.Once
}

// Watch starts watching the config file at path. Only successfully loaded
// configurations are delivered on Configs; load failures go to Errors and the
// previous configuration stays in effect for the caller.
func Watch(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	filePath := filepath.Clean(path)

	// Watch the directory so atomic saves (write temp file, rename) are seen
	if err := fsWatcher.Add(filepath.Dir(filePath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:    fsWatcher,
		filePath:   filePath,
		configChan: make(chan *Config, 1),
		errorChan:  make(chan error, 1),
		done:       make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

// watch runs the file watching loop
func (w *Watcher) watch() {
	defer close(w.configChan)
	defer close(w.errorChan)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.filePath)
	if err != nil {
		logging.Logger().Warn("config reload failed", "path", w.filePath, "error", err)
		w.sendError(err)
		return
	}
	logging.Logger().Info("config reloaded", "path", w.filePath)
	select {
	case w.configChan <- cfg:
	case <-w.done:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errorChan <- err:
	case <-w.done:
	}
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.filePath
}

// Configs returns a channel of configurations loaded after each change
func (w *Watcher) Configs() <-chan *Config {
	return w.configChan
}

// Errors returns a channel of load and watch errors
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching the file
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
