// Package watcher reports edits to the configuration documents made outside
// the panel. The recorder that consumes the documents lives in a separate
// process, so files can change on disk at any time; the panel only logs it.
package watcher

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"radiopanel/internal/constants"
	"radiopanel/internal/logger"
)

type Watcher struct {
	fs   *fsnotify.Watcher
	log  *logger.Logger
	done chan struct{}
}

// New starts watching dir for changes to .json documents. The directory must
// already exist.
func New(dir string, log *logger.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, err
	}

	w := &Watcher{
		fs:   fs,
		log:  log.WithComponent("watcher"),
		done: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	// Editors and the panel both produce bursts of events per save; collect
	// names and log once per burst.
	pending := make(map[string]struct{})
	var flush <-chan time.Time

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}
			pending[filepath.Base(event.Name)] = struct{}{}
			flush = time.After(constants.WatchDebounce)

		case <-flush:
			for name := range pending {
				w.log.Info("Configuration document changed on disk", "document", name)
			}
			pending = make(map[string]struct{})
			flush = nil

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("Watch error", "error", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
