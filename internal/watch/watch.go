// Package watch reports external modifications of the source file so the UI
// can offer a reload.
package watch

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"csvgrip/internal/domain"
	"csvgrip/internal/eventbus"
)

// Service watches one file and publishes FileChangedEvent on writes. The
// parent directory is watched rather than the file itself, so editors that
// replace the file (rename+create) are still seen.
type Service struct {
	bus     eventbus.EventBus
	path    string
	watcher *fsnotify.Watcher
}

// New starts watching the file's directory.
func New(bus eventbus.EventBus, path string) (*Service, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}

	s := &Service{bus: bus, path: abs, watcher: w}
	go s.run()
	return s, nil
}

func (s *Service) run() {
	for {
		select {
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != s.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				s.bus.Publish(domain.FileChangedEvent{Path: s.path})
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		}
	}
}

// Close stops the watcher.
func (s *Service) Close() error {
	return s.watcher.Close()
}
