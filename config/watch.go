package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"safety-board/log"
)

// StoreWatcher reports changes to a FileStore made by any process, this one
// included. Bursts of events collapse into one pending notification.
type StoreWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	changed chan struct{}
	done    chan struct{}
}

// Watch starts watching the store file. The directory is created if needed
// since the file itself may not exist yet.
func (s *FileStore) Watch() (*StoreWatcher, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	// Writes replace the file by rename, so the directory is watched.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch store directory: %w", err)
	}

	w := &StoreWatcher{
		path:    filepath.Clean(s.path),
		watcher: watcher,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

// Changed receives a value after the store file was written, replaced or
// removed. It is closed when the watcher stops.
func (w *StoreWatcher) Changed() <-chan struct{} {
	return w.changed
}

// Close stops the watcher.
func (w *StoreWatcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *StoreWatcher) watch() {
	defer close(w.done)
	defer close(w.changed)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.notify()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.WarningLog.Printf("store watcher error: %v", err)
		}
	}
}

func (w *StoreWatcher) notify() {
	select {
	case w.changed <- struct{}{}:
	default:
	}
}
