package dataset

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// OnError sets a callback for reload failures. Without it, failed
// reloads are dropped and the last good dataset stays in effect.
func OnError(fn func(error)) WatchOption {
	return func(w *Watcher) { w.onError = fn }
}

// Watcher reloads a YAML dataset file whenever it changes on disk.
type Watcher struct {
	path    string
	fw      *fsnotify.Watcher
	onLoad  func(*Dataset)
	onError func(error)
	wg      sync.WaitGroup
}

// Watch loads the YAML dataset file at path, delivers it to onLoad, and
// keeps delivering fresh datasets on every change until Close. The
// initial load error is returned directly; later reload failures go to
// the OnError callback.
//
// onLoad runs on the watcher's goroutine; consecutive calls never
// overlap.
func Watch(path string, onLoad func(*Dataset), opts ...WatchOption) (*Watcher, error) {
	d, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	// Watch the directory, not the file: editors and atomic writers
	// replace the file, which would silently detach a file watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("dataset: %w", err)
	}

	w := &Watcher{path: path, fw: fw, onLoad: onLoad}
	for _, opt := range opts {
		opt(w)
	}

	onLoad(d)
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit. No
// onLoad or OnError callback runs after Close returns.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			d, err := LoadFile(w.path)
			if err != nil {
				if w.onError != nil {
					w.onError(err)
				}
				continue
			}
			w.onLoad(d)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}
