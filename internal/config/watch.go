package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a tuning file whenever it is written.
//
// The parent directory is watched rather than the file so that editors
// which save by rename keep triggering reloads.
type Watcher struct {
	fs      *fsnotify.Watcher
	path    string
	updates chan Tuning
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path. Reloaded tuning arrives on Updates; only the
// most recent unread value is kept.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w := &Watcher{
		fs:      fsw,
		path:    abs,
		updates: make(chan Tuning, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Updates delivers successfully reloaded tuning.
func (w *Watcher) Updates() <-chan Tuning { return w.updates }

// Errors delivers read, parse and validation failures.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := LoadFile(w.path)
			if err != nil {
				w.sendErr(err)
				continue
			}
			w.sendUpdate(cfg)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.sendErr(fmt.Errorf("config: watcher: %w", err))
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) sendUpdate(cfg Tuning) {
	// Drop a stale value so the reader always sees the latest file.
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg:
	default:
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
