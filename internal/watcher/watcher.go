// Package watcher signals when a repository's ref storage changes on
// disk, so browsers can reload their items while the interface is open.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses bursts of ref updates (a fetch touches many files)
// into a single refresh signal.
const debounce = 250 * time.Millisecond

// Watcher emits a signal on Events whenever the watched directory tree
// changes.
type Watcher struct {
	fw     *fsnotify.Watcher
	events chan struct{}
}

// New watches dir and its immediate subdirectories. A missing dir is
// not an error: the node may not have replicated the repo yet, and the
// watcher simply stays quiet.
func New(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{fw: fw, events: make(chan struct{}, 1)}

	if _, err := os.Stat(dir); err == nil {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
		// fsnotify is not recursive; one level down covers the
		// per-remote ref directories.
		entries, _ := os.ReadDir(dir)
		for _, entry := range entries {
			if entry.IsDir() {
				_ = fw.Add(filepath.Join(dir, entry.Name()))
			}
		}
	}

	return w, nil
}

// Events delivers at most one signal per debounce window.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Run pumps filesystem events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			// New subdirectories appear when a new remote is
			// tracked; watch them too.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.fw.Add(event.Name)
				}
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				timer.Reset(debounce)
			}
		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.events <- struct{}{}:
			default:
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
