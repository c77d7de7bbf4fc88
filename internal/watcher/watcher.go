// Package watcher emits debounced change events for workspace metadata so
// callers can invalidate and re-resolve the workspace model when the
// structure on disk changes.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

type ChangeEvent struct {
	Path      string
	Timestamp time.Time
}

type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debounce  time.Duration
}

func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsw,
		debounce:  debounce,
	}, nil
}

// AddRecursive adds a directory and all subdirectories, descending into
// .xcworkspace and .xcodeproj bundles (that is where the interesting files
// live) while skipping build output and dependency checkouts.
func (w *Watcher) AddRecursive(root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	return filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}

		if info.IsDir() {
			base := filepath.Base(path)

			if strings.HasPrefix(base, ".") ||
				base == "DerivedData" ||
				base == "build" ||
				base == "Carthage" {
				return filepath.SkipDir
			}

			if err := w.fsWatcher.Add(path); err != nil {
				// Log but continue - some directories may not be watchable
				return nil
			}
		}
		return nil
	})
}

// Watch returns a channel that emits debounced change events.
func (w *Watcher) Watch(ctx context.Context) <-chan ChangeEvent {
	out := make(chan ChangeEvent)

	go func() {
		defer close(out)

		var mu sync.Mutex
		var pending *time.Timer
		var lastPath string

		for {
			select {
			case <-ctx.Done():
				if pending != nil {
					pending.Stop()
				}
				return

			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}

				if !w.shouldWatch(event.Name) {
					continue
				}

				// Watch for write, create, rename (atomic saves), chmod (some editors)
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Chmod) == 0 {
					continue
				}

				mu.Lock()
				lastPath = event.Name

				if pending != nil {
					pending.Stop()
				}

				pending = time.AfterFunc(w.debounce, func() {
					mu.Lock()
					p := lastPath
					mu.Unlock()

					select {
					case out <- ChangeEvent{Path: p, Timestamp: time.Now()}:
					case <-ctx.Done():
					}
				})
				mu.Unlock()

			case _, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out
}

// shouldWatch accepts only the files that shape the workspace model: the
// workspace document, project object graphs, and scheme files.
func (w *Watcher) shouldWatch(path string) bool {
	base := filepath.Base(path)
	return base == "contents.xcworkspacedata" ||
		base == "project.pbxproj" ||
		strings.HasSuffix(base, ".xcscheme")
}

func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
