// Package watch reports changed source files under a directory tree.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"loglens/internal/driver"
	"loglens/internal/syntax"
	"loglens/internal/trace"
)

// DefaultDebounce collapses the burst of events an editor emits on save.
const DefaultDebounce = 200 * time.Millisecond

// ErrorFunc receives watcher errors. Watching continues afterwards.
type ErrorFunc func(err error)

// Watcher watches a directory tree for changes to supported files.
type Watcher struct {
	root     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	onError  ErrorFunc
}

// Options configures a Watcher.
type Options struct {
	Debounce time.Duration
	OnError  ErrorFunc
}

// New creates a Watcher rooted at dir and registers every directory
// below it except the ones the driver skips.
func New(dir string, opts Options) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New(dir + " is not a directory")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		root:     dir,
		debounce: opts.Debounce,
		watcher:  fw,
		onError:  opts.OnError,
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if err := w.addRecursive(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}
	return w, nil
}

// Root returns the watched directory.
func (w *Watcher) Root() string { return w.root }

// Close releases the underlying watcher.
func (w *Watcher) Close() error { return w.watcher.Close() }

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && driver.SkipDir(d.Name()) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

// Run delivers batches of changed files to fn until ctx ends. Each batch
// is sorted and holds every supported file written or created during one
// debounce window. New directories are watched as they appear.
func (w *Watcher) Run(ctx context.Context, fn func(paths []string)) error {
	tracer := trace.FromContext(ctx)

	timer := time.NewTimer(0)
	<-timer.C
	defer timer.Stop()

	pending := make(map[string]struct{})
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !driver.SkipDir(info.Name()) {
						if err := w.addRecursive(event.Name); err != nil {
							w.report(tracer, err)
						}
					}
					continue
				}
			}
			if !syntax.Supported(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := make([]string, 0, len(pending))
			for p := range pending {
				batch = append(batch, p)
			}
			sort.Strings(batch)
			pending = make(map[string]struct{})
			trace.Point(tracer, trace.ScopeDriver, "watch_batch", filepath.Base(batch[0]), 0)
			fn(batch)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.report(tracer, err)
		}
	}
}

func (w *Watcher) report(tracer trace.Tracer, err error) {
	trace.Error(tracer, trace.ScopeDriver, "watch", err)
	if w.onError != nil {
		w.onError(err)
	}
}
