// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

// Package watch invokes a callback when watched description files change,
// coalescing bursts of filesystem events into a single invocation.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/specforge/specforge/internal/scanner"
)

// changeOps are the event kinds that count as a change. Chmod-only events
// are noise from editors and backup tools.
const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// DefaultDebounce is used when no debounce interval is configured.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches files and directories for changes. File paths are watched
// through their parent directory so the watch survives editors that replace
// files on save; directory paths react to any document file beneath them.
type Watcher struct {
	debounce time.Duration
	onChange func(paths []string)
	logf     func(format string, args ...interface{})

	files   map[string]bool
	roots   []string
	ignore  map[string]bool
	include []string
	exclude []string
	dirs    []string
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogf sets the log output callback.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(w *Watcher) {
		w.logf = logf
	}
}

// WithIgnore excludes paths from triggering the callback: a file path
// excludes that file, and everything beneath the path is excluded too, so
// an output directory inside the watched tree does not retrigger the very
// run that wrote it.
func WithIgnore(paths ...string) Option {
	return func(w *Watcher) {
		for _, p := range paths {
			if abs, err := filepath.Abs(p); err == nil {
				w.ignore[abs] = true
			}
		}
	}
}

// WithPatterns restricts which files under watched directories trigger the
// callback. Patterns are doublestar globs matched against the path relative
// to the watched directory; an empty include list admits every document
// file. Watched file paths are unaffected.
func WithPatterns(include, exclude []string) Option {
	return func(w *Watcher) {
		w.include = append(w.include, include...)
		w.exclude = append(w.exclude, exclude...)
	}
}

// New creates a watcher over the given paths. Each path must exist: a file
// path reacts to changes of that file only, a directory path to changes of
// any document file in its tree.
func New(paths []string, debounce time.Duration, onChange func(paths []string), opts ...Option) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("watch: no paths given")
	}
	if onChange == nil {
		return nil, errors.New("watch: no change callback given")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		debounce: debounce,
		onChange: onChange,
		logf:     func(string, ...interface{}) {},
		files:    make(map[string]bool),
		ignore:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(w)
	}

	seen := make(map[string]bool)
	addDir := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}

	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("cannot watch %s: %w", path, err)
		}

		if !info.IsDir() {
			w.files[abs] = true
			addDir(filepath.Dir(abs))
			continue
		}

		w.roots = append(w.roots, abs)
		err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if !d.IsDir() {
				return nil
			}
			// Hidden trees like .git produce event storms.
			if p != abs && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			addDir(p)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", path, err)
		}
	}

	return w, nil
}

// Run watches until the context is cancelled. Changes are debounced: the
// callback fires once per quiet period with the sorted batch of changed
// paths. Run returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer fw.Close()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]bool)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.accepts(event) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			w.logf("change detected: %s", abs)
			pending[abs] = true
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			pending = make(map[string]bool)
			timer = nil
			timerC = nil
			w.onChange(changed)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logf("watch error: %v", err)
		}
	}
}

// accepts decides whether an event should trigger the callback.
func (w *Watcher) accepts(event fsnotify.Event) bool {
	if event.Op&changeOps == 0 {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	if w.ignored(abs) {
		return false
	}
	if w.files[abs] {
		return true
	}
	for _, root := range w.roots {
		if !strings.HasPrefix(abs, root+string(filepath.Separator)) {
			continue
		}
		if !scanner.IsDocumentFile(abs) {
			continue
		}
		rel := filepath.ToSlash(strings.TrimPrefix(abs, root+string(filepath.Separator)))
		if matchesAny(rel, w.exclude) {
			continue
		}
		if len(w.include) > 0 && !matchesAny(rel, w.include) {
			continue
		}
		return true
	}
	return false
}

// ignored reports whether abs is an ignored path or sits under one.
func (w *Watcher) ignored(abs string) bool {
	if w.ignore[abs] {
		return true
	}
	for p := range w.ignore {
		if strings.HasPrefix(abs, p+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func matchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}
