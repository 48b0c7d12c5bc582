// Package watch re-runs assembly when an asset tree changes on disk.
// Filesystem events are debounced so editor write-and-rename bursts
// coalesce into one run, and generated layer files are ignored so a run's
// own output never retriggers it.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/usdassemble/cli/internal/output"
)

// defaultDebounce is the quiet period after the last filesystem event
// before the callback fires.
const defaultDebounce = 500 * time.Millisecond

// defaultIgnores excludes generated layers, temp files and VCS metadata.
// Without the layer patterns every assembly run would trigger the next.
var defaultIgnores = []string{
	"**/*.usda",
	"**/*.mtlx",
	"**/*.tmp",
	"**/.git/**",
	"**/.DS_Store",
	"**/*~",
	"**/*.swp",
}

// Config holds the parameters for a Watcher.
type Config struct {
	// BaseDir is the asset tree root to watch.
	BaseDir string

	// Ignore are additional doublestar glob patterns merged with the
	// built-in ignores.
	Ignore []string

	// Debounce overrides the quiet period; zero or negative keeps the
	// default.
	Debounce time.Duration

	// OnChange runs after the debounce window closes with the deduplicated
	// changed paths relative to BaseDir.
	OnChange func(ctx context.Context, changed []string) error
}

// Watcher monitors an asset tree and fires a debounced callback on
// change. Run must be called exactly once.
type Watcher struct {
	cfg      Config
	fsw      *fsnotify.Watcher
	ignores  []string
	debounce time.Duration
	baseDir  string
	started  atomic.Bool
}

// New creates a Watcher over cfg.BaseDir and registers every non-ignored
// directory under it.
func New(cfg Config) (*Watcher, error) {
	absBase, err := filepath.Abs(cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("resolving watch root: %w", err)
	}

	for _, pat := range cfg.Ignore {
		if _, err := doublestar.Match(pat, ""); err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pat, err)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating filesystem watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		ignores:  append(append([]string(nil), defaultIgnores...), cfg.Ignore...),
		debounce: debounce,
		baseDir:  absBase,
	}

	if err := w.addDirectories(); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Run blocks until ctx is cancelled, dispatching debounced callbacks. A
// clean cancellation returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return fmt.Errorf("watcher already running")
	}
	defer w.fsw.Close()

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		running atomic.Bool
	)

	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			// Previous run still in progress; keep the pending set and
			// retry after another quiet period.
			mu.Lock()
			if timer != nil {
				timer.Reset(w.debounce)
			}
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		if len(pending) == 0 {
			mu.Unlock()
			return
		}
		changed := make([]string, 0, len(pending))
		for p := range pending {
			changed = append(changed, p)
		}
		clear(pending)
		mu.Unlock()

		if w.cfg.OnChange == nil {
			return
		}
		if err := w.cfg.OnChange(ctx, changed); err != nil {
			output.Error("re-run failed", "error", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch event channel closed unexpectedly")
			}

			rel, err := filepath.Rel(w.baseDir, evt.Name)
			if err != nil {
				rel = evt.Name
			}
			if w.isIgnored(rel) {
				continue
			}

			// Directories created after startup join the watch so new
			// components are picked up without a restart.
			if evt.Has(fsnotify.Create) {
				w.maybeAddDir(evt.Name)
			}

			mu.Lock()
			pending[rel] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch error channel closed unexpectedly")
			}
			output.Warn("watch error", "error", err)
		}
	}
}

// addDirectories walks the tree and registers every non-ignored directory.
func (w *Watcher) addDirectories() error {
	return filepath.WalkDir(w.baseDir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			output.Warn("skipping unwatchable path", "path", path, "error", walkErr)
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(w.baseDir, path)
		if err != nil {
			return nil
		}
		if rel != "." && w.isIgnored(rel) {
			return filepath.SkipDir
		}

		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

// maybeAddDir registers a newly created directory.
func (w *Watcher) maybeAddDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	rel, err := filepath.Rel(w.baseDir, path)
	if err != nil || w.isIgnored(rel) {
		return
	}
	if err := w.fsw.Add(path); err != nil {
		output.Warn("could not watch new directory", "path", path, "error", err)
	}
}

// isIgnored reports whether a base-relative path matches any ignore
// pattern.
func (w *Watcher) isIgnored(rel string) bool {
	normalized := filepath.ToSlash(rel)
	for _, pat := range w.ignores {
		if matched, err := doublestar.Match(pat, normalized); err == nil && matched {
			return true
		}
	}
	return false
}
