// Package watch re-runs generation when resource files change. Events are
// debounced so editor save bursts trigger one regeneration.
package watch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher monitors the configured resource roots and invokes onChange with
// the batch of changed paths.
type Watcher struct {
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	roots     []string
	ignored   []string
	onChange  func([]string) error
	logger    *zap.Logger
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

// New creates a watcher over the given resource roots. A nil logger
// disables tracing.
func New(roots, ignored []string, logger *zap.Logger, onChange func([]string) error) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Watcher{
		watcher:   fsw,
		debouncer: newDebouncer(200 * time.Millisecond),
		roots:     roots,
		ignored:   ignored,
		onChange:  onChange,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}
	w.debouncer.callback = func(files []string) {
		if err := w.onChange(files); err != nil {
			w.logger.Warn("regeneration failed", zap.Error(err))
		}
	}
	return w, nil
}

// Start registers every directory under the roots and begins watching.
func (w *Watcher) Start() error {
	for _, root := range w.roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return fs.SkipDir
			}
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
			w.logger.Debug("watching directory", zap.String("dir", path))
			return nil
		})
		if err != nil {
			return err
		}
	}

	w.wg.Add(1)
	go w.loop()
	return nil
}

// Stop halts the watcher. Safe to call more than once.
func (w *Watcher) Stop() error {
	select {
	case <-w.stopChan:
		return nil
	default:
		close(w.stopChan)
	}
	w.wg.Wait()
	w.debouncer.stop()
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.shouldIgnore(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.logger.Debug("resource changed", zap.String("path", event.Name))
				w.debouncer.add(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) shouldIgnore(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.Contains(base, ".tmp-") {
		return true
	}
	for _, pattern := range w.ignored {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

// debouncer coalesces change events into one callback per quiet period.
type debouncer struct {
	duration time.Duration
	timer    *time.Timer
	files    map[string]struct{}
	mutex    sync.Mutex
	callback func([]string)
}

func newDebouncer(duration time.Duration) *debouncer {
	return &debouncer{
		duration: duration,
		files:    make(map[string]struct{}),
	}
}

func (d *debouncer) add(file string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.files[file] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, d.flush)
}

func (d *debouncer) flush() {
	d.mutex.Lock()
	if len(d.files) == 0 {
		d.mutex.Unlock()
		return
	}
	files := make([]string, 0, len(d.files))
	for f := range d.files {
		files = append(files, f)
	}
	d.files = make(map[string]struct{})
	cb := d.callback
	d.mutex.Unlock()

	if cb != nil {
		cb(files)
	}
}

func (d *debouncer) stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
