package dictfile

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher calls back when the dictionary file changes on disk.
// The parent directory is watched because editors and WriteFile replace the
// file by rename, which drops a watch placed on the file itself.
type Watcher struct {
	log      *slog.Logger
	fw       *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// NewWatcher creates a file watcher. Events for the same file arriving
// within debounce are collapsed into one callback fired after the last one.
func NewWatcher(logger *slog.Logger, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	return &Watcher{
		log:      logger.With("component", "dictionary_watcher"),
		fw:       fw,
		debounce: debounce,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts monitoring path. onChange runs on the watcher goroutine.
func (w *Watcher) Watch(path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.fw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	fire := make(chan struct{}, 1)
	var timer *time.Timer

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.AfterFunc(w.debounce, func() {
						select {
						case fire <- struct{}{}:
						default:
						}
					})
				} else {
					timer.Reset(w.debounce)
				}

			case <-fire:
				w.log.Debug("dictionary file changed", slog.String("path", absPath))
				onChange()

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				w.log.Warn("watcher error", slog.String("error", err.Error()))

			case <-w.done:
				if timer != nil {
					timer.Stop()
				}
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
