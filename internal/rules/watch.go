package rules

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the ruleset when its file changes on disk.
// An invalid edit keeps the previous ruleset: swap-on-valid only.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onReload func(*Ruleset, string)
	onError  func(error)
}

// NewWatcher creates a file watcher for the ruleset at path.
// onReload receives the new ruleset and its hash after a valid reload.
// onError receives validation or watcher errors; it may be nil.
func NewWatcher(path string, onReload func(*Ruleset, string), onError func(error)) (*Watcher, error) {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("rules: watch %q: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("rules: create file watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("rules: watch %q: %w", path, err)
	}

	return &Watcher{
		watcher:  watcher,
		path:     path,
		onReload: onReload,
		onError:  onError,
	}, nil
}

// Run watches for file changes and reloads. Blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	// Debounce: wait 500ms after the last write before reloading.
	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(500*time.Millisecond, w.reload)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.fail(err)
		}
	}
}

func (w *Watcher) reload() {
	rs, hash, err := LoadWithHash(w.path)
	if err != nil {
		w.fail(fmt.Errorf("rules: hot-reload failed, keeping previous ruleset: %w", err))
		return
	}
	w.onReload(rs, hash)
}

func (w *Watcher) fail(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
