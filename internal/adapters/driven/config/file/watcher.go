package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/lexi/internal/core/ports/driven"
	"github.com/custodia-labs/lexi/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.ConfigWatcher = (*Watcher)(nil)

// debounceInterval coalesces bursts of events from editors that write a file
// in several steps.
const debounceInterval = 150 * time.Millisecond

// Watcher reports changes to a single configuration file.
type Watcher struct {
	path string
}

// NewWatcher creates a watcher for the file at path.
func NewWatcher(path string) *Watcher {
	return &Watcher{path: path}
}

// Watch returns a channel that receives a value after the file is written,
// created, replaced or removed. The directory is watched rather than the
// file so atomic renames are seen. The channel is closed when ctx is done.
func (w *Watcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close() //nolint:errcheck,gosec // already returning an error
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	out := make(chan struct{}, 1)
	go w.loop(ctx, fw, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher, out chan<- struct{}) {
	defer close(out)
	defer fw.Close() //nolint:errcheck

	target := filepath.Clean(w.path)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target || !isRelevant(event.Op) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceInterval)
			} else {
				timer.Reset(debounceInterval)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			logger.Debug("config: %s changed", w.path)
			select {
			case out <- struct{}{}:
			default:
				// A notification is already pending.
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}

func isRelevant(op fsnotify.Op) bool {
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) ||
		op.Has(fsnotify.Rename) || op.Has(fsnotify.Remove)
}
