// Package watch re-runs configuration resolution when local wedding-data
// documents change, so edits show up without restarting the server.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceWindow = 200 * time.Millisecond

// Watcher observes a data directory and invokes onChange, debounced, when a
// wedding-data document is created, written, renamed, or removed.
type Watcher struct {
	dir      string
	onChange func()
	logger   *zap.Logger
}

// New builds a watcher over dir.
func New(dir string, logger *zap.Logger, onChange func()) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{dir: dir, onChange: onChange, logger: logger}
}

// Run blocks until ctx is done, dispatching debounced change notifications.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return err
	}

	// The timer is armed on the first relevant event and pushed back by each
	// follow-up, so editor save bursts collapse into one resolution.
	timer := time.NewTimer(debounceWindow)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !isDataDocument(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.logger.Debug("data document changed", zap.String("path", event.Name))
			resetDebounce(timer, debounceWindow)

		case <-timer.C:
			w.onChange()

		case werr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(werr))
		}
	}
}

// resetDebounce pushes the timer back by d. The timer may already have fired
// with its tick unread; that tick must be drained before Reset, or the next
// receive returns it immediately and the callback runs ahead of the window.
func resetDebounce(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
}

func isDataDocument(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, "wedding-data") && strings.HasSuffix(name, ".json")
}
