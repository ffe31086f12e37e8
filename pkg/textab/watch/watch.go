// Package watch reruns a conversion whenever the input file changes.
package watch

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// OnChange is invoked for every observed change of the watched file.
type OnChange func(ctx context.Context) error

// Watcher observes a single input file through its parent directory, so
// editors that replace the file on save are still seen.
type Watcher struct {
	path     string
	onChange OnChange
	logger   logrus.FieldLogger
}

// New returns a watcher for path that calls onChange on each change.
func New(path string, onChange OnChange, logger logrus.FieldLogger) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		logger:   logger,
	}
}

// Run blocks and converts on every change until ctx is canceled. Errors
// from onChange are logged and do not stop the loop, so a broken input
// can be fixed and saved again.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.logger.WithField("path", w.path).Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.matches(evt) {
				continue
			}
			w.logger.WithField("event", evt.String()).Debug("registered file event")
			if err := w.onChange(ctx); err != nil {
				w.logger.WithError(err).Error("conversion failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WithError(err).Warn("watch error")
		}
	}
}

// matches filters directory events down to mutations of the watched file
// itself.
func (w *Watcher) matches(evt fsnotify.Event) bool {
	if filepath.Clean(evt.Name) != filepath.Clean(w.path) {
		return false
	}
	mask := fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
	return evt.Op&mask != 0
}
