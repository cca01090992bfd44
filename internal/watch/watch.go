// Package watch re-runs generation when the sources of the processed packages
// change.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"wrapper-generator/internal/gen"
	"wrapper-generator/internal/logger"
	"wrapper-generator/internal/plan"
)

// DefaultDebounce is the quiet period after the last change before a rebuild.
const DefaultDebounce = 200 * time.Millisecond

// RebuildFunc regenerates the artifacts. Its error is logged; watching
// continues.
type RebuildFunc func(ctx context.Context) error

// Watcher watches package directories.
type Watcher struct {
	dirs     []string
	debounce time.Duration
	rebuild  RebuildFunc
	log      *zap.SugaredLogger
}

// New creates a Watcher over dirs. A non-positive debounce uses DefaultDebounce.
func New(dirs []string, debounce time.Duration, rebuild RebuildFunc) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		dirs:     dirs,
		debounce: debounce,
		rebuild:  rebuild,
		log:      logger.ComponentLogger("watch"),
	}
}

// Run watches until ctx is done. It does not run an initial build.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create fsnotify watcher")
	}
	defer watcher.Close()

	for _, dir := range w.dirs {
		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch %s", dir)
		}
	}

	w.log.Infow("watching for changes", logger.FieldCount, len(w.dirs))

	return w.loop(ctx, watcher.Events, watcher.Errors)
}

func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}

			if !Relevant(event) {
				continue
			}

			w.log.Debugw("change detected", logger.FieldFile, event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-errs:
			if !ok {
				return nil
			}

			w.log.Warnw("watcher error", logger.FieldError, err)

		case <-timer.C:
			if err := w.rebuild(ctx); err != nil {
				w.log.Errorw("rebuild failed", logger.FieldError, err)
			}
		}
	}
}

// Relevant reports whether event may change generated output: a write,
// creation, removal or rename of a hand-written non-test Go file.
func Relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Base(event.Name)

	switch {
	case !strings.HasSuffix(name, ".go"):
		return false
	case strings.HasPrefix(name, "."):
		return false
	case strings.HasSuffix(name, "_test.go"):
		return false
	case strings.HasSuffix(name, plan.FileSuffix):
		return false
	case strings.HasSuffix(name, gen.DebugSuffix):
		return false
	}

	return true
}
