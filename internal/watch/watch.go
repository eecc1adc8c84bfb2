// Package watch re-runs a callback when input files change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"archive2svg/internal/logging"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

// ErrNoFiles indicates nothing was given to watch.
var ErrNoFiles = errors.New("no files to watch")

// Files watches paths and calls onChange once per burst of changes.
// Directories are watched rather than the files themselves so that
// replace-on-save editors keep triggering. Files blocks until ctx is done or
// onChange returns an error.
func Files(ctx context.Context, paths []string, debounce time.Duration, logger *slog.Logger, onChange func(context.Context) error) error {
	if len(paths) == 0 {
		return ErrNoFiles
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger = logging.NewComponentLogger(logger, "watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		targets[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = struct{}{}
	}
	if len(targets) == 0 {
		return ErrNoFiles
	}

	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, tracked := targets[filepath.Clean(event.Name)]; !tracked {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("input changed", slog.String("path", event.Name), slog.String("op", event.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", logging.Error(err))
		case <-timer.C:
			if err := onChange(ctx); err != nil {
				return err
			}
		}
	}
}
