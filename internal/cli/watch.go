package cli

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/i18nlayers/pkg/layer"
)

// debounce collapses bursts of file events (editors write several times per save).
const debounce = 200 * time.Millisecond

// watchDirs returns every layer root and language directory, without duplicates.
func watchDirs(stack layer.Stack, langDirs []string) []string {
	dirs := slices.Concat(stack.RootDirs(), langDirs)
	slices.Sort(dirs)
	return slices.Compact(dirs)
}

// watch runs fn once, then again after every change in the directories it
// returned last, until ctx is done. Each rerun gets the sorted paths changed
// since the previous run. A failing run is logged and watching goes on with
// the previous directories.
func watch(ctx context.Context, log *slog.Logger, fn func(ctx context.Context, changed []string) ([]string, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer w.Close()

	watched := make(map[string]bool)
	track := func(dirs []string) {
		next := make(map[string]bool, len(dirs))
		for _, d := range dirs {
			next[d] = true
			if watched[d] {
				continue
			}
			if err := w.Add(d); err != nil {
				log.WarnContext(ctx, "cannot watch directory", slog.String("dir", d), slog.String("error", err.Error()))
				continue
			}
			watched[d] = true
		}
		for d := range watched {
			if !next[d] {
				_ = w.Remove(d)
				delete(watched, d)
			}
		}
	}

	dirs, err := fn(ctx, nil)
	if err != nil {
		return err
	}
	track(dirs)
	log.InfoContext(ctx, "watching for changes", slog.Int("dirs", len(watched)))

	pending := make(map[string]bool)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			log.DebugContext(ctx, "file changed", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
			pending[ev.Name] = true
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WarnContext(ctx, "file watcher error", slog.String("error", err.Error()))

		case <-timer.C:
			changed := slices.Sorted(maps.Keys(pending))
			clear(pending)
			dirs, err := fn(ctx, changed)
			if err != nil {
				log.ErrorContext(ctx, "merge failed", slog.String("error", err.Error()))
				continue
			}
			track(dirs)
		}
	}
}
