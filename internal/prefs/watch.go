package prefs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads store whenever the file at path is written by another
// process. The parent directory is watched so editors that replace the file
// via rename are picked up. Blocks until ctx is done.
func Watch(ctx context.Context, path string, store *Store) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("preferences file event", "op", ev.Op.String(), "file", ev.Name)
			if info, err := os.Stat(target); err == nil && info.Size() == 0 {
				// Truncated by a writer that has not written yet
				slog.Debug("preferences file empty, skipping reload", "file", ev.Name)
				continue
			}
			if err := store.Reload(); err != nil {
				// Partial writes fail to parse; the next event retries
				slog.Warn("reload preferences", "err", err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("preferences watcher", "err", err)
		}
	}
}
