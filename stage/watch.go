package stage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch re-runs fn whenever one of the files changes, debouncing bursts
// of write events. Errors from fn are logged, not fatal: a half-saved
// document should not end the watch session. Watch returns when ctx is
// cancelled.
func Watch(ctx context.Context, files []string, debounce time.Duration, fn func() error, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directories; editors often replace files instead
	// of writing in place, which drops a watch on the file itself.
	tracked := make(map[string]bool, len(files))
	dirs := make(map[string]bool)
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", file, err)
		}
		tracked[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	logger.Info("watching for changes", "files", len(tracked), "dirs", len(dirs))

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-watcher.Events:
			abs, err := filepath.Abs(event.Name)
			if err != nil || !tracked[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			logger.Info("source changed, restaging")
			if err := fn(); err != nil {
				logger.Error("restage failed", "error", err)
			}
		case err := <-watcher.Errors:
			logger.Error("watch error", "error", err)
		}
	}
}
