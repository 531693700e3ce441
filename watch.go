package docsite

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	xlog "github.com/eringen/docsite/internal/log"
)

// DefaultDebounce is how long Watch waits after the last file event before
// invalidating the cache.
const DefaultDebounce = 300 * time.Millisecond

// Watch invalidates cache whenever the file at path changes, and eagerly
// reloads it. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file itself so that editors
// which save by renaming a temporary file are picked up.
func Watch(ctx context.Context, path string, cache *ConfigCache, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	logger := xlog.WithComponent("watcher")
	logger.Info().
		Str(xlog.FieldEvent, "config.watcher_started").
		Str(xlog.FieldPath, abs).
		Msg("watching site config for changes")

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Str(xlog.FieldEvent, "config.watcher_stopped").Msg("config watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug().
				Str(xlog.FieldEvent, "config.file_changed").
				Str("op", event.Op.String()).
				Msg("config file changed")
			timer.Reset(debounce)

		case <-timer.C:
			cache.Invalidate()
			if _, err := cache.Get(); err != nil {
				logger.Error().Err(err).Str(xlog.FieldEvent, "config.auto_reload_failed").Msg("automatic reload failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Str(xlog.FieldEvent, "config.watcher_error").Msg("config watcher error")
		}
	}
}
