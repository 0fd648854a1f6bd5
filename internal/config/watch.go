package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/thenoetrevino/testdeck/internal/logging"
	"go.uber.org/zap"
)

// reloadDebounce absorbs the burst of events editors emit for one save
const reloadDebounce = 200 * time.Millisecond

// Watch reloads the config at configPath whenever it changes and passes the
// result to onChange. The parent directory is watched so editors that
// replace the file by rename are seen too. Invalid edits are logged and
// skipped. Watch blocks until ctx is cancelled.
func Watch(ctx context.Context, configPath string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(configPath)
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			pending = time.After(reloadDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logger.Warn("config watcher error", zap.Error(err))

		case <-pending:
			pending = nil
			cfg, err := LoadFrom(configPath)
			if err != nil {
				logging.Logger.Warn("ignoring invalid config change", zap.String("path", configPath), zap.Error(err))
				continue
			}
			logging.Logger.Info("config reloaded", zap.String("path", configPath))
			onChange(cfg)
		}
	}
}
