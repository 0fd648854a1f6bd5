package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/testdeck/internal/config"
	"github.com/thenoetrevino/testdeck/internal/logging"
	"go.uber.org/zap"
)

// WatchConfig watches configPath until ctx is done and delivers every valid
// reload on the returned channel. The channel is closed when watching stops.
func WatchConfig(ctx context.Context, configPath string) <-chan *config.Config {
	updates := make(chan *config.Config, 1)
	go func() {
		defer close(updates)
		err := config.Watch(ctx, configPath, func(cfg *config.Config) {
			select {
			case updates <- cfg:
			case <-ctx.Done():
			}
		})
		if err != nil {
			logging.Logger.Warn("config watcher stopped", zap.String("path", configPath), zap.Error(err))
		}
	}()
	return updates
}

// waitForConfig blocks for the next reload. Update re-arms it after each one.
func waitForConfig(updates <-chan *config.Config) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}
