package launcher

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/testdeck/internal/app"
	"github.com/thenoetrevino/testdeck/internal/tui"
	"go.uber.org/zap"
)

// Launch runs the TUI until the user quits or the process is signalled.
// configPath, when set, is watched so edits apply without a restart.
func Launch(ctx context.Context, a *app.App, configPath string) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var opts []tui.Option
	if configPath != "" {
		opts = append(opts, tui.WithConfigUpdates(tui.WatchConfig(ctx, configPath)))
	}

	model := tui.New(ctx, a, opts...)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		a.Logger.Info("shutdown signal received, cleaning up")
		// Let the program restore the terminal before returning
		if err := <-errChan; err != nil {
			a.Logger.Debug("program stopped", zap.Error(err))
		}
	}
	return nil
}
