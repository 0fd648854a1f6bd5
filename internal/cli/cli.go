package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/testdeck/internal/app"
	"github.com/thenoetrevino/testdeck/internal/config"
	"github.com/thenoetrevino/testdeck/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	owned bool     // App was created here and must be closed here
}

// NewCLI loads the config and builds the application container
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.Open(ctx, cfg, logging.Logger)
	if err != nil {
		return nil, err
	}

	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext returns a CLI around the App carried by ctx (tests and
// the root command inject one), or builds a fresh one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := app.FromContext(ctx); ok {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
