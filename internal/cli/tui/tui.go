// Package tui holds the command that starts the interactive browser
package tui

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/config"
	"github.com/thenoetrevino/testdeck/internal/launcher"
	"github.com/thenoetrevino/testdeck/internal/logging"
	"go.uber.org/zap"
)

// TuiCmd returns the tui command
func TuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse test plans interactively",
		Long: `Open the interactive plan browser.

Keys: n/p page, / filter by tag, enter open, space expand a case,
d delete, w toggle the duration widget, r refresh, ? help, q quit.
Edits to the config file apply while the browser is open.`,
		Args: cobra.NoArgs,
		RunE: Run,
	}
}

// Run starts the browser; the root command uses it when no subcommand is given
func Run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.FormatterFor(cmd).Report(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			logging.Logger.Warn("failed to close app", zap.Error(err))
		}
	}()

	configPath, err := config.Path()
	if err != nil {
		logging.Logger.Warn("config path unavailable, live reload disabled", zap.Error(err))
		configPath = ""
	} else if created, err := config.EnsureFile(); err != nil {
		logging.Logger.Warn("could not write default config", zap.Error(err))
	} else if created {
		logging.Logger.Info("wrote default config", zap.String("path", configPath))
	}

	if err := launcher.Launch(ctx, cliInstance.App, configPath); err != nil {
		return cli.FormatterFor(cmd).Report(err)
	}
	return nil
}
