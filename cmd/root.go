// Package cmd assembles the testdeck command tree
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli/execution"
	"github.com/thenoetrevino/testdeck/internal/cli/plan"
	"github.com/thenoetrevino/testdeck/internal/cli/report"
	"github.com/thenoetrevino/testdeck/internal/cli/styles"
	"github.com/thenoetrevino/testdeck/internal/cli/tag"
	"github.com/thenoetrevino/testdeck/internal/cli/testcase"
	"github.com/thenoetrevino/testdeck/internal/cli/tui"
	"github.com/thenoetrevino/testdeck/internal/cli/tutorial"
	"github.com/thenoetrevino/testdeck/internal/cli/widget"
	"github.com/thenoetrevino/testdeck/internal/config"
	"github.com/thenoetrevino/testdeck/internal/logging"
	"github.com/thenoetrevino/testdeck/internal/tui/components"
)

// NewRootCmd builds the testdeck command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "testdeck",
		Short: "testdeck - test plans from the terminal",
		Long: `testdeck manages test plans, test cases and their executions on a
test plan backend. Run it without a command to open the interactive browser.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: initialize,
		Args:              cobra.NoArgs,
		RunE:              tui.Run,
	}

	rootCmd.AddCommand(plan.PlanCmd())
	rootCmd.AddCommand(testcase.CaseCmd())
	rootCmd.AddCommand(execution.ExecCmd())
	rootCmd.AddCommand(report.ReportCmd())
	rootCmd.AddCommand(tag.TagCmd())
	rootCmd.AddCommand(widget.WidgetCmd())
	rootCmd.AddCommand(tui.TuiCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// initialize sets up logging and colors from the config before any command
// runs. A broken config is reported by the command that needs the backend,
// so here it only falls back to defaults.
func initialize(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	if err := logging.Init(cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	styles.Init(cfg.ColorScheme)
	components.InitStyles(cfg.ColorScheme)
	return nil
}
