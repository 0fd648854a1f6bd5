package execution

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
)

// StartCmd returns the exec start subcommand
func StartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a run of a plan",
		Long: `Start a run of a plan. The run is RUNNING until "exec finish".

Examples:
  RUN_ID=$(testdeck exec start --plan 12 --notes "nightly" --quiet)
  testdeck exec finish "$RUN_ID" --status passed
`,
		RunE: handler.Command(handler.HandlerFunc(runStart), validatePlanFlag),
	}

	cmd.Flags().Int("plan", 0, "Plan ID (required)")
	cmd.Flags().String("notes", "", "Notes for the run")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runStart(ctx context.Context, args *handler.Arguments) (any, error) {
	planID, err := args.Parser().ParsePlanID()
	if err != nil {
		return nil, err
	}
	exec, err := args.CLI.App.ExecutionService.Start(ctx, planID, args.GetString("notes", ""))
	if err != nil {
		return nil, err
	}
	return newExecutionOutput(exec, "started"), nil
}
