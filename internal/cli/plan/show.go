package plan

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
	"github.com/thenoetrevino/testdeck/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ShowCmd returns the plan show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <plan-id>",
		Short: "Show a test plan with its executions and last month's duration",
		Long: `Show a test plan. The description is rendered as markdown.

Examples:
  testdeck plan show 12
  testdeck plan show 12 --cases
  testdeck plan show 12 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runShow), validateIDArg),
	}

	cmd.Flags().Bool("cases", false, "Include the plan's test cases")
	cli.AddOutputFlags(cmd)

	return cmd
}

// validateIDArg checks the positional plan ID
func validateIDArg(_ *cobra.Command, args []string) error {
	_, err := cli.IDArg("plan", args)
	return err
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	a := args.CLI.App
	id, err := cli.IDArg("plan", args.Args)
	if err != nil {
		return nil, err
	}

	var (
		plan       *models.TestPlan
		executions []models.TestPlanExecution
		report     *models.DurationReport
		execErr    error
		reportErr  error
	)

	// Only the plan itself is required; executions and the report are shown
	// as unavailable when their endpoints fail.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if args.GetBool("cases") {
			plan, err = a.PlanService.GetWithCases(gctx, id)
		} else {
			plan, err = a.PlanService.Get(gctx, id)
		}
		return err
	})
	g.Go(func() error {
		executions, execErr = a.ExecutionService.List(gctx, id)
		return nil
	})
	g.Go(func() error {
		report, reportErr = a.ReportService.DurationLastMonth(gctx, id)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &DetailOutput{
		Plan:       newPlanOutput(plan, ""),
		Executions: executions,
		Report:     report,
	}
	if execErr != nil {
		a.Logger.Warn("executions unavailable", zap.Int("plan_id", id), zap.Error(execErr))
		out.Executions = nil
		out.Warnings = append(out.Warnings, "executions unavailable")
	} else if out.Executions == nil {
		out.Executions = []models.TestPlanExecution{}
	}
	if reportErr != nil {
		a.Logger.Warn("duration report unavailable", zap.Int("plan_id", id), zap.Error(reportErr))
		out.Report = nil
		out.Warnings = append(out.Warnings, "report unavailable")
	}
	return out, nil
}
