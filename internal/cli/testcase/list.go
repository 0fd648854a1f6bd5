package testcase

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
	"github.com/thenoetrevino/testdeck/internal/models"
)

// ListCmd returns the case list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the test cases of a plan",
		RunE:  handler.Command(handler.HandlerFunc(runList), validatePlanFlag),
	}

	cmd.Flags().Int("plan", 0, "Plan ID (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func validatePlanFlag(cmd *cobra.Command, _ []string) error {
	_, err := handler.NewFlagParser(cmd).ParsePlanID()
	return err
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	planID, err := args.Parser().ParsePlanID()
	if err != nil {
		return nil, err
	}
	cases, err := args.CLI.App.CaseService.List(ctx, planID)
	if err != nil {
		return nil, err
	}
	if cases == nil {
		cases = []models.TestCase{}
	}
	return &CaseListOutput{PlanID: planID, Cases: cases}, nil
}
