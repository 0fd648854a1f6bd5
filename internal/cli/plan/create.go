package plan

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
	testplanservice "github.com/thenoetrevino/testdeck/internal/services/testplan"
)

// CreateCmd returns the plan create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new test plan",
		Long: `Create a new test plan with specified attributes.

Examples:
  # Simple plan (human-readable output)
  testdeck plan create --name="Checkout"

  # Tagged, with a markdown description
  testdeck plan create --name="Checkout" --tag smoke --tag payments \
    --description="Covers **card** and *wallet* payments"

  # Quiet mode for bash capture
  PLAN_ID=$(testdeck plan create --name="Checkout" --quiet)
`,
		RunE: handler.Command(handler.HandlerFunc(runCreate), validateCreate),
	}

	// Required flags
	cmd.Flags().String("name", "", "Plan name (required)")

	// Optional flags
	cmd.Flags().String("description", "", "Plan description (markdown)")
	cmd.Flags().String("status", "", "Plan status: ACTIVE, INACTIVE, DRAFT (default DRAFT)")
	cmd.Flags().StringSlice("tag", nil, "Tag to attach (repeatable)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func validateCreate(cmd *cobra.Command, _ []string) error {
	p := handler.NewFlagParser(cmd)
	if _, err := p.ParseString("name"); err != nil {
		return err
	}
	_, err := p.PlanStatus("status")
	return err
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	status, err := args.Parser().PlanStatus("status")
	if err != nil {
		return nil, err
	}

	plan, err := args.CLI.App.PlanService.Create(ctx, testplanservice.CreatePlanRequest{
		Name:        args.GetString("name", ""),
		Description: args.GetString("description", ""),
		Status:      status,
		Tags:        args.GetStringSlice("tag", nil),
	})
	if err != nil {
		return nil, err
	}

	return newPlanOutput(plan, "created"), nil
}
