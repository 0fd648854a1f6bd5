package testcase

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
	testcaseservice "github.com/thenoetrevino/testdeck/internal/services/testcase"
)

// CreateCmd returns the case create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a test case to a plan",
		Long: `Add a test case to a plan.

Examples:
  testdeck case create --plan 12 --name "Pay by card" --priority HIGH --duration 15

  # Quiet mode for bash capture
  CASE_ID=$(testdeck case create --plan 12 --name "Refund" --quiet)
`,
		RunE: handler.Command(handler.HandlerFunc(runCreate), validateCreate),
	}

	// Required flags
	cmd.Flags().Int("plan", 0, "Plan ID (required)")
	cmd.Flags().String("name", "", "Case name (required)")

	// Optional flags
	addCaseFlags(cmd)

	cli.AddOutputFlags(cmd)

	return cmd
}

// addCaseFlags registers the fields shared by create and update
func addCaseFlags(cmd *cobra.Command) {
	cmd.Flags().String("description", "", "What the case covers")
	cmd.Flags().String("steps", "", "Steps to perform")
	cmd.Flags().String("expected", "", "Expected result")
	cmd.Flags().String("status", "", "PENDING, PASS, FAIL or BLOCKED (default PENDING)")
	cmd.Flags().String("priority", "", "LOW, MEDIUM, HIGH or CRITICAL (default MEDIUM)")
	cmd.Flags().Int("duration", 0, "Planned duration in minutes")
}

// validateEnums checks the status and priority flags
func validateEnums(cmd *cobra.Command) error {
	p := handler.NewFlagParser(cmd)
	if _, err := p.CaseStatus("status"); err != nil {
		return err
	}
	_, err := p.Priority("priority")
	return err
}

func validateCreate(cmd *cobra.Command, args []string) error {
	p := handler.NewFlagParser(cmd)
	if _, err := p.ParsePlanID(); err != nil {
		return err
	}
	if _, err := p.ParseString("name"); err != nil {
		return err
	}
	return validateEnums(cmd)
}

func runCreate(ctx context.Context, args *handler.Arguments) (any, error) {
	p := args.Parser()
	planID, err := p.ParsePlanID()
	if err != nil {
		return nil, err
	}
	status, err := p.CaseStatus("status")
	if err != nil {
		return nil, err
	}
	priority, err := p.Priority("priority")
	if err != nil {
		return nil, err
	}

	tc, err := args.CLI.App.CaseService.Create(ctx, testcaseservice.CreateCaseRequest{
		PlanID:         planID,
		Name:           args.GetString("name", ""),
		Description:    args.GetString("description", ""),
		Steps:          args.GetString("steps", ""),
		ExpectedResult: args.GetString("expected", ""),
		Status:         status,
		Priority:       priority,
		Duration:       args.GetInt("duration", 0),
	})
	if err != nil {
		return nil, err
	}
	return &CaseOutput{TestCase: tc, action: "created"}, nil
}
