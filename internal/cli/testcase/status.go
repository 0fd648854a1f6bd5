package testcase

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
	"github.com/thenoetrevino/testdeck/internal/models"
)

// StatusCmd returns the case status subcommand, a shortcut for recording a result
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status <case-id> <PENDING|PASS|FAIL|BLOCKED>",
		Short:   "Record the result of a test case",
		Example: "  testdeck case status 31 pass",
		Args:    cobra.ExactArgs(2),
		RunE:    handler.Command(handler.HandlerFunc(runStatus), validateStatusArgs),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func validateStatusArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected a case ID and a status", cli.ErrUsage)
	}
	if _, err := cli.ParseID("case", args[0]); err != nil {
		return err
	}
	_, err := models.ParseCaseStatus(args[1])
	return err
}

func runStatus(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := cli.ParseID("case", args.Args[0])
	if err != nil {
		return nil, err
	}
	status, err := models.ParseCaseStatus(args.Args[1])
	if err != nil {
		return nil, err
	}

	tc, err := args.CLI.App.CaseService.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return &CaseOutput{TestCase: tc, action: "marked " + string(status)}, nil
}
