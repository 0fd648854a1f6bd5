package testcase

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
	"github.com/thenoetrevino/testdeck/internal/models"
	testcaseservice "github.com/thenoetrevino/testdeck/internal/services/testcase"
)

var updatableFlags = []string{"name", "description", "steps", "expected", "status", "priority", "duration"}

// UpdateCmd returns the case update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <case-id>",
		Short: "Update a test case; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(handler.HandlerFunc(runUpdate), validateUpdate),
	}

	cmd.Flags().String("name", "", "New case name")
	addCaseFlags(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func validateUpdate(cmd *cobra.Command, args []string) error {
	if err := validateIDArg(cmd, args); err != nil {
		return err
	}
	changed := false
	for _, name := range updatableFlags {
		changed = changed || cmd.Flags().Changed(name)
	}
	if !changed {
		return fmt.Errorf("%w: nothing to update", cli.ErrUsage)
	}
	return validateEnums(cmd)
}

func runUpdate(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := cli.IDArg("case", args.Args)
	if err != nil {
		return nil, err
	}

	p := args.Parser()
	req := testcaseservice.UpdateCaseRequest{ID: id}
	if req.Name, err = p.OptionalString("name"); err != nil {
		return nil, err
	}
	if req.Description, err = p.OptionalString("description"); err != nil {
		return nil, err
	}
	if req.Steps, err = p.OptionalString("steps"); err != nil {
		return nil, err
	}
	if req.ExpectedResult, err = p.OptionalString("expected"); err != nil {
		return nil, err
	}
	if req.Duration, err = p.OptionalInt("duration"); err != nil {
		return nil, err
	}
	if args.IsSet("status") {
		var status models.CaseStatus
		if status, err = p.CaseStatus("status"); err != nil {
			return nil, err
		}
		req.Status = &status
	}
	if args.IsSet("priority") {
		var priority models.Priority
		if priority, err = p.Priority("priority"); err != nil {
			return nil, err
		}
		req.Priority = &priority
	}

	tc, err := args.CLI.App.CaseService.Update(ctx, req)
	if err != nil {
		return nil, err
	}
	return &CaseOutput{TestCase: tc, action: "updated"}, nil
}
