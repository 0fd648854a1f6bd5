package plan

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
)

// DeleteCmd returns the plan delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a test plan",
		Long:  "Delete a test plan by ID (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(handler.HandlerFunc(runDelete), validateIDArg),
	}

	cli.AddForceFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := cli.IDArg("plan", args.Args)
	if err != nil {
		return nil, err
	}
	plans := args.CLI.App.PlanService

	// Get plan details for confirmation
	plan, err := plans.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cli.ConfirmDelete(args.GetCmd(), fmt.Sprintf("test plan #%d: '%s'", plan.ID, plan.Name)) {
		return &cli.DeleteResult{Kind: "Test plan", ID: id}, nil
	}

	if err := plans.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &cli.DeleteResult{Kind: "Test plan", ID: id, Deleted: true}, nil
}
