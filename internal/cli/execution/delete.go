package execution

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
)

// DeleteCmd returns the exec delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <execution-id>",
		Short: "Delete a run",
		Long:  "Delete a run by ID (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(handler.HandlerFunc(runDelete), validateIDArg),
	}

	cli.AddForceFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := cli.IDArg("execution", args.Args)
	if err != nil {
		return nil, err
	}
	execs := args.CLI.App.ExecutionService

	exec, err := execs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cli.ConfirmDelete(args.GetCmd(), fmt.Sprintf("execution #%d of plan %d", exec.ID, exec.TestPlanID)) {
		return &cli.DeleteResult{Kind: "Execution", ID: id}, nil
	}

	if err := execs.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &cli.DeleteResult{Kind: "Execution", ID: id, Deleted: true}, nil
}
