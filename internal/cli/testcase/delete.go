package testcase

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
)

// DeleteCmd returns the case delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <case-id>",
		Short: "Delete a test case",
		Long:  "Delete a test case by ID (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(handler.HandlerFunc(runDelete), validateIDArg),
	}

	cli.AddForceFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := cli.IDArg("case", args.Args)
	if err != nil {
		return nil, err
	}
	cases := args.CLI.App.CaseService

	tc, err := cases.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !cli.ConfirmDelete(args.GetCmd(), fmt.Sprintf("test case #%d: '%s'", tc.ID, tc.Name)) {
		return &cli.DeleteResult{Kind: "Test case", ID: id}, nil
	}

	if err := cases.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &cli.DeleteResult{Kind: "Test case", ID: id, Deleted: true}, nil
}
