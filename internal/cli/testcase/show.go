package testcase

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
)

// ShowCmd returns the case show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <case-id>",
		Short: "Show a test case",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(handler.HandlerFunc(runShow), validateIDArg),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func validateIDArg(_ *cobra.Command, args []string) error {
	_, err := cli.IDArg("case", args)
	return err
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := cli.IDArg("case", args.Args)
	if err != nil {
		return nil, err
	}
	tc, err := args.CLI.App.CaseService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CaseOutput{TestCase: tc}, nil
}
