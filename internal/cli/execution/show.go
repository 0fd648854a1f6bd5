package execution

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
)

// ShowCmd returns the exec show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <execution-id>",
		Short: "Show a run",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(handler.HandlerFunc(runShow), validateIDArg),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func validateIDArg(_ *cobra.Command, args []string) error {
	_, err := cli.IDArg("execution", args)
	return err
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := cli.IDArg("execution", args.Args)
	if err != nil {
		return nil, err
	}
	exec, err := args.CLI.App.ExecutionService.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return newExecutionOutput(exec, ""), nil
}
