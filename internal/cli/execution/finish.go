package execution

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
)

// FinishCmd returns the exec finish subcommand
func FinishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finish <execution-id>",
		Short: "Finish a running run with PASSED, FAILED or ABORTED",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.Command(handler.HandlerFunc(runFinish), validateFinish),
	}

	cmd.Flags().String("status", "", "PASSED, FAILED or ABORTED (required)")
	cmd.Flags().String("notes", "", "Result notes (keeps the start notes when empty)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func validateFinish(cmd *cobra.Command, args []string) error {
	if err := validateIDArg(cmd, args); err != nil {
		return err
	}
	_, err := handler.NewFlagParser(cmd).Outcome("status")
	return err
}

func runFinish(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := cli.IDArg("execution", args.Args)
	if err != nil {
		return nil, err
	}
	outcome, err := args.Parser().Outcome("status")
	if err != nil {
		return nil, err
	}

	exec, err := args.CLI.App.ExecutionService.Finish(ctx, id, outcome, args.GetString("notes", ""))
	if err != nil {
		return nil, err
	}
	return newExecutionOutput(exec, "finished "+strings.ToLower(string(exec.Status))), nil
}
