package plan

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
)

// CountCmd returns the plan count subcommand
func CountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count test plans, optionally only those with a tag",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runCount)),
	}

	cmd.Flags().String("tag", "", "Only count plans carrying this tag")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCount(ctx context.Context, args *handler.Arguments) (any, error) {
	tag := args.GetString("tag", "")
	n, err := args.CLI.App.PlanService.Count(ctx, tag)
	if err != nil {
		return nil, err
	}
	return &CountOutput{Count: n, Tag: tag}, nil
}
