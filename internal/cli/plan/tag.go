package plan

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
)

// TagCmd returns the plan tag parent command
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Attach or detach plan tags",
	}

	cmd.AddCommand(tagSubcommand("add", "Attach tags to a test plan"))
	cmd.AddCommand(tagSubcommand("remove", "Detach tags from a test plan"))

	return cmd
}

func tagSubcommand(use, short string) *cobra.Command {
	run := func(ctx context.Context, args *handler.Arguments) (any, error) {
		return runTag(ctx, args, use == "add")
	}
	cmd := &cobra.Command{
		Use:     use + " <plan-id> <tag>...",
		Short:   short,
		Example: fmt.Sprintf("  testdeck plan tag %s 12 smoke payments", use),
		Args:    cobra.MinimumNArgs(2),
		RunE:    handler.Command(handler.HandlerFunc(run), validateTagArgs),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func validateTagArgs(_ *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: expected a plan ID and at least one tag", cli.ErrUsage)
	}
	_, err := cli.ParseID("plan", args[0])
	return err
}

func runTag(ctx context.Context, args *handler.Arguments, add bool) (any, error) {
	id, err := cli.ParseID("plan", args.Args[0])
	if err != nil {
		return nil, err
	}
	tags := args.Args[1:]
	plans := args.CLI.App.PlanService

	if add {
		plan, err := plans.AddTags(ctx, id, tags)
		if err != nil {
			return nil, err
		}
		return newPlanOutput(plan, "tagged"), nil
	}

	plan, err := plans.RemoveTags(ctx, id, tags)
	if err != nil {
		return nil, err
	}
	return newPlanOutput(plan, "untagged"), nil
}
