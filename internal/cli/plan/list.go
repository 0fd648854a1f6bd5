package plan

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/pagination"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ListCmd returns the plan list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List test plans one page at a time",
		Long: `List test plans newest first, one keyset page at a time.

The position is remembered between runs, so --next and --previous continue
from the last listed page.

Examples:
  # First page
  testdeck plan list

  # Only plans tagged "smoke", 10 per page
  testdeck plan list --filter smoke --per 10

  # Page through
  testdeck plan list --next
  testdeck plan list --previous

  # IDs only
  testdeck plan list --quiet
`,
		RunE: handler.Command(handler.HandlerFunc(runList), validateList),
	}

	cmd.Flags().Int("after", 0, "Start after this plan ID")
	cmd.Flags().Int("per", 0, "Plans per page (default from config)")
	cmd.Flags().String("filter", "", "Only plans carrying this tag")
	cmd.Flags().Bool("next", false, "Show the page after the last listed one")
	cmd.Flags().Bool("previous", false, "Show the page before the last listed one")
	cmd.MarkFlagsMutuallyExclusive("next", "previous")

	cli.AddOutputFlags(cmd)

	return cmd
}

func validateList(cmd *cobra.Command, _ []string) error {
	p := handler.NewFlagParser(cmd)
	for _, name := range []string{"after", "per"} {
		v, err := p.OptionalInt(name)
		if err != nil {
			return err
		}
		if v != nil && *v <= 0 {
			return fmt.Errorf("%w: --%s must be greater than 0", cli.ErrUsage, name)
		}
	}

	next, _ := cmd.Flags().GetBool("next")
	previous, _ := cmd.Flags().GetBool("previous")
	restart := cmd.Flags().Changed("after") || cmd.Flags().Changed("filter")
	if (next || previous) && restart {
		return fmt.Errorf("%w: --after and --filter start a new listing and cannot be combined with --next or --previous", cli.ErrUsage)
	}
	return nil
}

func runList(ctx context.Context, args *handler.Arguments) (any, error) {
	a := args.CLI.App

	cursor, err := resolveCursor(ctx, args)
	if err != nil {
		return nil, err
	}

	var (
		page  []models.TestPlan
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = a.PlanService.List(gctx, cursor)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = a.PlanService.Count(gctx, cursor.Filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := a.Prefs.SaveCursor(ctx, cursor); err != nil {
		a.Logger.Warn("failed to remember list position", zap.Error(err))
	}

	return newPlanListOutput(page, total, cursor), nil
}

// resolveCursor builds the page to show: a fresh listing from the flags, or a
// step from the saved position for --next and --previous
func resolveCursor(ctx context.Context, args *handler.Arguments) (pagination.Cursor, error) {
	a := args.CLI.App
	per := args.GetInt("per", a.Config.Pagination.PerPage)

	next := args.GetBool("next")
	if next || args.GetBool("previous") {
		cursor, err := a.Prefs.LastCursor(ctx, per)
		if err != nil {
			return pagination.Cursor{}, fmt.Errorf("failed to load list position: %w", err)
		}
		if args.IsSet("per") {
			cursor.Per = per
		}
		if !next {
			return cursor.Previous(), nil
		}

		current, err := a.PlanService.List(ctx, cursor)
		if err != nil {
			return pagination.Cursor{}, err
		}
		if !cursor.HasNext(len(current)) {
			return cursor, nil
		}
		return cursor.Next(current), nil
	}

	cursor := pagination.New(per)
	if args.IsSet("filter") {
		cursor = cursor.SetFilter(args.GetString("filter", ""))
	}
	if args.IsSet("after") {
		after := args.GetInt("after", 0)
		cursor.After = &after
	}
	return cursor, nil
}
