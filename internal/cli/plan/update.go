package plan

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
	testplanservice "github.com/thenoetrevino/testdeck/internal/services/testplan"
)

// UpdateCmd returns the plan update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <plan-id>",
		Short: "Update a test plan",
		Long: `Update a test plan. Only the given flags change; --tag replaces the
whole tag list.

Examples:
  testdeck plan update 12 --status ACTIVE
  testdeck plan update 12 --tag smoke --tag regression
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(handler.HandlerFunc(runUpdate), validateUpdate),
	}

	cmd.Flags().String("name", "", "New plan name")
	cmd.Flags().String("description", "", "New description (markdown)")
	cmd.Flags().String("status", "", "New status: ACTIVE, INACTIVE, DRAFT")
	cmd.Flags().StringSlice("tag", nil, "Replace the tags (repeatable)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func validateUpdate(cmd *cobra.Command, args []string) error {
	if err := validateIDArg(cmd, args); err != nil {
		return err
	}
	changed := false
	for _, name := range []string{"name", "description", "status", "tag"} {
		changed = changed || cmd.Flags().Changed(name)
	}
	if !changed {
		return fmt.Errorf("%w: at least one of --name, --description, --status or --tag is required", cli.ErrUsage)
	}
	_, err := handler.NewFlagParser(cmd).PlanStatus("status")
	return err
}

func runUpdate(ctx context.Context, args *handler.Arguments) (any, error) {
	id, err := cli.IDArg("plan", args.Args)
	if err != nil {
		return nil, err
	}

	p := args.Parser()
	req := testplanservice.UpdatePlanRequest{ID: id}
	if req.Name, err = p.OptionalString("name"); err != nil {
		return nil, err
	}
	if req.Description, err = p.OptionalString("description"); err != nil {
		return nil, err
	}
	if args.IsSet("status") {
		status, err := p.PlanStatus("status")
		if err != nil {
			return nil, err
		}
		req.Status = &status
	}
	if args.IsSet("tag") {
		tags := args.GetStringSlice("tag", nil)
		req.Tags = &tags
	}

	plan, err := args.CLI.App.PlanService.Update(ctx, req)
	if err != nil {
		return nil, err
	}
	return newPlanOutput(plan, "updated"), nil
}
