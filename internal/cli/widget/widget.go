// Package widget holds the dashboard widget cli commands
//
// e.g., testdeck widget set --plan 12
package widget

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/cli/handler"
	"github.com/thenoetrevino/testdeck/internal/cli/styles"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/prefs"
	reportservice "github.com/thenoetrevino/testdeck/internal/services/report"
)

// WidgetCmd returns the widget parent command
func WidgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widget",
		Short: "Configure the dashboard duration widget",
		Long: `The dashboard widget shows last month's duration report for one plan in
the TUI. Its setting is kept in the local preference store.`,
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SetCmd())
	cmd.AddCommand(RemoveCmd())

	return cmd
}

// ShowCmd returns the widget show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the widget setting and, when enabled, its report",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runShow)),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// SetCmd returns the widget set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Point the widget at a plan, or disable it",
		Example: `  testdeck widget set --plan 12
  testdeck widget set --disable`,
		RunE: handler.Command(handler.HandlerFunc(runSet), validateSet),
	}
	cmd.Flags().Int("plan", 0, "Plan whose report the widget shows")
	cmd.Flags().Bool("disable", false, "Hide the widget, keeping its plan")
	cli.AddOutputFlags(cmd)
	return cmd
}

// RemoveCmd returns the widget remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Forget the widget setting",
		RunE:  handler.SimpleCommand(handler.HandlerFunc(runRemove)),
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

// Output is the widget setting with the report it would show
type Output struct {
	prefs.Widget
	Report *models.DurationReport `json:"report,omitempty"`
}

// PrintHuman implements cli.HumanPrinter
func (o *Output) PrintHuman(w io.Writer) error {
	if o.PlanID == nil {
		_, err := fmt.Fprintln(w, "Widget not configured (testdeck widget set --plan <id>)")
		return err
	}

	state := styles.SuccessStyle.Render("enabled")
	if !o.Enabled {
		state = styles.WarningStyle.Render("disabled")
	}
	lines := []string{
		styles.Field("Widget", state),
		styles.Field("Plan", fmt.Sprintf("#%d", *o.PlanID)),
	}
	if o.Report != nil {
		lines = append(lines,
			styles.Field("Runs last month", fmt.Sprintf("%d", o.Report.ExecutionCount)),
			styles.Field("Total duration", reportservice.FormatMinutes(o.Report.TotalDuration)))
	}
	_, err := fmt.Fprintln(w, styles.RenderCard(strings.Join(lines, "\n")))
	return err
}

func runShow(ctx context.Context, args *handler.Arguments) (any, error) {
	a := args.CLI.App
	widget, err := a.Prefs.LoadWidget(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load widget: %w", err)
	}

	out := &Output{Widget: widget}
	if widget.Active() {
		if out.Report, err = a.ReportService.DurationLastMonth(ctx, *widget.PlanID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func validateSet(cmd *cobra.Command, _ []string) error {
	disable, _ := cmd.Flags().GetBool("disable")
	if disable && !cmd.Flags().Changed("plan") {
		return nil
	}
	_, err := handler.NewFlagParser(cmd).ParsePlanID()
	return err
}

func runSet(ctx context.Context, args *handler.Arguments) (any, error) {
	a := args.CLI.App
	widget, err := a.Prefs.LoadWidget(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load widget: %w", err)
	}

	if args.IsSet("plan") {
		planID, err := args.Parser().ParsePlanID()
		if err != nil {
			return nil, err
		}
		// only point the widget at plans that exist
		if _, err := a.PlanService.Get(ctx, planID); err != nil {
			return nil, err
		}
		widget.PlanID = &planID
	}
	widget.Enabled = !args.GetBool("disable")

	if err := a.Prefs.SaveWidget(ctx, widget); err != nil {
		return nil, fmt.Errorf("failed to save widget: %w", err)
	}
	return &Output{Widget: widget}, nil
}

func runRemove(ctx context.Context, args *handler.Arguments) (any, error) {
	if err := args.CLI.App.Prefs.RemoveWidget(ctx); err != nil {
		return nil, fmt.Errorf("failed to remove widget: %w", err)
	}
	return &Output{}, nil
}
