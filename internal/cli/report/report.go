// Package report holds the reporting cli commands
//
// e.g., testdeck report duration --plan 12
package report

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
	reportservice "github.com/thenoetrevino/testdeck/internal/services/report"
)

// ReportCmd returns the report parent command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reports over test plan runs",
	}

	cmd.AddCommand(DurationCmd())

	return cmd
}

// DurationCmd returns the report duration subcommand
func DurationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duration",
		Short: "Sum the planned case durations over a plan's runs of the last month",
		Long: `Sum the planned case durations over a plan's runs of the last month.

Every finished run in the window counts the plan's full case duration, so the
total is runs x (sum of case durations).`,
		RunE: handler.Command(handler.HandlerFunc(runDuration), func(cmd *cobra.Command, _ []string) error {
			_, err := handler.NewFlagParser(cmd).ParsePlanID()
			return err
		}),
	}

	cmd.Flags().Int("plan", 0, "Plan ID (required)")
	cli.AddOutputFlags(cmd)

	return cmd
}

// DurationOutput is the result of "report duration"
type DurationOutput struct {
	*models.DurationReport
	Formatted string `json:"formatted"`
}

// GetID returns the plan ID, for --quiet
func (o *DurationOutput) GetID() int {
	return o.PlanID
}

// PrintHuman implements cli.HumanPrinter
func (o *DurationOutput) PrintHuman(w io.Writer) error {
	lines := []string{
		styles.TitleStyle.Render(fmt.Sprintf("Plan #%d, last month", o.PlanID)),
		styles.Field("Period", o.PeriodStart+" → "+o.PeriodEnd),
		styles.Field("Runs", fmt.Sprintf("%d", o.ExecutionCount)),
		styles.Field("Per run", reportservice.FormatMinutes(int64(o.PerExecutionDurationSum))),
		styles.Field("Total", o.Formatted),
	}
	_, err := fmt.Fprintln(w, styles.RenderCard(strings.Join(lines, "\n")))
	return err
}

func runDuration(ctx context.Context, args *handler.Arguments) (any, error) {
	planID, err := args.Parser().ParsePlanID()
	if err != nil {
		return nil, err
	}
	r, err := args.CLI.App.ReportService.DurationLastMonth(ctx, planID)
	if err != nil {
		return nil, err
	}
	return &DurationOutput{DurationReport: r, Formatted: reportservice.FormatMinutes(r.TotalDuration)}, nil
}
