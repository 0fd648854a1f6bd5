package plan

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/thenoetrevino/testdeck/internal/cli/styles"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/pagination"
	reportservice "github.com/thenoetrevino/testdeck/internal/services/report"
	"github.com/thenoetrevino/testdeck/internal/tagcolor"
	"github.com/thenoetrevino/testdeck/internal/tui/components"
)

// descriptionWidth is the wrap width for markdown descriptions in "plan show"
const descriptionWidth = 80

// PlanOutput is one plan as printed by the plan commands.
// Badges carry the computed tag colors so scripts can reuse them.
type PlanOutput struct {
	*models.TestPlan
	Badges []tagcolor.Badge `json:"badges"`

	action string
}

func newPlanOutput(p *models.TestPlan, action string) *PlanOutput {
	tags := p.Tags()
	badges := make([]tagcolor.Badge, len(tags))
	for i, t := range tags {
		badges[i] = tagcolor.BadgeFor(t)
	}
	return &PlanOutput{TestPlan: p, Badges: badges, action: action}
}

// PrintHuman implements cli.HumanPrinter
func (o *PlanOutput) PrintHuman(w io.Writer) error {
	if o.action != "" {
		if _, err := fmt.Fprintf(w, "✓ Test plan '%s' %s (ID: %d)\n", o.Name, o.action, o.ID); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, styles.RenderCard(o.summary()))
	return err
}

func (o *PlanOutput) summary() string {
	lines := []string{
		styles.TitleStyle.Render(fmt.Sprintf("#%d %s", o.ID, o.Name)),
		styles.Field("Status", styles.RenderPlanStatus(o.Status)),
		styles.Field("Tags", styles.RenderTagBadges(o.Tags())),
	}
	if !o.CreatedAt.IsZero() {
		lines = append(lines, styles.Field("Created", o.CreatedAt.String()))
	}
	return strings.Join(lines, "\n")
}

// PlanListOutput is one page of "plan list"
type PlanListOutput struct {
	Plans       []*PlanOutput     `json:"plans"`
	Total       int               `json:"total"`
	Cursor      pagination.Cursor `json:"cursor"`
	HasNext     bool              `json:"hasNext"`
	HasPrevious bool              `json:"hasPrevious"`
}

func newPlanListOutput(page []models.TestPlan, total int, cursor pagination.Cursor) *PlanListOutput {
	plans := make([]*PlanOutput, len(page))
	for i := range page {
		plans[i] = newPlanOutput(&page[i], "")
	}
	return &PlanListOutput{
		Plans:       plans,
		Total:       total,
		Cursor:      cursor,
		HasNext:     cursor.HasNext(len(page)),
		HasPrevious: cursor.HasPrevious(),
	}
}

// GetIDs returns the IDs on the page, for --quiet
func (o *PlanListOutput) GetIDs() []int {
	ids := make([]int, len(o.Plans))
	for i, p := range o.Plans {
		ids[i] = p.ID
	}
	return ids
}

// PrintHuman implements cli.HumanPrinter
func (o *PlanListOutput) PrintHuman(w io.Writer) error {
	if len(o.Plans) == 0 {
		_, err := fmt.Fprintln(w, "No test plans found")
		return err
	}

	for _, p := range o.Plans {
		if _, err := fmt.Fprintf(w, "%-6s %-32s %-10s %s\n",
			fmt.Sprintf("#%d", p.ID), p.Name, styles.RenderPlanStatus(p.Status), styles.RenderTagBadges(p.Tags())); err != nil {
			return err
		}
	}

	footer := fmt.Sprintf("\n%d of %d test plans", len(o.Plans), o.Total)
	if o.Cursor.Filter != "" {
		footer += fmt.Sprintf(" tagged %s", components.RenderTagBadge(o.Cursor.Filter))
	}
	var hints []string
	if o.HasPrevious {
		hints = append(hints, "--previous")
	}
	if o.HasNext {
		hints = append(hints, "--next")
	}
	if len(hints) > 0 {
		footer += styles.SubtitleStyle.Render(" (more: " + strings.Join(hints, ", ") + ")")
	}
	_, err := fmt.Fprintln(w, footer)
	return err
}

// CountOutput is the result of "plan count"
type CountOutput struct {
	Count int    `json:"count"`
	Tag   string `json:"tag,omitempty"`
}

// PrintHuman implements cli.HumanPrinter
func (o *CountOutput) PrintHuman(w io.Writer) error {
	if o.Tag == "" {
		_, err := fmt.Fprintf(w, "%d test plans\n", o.Count)
		return err
	}
	_, err := fmt.Fprintf(w, "%d test plans tagged %s\n", o.Count, components.RenderTagBadge(o.Tag))
	return err
}

// DetailOutput is the result of "plan show"
type DetailOutput struct {
	Plan       *PlanOutput                `json:"plan"`
	Executions []models.TestPlanExecution `json:"executions"`
	Report     *models.DurationReport     `json:"report"`
	Warnings   []string                   `json:"warnings,omitempty"`
}

func (o *DetailOutput) warned(w string) bool {
	return slices.Contains(o.Warnings, w)
}

// GetID returns the plan ID, for --quiet
func (o *DetailOutput) GetID() int {
	return o.Plan.ID
}

// PrintHuman implements cli.HumanPrinter
func (o *DetailOutput) PrintHuman(w io.Writer) error {
	var b strings.Builder
	b.WriteString(o.Plan.summary())
	b.WriteString("\n\n")
	b.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: o.Plan.Description,
		Width:       descriptionWidth,
	}))

	if len(o.Plan.TestCases) > 0 {
		b.WriteString("\n\n")
		b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Test cases (%d)", len(o.Plan.TestCases))))
		for _, tc := range o.Plan.TestCases {
			fmt.Fprintf(&b, "\n  #%-5d %-30s %-8s %-8s %s",
				tc.ID, tc.Name, styles.RenderCaseStatus(tc.Status), tc.Priority, reportservice.FormatMinutes(int64(tc.Duration)))
		}
	}

	b.WriteString("\n\n")
	if o.warned("executions unavailable") {
		b.WriteString(styles.SectionStyle.Render("Executions"))
		b.WriteString("\n  " + styles.WarningStyle.Render("executions unavailable"))
	} else {
		b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Executions (%d)", len(o.Executions))))
		for _, e := range o.Executions {
			fmt.Fprintf(&b, "\n  #%-5d %-8s %s", e.ID, styles.RenderExecutionStatus(e.Status), e.StartedAt.String())
		}
	}

	switch {
	case o.Report != nil:
		b.WriteString("\n\n")
		b.WriteString(styles.Field("Last month", fmt.Sprintf("%d runs, %s",
			o.Report.ExecutionCount, reportservice.FormatMinutes(o.Report.TotalDuration))))
	case o.warned("report unavailable"):
		b.WriteString("\n\n")
		b.WriteString(styles.Field("Last month", styles.WarningStyle.Render("report unavailable")))
	}

	_, err := fmt.Fprintln(w, styles.RenderCard(b.String()))
	return err
}
