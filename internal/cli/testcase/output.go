package testcase

import (
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/testdeck/internal/cli/styles"
	"github.com/thenoetrevino/testdeck/internal/models"
	reportservice "github.com/thenoetrevino/testdeck/internal/services/report"
)

// CaseOutput is one test case as printed by the case commands
type CaseOutput struct {
	*models.TestCase

	action string
}

// PrintHuman implements cli.HumanPrinter
func (o *CaseOutput) PrintHuman(w io.Writer) error {
	if o.action != "" {
		if _, err := fmt.Fprintf(w, "✓ Test case '%s' %s (ID: %d)\n", o.Name, o.action, o.ID); err != nil {
			return err
		}
	}

	lines := []string{
		styles.TitleStyle.Render(fmt.Sprintf("#%d %s", o.ID, o.Name)),
		styles.Field("Plan", fmt.Sprintf("#%d", o.TestPlanID)),
		styles.Field("Status", styles.RenderCaseStatus(o.Status)),
		styles.Field("Priority", string(o.Priority)),
		styles.Field("Duration", reportservice.FormatMinutes(int64(o.Duration))),
	}
	if o.Description != "" {
		lines = append(lines, styles.Field("Description", o.Description))
	}
	if o.Steps != "" {
		lines = append(lines, styles.SectionStyle.Render("Steps"), o.Steps)
	}
	if o.ExpectedResult != "" {
		lines = append(lines, styles.SectionStyle.Render("Expected result"), o.ExpectedResult)
	}

	_, err := fmt.Fprintln(w, styles.RenderCard(strings.Join(lines, "\n")))
	return err
}

// CaseListOutput is the result of "case list"
type CaseListOutput struct {
	PlanID int               `json:"planId"`
	Cases  []models.TestCase `json:"cases"`
}

// GetIDs returns the case IDs, for --quiet
func (o *CaseListOutput) GetIDs() []int {
	ids := make([]int, len(o.Cases))
	for i, c := range o.Cases {
		ids[i] = c.ID
	}
	return ids
}

// TotalDuration sums the planned minutes of every case
func (o *CaseListOutput) TotalDuration() int64 {
	var total int64
	for _, c := range o.Cases {
		total += int64(c.Duration)
	}
	return total
}

// PrintHuman implements cli.HumanPrinter
func (o *CaseListOutput) PrintHuman(w io.Writer) error {
	if len(o.Cases) == 0 {
		_, err := fmt.Fprintf(w, "No test cases in plan %d\n", o.PlanID)
		return err
	}
	for _, c := range o.Cases {
		if _, err := fmt.Fprintf(w, "#%-5d %-32s %-10s %-9s %s\n",
			c.ID, c.Name, styles.RenderCaseStatus(c.Status), c.Priority, reportservice.FormatMinutes(int64(c.Duration))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d test cases, %s in total\n", len(o.Cases), reportservice.FormatMinutes(o.TotalDuration()))
	return err
}
