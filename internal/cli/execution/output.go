package execution

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/thenoetrevino/testdeck/internal/cli/styles"
	"github.com/thenoetrevino/testdeck/internal/models"
)

// ExecutionOutput is one run as printed by the exec commands
type ExecutionOutput struct {
	*models.TestPlanExecution
	// Elapsed is the run time in whole seconds, absent while running
	Elapsed *int64 `json:"elapsedSeconds,omitempty"`

	action string
}

func newExecutionOutput(e *models.TestPlanExecution, action string) *ExecutionOutput {
	o := &ExecutionOutput{TestPlanExecution: e, action: action}
	if !e.FinishedAt.IsZero() {
		secs := int64(e.Duration() / time.Second)
		o.Elapsed = &secs
	}
	return o
}

// PrintHuman implements cli.HumanPrinter
func (o *ExecutionOutput) PrintHuman(w io.Writer) error {
	if o.action != "" {
		if _, err := fmt.Fprintf(w, "✓ Execution %d %s\n", o.ID, o.action); err != nil {
			return err
		}
	}

	lines := []string{
		styles.TitleStyle.Render(fmt.Sprintf("Execution #%d", o.ID)),
		styles.Field("Plan", fmt.Sprintf("#%d", o.TestPlanID)),
		styles.Field("Status", styles.RenderExecutionStatus(o.Status)),
		styles.Field("Started", o.StartedAt.String()),
	}
	if !o.FinishedAt.IsZero() {
		lines = append(lines,
			styles.Field("Finished", o.FinishedAt.String()),
			styles.Field("Took", o.Duration().String()))
	}
	if o.ResultNotes != "" {
		lines = append(lines, styles.Field("Notes", o.ResultNotes))
	}

	_, err := fmt.Fprintln(w, styles.RenderCard(strings.Join(lines, "\n")))
	return err
}

// ListOutput is the result of "exec list"
type ListOutput struct {
	PlanID     int                        `json:"planId"`
	Executions []models.TestPlanExecution `json:"executions"`
}

// GetIDs returns the run IDs, for --quiet
func (o *ListOutput) GetIDs() []int {
	ids := make([]int, len(o.Executions))
	for i, e := range o.Executions {
		ids[i] = e.ID
	}
	return ids
}

// PrintHuman implements cli.HumanPrinter
func (o *ListOutput) PrintHuman(w io.Writer) error {
	if len(o.Executions) == 0 {
		_, err := fmt.Fprintf(w, "No executions for plan %d\n", o.PlanID)
		return err
	}
	for _, e := range o.Executions {
		took := "-"
		if !e.FinishedAt.IsZero() {
			took = e.Duration().String()
		}
		if _, err := fmt.Fprintf(w, "#%-5d %-10s %-20s %s\n",
			e.ID, styles.RenderExecutionStatus(e.Status), e.StartedAt.String(), took); err != nil {
			return err
		}
	}
	return nil
}
