package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/testdeck/internal/models"
	reportservice "github.com/thenoetrevino/testdeck/internal/services/report"
)

// WidgetPanelProps holds what RenderWidgetPanel needs
type WidgetPanelProps struct {
	PlanID int
	Report *models.DurationReport
	Err    error
	Width  int
}

// RenderWidgetPanel renders the dashboard duration widget
func RenderWidgetPanel(props WidgetPanelProps) string {
	lines := []string{TitleStyle.Render(fmt.Sprintf("Plan #%d · last month", props.PlanID))}

	switch {
	case props.Err != nil:
		lines = append(lines, SubtleStyle.Render("report unavailable"))
	case props.Report == nil:
		lines = append(lines, SubtleStyle.Render("loading…"))
	default:
		r := props.Report
		lines = append(lines,
			fmt.Sprintf("Runs      %d", r.ExecutionCount),
			fmt.Sprintf("Per run   %s", reportservice.FormatMinutes(int64(r.PerExecutionDurationSum))),
			fmt.Sprintf("Total     %s", reportservice.FormatMinutes(r.TotalDuration)),
		)
	}

	return PanelStyle.Width(props.Width).Render(strings.Join(lines, "\n"))
}
