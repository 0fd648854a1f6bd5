package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/tui/theme"
)

// PlanCardProps holds what RenderPlanCard needs
type PlanCardProps struct {
	Plan     models.TestPlan
	Selected bool
	Width    int
}

// RenderPlanCard renders a single plan as a card
//
//	╭──────────────────────────────╮
//	│ #12 {Plan name}       ACTIVE │
//	│ [smoke] [payments]           │
//	╰──────────────────────────────╯
func RenderPlanCard(props PlanCardProps) string {
	style := CardStyle
	if props.Selected {
		style = SelectedCardStyle
	}
	inner := max(props.Width-style.GetHorizontalFrameSize(), 10)

	status := RenderPlanStatus(props.Plan.Status)
	title := TitleStyle.Render(truncate("#"+strconv.Itoa(props.Plan.ID)+" "+props.Plan.Name, inner-lipgloss.Width(status)-1))
	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(status), 1)
	header := title + strings.Repeat(" ", gap) + status

	badges := RenderTagBadges(props.Plan.Tags(), inner)

	// header spans exactly inner, so the card is props.Width wide
	return style.Render(header + "\n" + badges)
}

// RenderPlanStatus colors a plan status
func RenderPlanStatus(s models.PlanStatus) string {
	color := theme.Subtle
	switch s {
	case models.PlanStatusActive:
		color = theme.Create
	case models.PlanStatusDraft:
		color = theme.WarningBg
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(string(s))
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
