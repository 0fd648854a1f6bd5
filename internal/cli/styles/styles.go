package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/testdeck/internal/config/colors"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/tui/components"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Tags:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description", "Test Cases"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Create)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.WarningFg)).
		Background(lipgloss.Color(scheme.WarningBg)).
		Padding(0, 1)

	InfoStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.InfoFg)).
		Background(lipgloss.Color(scheme.InfoBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════


// RenderTagBadges renders tags side by side, or "-" when there are none
func RenderTagBadges(tags []string) string {
	if len(tags) == 0 {
		return SubtitleStyle.Render("-")
	}
	badges := make([]string, len(tags))
	for i, t := range tags {
		badges[i] = components.RenderTagBadge(t)
	}
	return strings.Join(badges, " ")
}

// RenderPlanStatus colors a plan status
func RenderPlanStatus(s models.PlanStatus) string {
	switch s {
	case models.PlanStatusActive:
		return SuccessStyle.Render(string(s))
	case models.PlanStatusDraft:
		return WarningStyle.Render(string(s))
	}
	return SubtitleStyle.Render(string(s))
}

// RenderCaseStatus colors a test case status
func RenderCaseStatus(s models.CaseStatus) string {
	switch s {
	case models.CaseStatusPass:
		return SuccessStyle.Render(string(s))
	case models.CaseStatusFail:
		return ErrorStyle.Render(string(s))
	case models.CaseStatusBlocked:
		return WarningStyle.Render(string(s))
	}
	return SubtitleStyle.Render(string(s))
}

// RenderExecutionStatus colors an execution status
func RenderExecutionStatus(s models.ExecutionStatus) string {
	switch s {
	case models.ExecutionPassed:
		return SuccessStyle.Render(string(s))
	case models.ExecutionFailed:
		return ErrorStyle.Render(string(s))
	case models.ExecutionRunning:
		return InfoStyle.Render(string(s))
	}
	return WarningStyle.Render(string(s))
}

// Field renders "Label: value"
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
