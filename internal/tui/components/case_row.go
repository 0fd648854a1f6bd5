package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/testdeck/internal/models"
	reportservice "github.com/thenoetrevino/testdeck/internal/services/report"
	"github.com/thenoetrevino/testdeck/internal/tui/theme"
)

// CaseRowProps holds what RenderCaseRow needs
type CaseRowProps struct {
	Case     models.TestCase
	Selected bool
	Expanded bool
	Width    int
}

// RenderCaseRow renders one test case line, followed by its steps and
// expected result when expanded
func RenderCaseRow(props CaseRowProps) string {
	tc := props.Case
	marker := "▸"
	if props.Expanded {
		marker = "▾"
	}

	line := marker + " " + truncate(tc.Name, max(props.Width-30, 10)) + "  " +
		RenderCaseStatus(tc.Status) + "  " +
		SubtleStyle.Render(string(tc.Priority)+" · "+reportservice.FormatMinutes(int64(tc.Duration)))
	if props.Selected {
		line = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Accent)).
			Bold(true).
			Render("> ") + line
	} else {
		line = "  " + line
	}

	if !props.Expanded {
		return line
	}

	var details []string
	if tc.Description != "" {
		details = append(details, tc.Description)
	}
	if tc.Steps != "" {
		details = append(details, "Steps: "+tc.Steps)
	}
	if tc.ExpectedResult != "" {
		details = append(details, "Expected: "+tc.ExpectedResult)
	}
	if len(details) == 0 {
		details = append(details, SubtleStyle.Render("no details"))
	}

	body := lipgloss.NewStyle().
		PaddingLeft(6).
		Width(max(props.Width, 20)).
		Render(strings.Join(details, "\n"))
	return line + "\n" + body
}

// RenderCaseStatus colors a test case status
func RenderCaseStatus(s models.CaseStatus) string {
	color := theme.Subtle
	switch s {
	case models.CaseStatusPass:
		color = theme.Create
	case models.CaseStatusFail:
		color = theme.Delete
	case models.CaseStatusBlocked:
		color = theme.WarningBg
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(s))
}
