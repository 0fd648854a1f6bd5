package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/testdeck/internal/models"
	reportservice "github.com/thenoetrevino/testdeck/internal/services/report"
	"github.com/thenoetrevino/testdeck/internal/tui/components"
	"github.com/thenoetrevino/testdeck/internal/tui/notifications"
	"github.com/thenoetrevino/testdeck/internal/tui/state"
)

const (
	maxCardWidth = 80
	widgetWidth  = 34
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	// Wait for terminal size to be initialized
	if m.ui.Width() == 0 {
		v.Content = "Loading..."
		return v
	}

	var body string
	switch m.ui.Mode() {
	case state.HelpMode:
		body = m.viewHelp()
	case state.DetailMode:
		body = m.viewDetail()
	case state.DeleteConfirmMode:
		body = m.overlay(m.viewDeleteConfirm())
	case state.FilterMode:
		body = m.overlay(m.viewFilter())
	default:
		body = m.viewList()
	}

	if banner := m.errorBanner(); banner != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, banner, body)
	}
	v.Content = lipgloss.JoinVertical(lipgloss.Left, body, m.viewStatusBar())
	return v
}

// errorBanner is the boxed error shown above the list or detail view
func (m Model) errorBanner() string {
	if mode := m.ui.Mode(); mode != state.ListMode && mode != state.DetailMode {
		return ""
	}
	n, ok := m.notifications.Latest()
	if !ok {
		return ""
	}
	return notifications.BannerFromState(n)
}

func (m Model) contentHeight() int {
	h := m.ui.Height() - 1
	if banner := m.errorBanner(); banner != "" {
		h -= lipgloss.Height(banner)
	}
	return max(h, 1)
}

func (m Model) overlay(box string) string {
	return lipgloss.Place(
		m.ui.Width(), m.contentHeight(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

func (m Model) viewList() string {
	cardWidth := min(m.ui.Width()-2, maxCardWidth)
	if m.widget.Visible() {
		cardWidth = min(m.ui.Width()-widgetWidth-3, maxCardWidth)
	}
	cardWidth = max(cardWidth, 20)

	header := components.TitleStyle.Render("Test plans")
	if f := m.list.Cursor().Filter; f != "" {
		header += "  " + components.SubtleStyle.Render("tag:") + " " + components.RenderTagBadge(f)
	}

	rows := []string{header, ""}
	plans := m.list.Plans()
	switch {
	case len(plans) == 0 && m.list.Loading():
		rows = append(rows, components.SubtleStyle.Render("Loading plans…"))
	case len(plans) == 0:
		rows = append(rows, components.SubtleStyle.Render("No test plans found"))
	}
	for i, p := range plans {
		rows = append(rows, components.RenderPlanCard(components.PlanCardProps{
			Plan:     p,
			Selected: i == m.ui.Selected(),
			Width:    cardWidth,
		}))
	}
	rows = append(rows, "", m.pageFooter())

	list := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if !m.widget.Visible() {
		return lipgloss.NewStyle().Height(m.contentHeight()).Render(list)
	}

	panel := components.RenderWidgetPanel(components.WidgetPanelProps{
		PlanID: *m.widget.Widget().PlanID,
		Report: m.widget.Report(),
		Err:    m.widget.Err(),
		Width:  widgetWidth,
	})
	return lipgloss.NewStyle().
		Height(m.contentHeight()).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, list, " ", panel))
}

func (m Model) pageFooter() string {
	cursor := m.list.Cursor()
	parts := []string{fmt.Sprintf("%d of %d plans", len(m.list.Plans()), m.list.Total())}
	if cursor.HasPrevious() {
		parts = append(parts, m.keys.PrevPage.Help().Key+" previous")
	}
	if m.list.HasNext() {
		parts = append(parts, m.keys.NextPage.Help().Key+" next")
	}
	return components.SubtleStyle.Render(strings.Join(parts, " · "))
}

func (m Model) viewDetail() string {
	plan := m.detail.Plan()
	if plan == nil {
		return ""
	}
	width := max(min(m.ui.Width()-2, maxCardWidth), 20)

	rows := []string{
		components.TitleStyle.Render(fmt.Sprintf("#%d %s", plan.ID, plan.Name)) + "  " + components.RenderPlanStatus(plan.Status),
		components.RenderTagBadges(plan.Tags(), width),
		"",
		components.RenderDescription(components.DescriptionProps{
			Description: plan.Description,
			Width:       width,
			Style:       "dark",
		}),
	}

	cases := m.detail.Cases()
	rows = append(rows, components.TitleStyle.Render(fmt.Sprintf("Test cases (%d)", len(cases))))
	if len(cases) == 0 {
		rows = append(rows, components.SubtleStyle.Render("  no test cases"))
	}
	for i, tc := range cases {
		rows = append(rows, components.RenderCaseRow(components.CaseRowProps{
			Case:     tc,
			Selected: i == m.ui.Selected(),
			Expanded: m.detail.Expanded(tc.ID),
			Width:    width,
		}))
	}

	if m.detail.ExecutionsUnavailable() {
		rows = append(rows, "", components.TitleStyle.Render("Executions"),
			components.SubtleStyle.Render("  executions unavailable"))
	} else {
		execs := m.detail.Executions()
		rows = append(rows, "", components.TitleStyle.Render(fmt.Sprintf("Executions (%d)", len(execs))))
		for _, e := range execs {
			rows = append(rows, "  "+executionLine(e))
		}
	}
	switch r := m.detail.Report(); {
	case r != nil:
		rows = append(rows, "", fmt.Sprintf("Last month: %d runs, %s",
			r.ExecutionCount, reportservice.FormatMinutes(r.TotalDuration)))
	case m.detail.ReportUnavailable():
		rows = append(rows, "", "Last month: "+components.SubtleStyle.Render("report unavailable"))
	}

	return lipgloss.NewStyle().Height(m.contentHeight()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func executionLine(e models.TestPlanExecution) string {
	line := fmt.Sprintf("#%d %-8s", e.ID, e.Status)
	if !e.StartedAt.IsZero() {
		line += " " + e.StartedAt.Format("2006-01-02 15:04")
	}
	if d := e.Duration(); d > 0 {
		line += " · " + d.String()
	}
	return line
}

func (m Model) viewDeleteConfirm() string {
	name := ""
	if m.pendingDelete != nil {
		name = m.pendingDelete.Name
	}
	content := fmt.Sprintf("Delete test plan '%s'?\n\n%s confirm · any other key cancels",
		name, m.keys.Confirm.Help().Key)
	return components.DeleteConfirmBoxStyle.Width(min(60, m.ui.Width())).Render(content)
}

func (m Model) viewFilter() string {
	content := "Filter plans by tag\n\n" + m.filter.View() + "\n\n" +
		components.SubtleStyle.Render("enter apply · esc cancel · empty clears")
	return components.FilterBoxStyle.Width(min(50, m.ui.Width())).Render(content)
}

func (m Model) viewHelp() string {
	m.help.ShowAll = true
	box := components.HelpBoxStyle.Render(
		components.TitleStyle.Render("Keyboard shortcuts") + "\n\n" + m.help.View(m.keys),
	)
	return m.overlay(box)
}

func (m Model) viewStatusBar() string {
	left := ""
	if n, ok := m.notifications.Latest(); ok {
		if m.errorBanner() == "" {
			left = notifications.RenderInlineFromState(n)
		}
	} else if m.list.Loading() {
		left = components.SubtleStyle.Render("loading…")
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.ui.Width(),
		Mode:  m.ui.Mode().String(),
		Left:  left,
	})
}
