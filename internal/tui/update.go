package tui

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/pagination"
	"github.com/thenoetrevino/testdeck/internal/tui/components"
	"github.com/thenoetrevino/testdeck/internal/tui/state"
	"go.uber.org/zap"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case plansLoadedMsg:
		return m.handlePlansLoaded(msg)

	case detailLoadedMsg:
		return m.handleDetailLoaded(msg)

	case widgetReportMsg:
		if p := m.widget.Widget().PlanID; p != nil && *p == msg.planID {
			m.widget.SetReport(msg.report, msg.err)
		}
		if msg.err != nil {
			m.app.Logger.Warn("widget report failed", zap.Int("plan_id", msg.planID), zap.Error(msg.err))
		}
		return m, nil

	case planDeletedMsg:
		return m.handlePlanDeleted(msg)

	case prefSavedMsg:
		m.app.Logger.Warn("failed to save preference", zap.String("what", msg.what), zap.Error(msg.err))
		m.notify(state.LevelWarning, "Could not save "+msg.what)
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)
	}

	if m.ui.Mode() == state.FilterMode {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.notifications.Clear()

	switch m.ui.Mode() {
	case state.FilterMode:
		return m.handleFilterKey(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirmKey(msg)
	case state.HelpMode:
		return m.handleHelpKey(msg)
	case state.DetailMode:
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	plans := m.list.Plans()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.ui.MoveSelection(-1, len(plans))

	case key.Matches(msg, m.keys.Down):
		m.ui.MoveSelection(1, len(plans))

	case key.Matches(msg, m.keys.NextPage):
		if m.list.Loading() {
			return m, nil
		}
		if !m.list.HasNext() {
			m.notify(state.LevelInfo, "Already on the last page")
			return m, nil
		}
		m.beforeNext = &pageSnapshot{cursor: m.list.Cursor(), plans: plans, total: m.list.Total()}
		m.ui.SetSelected(0)
		return m, m.requestPage(m.list.NextCursor())

	case key.Matches(msg, m.keys.PrevPage):
		if m.list.Loading() {
			return m, nil
		}
		cursor := m.list.Cursor()
		if !cursor.HasPrevious() {
			m.notify(state.LevelInfo, "Already on the first page")
			return m, nil
		}
		m.ui.SetSelected(0)
		return m, m.requestPage(cursor.Previous())

	case key.Matches(msg, m.keys.Filter):
		m.ui.SetMode(state.FilterMode)
		m.filter.SetValue(m.list.Cursor().Filter)
		m.filter.CursorEnd()
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Back):
		cursor := m.list.Cursor()
		if cursor.Filter == "" {
			return m, nil
		}
		m.filter.SetValue("")
		m.ui.SetSelected(0)
		return m, m.requestPage(cursor.SetFilter(""))

	case key.Matches(msg, m.keys.Open):
		plan, ok := m.list.Plan(m.ui.Selected())
		if !ok {
			return m, nil
		}
		return m, loadDetail(m.ctx, m.app.PlanService, m.app.ExecutionService, m.app.ReportService, plan.ID)

	case key.Matches(msg, m.keys.Delete):
		plan, ok := m.list.Plan(m.ui.Selected())
		if !ok {
			return m, nil
		}
		m.pendingDelete = &plan
		m.ui.SetMode(state.DeleteConfirmMode)

	case key.Matches(msg, m.keys.ToggleWidget):
		if m.widget.Widget().PlanID == nil {
			m.notify(state.LevelWarning, "No widget plan set. Run: testdeck widget set --plan <id>")
			return m, nil
		}
		w := m.widget.Toggle()
		return m, tea.Batch(saveWidget(m.ctx, m.app.Prefs, w), m.refreshWidget())

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.requestPage(m.list.Cursor()), m.refreshWidget())

	case key.Matches(msg, m.keys.Help):
		m.ui.SetMode(state.HelpMode)
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filter.Blur()
		m.ui.SetMode(state.ListMode)
		m.ui.SetSelected(0)
		return m, m.requestPage(m.list.Cursor().SetFilter(m.filter.Value()))
	case "esc":
		m.filter.Blur()
		m.filter.SetValue(m.list.Cursor().Filter)
		m.ui.SetMode(state.ListMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m Model) handleDeleteConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	plan := m.pendingDelete
	m.pendingDelete = nil
	m.ui.SetMode(state.ListMode)

	if plan == nil || !key.Matches(msg, m.keys.Confirm) {
		m.notify(state.LevelInfo, "Delete cancelled")
		return m, nil
	}
	return m, deletePlan(m.ctx, m.app.PlanService, *plan)
}

func (m Model) handleHelpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back):
		m.ui.CloseHelp()
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	cases := m.detail.Cases()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.detail.Close()
		m.ui.SetMode(state.ListMode)
		m.ui.SetSelected(m.listSelected)
		m.ui.ClampSelection(len(m.list.Plans()))

	case key.Matches(msg, m.keys.Up):
		m.ui.MoveSelection(-1, len(cases))

	case key.Matches(msg, m.keys.Down):
		m.ui.MoveSelection(1, len(cases))

	case key.Matches(msg, m.keys.ToggleCase):
		m.detail.Toggle(m.ui.Selected())

	case key.Matches(msg, m.keys.Refresh):
		if plan := m.detail.Plan(); plan != nil {
			return m, loadDetail(m.ctx, m.app.PlanService, m.app.ExecutionService, m.app.ReportService, plan.ID)
		}

	case key.Matches(msg, m.keys.Help):
		m.ui.SetMode(state.HelpMode)
	}
	return m, nil
}

func (m Model) handlePlansLoaded(msg plansLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.list.Fail()
		m.app.Logger.Error("failed to load plans", zap.Error(msg.err))
		m.notify(state.LevelError, "Failed to load plans: "+errorMessage(msg.err))
		return m, nil
	}

	if len(msg.plans) == 0 && !msg.cursor.IsFirstPage() && m.beforeNext != nil {
		before := m.beforeNext
		m.beforeNext = nil
		m.list.Request(before.cursor)
		m.list.SetPage(before.cursor, before.plans, before.total)
		m.notify(state.LevelInfo, "Already on the last page")
		return m, nil
	}

	if !m.list.SetPage(msg.cursor, msg.plans, msg.total) {
		return m, nil
	}
	m.beforeNext = nil
	if m.ui.Mode() != state.DetailMode {
		m.ui.ClampSelection(len(msg.plans))
	} else {
		m.listSelected = min(m.listSelected, max(len(msg.plans)-1, 0))
	}
	return m, saveCursor(m.ctx, m.app.Prefs, msg.cursor)
}

func (m Model) handleDetailLoaded(msg detailLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.app.Logger.Error("failed to load plan", zap.Error(msg.err))
		m.notify(state.LevelError, "Failed to load plan: "+errorMessage(msg.err))
		return m, nil
	}

	switch m.ui.Mode() {
	case state.ListMode:
		m.listSelected = m.ui.Selected()
		m.ui.SetSelected(0)
		m.ui.SetMode(state.DetailMode)
	case state.DetailMode:
		// refresh keeps the case selection
	default:
		return m, nil
	}

	m.detail.Open(msg.plan, msg.executions, msg.report)
	m.detail.MarkUnavailable(msg.executionsErr != nil, msg.reportErr != nil)
	m.ui.ClampSelection(len(m.detail.Cases()))

	if msg.executionsErr != nil {
		m.app.Logger.Warn("executions unavailable", zap.Int("plan_id", msg.plan.ID), zap.Error(msg.executionsErr))
	}
	if msg.reportErr != nil {
		m.app.Logger.Warn("duration report unavailable", zap.Int("plan_id", msg.plan.ID), zap.Error(msg.reportErr))
	}
	switch {
	case msg.executionsErr != nil && msg.reportErr != nil:
		m.notify(state.LevelWarning, "Executions and report unavailable")
	case msg.executionsErr != nil:
		m.notify(state.LevelWarning, "Executions unavailable")
	case msg.reportErr != nil:
		m.notify(state.LevelWarning, "Report unavailable")
	}
	return m, nil
}

func (m Model) handlePlanDeleted(msg planDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.app.Logger.Error("failed to delete plan", zap.Int("plan_id", msg.plan.ID), zap.Error(msg.err))
		m.notify(state.LevelError, "Failed to delete plan: "+errorMessage(msg.err))
		return m, nil
	}

	m.list.Remove(msg.plan.ID)
	m.ui.ClampSelection(len(m.list.Plans()))
	m.notify(state.LevelSuccess, fmt.Sprintf("Deleted test plan '%s'", msg.plan.Name))

	cursor := m.list.Cursor()
	if len(m.list.Plans()) == 0 && !cursor.IsFirstPage() {
		cursor = cursor.Previous()
	}
	return m, m.requestPage(cursor)
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	cfg := msg.Config
	cmds := []tea.Cmd{waitForConfig(m.configUpdates)}

	apiChanged := m.app.Config.API != cfg.API
	if err := m.app.Apply(cfg); err != nil {
		m.app.Logger.Warn("keeping previous API client", zap.Error(err))
		m.notify(state.LevelWarning, "Config reloaded, invalid API URL ignored")
		apiChanged = false
	} else {
		m.notify(state.LevelSuccess, "Config reloaded")
	}

	m.keys = newKeyMap(cfg.KeyMappings)
	components.InitStyles(cfg.ColorScheme)

	cursor := m.list.Cursor()
	per := cfg.Pagination.PerPage
	switch {
	case per > 0 && per != cursor.Per:
		m.ui.SetSelected(0)
		cmds = append(cmds, m.requestPage(pagination.New(per).SetFilter(cursor.Filter)))
	case apiChanged:
		cmds = append(cmds, m.requestPage(cursor))
	}
	if apiChanged {
		cmds = append(cmds, m.refreshWidget())
	}
	return m, tea.Batch(cmds...)
}

// errorMessage keeps backend errors short enough for the status bar
func errorMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	switch {
	case errors.Is(err, api.ErrNotFound):
		return "not found"
	case errors.Is(err, api.ErrUnavailable):
		return "backend unavailable"
	}
	return err.Error()
}
