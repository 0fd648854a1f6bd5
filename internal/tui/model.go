// Package tui is the interactive plan browser.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/testdeck/internal/app"
	"github.com/thenoetrevino/testdeck/internal/config"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/pagination"
	"github.com/thenoetrevino/testdeck/internal/prefs"
	"github.com/thenoetrevino/testdeck/internal/tui/state"
	"go.uber.org/zap"
)

// Model represents the application state for the TUI
type Model struct {
	ctx context.Context
	app *app.App

	keys   keyMap
	help   help.Model
	filter textinput.Model

	ui            *state.UIState
	list          *state.PlanListState
	detail        *state.DetailState
	widget        *state.WidgetState
	notifications *state.NotificationState

	// listSelected is the list row to return to when leaving the detail view
	listSelected int
	// pendingDelete is the plan awaiting confirmation in DeleteConfirmMode
	pendingDelete *models.TestPlan
	// beforeNext is the page shown before paging forward, restored when the
	// next page turns out empty
	beforeNext *pageSnapshot

	configUpdates <-chan *config.Config
}

type pageSnapshot struct {
	cursor pagination.Cursor
	plans  []models.TestPlan
	total  int
}

// Option configures a Model
type Option func(*Model)

// WithConfigUpdates feeds reloaded configurations into the model
func WithConfigUpdates(updates <-chan *config.Config) Option {
	return func(m *Model) {
		m.configUpdates = updates
	}
}

// New creates the model, restoring the last list position and the widget
// setting from the preference store
func New(ctx context.Context, a *app.App, opts ...Option) Model {
	per := a.Config.Pagination.PerPage

	cursor, err := a.Prefs.LastCursor(ctx, per)
	if err != nil {
		a.Logger.Warn("failed to load list position", zap.Error(err))
		cursor = pagination.New(per)
	}
	if per > 0 && cursor.Per != per {
		cursor = pagination.New(per).SetFilter(cursor.Filter)
	}

	widget, err := a.Prefs.LoadWidget(ctx)
	if err != nil {
		a.Logger.Warn("failed to load widget setting", zap.Error(err))
		widget = prefs.Widget{}
	}

	filter := textinput.New()
	filter.Placeholder = "tag"
	filter.Prompt = "tag: "
	filter.CharLimit = 64
	filter.SetValue(cursor.Filter)

	m := Model{
		ctx:           ctx,
		app:           a,
		keys:          newKeyMap(a.Config.KeyMappings),
		help:          help.New(),
		filter:        filter,
		ui:            state.NewUIState(),
		list:          state.NewPlanListState(cursor),
		detail:        state.NewDetailState(),
		widget:        state.NewWidgetState(widget),
		notifications: state.NewNotificationState(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init loads the first page, the widget report and starts listening for
// config changes
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.requestPage(m.list.Cursor()),
		m.refreshWidget(),
		waitForConfig(m.configUpdates),
	)
}

func (m Model) requestPage(cursor pagination.Cursor) tea.Cmd {
	m.list.Request(cursor)
	return loadPlans(m.ctx, m.app.PlanService, cursor)
}

func (m Model) refreshWidget() tea.Cmd {
	if !m.widget.Visible() {
		return nil
	}
	return loadWidgetReport(m.ctx, m.app.ReportService, *m.widget.Widget().PlanID)
}

func (m Model) notify(level state.NotificationLevel, message string) {
	m.notifications.Clear()
	m.notifications.Add(level, message)
}
