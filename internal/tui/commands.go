package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/pagination"
	"github.com/thenoetrevino/testdeck/internal/prefs"
	executionservice "github.com/thenoetrevino/testdeck/internal/services/execution"
	reportservice "github.com/thenoetrevino/testdeck/internal/services/report"
	testplanservice "github.com/thenoetrevino/testdeck/internal/services/testplan"
	"golang.org/x/sync/errgroup"
)

// Services are captured when a command is built so a config reload that
// rebinds the App never races with a request in flight.

func loadPlans(ctx context.Context, plans testplanservice.Service, cursor pagination.Cursor) tea.Cmd {
	return func() tea.Msg {
		var (
			page  []models.TestPlan
			total int
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			page, err = plans.List(gctx, cursor)
			return err
		})
		g.Go(func() error {
			var err error
			total, err = plans.Count(gctx, cursor.Filter)
			return err
		})
		err := g.Wait()
		return plansLoadedMsg{cursor: cursor, plans: page, total: total, err: err}
	}
}

// loadDetail fails only when the plan itself cannot be fetched; executions
// and the report come back with their own errors.
func loadDetail(ctx context.Context, plans testplanservice.Service, execs executionservice.Service, reports reportservice.Service, planID int) tea.Cmd {
	return func() tea.Msg {
		msg := detailLoadedMsg{}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.plan, err = plans.GetWithCases(gctx, planID)
			return err
		})
		g.Go(func() error {
			msg.executions, msg.executionsErr = execs.List(gctx, planID)
			return nil
		})
		g.Go(func() error {
			msg.report, msg.reportErr = reports.DurationLastMonth(gctx, planID)
			return nil
		})
		msg.err = g.Wait()
		return msg
	}
}

func loadWidgetReport(ctx context.Context, reports reportservice.Service, planID int) tea.Cmd {
	return func() tea.Msg {
		r, err := reports.DurationLastMonth(ctx, planID)
		return widgetReportMsg{planID: planID, report: r, err: err}
	}
}

func deletePlan(ctx context.Context, plans testplanservice.Service, plan models.TestPlan) tea.Cmd {
	return func() tea.Msg {
		return planDeletedMsg{plan: plan, err: plans.Delete(ctx, plan.ID)}
	}
}

func saveWidget(ctx context.Context, store *prefs.Store, w prefs.Widget) tea.Cmd {
	return func() tea.Msg {
		if err := store.SaveWidget(ctx, w); err != nil {
			return prefSavedMsg{what: "widget", err: err}
		}
		return nil
	}
}

func saveCursor(ctx context.Context, store *prefs.Store, c pagination.Cursor) tea.Cmd {
	return func() tea.Msg {
		if err := store.SaveCursor(ctx, c); err != nil {
			return prefSavedMsg{what: "list position", err: err}
		}
		return nil
	}
}
