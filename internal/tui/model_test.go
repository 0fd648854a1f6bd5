package tui

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/testdeck/internal/config"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/pagination"
	"github.com/thenoetrevino/testdeck/internal/prefs"
	"github.com/thenoetrevino/testdeck/internal/testutil"
	"github.com/thenoetrevino/testdeck/internal/tui/state"
)

func seedPlans(fb *testutil.FakeBackend, n int, tags ...string) []int {
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fb.SeedPlan(fmt.Sprintf("Plan %d", i+1), models.PlanStatusActive, tags...))
	}
	return ids
}

func planNames(m Model) []string {
	var names []string
	for _, p := range m.list.Plans() {
		names = append(names, p.Name)
	}
	return names
}

func latestMessage(t *testing.T, m Model) state.Notification {
	t.Helper()
	n, ok := m.notifications.Latest()
	require.True(t, ok, "expected a notification")
	return n
}

// ============================================================================
// Plan list
// ============================================================================

func TestModel_InitLoadsFirstPage(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	seedPlans(fb, 6, "smoke")

	m = start(t, m)

	assert.Equal(t, []string{"Plan 1", "Plan 2", "Plan 3", "Plan 4"}, planNames(m))
	assert.Equal(t, 6, m.list.Total())
	assert.False(t, m.list.Loading())

	view := viewText(m)
	assert.Contains(t, view, "Test plans")
	assert.Contains(t, view, "Plan 4")
	assert.Contains(t, view, "smoke")
	assert.Contains(t, view, "4 of 6 plans")
	assert.Contains(t, view, "press ? for help")
}

func TestModel_ViewBeforeResize(t *testing.T) {
	_, a := setupBare(t)
	m := New(context.Background(), a)
	assert.Equal(t, "Loading...", m.View().Content)
	assert.True(t, m.View().AltScreen)
}

func TestModel_Paging(t *testing.T) {
	m, fb, a := setupTestModel(t)
	seedPlans(fb, 6)
	m = start(t, m)

	m = press(t, m, "n")
	assert.Equal(t, []string{"Plan 5", "Plan 6"}, planNames(m))
	assert.Equal(t, 0, m.ui.Selected())

	saved, err := a.Prefs.LastCursor(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, m.list.Cursor().Query().Encode(), saved.Query().Encode())

	m = press(t, m, "n")
	assert.Equal(t, "Already on the last page", latestMessage(t, m).Message)

	m = press(t, m, "p")
	assert.Equal(t, []string{"Plan 1", "Plan 2", "Plan 3", "Plan 4"}, planNames(m))

	m = press(t, m, "p")
	assert.Equal(t, "Already on the first page", latestMessage(t, m).Message)
}

func TestModel_NextPageEmptyKeepsCurrentPage(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	seedPlans(fb, 4)
	m = start(t, m)
	require.True(t, m.list.HasNext())

	m = press(t, m, "n")

	assert.Equal(t, []string{"Plan 1", "Plan 2", "Plan 3", "Plan 4"}, planNames(m))
	assert.True(t, m.list.Cursor().IsFirstPage())
	assert.Equal(t, "Already on the last page", latestMessage(t, m).Message)
}

func TestModel_SelectionStaysInPage(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	seedPlans(fb, 3)
	m = start(t, m)

	m = press(t, m, "j", "j", "j", "j")
	assert.Equal(t, 2, m.ui.Selected())

	m = press(t, m, "k", "k", "k")
	assert.Equal(t, 0, m.ui.Selected())
}

func TestModel_RestoresSavedPosition(t *testing.T) {
	fb, a := setupBare(t)
	seedPlans(fb, 2, "ui")
	seedPlans(fb, 2, "smoke")
	require.NoError(t, a.Prefs.SaveCursor(context.Background(), pagination.New(4).SetFilter("smoke")))

	m := start(t, newSizedModel(a))

	assert.Equal(t, "smoke", m.list.Cursor().Filter)
	assert.Len(t, m.list.Plans(), 2)
	assert.Contains(t, viewText(m), "tag:")
}

func TestModel_LoadFailureNotifies(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	fb.FailNext(http.MethodGet, "/api/testplans", http.StatusInternalServerError)

	m = start(t, m)

	n := latestMessage(t, m)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Contains(t, n.Message, "Failed to load plans")
	assert.False(t, m.list.Loading())

	view := viewText(m)
	assert.Contains(t, view, "No test plans found")
	assert.Contains(t, view, "✕ Error", "errors get a banner above the list")
	assert.Contains(t, view, n.Message)
}

// ============================================================================
// Filter
// ============================================================================

func TestModel_FilterByTag(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	seedPlans(fb, 3, "smoke")
	fb.SeedPlan("UI plan", models.PlanStatusDraft, "ui")
	m = start(t, m)

	m = press(t, m, "/")
	assert.Equal(t, state.FilterMode, m.ui.Mode())
	assert.Contains(t, viewText(m), "Filter plans by tag")

	m = typeText(t, m, "ui")
	m = press(t, m, "enter")

	assert.Equal(t, state.ListMode, m.ui.Mode())
	assert.Equal(t, "ui", m.list.Cursor().Filter)
	assert.Equal(t, []string{"UI plan"}, planNames(m))
	assert.Equal(t, 1, m.list.Total())

	m = press(t, m, "esc")
	assert.Empty(t, m.list.Cursor().Filter)
	assert.Len(t, m.list.Plans(), 4)
}

func TestModel_FilterEscCancels(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	seedPlans(fb, 2)
	m = start(t, m)

	m = press(t, m, "/")
	m = typeText(t, m, "nothing")
	m = press(t, m, "esc")

	assert.Equal(t, state.ListMode, m.ui.Mode())
	assert.Empty(t, m.list.Cursor().Filter)
	assert.Empty(t, m.filter.Value())
	assert.Len(t, m.list.Plans(), 2)
}

// ============================================================================
// Detail
// ============================================================================

func TestModel_OpenDetailAndToggleCases(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	planID := fb.SeedPlan("Checkout", models.PlanStatusActive, "payments")
	first := fb.SeedCase(planID, "Pay by card", 5)
	fb.SeedCase(planID, "Refund", 3)
	fb.SeedExecution(planID, time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour), models.ExecutionPassed)
	m = start(t, m)

	m = press(t, m, "enter")
	require.Equal(t, state.DetailMode, m.ui.Mode())
	require.NotNil(t, m.detail.Plan())
	assert.Len(t, m.detail.Cases(), 2)
	assert.Len(t, m.detail.Executions(), 1)

	view := viewText(m)
	assert.Contains(t, view, "#"+fmt.Sprint(planID)+" Checkout")
	assert.Contains(t, view, "Test cases (2)")
	assert.Contains(t, view, "Executions (1)")
	assert.Contains(t, view, "No description")

	m = press(t, m, "space")
	assert.True(t, m.detail.Expanded(first))

	m = press(t, m, "j", "space")
	assert.True(t, m.detail.Expanded(first))
	assert.Equal(t, 1, m.ui.Selected())

	m = press(t, m, "esc")
	assert.Equal(t, state.ListMode, m.ui.Mode())
	assert.Nil(t, m.detail.Plan())
	assert.Equal(t, 0, m.ui.Selected())
}

func TestModel_OpenDetailRestoresListSelection(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	ids := seedPlans(fb, 3)
	m = start(t, m)

	m = press(t, m, "j", "j", "enter")
	require.Equal(t, state.DetailMode, m.ui.Mode())
	assert.Equal(t, ids[2], m.detail.Plan().ID)

	m = press(t, m, "esc")
	assert.Equal(t, 2, m.ui.Selected())
}

func TestModel_OpenDetailOfDeletedPlan(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	seedPlans(fb, 1)
	m = start(t, m)
	fb.FailNext(http.MethodGet, fmt.Sprintf("/api/testplans/%d/with-testcases", m.list.Plans()[0].ID), http.StatusNotFound)

	m = press(t, m, "enter")

	assert.Equal(t, state.ListMode, m.ui.Mode())
	assert.Equal(t, state.LevelError, latestMessage(t, m).Level)
}

func TestModel_OpenDetailWithFailingReport(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	planID := fb.SeedPlan("Checkout", models.PlanStatusActive)
	fb.SeedExecution(planID, time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour), models.ExecutionPassed)
	m = start(t, m)
	fb.FailNext(http.MethodGet, fmt.Sprintf("/api/reports/testplans/%d/duration-sum-last-month", planID), http.StatusInternalServerError)

	m = press(t, m, "enter")

	require.Equal(t, state.DetailMode, m.ui.Mode())
	require.NotNil(t, m.detail.Plan())
	assert.Len(t, m.detail.Executions(), 1)
	assert.True(t, m.detail.ReportUnavailable())
	assert.Equal(t, state.Notification{Level: state.LevelWarning, Message: "Report unavailable"}, latestMessage(t, m))
	assert.Contains(t, viewText(m), "Last month: report unavailable")
}

func TestModel_OpenDetailWithFailingExecutions(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	planID := fb.SeedPlan("Checkout", models.PlanStatusActive)
	m = start(t, m)
	fb.FailNext(http.MethodGet, fmt.Sprintf("/api/testplans/%d/executions", planID), http.StatusInternalServerError)

	m = press(t, m, "enter")

	require.Equal(t, state.DetailMode, m.ui.Mode())
	assert.True(t, m.detail.ExecutionsUnavailable())
	assert.False(t, m.detail.ReportUnavailable())
	assert.Equal(t, "Executions unavailable", latestMessage(t, m).Message)
	assert.Contains(t, viewText(m), "executions unavailable")
}

// ============================================================================
// Delete
// ============================================================================

func TestModel_DeleteConfirmed(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	ids := seedPlans(fb, 2)
	m = start(t, m)

	m = press(t, m, "d")
	assert.Equal(t, state.DeleteConfirmMode, m.ui.Mode())
	assert.Contains(t, viewText(m), "Delete test plan 'Plan 1'?")

	m = press(t, m, "y")

	assert.Equal(t, state.ListMode, m.ui.Mode())
	assert.Nil(t, fb.Plan(ids[0]))
	assert.Equal(t, []string{"Plan 2"}, planNames(m))
	assert.Equal(t, 1, m.list.Total())
	assert.Equal(t, state.Notification{Level: state.LevelSuccess, Message: "Deleted test plan 'Plan 1'"}, latestMessage(t, m))
	assert.NotContains(t, viewText(m), "✕ Error")
}

func TestModel_DeleteCancelled(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	ids := seedPlans(fb, 2)
	m = start(t, m)

	m = press(t, m, "d", "n")

	assert.Equal(t, state.ListMode, m.ui.Mode())
	assert.NotNil(t, fb.Plan(ids[0]))
	assert.Len(t, m.list.Plans(), 2)
	assert.Equal(t, "Delete cancelled", latestMessage(t, m).Message)
}

func TestModel_DeleteLastPlanOnPageStepsBack(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	seedPlans(fb, 5)
	m = start(t, m)
	m = press(t, m, "n")
	require.Equal(t, []string{"Plan 5"}, planNames(m))

	m = press(t, m, "d", "y")

	assert.True(t, m.list.Cursor().IsFirstPage())
	assert.Len(t, m.list.Plans(), 4)
}

// ============================================================================
// Widget
// ============================================================================

func TestModel_WidgetToggle(t *testing.T) {
	fb, a := setupBare(t)
	planID := fb.SeedPlan("Checkout", models.PlanStatusActive)
	fb.SeedCase(planID, "a", 30)
	fb.SeedExecution(planID, time.Now().Add(-48*time.Hour), time.Now().Add(-47*time.Hour), models.ExecutionPassed)
	require.NoError(t, a.Prefs.SaveWidget(context.Background(), prefs.Widget{PlanID: &planID}))

	m := start(t, newSizedModel(a))
	assert.False(t, m.widget.Visible())

	m = press(t, m, "w")
	require.True(t, m.widget.Visible())
	require.NotNil(t, m.widget.Report())
	assert.Equal(t, 1, m.widget.Report().ExecutionCount)
	assert.Contains(t, viewText(m), "last month")

	stored, err := a.Prefs.LoadWidget(context.Background())
	require.NoError(t, err)
	assert.True(t, stored.Enabled)

	m = press(t, m, "w")
	assert.False(t, m.widget.Visible())
	assert.NotContains(t, viewText(m), "last month")
}

func TestModel_WidgetWithoutPlanWarns(t *testing.T) {
	m, _, _ := setupTestModel(t)
	m = start(t, m)

	m = press(t, m, "w")

	assert.False(t, m.widget.Visible())
	assert.Equal(t, state.LevelWarning, latestMessage(t, m).Level)
}

func TestModel_RefreshReloadsPage(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	seedPlans(fb, 1)
	m = start(t, m)

	fb.SeedPlan("Late arrival", models.PlanStatusDraft)
	m = press(t, m, "r")

	assert.Equal(t, []string{"Plan 1", "Late arrival"}, planNames(m))
}

// ============================================================================
// Help, quit, config
// ============================================================================

func TestModel_HelpOpensAndCloses(t *testing.T) {
	m, _, _ := setupTestModel(t)
	m = start(t, m)

	m = press(t, m, "?")
	assert.Equal(t, state.HelpMode, m.ui.Mode())
	assert.Contains(t, viewText(m), "Keyboard shortcuts")

	m = press(t, m, "?")
	assert.Equal(t, state.ListMode, m.ui.Mode())
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := setupTestModel(t)
	m = start(t, m)

	_, cmd := updateModel(m, keyMsg("q"))
	_, quit := drain(t, m, cmd)
	assert.True(t, quit)

	_, cmd = updateModel(m, keyMsg("ctrl+c"))
	_, quit = drain(t, m, cmd)
	assert.True(t, quit)
}

func TestModel_ConfigReloadAppliesPageSize(t *testing.T) {
	m, fb, a := setupTestModel(t)
	seedPlans(fb, 5)
	m = start(t, m)
	require.Len(t, m.list.Plans(), 4)

	cfg := config.Default()
	cfg.Pagination.PerPage = 2
	cfg.KeyMappings.NextPage = "l"
	m, cmd := updateModel(m, ConfigReloadedMsg{Config: cfg})
	m, _ = drain(t, m, cmd)

	assert.Equal(t, 2, a.Config.Pagination.PerPage)
	assert.Equal(t, []string{"Plan 1", "Plan 2"}, planNames(m))
	assert.Equal(t, state.Notification{Level: state.LevelSuccess, Message: "Config reloaded"}, latestMessage(t, m))

	m = press(t, m, "l")
	assert.Equal(t, []string{"Plan 3", "Plan 4"}, planNames(m))
}

func TestModel_ConfigReloadSwitchesBackend(t *testing.T) {
	m, fb, _ := setupTestModel(t)
	seedPlans(fb, 1)
	m = start(t, m)

	other := testutil.NewFakeBackend(t)
	other.SeedPlan("Remote", models.PlanStatusActive)
	cfg := config.Default()
	cfg.API.BaseURL = other.URL()

	m, cmd := updateModel(m, ConfigReloadedMsg{Config: cfg})
	m, _ = drain(t, m, cmd)

	assert.Equal(t, []string{"Remote"}, planNames(m))
}

func TestWaitForConfig(t *testing.T) {
	assert.Nil(t, waitForConfig(nil))

	updates := make(chan *config.Config, 1)
	cfg := config.Default()
	updates <- cfg
	msg := waitForConfig(updates)()
	assert.Equal(t, ConfigReloadedMsg{Config: cfg}, msg)

	close(updates)
	assert.Nil(t, waitForConfig(updates)())
}
