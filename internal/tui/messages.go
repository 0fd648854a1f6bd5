package tui

import (
	"github.com/thenoetrevino/testdeck/internal/config"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/pagination"
)

// plansLoadedMsg carries one page of plans and the matching total
type plansLoadedMsg struct {
	cursor pagination.Cursor
	plans  []models.TestPlan
	total  int
	err    error
}

// detailLoadedMsg carries everything the detail view shows.
// err is set only when the plan could not be loaded.
type detailLoadedMsg struct {
	plan          *models.TestPlan
	executions    []models.TestPlanExecution
	executionsErr error
	report        *models.DurationReport
	reportErr     error
	err           error
}

// widgetReportMsg carries a refreshed dashboard report
type widgetReportMsg struct {
	planID int
	report *models.DurationReport
	err    error
}

// planDeletedMsg reports the outcome of a delete
type planDeletedMsg struct {
	plan models.TestPlan
	err  error
}

// prefSavedMsg reports a failed preference write; successful writes send nothing
type prefSavedMsg struct {
	what string
	err  error
}

// ConfigReloadedMsg is sent when the config file changes on disk
type ConfigReloadedMsg struct {
	Config *config.Config
}
