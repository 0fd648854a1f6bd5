package state

import "github.com/thenoetrevino/testdeck/internal/models"

// DetailState holds the plan opened from the list with its runs and report.
// Cases start collapsed; Toggle expands one.
type DetailState struct {
	plan       *models.TestPlan
	executions []models.TestPlanExecution
	report     *models.DurationReport
	expanded   map[int]bool

	executionsUnavailable bool
	reportUnavailable     bool
}

// NewDetailState creates an empty DetailState.
func NewDetailState() *DetailState {
	return &DetailState{expanded: make(map[int]bool)}
}

// Open resets the state for a freshly loaded plan.
func (s *DetailState) Open(plan *models.TestPlan, executions []models.TestPlanExecution, report *models.DurationReport) {
	s.plan = plan
	s.executions = executions
	s.report = report
	s.expanded = make(map[int]bool)
	s.executionsUnavailable = false
	s.reportUnavailable = false
}

// MarkUnavailable flags the parts of the open plan that failed to load.
func (s *DetailState) MarkUnavailable(executions, report bool) {
	s.executionsUnavailable = executions
	s.reportUnavailable = report
}

// ExecutionsUnavailable reports whether the runs failed to load.
func (s *DetailState) ExecutionsUnavailable() bool { return s.executionsUnavailable }

// ReportUnavailable reports whether last month's report failed to load.
func (s *DetailState) ReportUnavailable() bool { return s.reportUnavailable }

// Close forgets the plan.
func (s *DetailState) Close() {
	s.Open(nil, nil, nil)
}

// Plan returns the open plan, or nil.
func (s *DetailState) Plan() *models.TestPlan { return s.plan }

// Executions returns the runs of the open plan.
func (s *DetailState) Executions() []models.TestPlanExecution { return s.executions }

// Report returns last month's duration report of the open plan.
func (s *DetailState) Report() *models.DurationReport { return s.report }

// Cases returns the cases of the open plan.
func (s *DetailState) Cases() []models.TestCase {
	if s.plan == nil {
		return nil
	}
	return s.plan.TestCases
}

// Toggle flips the collapsed state of the case at index i.
func (s *DetailState) Toggle(i int) {
	cases := s.Cases()
	if i < 0 || i >= len(cases) {
		return
	}
	id := cases[i].ID
	s.expanded[id] = !s.expanded[id]
}

// Expanded reports whether the case with the given ID shows its details.
func (s *DetailState) Expanded(caseID int) bool {
	return s.expanded[caseID]
}
