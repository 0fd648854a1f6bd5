package state

import (
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/pagination"
)

// PlanListState holds the page of plans on screen and the cursor it was
// loaded with.
type PlanListState struct {
	cursor  pagination.Cursor
	plans   []models.TestPlan
	total   int
	loading bool
}

// NewPlanListState starts at cursor with nothing loaded.
func NewPlanListState(cursor pagination.Cursor) *PlanListState {
	return &PlanListState{cursor: cursor}
}

// Cursor returns the position of the current page.
func (s *PlanListState) Cursor() pagination.Cursor { return s.cursor }

// Plans returns the plans of the current page.
func (s *PlanListState) Plans() []models.TestPlan { return s.plans }

// Total returns the number of plans matching the filter.
func (s *PlanListState) Total() int { return s.total }

// Loading reports whether a page request is in flight.
func (s *PlanListState) Loading() bool { return s.loading }

// Request marks cursor as the page being loaded.
func (s *PlanListState) Request(cursor pagination.Cursor) {
	s.cursor = cursor
	s.loading = true
}

// SetPage stores a loaded page. Pages for a cursor other than the one last
// requested are stale and dropped; SetPage reports whether it was kept.
func (s *PlanListState) SetPage(cursor pagination.Cursor, plans []models.TestPlan, total int) bool {
	if !sameCursor(cursor, s.cursor) {
		return false
	}
	s.plans = plans
	s.total = total
	s.loading = false
	return true
}

// Fail clears the loading flag after a failed request.
func (s *PlanListState) Fail() {
	s.loading = false
}

// Plan returns the plan at index i.
func (s *PlanListState) Plan(i int) (models.TestPlan, bool) {
	if i < 0 || i >= len(s.plans) {
		return models.TestPlan{}, false
	}
	return s.plans[i], true
}

// Remove drops a deleted plan from the page.
func (s *PlanListState) Remove(id int) {
	for i, p := range s.plans {
		if p.ID == id {
			s.plans = append(s.plans[:i:i], s.plans[i+1:]...)
			if s.total > 0 {
				s.total--
			}
			return
		}
	}
}

// HasNext reports whether another page may follow.
func (s *PlanListState) HasNext() bool {
	return s.cursor.HasNext(len(s.plans))
}

// NextCursor is the cursor of the following page.
func (s *PlanListState) NextCursor() pagination.Cursor {
	return s.cursor.Next(s.plans)
}

func sameCursor(a, b pagination.Cursor) bool {
	return a.Query().Encode() == b.Query().Encode()
}
