package state

import (
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/prefs"
)

// WidgetState holds the dashboard widget setting and its last report.
type WidgetState struct {
	widget prefs.Widget
	report *models.DurationReport
	err    error
}

// NewWidgetState creates a WidgetState for a stored setting.
func NewWidgetState(w prefs.Widget) *WidgetState {
	return &WidgetState{widget: w}
}

// Widget returns the setting.
func (s *WidgetState) Widget() prefs.Widget { return s.widget }

// Visible reports whether the panel is drawn.
func (s *WidgetState) Visible() bool { return s.widget.Active() }

// Toggle flips the enabled flag and returns the new setting.
func (s *WidgetState) Toggle() prefs.Widget {
	s.widget.Enabled = !s.widget.Enabled
	return s.widget
}

// Report returns the last loaded report, or nil.
func (s *WidgetState) Report() *models.DurationReport { return s.report }

// Err returns the error of the last refresh, or nil.
func (s *WidgetState) Err() error { return s.err }

// SetReport stores the result of a refresh.
func (s *WidgetState) SetReport(r *models.DurationReport, err error) {
	s.report = r
	s.err = err
}
