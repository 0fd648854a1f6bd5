package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/thenoetrevino/testdeck/internal/logging"
	"github.com/thenoetrevino/testdeck/internal/pagination"
	"go.uber.org/zap"
)

// Preference keys
const (
	WidgetKey     = "dashboardWidget"
	PlanCursorKey = "planListQuery"
)

// Widget is the dashboard duration-report panel setting
type Widget struct {
	Enabled bool `json:"enabled"`
	PlanID  *int `json:"planId,omitempty"`
}

// Active reports whether the widget should be shown for a plan
func (w Widget) Active() bool {
	return w.Enabled && w.PlanID != nil
}

// LoadWidget returns the widget setting. A missing or unreadable value
// yields a disabled widget rather than an error.
func (s *Store) LoadWidget(ctx context.Context) (Widget, error) {
	raw, err := s.Get(ctx, WidgetKey)
	if errors.Is(err, ErrNotFound) {
		return Widget{}, nil
	}
	if err != nil {
		return Widget{}, err
	}

	var w Widget
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		logging.Logger.Warn("ignoring corrupt widget preference", zap.String("value", raw), zap.Error(err))
		return Widget{}, nil
	}
	return w, nil
}

// SaveWidget stores the widget setting
func (s *Store) SaveWidget(ctx context.Context, w Widget) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to encode widget: %w", err)
	}
	return s.Set(ctx, WidgetKey, string(data))
}

// RemoveWidget forgets the widget setting
func (s *Store) RemoveWidget(ctx context.Context) error {
	return s.Delete(ctx, WidgetKey)
}

// LastCursor returns the plan list position saved by SaveCursor, or a
// first-page cursor of size per when nothing usable is stored
func (s *Store) LastCursor(ctx context.Context, per int) (pagination.Cursor, error) {
	raw, err := s.Get(ctx, PlanCursorKey)
	if errors.Is(err, ErrNotFound) {
		return pagination.New(per), nil
	}
	if err != nil {
		return pagination.Cursor{}, err
	}
	q, err := url.ParseQuery(raw)
	if err != nil {
		logging.Logger.Warn("ignoring corrupt list query", zap.String("value", raw), zap.Error(err))
		return pagination.New(per), nil
	}
	return pagination.FromQuery(q), nil
}

// SaveCursor remembers the plan list position as a query string
func (s *Store) SaveCursor(ctx context.Context, c pagination.Cursor) error {
	return s.Set(ctx, PlanCursorKey, c.Query().Encode())
}
