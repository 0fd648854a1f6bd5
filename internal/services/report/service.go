package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/models"
)

// Service defines the reporting operations
type Service interface {
	// DurationLastMonth sums case durations over the plan's runs of the past month
	DurationLastMonth(ctx context.Context, planID int) (*models.DurationReport, error)
}

type service struct {
	backend api.Backend
}

// NewService creates a new report service
func NewService(backend api.Backend) Service {
	return &service{backend: backend}
}

func (s *service) DurationLastMonth(ctx context.Context, planID int) (*models.DurationReport, error) {
	if planID <= 0 {
		return nil, ErrInvalidPlanID
	}
	report, err := s.backend.DurationSumLastMonth(ctx, planID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d: %w", ErrPlanNotFound, planID, err)
		}
		return nil, fmt.Errorf("failed to load duration report: %w", err)
	}
	return report, nil
}

// FormatMinutes renders a minute count as "2h 05m", or "45m" below an hour
func FormatMinutes(minutes int64) string {
	if minutes < 0 {
		return "-" + FormatMinutes(-minutes)
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
