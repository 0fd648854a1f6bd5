package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/models"
)

// Service defines all test plan execution operations
type Service interface {
	// Read operations
	List(ctx context.Context, planID int) ([]models.TestPlanExecution, error)
	Get(ctx context.Context, id int) (*models.TestPlanExecution, error)

	// Write operations
	Start(ctx context.Context, planID int, notes string) (*models.TestPlanExecution, error)
	Finish(ctx context.Context, id int, outcome models.ExecutionStatus, notes string) (*models.TestPlanExecution, error)
	Delete(ctx context.Context, id int) error
}

// Option configures the service
type Option func(*service)

// WithClock replaces time.Now for start and finish stamps
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	backend api.Backend
	now     func() time.Time
}

// NewService creates a new execution service
func NewService(backend api.Backend, opts ...Option) Service {
	s := &service{backend: backend, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the runs of a plan
func (s *service) List(ctx context.Context, planID int) ([]models.TestPlanExecution, error) {
	if planID <= 0 {
		return nil, ErrInvalidPlanID
	}
	execs, err := s.backend.ListExecutions(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	return execs, nil
}

// Get retrieves a single run
func (s *service) Get(ctx context.Context, id int) (*models.TestPlanExecution, error) {
	if id <= 0 {
		return nil, ErrInvalidExecutionID
	}
	exec, err := s.backend.GetExecution(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, id)
	}
	return exec, nil
}

// Start opens a RUNNING execution stamped with the current time
func (s *service) Start(ctx context.Context, planID int, notes string) (*models.TestPlanExecution, error) {
	if planID <= 0 {
		return nil, ErrInvalidPlanID
	}
	exec, err := s.backend.CreateExecution(ctx, planID, &models.TestPlanExecution{
		Status:      models.ExecutionRunning,
		StartedAt:   models.NewTimestamp(s.now()),
		ResultNotes: notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start execution: %w", err)
	}
	return exec, nil
}

// Finish closes a running execution with a terminal outcome.
// Empty notes keep whatever was recorded at start.
func (s *service) Finish(ctx context.Context, id int, outcome models.ExecutionStatus, notes string) (*models.TestPlanExecution, error) {
	if !outcome.Terminal() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}
	exec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if exec.Status.Terminal() {
		return nil, fmt.Errorf("%w: %d is %s", ErrAlreadyFinished, id, exec.Status)
	}

	finished := models.NewTimestamp(s.now())
	if !exec.StartedAt.IsZero() && finished.Before(exec.StartedAt.Time) {
		return nil, fmt.Errorf("%w: started %s, finished %s", ErrFinishBeforeStart, exec.StartedAt, finished)
	}

	exec.Status = outcome
	exec.FinishedAt = finished
	if notes != "" {
		exec.ResultNotes = notes
	}
	updated, err := s.backend.UpdateExecution(ctx, id, exec)
	if err != nil {
		return nil, fmt.Errorf("failed to finish execution: %w", wrapNotFound(err, id))
	}
	return updated, nil
}

// Delete removes a run
func (s *service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidExecutionID
	}
	if err := s.backend.DeleteExecution(ctx, id); err != nil {
		return wrapNotFound(err, id)
	}
	return nil
}

func wrapNotFound(err error, id int) error {
	if errors.Is(err, api.ErrNotFound) {
		return fmt.Errorf("%w: %d: %w", ErrExecutionNotFound, id, err)
	}
	return err
}
