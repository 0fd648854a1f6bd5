package testcase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/models"
)

// MaxNameLength is the longest case name the backend column accepts
const MaxNameLength = 255

// Service defines all test case operations
type Service interface {
	// Read operations
	List(ctx context.Context, planID int) ([]models.TestCase, error)
	Get(ctx context.Context, id int) (*models.TestCase, error)

	// Write operations
	Create(ctx context.Context, req CreateCaseRequest) (*models.TestCase, error)
	Update(ctx context.Context, req UpdateCaseRequest) (*models.TestCase, error)
	SetStatus(ctx context.Context, id int, status models.CaseStatus) (*models.TestCase, error)
	Delete(ctx context.Context, id int) error
}

// CreateCaseRequest encapsulates data for creating a test case
type CreateCaseRequest struct {
	PlanID         int
	Name           string
	Description    string
	Steps          string
	ExpectedResult string
	Status         models.CaseStatus // defaults to PENDING
	Priority       models.Priority   // defaults to MEDIUM
	Duration       int               // minutes
}

// UpdateCaseRequest encapsulates a partial update; nil fields keep their value
type UpdateCaseRequest struct {
	ID             int
	Name           *string
	Description    *string
	Steps          *string
	ExpectedResult *string
	Status         *models.CaseStatus
	Priority       *models.Priority
	Duration       *int
}

type service struct {
	backend api.Backend
}

// NewService creates a new test case service
func NewService(backend api.Backend) Service {
	return &service{backend: backend}
}

// List returns the cases of a plan
func (s *service) List(ctx context.Context, planID int) ([]models.TestCase, error) {
	if planID <= 0 {
		return nil, ErrInvalidPlanID
	}
	cases, err := s.backend.ListCases(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list test cases: %w", err)
	}
	return cases, nil
}

// Get retrieves a single case
func (s *service) Get(ctx context.Context, id int) (*models.TestCase, error) {
	if id <= 0 {
		return nil, ErrInvalidCaseID
	}
	tc, err := s.backend.GetCase(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, id)
	}
	return tc, nil
}

// Create validates and creates a case under its plan
func (s *service) Create(ctx context.Context, req CreateCaseRequest) (*models.TestCase, error) {
	if req.PlanID <= 0 {
		return nil, ErrInvalidPlanID
	}
	tc := &models.TestCase{
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		Steps:          req.Steps,
		ExpectedResult: req.ExpectedResult,
		Status:         req.Status,
		Priority:       req.Priority,
		Duration:       req.Duration,
	}
	if tc.Status == "" {
		tc.Status = models.CaseStatusPending
	}
	if tc.Priority == "" {
		tc.Priority = models.PriorityMedium
	}
	if err := validate(tc); err != nil {
		return nil, err
	}

	created, err := s.backend.CreateCase(ctx, req.PlanID, tc)
	if err != nil {
		return nil, fmt.Errorf("failed to create test case: %w", err)
	}
	return created, nil
}

// Update applies a partial update on top of the stored case
func (s *service) Update(ctx context.Context, req UpdateCaseRequest) (*models.TestCase, error) {
	tc, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		tc.Description = *req.Description
	}
	if req.Steps != nil {
		tc.Steps = *req.Steps
	}
	if req.ExpectedResult != nil {
		tc.ExpectedResult = *req.ExpectedResult
	}
	if req.Status != nil {
		tc.Status = *req.Status
	}
	if req.Priority != nil {
		tc.Priority = *req.Priority
	}
	if req.Duration != nil {
		tc.Duration = *req.Duration
	}
	if err := validate(tc); err != nil {
		return nil, err
	}

	updated, err := s.backend.UpdateCase(ctx, tc.ID, tc)
	if err != nil {
		return nil, fmt.Errorf("failed to update test case: %w", wrapNotFound(err, tc.ID))
	}
	return updated, nil
}

// SetStatus records the outcome of a single case
func (s *service) SetStatus(ctx context.Context, id int, status models.CaseStatus) (*models.TestCase, error) {
	return s.Update(ctx, UpdateCaseRequest{ID: id, Status: &status})
}

// Delete removes a case
func (s *service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidCaseID
	}
	if err := s.backend.DeleteCase(ctx, id); err != nil {
		return wrapNotFound(err, id)
	}
	return nil
}

func validate(tc *models.TestCase) error {
	if tc.Name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(tc.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if !tc.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, tc.Status)
	}
	if !tc.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, tc.Priority)
	}
	if tc.Duration < 0 {
		return ErrNegativeDuration
	}
	return nil
}

func wrapNotFound(err error, id int) error {
	if errors.Is(err, api.ErrNotFound) {
		return fmt.Errorf("%w: %d: %w", ErrCaseNotFound, id, err)
	}
	return err
}
