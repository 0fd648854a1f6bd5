package testplan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/pagination"
)

// MaxNameLength is the longest plan name the backend column accepts
const MaxNameLength = 255

// Service defines all test plan operations
type Service interface {
	// Read operations
	List(ctx context.Context, cursor pagination.Cursor) ([]models.TestPlan, error)
	Count(ctx context.Context, tag string) (int, error)
	Get(ctx context.Context, id int) (*models.TestPlan, error)
	GetWithCases(ctx context.Context, id int) (*models.TestPlan, error)

	// Write operations
	Create(ctx context.Context, req CreatePlanRequest) (*models.TestPlan, error)
	Update(ctx context.Context, req UpdatePlanRequest) (*models.TestPlan, error)
	Delete(ctx context.Context, id int) error
	AddTags(ctx context.Context, id int, tags []string) (*models.TestPlan, error)
	RemoveTags(ctx context.Context, id int, tags []string) (*models.TestPlan, error)
}

// CreatePlanRequest encapsulates data for creating a test plan
type CreatePlanRequest struct {
	Name        string
	Description string
	Status      models.PlanStatus // defaults to DRAFT
	Tags        []string
}

// UpdatePlanRequest encapsulates a partial update; nil fields keep their value
type UpdatePlanRequest struct {
	ID          int
	Name        *string
	Description *string
	Status      *models.PlanStatus
	Tags        *[]string
}

type service struct {
	backend api.Backend
}

// NewService creates a new test plan service
func NewService(backend api.Backend) Service {
	return &service{backend: backend}
}

// List returns one keyset page of plans
func (s *service) List(ctx context.Context, cursor pagination.Cursor) ([]models.TestPlan, error) {
	plans, err := s.backend.ListPlans(ctx, cursor.PlanQuery())
	if err != nil {
		return nil, fmt.Errorf("failed to list test plans: %w", err)
	}
	return plans, nil
}

// Count returns the number of plans, optionally restricted to a tag
func (s *service) Count(ctx context.Context, tag string) (int, error) {
	n, err := s.backend.CountPlans(ctx, strings.TrimSpace(tag))
	if err != nil {
		return 0, fmt.Errorf("failed to count test plans: %w", err)
	}
	return n, nil
}

// Get retrieves a plan without its cases
func (s *service) Get(ctx context.Context, id int) (*models.TestPlan, error) {
	if id <= 0 {
		return nil, ErrInvalidPlanID
	}
	plan, err := s.backend.GetPlan(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, id)
	}
	return plan, nil
}

// GetWithCases retrieves a plan together with its test cases
func (s *service) GetWithCases(ctx context.Context, id int) (*models.TestPlan, error) {
	if id <= 0 {
		return nil, ErrInvalidPlanID
	}
	plan, err := s.backend.GetPlanWithCases(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, id)
	}
	return plan, nil
}

// Create validates and creates a plan
func (s *service) Create(ctx context.Context, req CreatePlanRequest) (*models.TestPlan, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = models.PlanStatusDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	plan, err := s.backend.CreatePlan(ctx, &models.TestPlan{
		Name:        name,
		Description: req.Description,
		Status:      status,
		TagList:     models.TagsFromStrings(NormalizeTags(req.Tags)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create test plan: %w", err)
	}
	return plan, nil
}

// Update applies a partial update on top of the stored plan
func (s *service) Update(ctx context.Context, req UpdatePlanRequest) (*models.TestPlan, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidPlanID
	}

	var name string
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
	}

	existing, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = name
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}
	if req.Tags != nil {
		existing.TagList = models.TagsFromStrings(NormalizeTags(*req.Tags))
	}

	return s.save(ctx, existing)
}

// Delete removes a plan
func (s *service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidPlanID
	}
	if err := s.backend.DeletePlan(ctx, id); err != nil {
		return wrapNotFound(err, id)
	}
	return nil
}

// AddTags attaches tags that the plan does not carry yet
func (s *service) AddTags(ctx context.Context, id int, tags []string) (*models.TestPlan, error) {
	add := NormalizeTags(tags)
	if len(add) == 0 {
		return nil, ErrNoTags
	}
	plan, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	plan.TagList = models.TagsFromStrings(NormalizeTags(append(plan.Tags(), add...)))
	return s.save(ctx, plan)
}

// RemoveTags detaches the given tags; tags the plan lacks are ignored
func (s *service) RemoveTags(ctx context.Context, id int, tags []string) (*models.TestPlan, error) {
	drop := NormalizeTags(tags)
	if len(drop) == 0 {
		return nil, ErrNoTags
	}
	plan, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	remove := make(map[string]struct{}, len(drop))
	for _, t := range drop {
		remove[t] = struct{}{}
	}
	kept := make([]string, 0, len(plan.TagList))
	for _, t := range plan.Tags() {
		if _, ok := remove[t]; !ok {
			kept = append(kept, t)
		}
	}
	plan.TagList = models.TagsFromStrings(kept)
	return s.save(ctx, plan)
}

func (s *service) save(ctx context.Context, plan *models.TestPlan) (*models.TestPlan, error) {
	plan.TestCases = nil
	updated, err := s.backend.UpdatePlan(ctx, plan.ID, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to update test plan: %w", wrapNotFound(err, plan.ID))
	}
	return updated, nil
}

// NormalizeTags trims tags, drops empty ones and removes duplicates keeping first-seen order
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func wrapNotFound(err error, id int) error {
	if errors.Is(err, api.ErrNotFound) {
		return fmt.Errorf("%w: %d: %w", ErrPlanNotFound, id, err)
	}
	return err
}
