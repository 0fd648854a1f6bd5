package api

import (
	"context"

	"github.com/thenoetrevino/testdeck/internal/models"
)

// PlanQuery selects one keyset page of test plans
type PlanQuery struct {
	After  *int   // only plans with a greater ID
	Per    int    // page size; zero lets the backend choose
	Filter string // exact tag match; empty for all plans
}

// Backend is every operation the services need from the REST backend.
// *Client implements it; tests substitute fakes.
type Backend interface {
	ListPlans(ctx context.Context, q PlanQuery) ([]models.TestPlan, error)
	CountPlans(ctx context.Context, tag string) (int, error)
	GetPlan(ctx context.Context, id int) (*models.TestPlan, error)
	GetPlanWithCases(ctx context.Context, id int) (*models.TestPlan, error)
	CreatePlan(ctx context.Context, plan *models.TestPlan) (*models.TestPlan, error)
	UpdatePlan(ctx context.Context, id int, plan *models.TestPlan) (*models.TestPlan, error)
	DeletePlan(ctx context.Context, id int) error

	ListCases(ctx context.Context, planID int) ([]models.TestCase, error)
	GetCase(ctx context.Context, id int) (*models.TestCase, error)
	CreateCase(ctx context.Context, planID int, tc *models.TestCase) (*models.TestCase, error)
	UpdateCase(ctx context.Context, id int, tc *models.TestCase) (*models.TestCase, error)
	DeleteCase(ctx context.Context, id int) error

	ListExecutions(ctx context.Context, planID int) ([]models.TestPlanExecution, error)
	GetExecution(ctx context.Context, id int) (*models.TestPlanExecution, error)
	CreateExecution(ctx context.Context, planID int, exec *models.TestPlanExecution) (*models.TestPlanExecution, error)
	UpdateExecution(ctx context.Context, id int, exec *models.TestPlanExecution) (*models.TestPlanExecution, error)
	DeleteExecution(ctx context.Context, id int) error

	DurationSumLastMonth(ctx context.Context, planID int) (*models.DurationReport, error)
}

var _ Backend = (*Client)(nil)
