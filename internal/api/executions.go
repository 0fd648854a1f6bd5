package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/thenoetrevino/testdeck/internal/models"
)

// ListExecutions fetches every recorded run of a plan
func (c *Client) ListExecutions(ctx context.Context, planID int) ([]models.TestPlanExecution, error) {
	var execs []models.TestPlanExecution
	target := c.endpoint(nil, "testplans", strconv.Itoa(planID), "executions")
	if err := c.do(ctx, http.MethodGet, target, nil, &execs); err != nil {
		return nil, err
	}
	return execs, nil
}

// GetExecution fetches one run
func (c *Client) GetExecution(ctx context.Context, id int) (*models.TestPlanExecution, error) {
	var exec models.TestPlanExecution
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "executions", strconv.Itoa(id)), nil, &exec); err != nil {
		return nil, err
	}
	return &exec, nil
}

// CreateExecution records a new run of a plan
func (c *Client) CreateExecution(ctx context.Context, planID int, exec *models.TestPlanExecution) (*models.TestPlanExecution, error) {
	var created models.TestPlanExecution
	target := c.endpoint(nil, "testplans", strconv.Itoa(planID), "executions")
	if err := c.do(ctx, http.MethodPost, target, exec, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateExecution replaces a run's status, times and notes
func (c *Client) UpdateExecution(ctx context.Context, id int, exec *models.TestPlanExecution) (*models.TestPlanExecution, error) {
	var updated models.TestPlanExecution
	if err := c.do(ctx, http.MethodPut, c.endpoint(nil, "executions", strconv.Itoa(id)), exec, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteExecution removes a run
func (c *Client) DeleteExecution(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, c.endpoint(nil, "executions", strconv.Itoa(id)), nil, nil)
}

// DurationSumLastMonth fetches the duration report behind the dashboard widget
func (c *Client) DurationSumLastMonth(ctx context.Context, planID int) (*models.DurationReport, error) {
	var report models.DurationReport
	target := c.endpoint(nil, "reports", "testplans", strconv.Itoa(planID), "duration-sum-last-month")
	if err := c.do(ctx, http.MethodGet, target, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
