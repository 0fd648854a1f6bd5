package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thenoetrevino/testdeck/internal/models"
)

// ListPlans fetches one keyset page: GET /testplans?after&per&filter
func (c *Client) ListPlans(ctx context.Context, q PlanQuery) ([]models.TestPlan, error) {
	query := url.Values{}
	if q.After != nil {
		query.Set("after", strconv.Itoa(*q.After))
	}
	if q.Per > 0 {
		query.Set("per", strconv.Itoa(q.Per))
	}
	if q.Filter != "" {
		query.Set("filter", q.Filter)
	}

	var plans []models.TestPlan
	if err := c.do(ctx, http.MethodGet, c.endpoint(query, "testplans"), nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// CountPlans counts plans, optionally only those carrying tag
func (c *Client) CountPlans(ctx context.Context, tag string) (int, error) {
	query := url.Values{}
	if tag != "" {
		query.Set("tag", tag)
	}

	var count models.PlanCount
	if err := c.do(ctx, http.MethodGet, c.endpoint(query, "testplans", "count"), nil, &count); err != nil {
		return 0, err
	}
	return count.Count, nil
}

// GetPlan fetches a plan and its tags without test cases
func (c *Client) GetPlan(ctx context.Context, id int) (*models.TestPlan, error) {
	var plan models.TestPlan
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "testplans", strconv.Itoa(id)), nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetPlanWithCases fetches a plan with its test cases embedded
func (c *Client) GetPlanWithCases(ctx context.Context, id int) (*models.TestPlan, error) {
	var plan models.TestPlan
	target := c.endpoint(nil, "testplans", strconv.Itoa(id), "with-testcases")
	if err := c.do(ctx, http.MethodGet, target, nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// CreatePlan creates a plan with its tags and returns the stored plan
func (c *Client) CreatePlan(ctx context.Context, plan *models.TestPlan) (*models.TestPlan, error) {
	var created models.TestPlan
	if err := c.do(ctx, http.MethodPost, c.endpoint(nil, "testplans"), plan, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePlan replaces a plan's fields and tag list
func (c *Client) UpdatePlan(ctx context.Context, id int, plan *models.TestPlan) (*models.TestPlan, error) {
	var updated models.TestPlan
	if err := c.do(ctx, http.MethodPut, c.endpoint(nil, "testplans", strconv.Itoa(id)), plan, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePlan removes a plan
func (c *Client) DeletePlan(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, c.endpoint(nil, "testplans", strconv.Itoa(id)), nil, nil)
}
