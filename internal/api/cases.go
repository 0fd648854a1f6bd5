package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/thenoetrevino/testdeck/internal/models"
)

// ListCases fetches every test case of a plan
func (c *Client) ListCases(ctx context.Context, planID int) ([]models.TestCase, error) {
	var cases []models.TestCase
	target := c.endpoint(nil, "testplans", strconv.Itoa(planID), "testcases")
	if err := c.do(ctx, http.MethodGet, target, nil, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// GetCase fetches one test case
func (c *Client) GetCase(ctx context.Context, id int) (*models.TestCase, error) {
	var tc models.TestCase
	if err := c.do(ctx, http.MethodGet, c.endpoint(nil, "testcases", strconv.Itoa(id)), nil, &tc); err != nil {
		return nil, err
	}
	return &tc, nil
}

// CreateCase adds a test case to a plan
func (c *Client) CreateCase(ctx context.Context, planID int, tc *models.TestCase) (*models.TestCase, error) {
	var created models.TestCase
	target := c.endpoint(nil, "testplans", strconv.Itoa(planID), "testcases")
	if err := c.do(ctx, http.MethodPost, target, tc, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCase replaces a test case's fields
func (c *Client) UpdateCase(ctx context.Context, id int, tc *models.TestCase) (*models.TestCase, error) {
	var updated models.TestCase
	if err := c.do(ctx, http.MethodPut, c.endpoint(nil, "testcases", strconv.Itoa(id)), tc, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCase removes a test case
func (c *Client) DeleteCase(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, c.endpoint(nil, "testcases", strconv.Itoa(id)), nil, nil)
}
