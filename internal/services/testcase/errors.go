package testcase

import "errors"

// Test case errors
var (
	// Validation errors
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNameTooLong      = errors.New("name cannot exceed 255 characters")
	ErrInvalidStatus    = errors.New("invalid test case status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrNegativeDuration = errors.New("duration cannot be negative")
	ErrInvalidCaseID    = errors.New("invalid test case ID")
	ErrInvalidPlanID    = errors.New("invalid test plan ID")

	// Business logic errors
	ErrCaseNotFound = errors.New("test case not found")
)
