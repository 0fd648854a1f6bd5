package testplan

import "errors"

// Test plan errors
var (
	// Validation errors
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNameTooLong   = errors.New("name cannot exceed 255 characters")
	ErrInvalidStatus = errors.New("invalid plan status")
	ErrInvalidPlanID = errors.New("invalid test plan ID")
	ErrNoTags        = errors.New("at least one tag is required")

	// Business logic errors
	ErrPlanNotFound = errors.New("test plan not found")
)
