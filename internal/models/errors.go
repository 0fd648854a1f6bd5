package models

import "errors"

// Domain-specific errors for parsing backend values
var (
	// ErrInvalidPlanStatus indicates a status outside ACTIVE, INACTIVE, DRAFT
	ErrInvalidPlanStatus = errors.New("invalid plan status")

	// ErrInvalidCaseStatus indicates a status outside PASS, FAIL, PENDING, BLOCKED
	ErrInvalidCaseStatus = errors.New("invalid test case status")

	// ErrInvalidPriority indicates a priority outside LOW, MEDIUM, HIGH, CRITICAL
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidExecutionStatus indicates an unknown execution status
	ErrInvalidExecutionStatus = errors.New("invalid execution status")

	// ErrInvalidTimestamp indicates a date-time the backend would not produce
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
