package execution

import "errors"

// Execution errors
var (
	// Validation errors
	ErrInvalidExecutionID = errors.New("invalid execution ID")
	ErrInvalidPlanID      = errors.New("invalid test plan ID")
	ErrInvalidOutcome     = errors.New("outcome must be passed, failed or aborted")

	// Business logic errors
	ErrExecutionNotFound = errors.New("execution not found")
	ErrAlreadyFinished   = errors.New("execution already finished")
	ErrFinishBeforeStart = errors.New("finish time precedes start time")
)
