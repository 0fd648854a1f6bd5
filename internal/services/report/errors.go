package report

import "errors"

// Report errors
var (
	ErrInvalidPlanID = errors.New("invalid test plan ID")
	ErrPlanNotFound  = errors.New("test plan not found")
)
