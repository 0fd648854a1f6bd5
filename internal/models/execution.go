package models

import (
	"fmt"
	"strings"
	"time"
)

// ExecutionStatus is the state of one run of a test plan
type ExecutionStatus string

const (
	ExecutionRunning ExecutionStatus = "RUNNING"
	ExecutionPassed  ExecutionStatus = "PASSED"
	ExecutionFailed  ExecutionStatus = "FAILED"
	ExecutionAborted ExecutionStatus = "ABORTED"
)

// ParseExecutionStatus maps a case-insensitive status name to its ExecutionStatus
func ParseExecutionStatus(s string) (ExecutionStatus, error) {
	status := ExecutionStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case ExecutionRunning, ExecutionPassed, ExecutionFailed, ExecutionAborted:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q (must be: running, passed, failed, aborted)", ErrInvalidExecutionStatus, s)
}

// Terminal reports whether no further transition is expected
func (s ExecutionStatus) Terminal() bool {
	return s == ExecutionPassed || s == ExecutionFailed || s == ExecutionAborted
}

// TestPlanExecution records one run of a test plan
type TestPlanExecution struct {
	ID          int             `json:"id,omitempty"`
	TestPlanID  int             `json:"testPlanId,omitempty"`
	Status      ExecutionStatus `json:"status"`
	StartedAt   Timestamp       `json:"startedAt"`
	FinishedAt  Timestamp       `json:"finishedAt"`
	ResultNotes string          `json:"resultNotes"`
	CreatedAt   Timestamp       `json:"createdAt"`
	UpdatedAt   Timestamp       `json:"updatedAt"`
}

// GetID implements the quiet-mode ID interface used by the CLI
func (e *TestPlanExecution) GetID() int {
	return e.ID
}

// Duration is the wall time between start and finish, or zero while running
func (e *TestPlanExecution) Duration() time.Duration {
	if e.StartedAt.IsZero() || e.FinishedAt.IsZero() {
		return 0
	}
	return e.FinishedAt.Sub(e.StartedAt.Time)
}

// DurationReport sums test case durations over last month's executions
type DurationReport struct {
	PlanID                  int    `json:"planId"`
	PeriodStart             string `json:"periodStart"`
	PeriodEnd               string `json:"periodEnd"`
	ExecutionCount          int    `json:"executionCount"`
	PerExecutionDurationSum int    `json:"perExecutionDurationSum"` // minutes
	TotalDuration           int64  `json:"totalDuration"`           // minutes
}
