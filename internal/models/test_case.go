package models

import (
	"fmt"
	"strings"
)

// CaseStatus is the last recorded outcome of a test case
type CaseStatus string

const (
	CaseStatusPass    CaseStatus = "PASS"
	CaseStatusFail    CaseStatus = "FAIL"
	CaseStatusPending CaseStatus = "PENDING"
	CaseStatusBlocked CaseStatus = "BLOCKED"
)

// CaseStatuses lists every valid case status
var CaseStatuses = []CaseStatus{CaseStatusPass, CaseStatusFail, CaseStatusPending, CaseStatusBlocked}

// ParseCaseStatus maps a case-insensitive status name to its CaseStatus
func ParseCaseStatus(s string) (CaseStatus, error) {
	status := CaseStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q (must be: pass, fail, pending, blocked)", ErrInvalidCaseStatus, s)
	}
	return status, nil
}

// Valid reports whether s is a known case status
func (s CaseStatus) Valid() bool {
	switch s {
	case CaseStatusPass, CaseStatusFail, CaseStatusPending, CaseStatusBlocked:
		return true
	}
	return false
}

// Priority is the importance of a test case
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// Priorities lists every valid priority from lowest to highest
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

// ParsePriority maps a case-insensitive priority name to its Priority
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q (must be: low, medium, high, critical)", ErrInvalidPriority, s)
	}
	return p, nil
}

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// TestCase is a single check inside a test plan
type TestCase struct {
	ID             int        `json:"id,omitempty"`
	TestPlanID     int        `json:"testPlanId,omitempty"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Steps          string     `json:"steps"`
	ExpectedResult string     `json:"expectedResult"`
	Status         CaseStatus `json:"status"`
	Priority       Priority   `json:"priority"`
	Duration       int        `json:"duration,omitempty"` // minutes
	CreatedAt      Timestamp  `json:"createdAt"`
}

// GetID implements the quiet-mode ID interface used by the CLI
func (c *TestCase) GetID() int {
	return c.ID
}
