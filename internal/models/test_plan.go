package models

import (
	"fmt"
	"strings"
)

// PlanStatus is the lifecycle state of a test plan
type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "ACTIVE"
	PlanStatusInactive PlanStatus = "INACTIVE"
	PlanStatusDraft    PlanStatus = "DRAFT"
)

// PlanStatuses lists every valid plan status in display order
var PlanStatuses = []PlanStatus{PlanStatusActive, PlanStatusInactive, PlanStatusDraft}

// ParsePlanStatus maps a case-insensitive status name to its PlanStatus
func ParsePlanStatus(s string) (PlanStatus, error) {
	status := PlanStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q (must be: active, inactive, draft)", ErrInvalidPlanStatus, s)
	}
	return status, nil
}

// Valid reports whether s is a known plan status
func (s PlanStatus) Valid() bool {
	switch s {
	case PlanStatusActive, PlanStatusInactive, PlanStatusDraft:
		return true
	}
	return false
}

// TestTag is a free-text label attached to a test plan
type TestTag struct {
	ID         int    `json:"id,omitempty"`
	TestPlanID int    `json:"testPlanId,omitempty"`
	Tag        string `json:"tag"`
}

// TestPlan groups test cases under a name, a status and a set of tags
type TestPlan struct {
	ID          int        `json:"id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      PlanStatus `json:"status"`
	CreatedAt   Timestamp  `json:"createdAt"`
	TagList     []TestTag  `json:"tagList"`
	TestCases   []TestCase `json:"testCases,omitempty"`
}

// GetID implements the quiet-mode ID interface used by the CLI
func (p *TestPlan) GetID() int {
	return p.ID
}

// Tags returns the plan's tag strings in order
func (p *TestPlan) Tags() []string {
	tags := make([]string, 0, len(p.TagList))
	for _, t := range p.TagList {
		tags = append(tags, t.Tag)
	}
	return tags
}

// HasTag reports whether the plan carries tag exactly
func (p *TestPlan) HasTag(tag string) bool {
	for _, t := range p.TagList {
		if t.Tag == tag {
			return true
		}
	}
	return false
}

// TagsFromStrings builds a tag list for a request body
func TagsFromStrings(tags []string) []TestTag {
	list := make([]TestTag, 0, len(tags))
	for _, t := range tags {
		list = append(list, TestTag{Tag: t})
	}
	return list
}

// PlanCount is the response of the plan count endpoint
type PlanCount struct {
	Count int `json:"count"`
}
