// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParsePlanID extracts the --plan flag
func (p *FlagParser) ParsePlanID() (int, error) {
	return cli.RequirePositiveInt(p.cmd, "plan")
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse %s flag: %w", cli.ErrUsage, flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: --%s is required", cli.ErrUsage, flagName)
	}
	return value, nil
}

// OptionalString returns the flag value when it was given, nil otherwise
func (p *FlagParser) OptionalString(flagName string) (*string, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return nil, nil
	}
	v, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s flag: %w", cli.ErrUsage, flagName, err)
	}
	return &v, nil
}

// OptionalInt returns the flag value when it was given, nil otherwise
func (p *FlagParser) OptionalInt(flagName string) (*int, error) {
	if !p.cmd.Flags().Changed(flagName) {
		return nil, nil
	}
	v, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s flag: %w", cli.ErrUsage, flagName, err)
	}
	return &v, nil
}

// PlanStatus parses a plan status flag; an unset flag yields ""
func (p *FlagParser) PlanStatus(flagName string) (models.PlanStatus, error) {
	raw, _ := p.cmd.Flags().GetString(flagName)
	if raw == "" {
		return "", nil
	}
	return models.ParsePlanStatus(raw)
}

// CaseStatus parses a case status flag; an unset flag yields ""
func (p *FlagParser) CaseStatus(flagName string) (models.CaseStatus, error) {
	raw, _ := p.cmd.Flags().GetString(flagName)
	if raw == "" {
		return "", nil
	}
	return models.ParseCaseStatus(raw)
}

// Priority parses a priority flag; an unset flag yields ""
func (p *FlagParser) Priority(flagName string) (models.Priority, error) {
	raw, _ := p.cmd.Flags().GetString(flagName)
	if raw == "" {
		return "", nil
	}
	return models.ParsePriority(raw)
}

// Outcome parses the terminal status of an execution
func (p *FlagParser) Outcome(flagName string) (models.ExecutionStatus, error) {
	raw, err := p.ParseString(flagName)
	if err != nil {
		return "", err
	}
	return models.ParseExecutionStatus(raw)
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
