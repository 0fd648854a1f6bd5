package cli

import (
	"encoding/json"
	"errors"

	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/config"
	"github.com/thenoetrevino/testdeck/internal/models"
	executionservice "github.com/thenoetrevino/testdeck/internal/services/execution"
	reportservice "github.com/thenoetrevino/testdeck/internal/services/report"
	testcaseservice "github.com/thenoetrevino/testdeck/internal/services/testcase"
	testplanservice "github.com/thenoetrevino/testdeck/internal/services/testplan"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: backend unavailable, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: test plan, test case or execution IDs that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: malformed backend responses, corrupt config.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid status or priority values, empty names, bad durations,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// ErrUsage marks errors caused by how a command was invoked
var ErrUsage = errors.New("usage error")

// CommandError carries the exit code of a command failure that has already
// been reported to the user
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string { return e.Err.Error() }

func (e *CommandError) Unwrap() error { return e.Err }

var notFoundErrors = []error{
	api.ErrNotFound,
	testplanservice.ErrPlanNotFound,
	testcaseservice.ErrCaseNotFound,
	executionservice.ErrExecutionNotFound,
	reportservice.ErrPlanNotFound,
}

var validationErrors = []error{
	api.ErrBadRequest,
	models.ErrInvalidPlanStatus,
	models.ErrInvalidCaseStatus,
	models.ErrInvalidPriority,
	models.ErrInvalidExecutionStatus,
	testplanservice.ErrEmptyName,
	testplanservice.ErrNameTooLong,
	testplanservice.ErrInvalidStatus,
	testplanservice.ErrInvalidPlanID,
	testplanservice.ErrNoTags,
	testcaseservice.ErrEmptyName,
	testcaseservice.ErrNameTooLong,
	testcaseservice.ErrInvalidStatus,
	testcaseservice.ErrInvalidPriority,
	testcaseservice.ErrNegativeDuration,
	testcaseservice.ErrInvalidCaseID,
	testcaseservice.ErrInvalidPlanID,
	executionservice.ErrInvalidExecutionID,
	executionservice.ErrInvalidPlanID,
	executionservice.ErrInvalidOutcome,
	executionservice.ErrAlreadyFinished,
	executionservice.ErrFinishBeforeStart,
	reportservice.ErrInvalidPlanID,
}

// ExitCodeFor maps an error to the process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, ErrUsage) {
		return ExitUsage
	}
	if isAny(err, notFoundErrors) {
		return ExitNotFound
	}
	if isAny(err, validationErrors) {
		return ExitValidation
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, config.ErrInvalidConfig) || errors.Is(err, models.ErrInvalidTimestamp) {
		return ExitDataErr
	}
	return ExitError
}

// ErrorCode returns the machine-readable code used in JSON error output
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	}
	if errors.Is(err, api.ErrUnavailable) {
		return "BACKEND_UNAVAILABLE"
	}
	return "ERROR"
}

// SuggestionFor returns a hint shown under the error message, or ""
func SuggestionFor(err error) string {
	switch {
	case errors.Is(err, api.ErrUnavailable):
		return "Check that the backend is running and api.base_url (or " + config.EnvAPIURL + ") points at it"
	case errors.Is(err, testplanservice.ErrPlanNotFound), errors.Is(err, reportservice.ErrPlanNotFound):
		return "List plans with: testdeck plan list"
	case errors.Is(err, config.ErrInvalidConfig):
		return "Fix the config file or environment overrides"
	}
	return ""
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
