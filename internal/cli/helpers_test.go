package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/config"
	"github.com/thenoetrevino/testdeck/internal/models"
	executionservice "github.com/thenoetrevino/testdeck/internal/services/execution"
	testcaseservice "github.com/thenoetrevino/testdeck/internal/services/testcase"
	testplanservice "github.com/thenoetrevino/testdeck/internal/services/testplan"
)

// ============================================================================
// ID parsing
// ============================================================================

func TestParseID(t *testing.T) {
	id, err := ParseID("plan", " 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, bad := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := ParseID("plan", bad)
		assert.ErrorIs(t, err, ErrUsage, bad)
	}
}

func TestIDArg(t *testing.T) {
	_, err := IDArg("case", nil)
	assert.ErrorIs(t, err, ErrUsage)
	_, err = IDArg("case", []string{"1", "2"})
	assert.ErrorIs(t, err, ErrUsage)

	id, err := IDArg("case", []string{"9"})
	require.NoError(t, err)
	assert.Equal(t, 9, id)
}

func TestRequirePositiveInt(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().Int("plan", 0, "")

	_, err := RequirePositiveInt(cmd, "plan")
	assert.ErrorIs(t, err, ErrUsage)

	require.NoError(t, cmd.Flags().Set("plan", "3"))
	v, err := RequirePositiveInt(cmd, "plan")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestFormatterFor(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	AddOutputFlags(cmd)
	require.NoError(t, cmd.Flags().Set("json", "true"))

	f := FormatterFor(cmd)
	assert.True(t, f.JSON)
	assert.False(t, f.Quiet)
}

// ============================================================================
// Exit codes
// ============================================================================

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", fmt.Errorf("%w: missing --plan", ErrUsage), ExitUsage},
		{"api not found", &api.APIError{StatusCode: 404}, ExitNotFound},
		{"plan not found", fmt.Errorf("x: %w", testplanservice.ErrPlanNotFound), ExitNotFound},
		{"execution not found", executionservice.ErrExecutionNotFound, ExitNotFound},
		{"empty name", testplanservice.ErrEmptyName, ExitValidation},
		{"bad priority", fmt.Errorf("%w: x", models.ErrInvalidPriority), ExitValidation},
		{"negative duration", testcaseservice.ErrNegativeDuration, ExitValidation},
		{"already finished", executionservice.ErrAlreadyFinished, ExitValidation},
		{"bad request", &api.APIError{StatusCode: 400}, ExitValidation},
		{"bad json", &json.SyntaxError{}, ExitDataErr},
		{"bad config", config.ErrInvalidConfig, ExitDataErr},
		{"unavailable", &api.APIError{StatusCode: 503}, ExitError},
		{"other", errors.New("boom"), ExitError},
		{"already reported", &CommandError{Code: ExitValidation, Err: errors.New("x")}, ExitValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", ErrorCode(testplanservice.ErrPlanNotFound))
	assert.Equal(t, "VALIDATION_ERROR", ErrorCode(testplanservice.ErrEmptyName))
	assert.Equal(t, "USAGE_ERROR", ErrorCode(ErrUsage))
	assert.Equal(t, "BACKEND_UNAVAILABLE", ErrorCode(api.ErrUnavailable))
	assert.Equal(t, "ERROR", ErrorCode(errors.New("boom")))
}
