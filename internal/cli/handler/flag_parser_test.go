package handler

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/models"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestCommand creates a command carrying the flags the parser reads
func createTestCommand(t *testing.T, set map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().Int("plan", 0, "")
	cmd.Flags().Int("duration", 0, "")
	cmd.Flags().String("name", "", "")
	cmd.Flags().String("status", "", "")
	cmd.Flags().String("priority", "", "")
	cli.AddOutputFlags(cmd)
	for k, v := range set {
		require.NoError(t, cmd.Flags().Set(k, v))
	}
	return cmd
}

// ============================================================================
// Tests
// ============================================================================

func TestParsePlanID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"zero", "0", 0, true},
		{"negative", "-1", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewFlagParser(createTestCommand(t, map[string]string{"plan": tt.value}))
			got, err := p.ParsePlanID()
			if tt.wantErr {
				assert.ErrorIs(t, err, cli.ErrUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseString(t *testing.T) {
	p := NewFlagParser(createTestCommand(t, map[string]string{"name": "  Checkout "}))
	v, err := p.ParseString("name")
	require.NoError(t, err)
	assert.Equal(t, "Checkout", v)

	p = NewFlagParser(createTestCommand(t, map[string]string{"name": "   "}))
	_, err = p.ParseString("name")
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestOptionalFlags(t *testing.T) {
	p := NewFlagParser(createTestCommand(t, nil))
	s, err := p.OptionalString("name")
	require.NoError(t, err)
	assert.Nil(t, s)
	n, err := p.OptionalInt("duration")
	require.NoError(t, err)
	assert.Nil(t, n)

	p = NewFlagParser(createTestCommand(t, map[string]string{"name": "", "duration": "0"}))
	s, err = p.OptionalString("name")
	require.NoError(t, err)
	require.NotNil(t, s, "explicitly empty values are still set")
	assert.Equal(t, "", *s)
	n, err = p.OptionalInt("duration")
	require.NoError(t, err)
	assert.Equal(t, 0, *n)
}

func TestDomainParsers(t *testing.T) {
	p := NewFlagParser(createTestCommand(t, map[string]string{"status": "active", "priority": "High"}))

	ps, err := p.PlanStatus("status")
	require.NoError(t, err)
	assert.Equal(t, models.PlanStatusActive, ps)

	pr, err := p.Priority("priority")
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, pr)

	_, err = p.CaseStatus("status")
	assert.ErrorIs(t, err, models.ErrInvalidCaseStatus)

	empty := NewFlagParser(createTestCommand(t, nil))
	ps, err = empty.PlanStatus("status")
	require.NoError(t, err)
	assert.Equal(t, models.PlanStatus(""), ps)

	_, err = empty.Outcome("status")
	assert.ErrorIs(t, err, cli.ErrUsage)
}

func TestOutputFormats(t *testing.T) {
	p := NewFlagParser(createTestCommand(t, map[string]string{"quiet": "true"}))
	j, q, err := p.OutputFormats()
	require.NoError(t, err)
	assert.False(t, j)
	assert.True(t, q)
}

func TestCommand_RequiresOutputFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "bare"}
	run := SimpleCommand(HandlerFunc(func(context.Context, *Arguments) (any, error) {
		t.Fatal("handler must not run")
		return nil, nil
	}))

	err := run(cmd, nil)
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}
