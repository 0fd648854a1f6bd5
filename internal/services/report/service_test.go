package report

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/testutil"
)

func setupService(t *testing.T) (Service, *testutil.FakeBackend) {
	t.Helper()
	fb := testutil.NewFakeBackend(t)
	client, err := api.NewClient(fb.URL(), 5*time.Second)
	require.NoError(t, err)
	return NewService(client), fb
}

func TestDurationLastMonth(t *testing.T) {
	svc, fb := setupService(t)
	planID := fb.SeedPlan("Checkout", models.PlanStatusActive)
	fb.SeedCase(planID, "a", 20)
	fb.SeedCase(planID, "b", 25)
	now := time.Now()
	fb.SeedExecution(planID, now.Add(-48*time.Hour), now.Add(-47*time.Hour), models.ExecutionPassed)
	fb.SeedExecution(planID, now.Add(-3*time.Hour), now.Add(-2*time.Hour), models.ExecutionFailed)
	fb.SeedExecution(planID, now.AddDate(0, -2, 0), now.AddDate(0, -2, 0).Add(time.Hour), models.ExecutionPassed)

	r, err := svc.DurationLastMonth(context.Background(), planID)
	require.NoError(t, err)
	assert.Equal(t, 2, r.ExecutionCount)
	assert.Equal(t, 45, r.PerExecutionDurationSum)
	assert.Equal(t, int64(90), r.TotalDuration)
}

func TestDurationLastMonth_Errors(t *testing.T) {
	svc, fb := setupService(t)

	_, err := svc.DurationLastMonth(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidPlanID)

	fb.FailNext(http.MethodGet, "/api/reports/testplans/9/duration-sum-last-month", http.StatusNotFound)
	_, err = svc.DurationLastMonth(context.Background(), 9)
	assert.ErrorIs(t, err, ErrPlanNotFound)

	fb.FailNext(http.MethodGet, "/api/reports/testplans/9/duration-sum-last-month", http.StatusBadGateway)
	_, err = svc.DurationLastMonth(context.Background(), 9)
	assert.ErrorIs(t, err, api.ErrUnavailable)
}

func TestFormatMinutes(t *testing.T) {
	tests := map[int64]string{
		0:   "0m",
		45:  "45m",
		60:  "1h 00m",
		125: "2h 05m",
		-90: "-1h 30m",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatMinutes(in), in)
	}
}
