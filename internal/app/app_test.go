package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/config"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/prefs"
	"github.com/thenoetrevino/testdeck/internal/testutil"
)

func setupApp(t *testing.T, opts ...Option) (*App, *testutil.FakeBackend) {
	t.Helper()
	fb := testutil.NewFakeBackend(t)
	client, err := api.NewClient(fb.URL(), 5*time.Second)
	require.NoError(t, err)
	store, err := prefs.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	a := New(client, store, opts...)
	t.Cleanup(func() { _ = a.Close() })
	return a, fb
}

func TestNew(t *testing.T) {
	a, _ := setupApp(t)

	assert.NotNil(t, a.PlanService)
	assert.NotNil(t, a.CaseService)
	assert.NotNil(t, a.ExecutionService)
	assert.NotNil(t, a.ReportService)
	assert.NotNil(t, a.Backend())
	assert.Equal(t, config.Default(), a.Config)
}

func TestNew_WithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Pagination.PerPage = 9
	a, _ := setupApp(t, WithConfig(cfg))
	assert.Equal(t, 9, a.Config.Pagination.PerPage)
}

func TestNew_ServicesShareBackend(t *testing.T) {
	a, fb := setupApp(t)
	ctx := context.Background()
	planID := fb.SeedPlan("Checkout", models.PlanStatusActive)

	exec, err := a.ExecutionService.Start(ctx, planID, "")
	require.NoError(t, err)
	plan, err := a.PlanService.Get(ctx, exec.TestPlanID)
	require.NoError(t, err)
	assert.Equal(t, "Checkout", plan.Name)
}

func TestContext(t *testing.T) {
	a, _ := setupApp(t)

	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	got, ok := FromContext(NewContext(context.Background(), a))
	require.True(t, ok)
	assert.Same(t, a, got)
}

func TestClose(t *testing.T) {
	store, err := prefs.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	a := New(nil, store)
	assert.NoError(t, a.Close())
}

func TestApply_RebindsServicesOnNewURL(t *testing.T) {
	a, _ := setupApp(t)
	other := testutil.NewFakeBackend(t)
	planID := other.SeedPlan("Elsewhere", models.PlanStatusActive)

	cfg := config.Default()
	cfg.API.BaseURL = other.URL()
	require.NoError(t, a.Apply(cfg))

	plan, err := a.PlanService.Get(context.Background(), planID)
	require.NoError(t, err)
	assert.Equal(t, "Elsewhere", plan.Name)
	assert.Equal(t, other.URL(), a.Config.API.BaseURL)
}

func TestApply_KeepsClientOnBadURL(t *testing.T) {
	a, _ := setupApp(t)
	before := a.Backend()

	cfg := config.Default()
	cfg.API.BaseURL = "not a url"
	cfg.Pagination.PerPage = 7
	err := a.Apply(cfg)
	require.Error(t, err)

	assert.Same(t, before, a.Backend())
	assert.Equal(t, 7, a.Config.Pagination.PerPage)
	assert.Equal(t, config.Default().API.BaseURL, a.Config.API.BaseURL)
}

func TestApply_SameAPIKeepsClient(t *testing.T) {
	a, _ := setupApp(t)
	before := a.Backend()

	cfg := config.Default()
	cfg.Pagination.PerPage = 2
	require.NoError(t, a.Apply(cfg))
	assert.Same(t, before, a.Backend())
}
