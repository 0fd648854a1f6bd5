package testplan

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/testdeck/internal/api"
	"github.com/thenoetrevino/testdeck/internal/models"
	"github.com/thenoetrevino/testdeck/internal/pagination"
	"github.com/thenoetrevino/testdeck/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupService(t *testing.T) (Service, *testutil.FakeBackend) {
	t.Helper()
	fb := testutil.NewFakeBackend(t)
	client, err := api.NewClient(fb.URL(), 5*time.Second)
	require.NoError(t, err)
	return NewService(client), fb
}

func strPtr(s string) *string { return &s }

// ============================================================================
// NormalizeTags
// ============================================================================

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"trims", []string{" smoke ", "api"}, []string{"smoke", "api"}},
		{"drops empty", []string{"", "  ", "ui"}, []string{"ui"}},
		{"dedupes in order", []string{"b", "a", "b", " a"}, []string{"b", "a"}},
		{"case sensitive", []string{"Smoke", "smoke"}, []string{"Smoke", "smoke"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.in))
		})
	}
}

// ============================================================================
// Create
// ============================================================================

func TestCreate_Validation(t *testing.T) {
	svc, fb := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreatePlanRequest
		wantErr error
	}{
		{"empty name", CreatePlanRequest{Name: "   "}, ErrEmptyName},
		{"long name", CreatePlanRequest{Name: strings.Repeat("x", MaxNameLength+1)}, ErrNameTooLong},
		{"bad status", CreatePlanRequest{Name: "ok", Status: "DONE"}, ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, fb.Requests(), "validation failures must not reach the backend")
}

func TestCreate_DefaultsAndNormalizes(t *testing.T) {
	svc, fb := setupService(t)

	plan, err := svc.Create(context.Background(), CreatePlanRequest{
		Name: "  Checkout  ",
		Tags: []string{"smoke", " smoke", "", "payments"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Checkout", plan.Name)
	assert.Equal(t, models.PlanStatusDraft, plan.Status)
	assert.Equal(t, []string{"smoke", "payments"}, fb.Plan(plan.ID).Tags())
}

func TestCreate_NameAtLimit(t *testing.T) {
	svc, _ := setupService(t)
	_, err := svc.Create(context.Background(), CreatePlanRequest{Name: strings.Repeat("é", MaxNameLength)})
	assert.NoError(t, err)
}

// ============================================================================
// Reads
// ============================================================================

func TestList_FollowsCursor(t *testing.T) {
	svc, fb := setupService(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		fb.SeedPlan("smoke plan", models.PlanStatusActive, "smoke")
	}
	fb.SeedPlan("ui plan", models.PlanStatusActive, "ui")

	cursor := pagination.New(4).SetFilter("smoke")
	first, err := svc.List(ctx, cursor)
	require.NoError(t, err)
	require.Len(t, first, 4)
	assert.True(t, cursor.HasNext(len(first)))

	cursor = cursor.Next(first)
	second, err := svc.List(ctx, cursor)
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.False(t, cursor.HasNext(len(second)))

	back, err := svc.List(ctx, cursor.Previous())
	require.NoError(t, err)
	assert.Equal(t, first, back)
}

func TestCount(t *testing.T) {
	svc, fb := setupService(t)
	fb.SeedPlan("a", models.PlanStatusActive, "smoke")
	fb.SeedPlan("b", models.PlanStatusDraft)

	n, err := svc.Count(context.Background(), " smoke ")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPlanNotFound)
	assert.ErrorIs(t, err, api.ErrNotFound)

	_, err = svc.GetWithCases(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidPlanID)
}

func TestGetWithCases(t *testing.T) {
	svc, fb := setupService(t)
	id := fb.SeedPlan("Checkout", models.PlanStatusActive)
	fb.SeedCase(id, "Pay", 4)

	plan, err := svc.GetWithCases(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, plan.TestCases, 1)
	assert.Equal(t, "Pay", plan.TestCases[0].Name)
}

// ============================================================================
// Update / Delete
// ============================================================================

func TestUpdate_PartialKeepsOtherFields(t *testing.T) {
	svc, fb := setupService(t)
	id := fb.SeedPlan("Checkout", models.PlanStatusDraft, "smoke")

	active := models.PlanStatusActive
	plan, err := svc.Update(context.Background(), UpdatePlanRequest{ID: id, Status: &active})
	require.NoError(t, err)
	assert.Equal(t, "Checkout", plan.Name)
	assert.Equal(t, models.PlanStatusActive, plan.Status)
	assert.Equal(t, []string{"smoke"}, fb.Plan(id).Tags())

	plan, err = svc.Update(context.Background(), UpdatePlanRequest{ID: id, Description: strPtr("## Scope")})
	require.NoError(t, err)
	assert.Equal(t, "## Scope", plan.Description)
	assert.Equal(t, models.PlanStatusActive, plan.Status)
}

func TestUpdate_Validation(t *testing.T) {
	svc, fb := setupService(t)
	id := fb.SeedPlan("Checkout", models.PlanStatusDraft)
	bad := models.PlanStatus("DONE")

	_, err := svc.Update(context.Background(), UpdatePlanRequest{ID: id, Name: strPtr("")})
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = svc.Update(context.Background(), UpdatePlanRequest{ID: id, Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = svc.Update(context.Background(), UpdatePlanRequest{ID: id + 100, Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestUpdate_ReplacesTags(t *testing.T) {
	svc, fb := setupService(t)
	id := fb.SeedPlan("Checkout", models.PlanStatusDraft, "smoke", "ui")

	tags := []string{"api", " api "}
	_, err := svc.Update(context.Background(), UpdatePlanRequest{ID: id, Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, []string{"api"}, fb.Plan(id).Tags())
}

func TestDelete(t *testing.T) {
	svc, fb := setupService(t)
	id := fb.SeedPlan("Checkout", models.PlanStatusDraft)

	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Nil(t, fb.Plan(id))
	assert.ErrorIs(t, svc.Delete(context.Background(), id), ErrPlanNotFound)
}

func TestDelete_BackendDown(t *testing.T) {
	svc, fb := setupService(t)
	id := fb.SeedPlan("Checkout", models.PlanStatusDraft)
	fb.FailNext(http.MethodDelete, "/api/testplans/"+strconv.Itoa(id), http.StatusServiceUnavailable)

	err := svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, api.ErrUnavailable)
	assert.NotNil(t, fb.Plan(id))
}

// ============================================================================
// Tags
// ============================================================================

func TestAddTags(t *testing.T) {
	svc, fb := setupService(t)
	id := fb.SeedPlan("Checkout", models.PlanStatusDraft, "smoke")

	plan, err := svc.AddTags(context.Background(), id, []string{"smoke", "regression", " api"})
	require.NoError(t, err)
	assert.Equal(t, []string{"smoke", "regression", "api"}, plan.Tags())

	_, err = svc.AddTags(context.Background(), id, []string{" "})
	assert.ErrorIs(t, err, ErrNoTags)
	assert.Equal(t, []string{"smoke", "regression", "api"}, fb.Plan(id).Tags())
}

func TestRemoveTags(t *testing.T) {
	svc, fb := setupService(t)
	id := fb.SeedPlan("Checkout", models.PlanStatusDraft, "smoke", "ui", "api")

	plan, err := svc.RemoveTags(context.Background(), id, []string{"ui", "missing"})
	require.NoError(t, err)
	assert.Equal(t, []string{"smoke", "api"}, plan.Tags())
	assert.Equal(t, []string{"smoke", "api"}, fb.Plan(id).Tags())
}
