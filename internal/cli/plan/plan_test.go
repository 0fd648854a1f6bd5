package plan

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/testdeck/internal/cli"
	"github.com/thenoetrevino/testdeck/internal/models"
	clitest "github.com/thenoetrevino/testdeck/internal/testutil/cli"
)

func quietIDs(t *testing.T, output string) []int {
	t.Helper()
	var ids []int
	for _, line := range strings.Fields(output) {
		id, err := strconv.Atoi(line)
		require.NoError(t, err, output)
		ids = append(ids, id)
	}
	return ids
}

func TestCreatePlan(t *testing.T) {
	fb, app := clitest.SetupCLITest(t)

	t.Run("Create plan with name only", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "Checkout",
			"--quiet",
		})
		require.NoError(t, err)

		id, err := strconv.Atoi(strings.TrimSpace(output))
		require.NoError(t, err)
		plan := fb.Plan(id)
		require.NotNil(t, plan)
		assert.Equal(t, "Checkout", plan.Name)
		assert.Equal(t, models.PlanStatusDraft, plan.Status)
	})

	t.Run("Create plan with tags and JSON output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "Payments",
			"--status", "active",
			"--tag", "smoke",
			"--tag", " smoke ",
			"--tag", "payments",
			"--json",
		})
		require.NoError(t, err)

		data := clitest.Data(t, output)
		assert.Equal(t, "Payments", data["name"])
		assert.Equal(t, "ACTIVE", data["status"])

		badges, ok := data["badges"].([]any)
		require.True(t, ok)
		require.Len(t, badges, 2)
		first := badges[0].(map[string]any)
		assert.Equal(t, "smoke", first["label"])
		assert.Contains(t, []any{"#222222", "#ffffff"}, first["foreground"])
	})

	t.Run("Human output names the plan", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--name", "Search"})
		require.NoError(t, err)
		assert.Contains(t, output, "Test plan 'Search' created")
	})
}

func TestCreatePlan_Negative(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	t.Run("Missing name is a usage error", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
	})

	t.Run("Unknown status is a validation error", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--name", "x", "--status", "DONE", "--json",
		})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))

		result := clitest.ParseJSON(t, output)
		assert.Equal(t, false, result["success"])
		errData := result["error"].(map[string]any)
		assert.Equal(t, "VALIDATION_ERROR", errData["code"])
	})
}

func TestListPlans_Paging(t *testing.T) {
	fb, app := clitest.SetupCLITest(t)
	var ids []int
	for i := 0; i < 6; i++ {
		ids = append(ids, fb.SeedPlan("plan "+strconv.Itoa(i), models.PlanStatusActive, "smoke"))
	}

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, ids[:4], quietIDs(t, output))

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--next", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, ids[4:], quietIDs(t, output))

	// the last page is short, so --next stays put
	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--next", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, ids[4:], quietIDs(t, output))

	output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--previous", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, ids[:4], quietIDs(t, output))
}

func TestListPlans_FilterAndJSON(t *testing.T) {
	fb, app := clitest.SetupCLITest(t)
	fb.SeedPlan("a", models.PlanStatusActive, "ui")
	smoke := fb.SeedPlan("b", models.PlanStatusActive, "smoke")
	fb.SeedPlan("c", models.PlanStatusDraft, "ui")

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--filter", "smoke", "--json"})
	require.NoError(t, err)

	data := clitest.Data(t, output)
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, false, data["hasNext"])
	plans := data["plans"].([]any)
	require.Len(t, plans, 1)
	assert.Equal(t, float64(smoke), plans[0].(map[string]any)["id"])
}

func TestListPlans_Negative(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	tests := []struct {
		name string
		args []string
	}{
		{"zero per", []string{"--per", "0"}},
		{"negative after", []string{"--after", "-3"}},
		{"next with filter", []string{"--next", "--filter", "smoke"}},
		{"previous with after", []string{"--previous", "--after", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), append(tt.args, "--quiet"))
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
		})
	}
}

func TestListPlans_Empty(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No test plans found")
}

func TestCountPlans(t *testing.T) {
	fb, app := clitest.SetupCLITest(t)
	fb.SeedPlan("a", models.PlanStatusActive, "smoke")
	fb.SeedPlan("b", models.PlanStatusActive, "smoke", "ui")
	fb.SeedPlan("c", models.PlanStatusActive)

	output, err := clitest.ExecuteCLICommand(t, app, CountCmd(), []string{"--tag", "smoke", "--json"})
	require.NoError(t, err)
	assert.Equal(t, float64(2), clitest.Data(t, output)["count"])

	output, err = clitest.ExecuteCLICommand(t, app, CountCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "3 test plans")
}

func TestShowPlan(t *testing.T) {
	fb, app := clitest.SetupCLITest(t)
	planID := fb.SeedPlan("Checkout", models.PlanStatusActive, "smoke")
	fb.SeedCase(planID, "Pay by card", 30)
	fb.SeedCase(planID, "Refund", 15)

	t.Run("JSON carries cases, executions and report", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{
			strconv.Itoa(planID), "--cases", "--json",
		})
		require.NoError(t, err)

		data := clitest.Data(t, output)
		plan := data["plan"].(map[string]any)
		assert.Equal(t, "Checkout", plan["name"])
		assert.Len(t, plan["testCases"], 2)
		assert.Empty(t, data["executions"])

		report := data["report"].(map[string]any)
		assert.Equal(t, float64(45), report["perExecutionDurationSum"])
	})

	t.Run("Human output lists cases", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{strconv.Itoa(planID), "--cases"})
		require.NoError(t, err)
		assert.Contains(t, output, "Pay by card")
		assert.Contains(t, output, "Test cases (2)")
	})

	t.Run("Failing report still shows the plan", func(t *testing.T) {
		fb.FailNext(http.MethodGet, fmt.Sprintf("/api/reports/testplans/%d/duration-sum-last-month", planID), http.StatusInternalServerError)
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{strconv.Itoa(planID), "--json"})
		require.NoError(t, err)

		data := clitest.Data(t, output)
		assert.Equal(t, "Checkout", data["plan"].(map[string]any)["name"])
		assert.Nil(t, data["report"])
		assert.Equal(t, []any{"report unavailable"}, data["warnings"])
	})

	t.Run("Failing executions still show the plan", func(t *testing.T) {
		fb.FailNext(http.MethodGet, fmt.Sprintf("/api/testplans/%d/executions", planID), http.StatusInternalServerError)
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{strconv.Itoa(planID)})
		require.NoError(t, err)
		assert.Contains(t, output, "Checkout")
		assert.Contains(t, output, "executions unavailable")
		assert.Contains(t, output, "Last month")
	})

	t.Run("Unknown plan exits with not found", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"9999", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	})

	t.Run("Non-numeric ID is a usage error", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"abc", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
	})
}

func TestUpdatePlan(t *testing.T) {
	fb, app := clitest.SetupCLITest(t)
	planID := fb.SeedPlan("Checkout", models.PlanStatusDraft, "smoke")

	_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{
		strconv.Itoa(planID), "--status", "ACTIVE", "--quiet",
	})
	require.NoError(t, err)

	plan := fb.Plan(planID)
	assert.Equal(t, models.PlanStatusActive, plan.Status)
	assert.Equal(t, "Checkout", plan.Name)
	assert.Equal(t, []string{"smoke"}, plan.Tags())

	_, err = clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{
		strconv.Itoa(planID), "--tag", "regression", "--quiet",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"regression"}, fb.Plan(planID).Tags())

	t.Run("No changes is a usage error", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{strconv.Itoa(planID), "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
	})

	t.Run("Empty name is a validation error", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{strconv.Itoa(planID), "--name", " ", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
	})
}

func TestDeletePlan(t *testing.T) {
	fb, app := clitest.SetupCLITest(t)

	t.Run("Force deletes without asking", func(t *testing.T) {
		planID := fb.SeedPlan("Old", models.PlanStatusInactive)
		output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{strconv.Itoa(planID), "--force"})
		require.NoError(t, err)
		assert.Contains(t, output, "deleted successfully")
		assert.Nil(t, fb.Plan(planID))
	})

	t.Run("Declined confirmation keeps the plan", func(t *testing.T) {
		planID := fb.SeedPlan("Keep", models.PlanStatusActive)
		cmd := DeleteCmd()
		cmd.SetIn(strings.NewReader("n\n"))
		output, err := clitest.ExecuteCLICommand(t, app, cmd, []string{strconv.Itoa(planID)})
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")
		assert.NotNil(t, fb.Plan(planID))
	})

	t.Run("Accepted confirmation deletes", func(t *testing.T) {
		planID := fb.SeedPlan("Gone", models.PlanStatusActive)
		cmd := DeleteCmd()
		cmd.SetIn(strings.NewReader("yes\n"))
		_, err := clitest.ExecuteCLICommand(t, app, cmd, []string{strconv.Itoa(planID)})
		require.NoError(t, err)
		assert.Nil(t, fb.Plan(planID))
	})

	t.Run("Unknown plan exits with not found", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"9999", "--force"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err))
	})
}

func TestTagPlan(t *testing.T) {
	fb, app := clitest.SetupCLITest(t)
	planID := fb.SeedPlan("Checkout", models.PlanStatusActive, "smoke")
	id := strconv.Itoa(planID)

	_, err := clitest.ExecuteCLICommand(t, app, TagCmd(), []string{"add", id, "payments", "smoke", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"smoke", "payments"}, fb.Plan(planID).Tags())

	_, err = clitest.ExecuteCLICommand(t, app, TagCmd(), []string{"remove", id, "smoke", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"payments"}, fb.Plan(planID).Tags())

	_, err = clitest.ExecuteCLICommand(t, app, TagCmd(), []string{"add", "x", "smoke", "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}
