//go:build ignore
// +build ignore

// Helper script to add sample test plans to the configured backend
// Run with: go run add_test_data.go

package main

import (
	"context"
	"log"

	"github.com/thenoetrevino/testdeck/internal/app"
	"github.com/thenoetrevino/testdeck/internal/config"
	"github.com/thenoetrevino/testdeck/internal/models"
	testcaseservice "github.com/thenoetrevino/testdeck/internal/services/testcase"
	testplanservice "github.com/thenoetrevino/testdeck/internal/services/testplan"
	"go.uber.org/zap"
)

type sampleCase struct {
	name     string
	priority models.Priority
	duration int
}

type samplePlan struct {
	name   string
	status models.PlanStatus
	tags   []string
	cases  []sampleCase
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	a, err := app.Open(ctx, cfg, zap.NewNop())
	if err != nil {
		log.Fatalf("Failed to open app: %v", err)
	}
	defer a.Close()

	plans := []samplePlan{
		{"Checkout", models.PlanStatusActive, []string{"smoke", "payments"}, []sampleCase{
			{"Pay by card", models.PriorityCritical, 5},
			{"Pay by invoice", models.PriorityHigh, 8},
			{"Refund", models.PriorityMedium, 10},
		}},
		{"Login", models.PlanStatusActive, []string{"smoke", "auth"}, []sampleCase{
			{"Password login", models.PriorityCritical, 3},
			{"Lockout after retries", models.PriorityHigh, 6},
		}},
		{"Search", models.PlanStatusDraft, []string{"ui"}, []sampleCase{
			{"Empty query", models.PriorityLow, 2},
		}},
		{"Reporting", models.PlanStatusInactive, []string{"regression"}, nil},
		{"Mobile layout", models.PlanStatusDraft, []string{"ui", "regression"}, nil},
	}

	for _, p := range plans {
		plan, err := a.PlanService.Create(ctx, testplanservice.CreatePlanRequest{
			Name:   p.name,
			Status: p.status,
			Tags:   p.tags,
		})
		if err != nil {
			log.Printf("Error creating plan '%s': %v", p.name, err)
			continue
		}
		log.Printf("Created plan: %s (ID %d)", plan.Name, plan.ID)

		for _, c := range p.cases {
			_, err := a.CaseService.Create(ctx, testcaseservice.CreateCaseRequest{
				PlanID:   plan.ID,
				Name:     c.name,
				Priority: c.priority,
				Duration: c.duration,
			})
			if err != nil {
				log.Printf("Error creating case '%s': %v", c.name, err)
			}
		}
	}

	log.Println("Test data added successfully!")
}
