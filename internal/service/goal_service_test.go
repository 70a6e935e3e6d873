package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestGoalContributeCompletesAtTarget(t *testing.T) {
	userID := uuid.New()
	goal := &models.FinancialGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         "Tatil fonu",
		TargetAmount:  "1000.00",
		CurrentAmount: "900.00",
		TargetDate:    time.Now().AddDate(0, 6, 0),
	}
	repo := &fakeGoalRepo{goals: []*models.FinancialGoal{goal}}
	svc := NewGoalService(repo, zap.NewNop())

	out, err := svc.Contribute(context.Background(), userID, goal.ID, "100.00")
	if err != nil {
		t.Fatalf("Contribute: %v", err)
	}

	if out.Goal.CurrentAmount != "1000" {
		t.Errorf("current = %s, want 1000", out.Goal.CurrentAmount)
	}
	if !out.Goal.IsCompleted {
		t.Error("goal should be completed at target")
	}
	if out.Progress.ProgressPct != 100 {
		t.Errorf("progress = %v, want 100", out.Progress.ProgressPct)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one update, got %d", len(repo.updated))
	}
}

func TestGoalContributeRejectsWrongUser(t *testing.T) {
	goal := &models.FinancialGoal{
		ID: uuid.New(), UserID: uuid.New(),
		TargetAmount: "500.00", CurrentAmount: "0",
		TargetDate: time.Now().AddDate(0, 1, 0),
	}
	svc := NewGoalService(&fakeGoalRepo{goals: []*models.FinancialGoal{goal}}, zap.NewNop())

	if _, err := svc.Contribute(context.Background(), uuid.New(), goal.ID, "50"); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("err = %v, want ErrGoalNotFound", err)
	}
}

func TestGoalCreateValidation(t *testing.T) {
	svc := NewGoalService(&fakeGoalRepo{}, zap.NewNop())
	userID := uuid.New()

	cases := []struct {
		name string
		req  dto.CreateGoalRequest
	}{
		{"empty title", dto.CreateGoalRequest{TargetAmount: "100", TargetDate: "2025-12-31T00:00:00Z"}},
		{"zero target", dto.CreateGoalRequest{Title: "x", TargetAmount: "0", TargetDate: "2025-12-31T00:00:00Z"}},
		{"negative current", dto.CreateGoalRequest{Title: "x", TargetAmount: "100", CurrentAmount: "-1",
			TargetDate: "2025-12-31T00:00:00Z"}},
		{"bad date", dto.CreateGoalRequest{Title: "x", TargetAmount: "100", TargetDate: "31.12.2025"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), userID, &tc.req); !errors.Is(err, ErrInvalidGoal) {
				t.Errorf("err = %v, want ErrInvalidGoal", err)
			}
		})
	}
}
