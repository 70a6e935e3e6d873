package service

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestHealthScoreUsesBaselinesWithoutBudgetsOrGoals(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	txRepo := &fakeTransactionRepo{txs: []*models.Transaction{
		{ID: uuid.New(), UserID: userID, Amount: "10000.00", Type: models.TransactionIncome, Date: now.AddDate(0, 0, -10)},
		{ID: uuid.New(), UserID: userID, Amount: "8000.00", Type: models.TransactionExpense, Date: now.AddDate(0, 0, -4)},
	}}

	svc := NewAnalyticsService(txRepo, &fakeBudgetRepo{}, &fakeGoalRepo{}, &fakeCategoryRepo{}, zap.NewNop())
	score, err := svc.HealthScore(context.Background(), userID, now)
	if err != nil {
		t.Fatalf("HealthScore: %v", err)
	}

	// savings 20% -> 100, adherence baseline 0.8 -> 80,
	// discipline 20, goals baseline 0.6 -> 60
	// 100*0.30 + 80*0.25 + 20*0.25 + 60*0.20 = 67
	if score.Score != 67 {
		t.Errorf("score = %d, want 67", score.Score)
	}
	if score.Budget.Score != 80 {
		t.Errorf("budget factor = %d, want baseline 80", score.Budget.Score)
	}
	if score.Goals.Score != 60 {
		t.Errorf("goals factor = %d, want baseline 60", score.Goals.Score)
	}
}

func TestHealthScoreGoalProgressFromData(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	goalRepo := &fakeGoalRepo{goals: []*models.FinancialGoal{
		{ID: uuid.New(), UserID: userID, TargetAmount: "1000.00", CurrentAmount: "500.00", TargetDate: now.AddDate(1, 0, 0)},
	}}

	svc := NewAnalyticsService(&fakeTransactionRepo{}, &fakeBudgetRepo{}, goalRepo, &fakeCategoryRepo{}, zap.NewNop())
	score, err := svc.HealthScore(context.Background(), userID, now)
	if err != nil {
		t.Fatalf("HealthScore: %v", err)
	}
	if score.Goals.Score != 50 {
		t.Errorf("goals factor = %d, want 50", score.Goals.Score)
	}
}

func TestTrendsCoversSixMonths(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	txRepo := &fakeTransactionRepo{txs: []*models.Transaction{
		{ID: uuid.New(), UserID: userID, Amount: "100.00", Type: models.TransactionExpense,
			Date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: userID, Amount: "200.00", Type: models.TransactionExpense,
			Date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: userID, Amount: "50.00", Type: models.TransactionExpense,
			Date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)}, // outside window
	}}

	svc := NewAnalyticsService(txRepo, &fakeBudgetRepo{}, &fakeGoalRepo{}, &fakeCategoryRepo{}, zap.NewNop())
	points, err := svc.Trends(context.Background(), userID, now)
	if err != nil {
		t.Fatalf("Trends: %v", err)
	}

	if len(points) != 6 {
		t.Fatalf("got %d points, want 6", len(points))
	}
	if points[0].Month != 1 || points[0].Label != "Ocak" {
		t.Errorf("first point = %d %q, want January", points[0].Month, points[0].Label)
	}
	if got := points[0].Expenses.String(); got != "100" {
		t.Errorf("january expenses = %s, want 100", got)
	}
	if points[5].Month != 6 {
		t.Errorf("last point month = %d, want 6", points[5].Month)
	}
	if got := points[5].Expenses.String(); got != "200" {
		t.Errorf("june expenses = %s, want 200", got)
	}
	if got := points[1].Expenses.String(); got != "0" {
		t.Errorf("empty month expenses = %s, want 0", got)
	}
}

func TestBreakdownFoldsByCategory(t *testing.T) {
	userID := uuid.New()
	food := &models.Category{ID: uuid.New(), Name: "Gıda & İçecek", Color: "#4CAF50"}
	txRepo := &fakeTransactionRepo{txs: []*models.Transaction{
		{ID: uuid.New(), UserID: userID, Amount: "300.00", Type: models.TransactionExpense,
			CategoryID: &food.ID, Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: userID, Amount: "120.00", Type: models.TransactionExpense,
			Date: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)}, // uncategorized
	}}

	svc := NewAnalyticsService(txRepo, &fakeBudgetRepo{}, &fakeGoalRepo{}, &fakeCategoryRepo{categories: []*models.Category{food}}, zap.NewNop())
	slices, err := svc.Breakdown(context.Background(), userID, 2025, 3, time.UTC)
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}

	if len(slices) != 2 {
		t.Fatalf("got %d slices, want 2", len(slices))
	}
	if slices[0].Name != "Gıda & İçecek" || slices[0].Total.String() != "300" {
		t.Errorf("top slice = %s %s", slices[0].Name, slices[0].Total)
	}
	if slices[1].Name != "Diğer" {
		t.Errorf("fallback slice = %s, want Diğer", slices[1].Name)
	}
}
