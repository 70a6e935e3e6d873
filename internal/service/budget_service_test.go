package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestBudgetListDecoratesSpending(t *testing.T) {
	userID := uuid.New()
	category := &models.Category{ID: uuid.New(), Name: "Ulaşım", Color: "#FF9800"}
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	budgetRepo := &fakeBudgetRepo{budgets: []*models.Budget{
		{ID: uuid.New(), UserID: userID, CategoryID: &category.ID, Amount: "1000.00",
			Period: models.PeriodMonthly, StartDate: start, EndDate: end, IsActive: true},
	}}
	txRepo := &fakeTransactionRepo{sums: map[uuid.UUID]string{category.ID: "800.00"}}
	catRepo := &fakeCategoryRepo{categories: []*models.Category{category}}

	svc := NewBudgetService(budgetRepo, txRepo, catRepo, zap.NewNop())
	out, err := svc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d budgets, want 1", len(out))
	}

	b := out[0]
	if got := b.Spent.String(); got != "800" {
		t.Errorf("spent = %s, want 800", got)
	}
	if b.Progress.Percentage != 80 {
		t.Errorf("percentage = %v, want 80", b.Progress.Percentage)
	}
	if b.Progress.Status != analytics.StatusWarning {
		t.Errorf("status = %q, want warning", b.Progress.Status)
	}
	if b.Category == nil || b.Category.Name != "Ulaşım" {
		t.Errorf("category = %+v, want Ulaşım", b.Category)
	}
}

func TestBudgetCreateValidation(t *testing.T) {
	svc := NewBudgetService(&fakeBudgetRepo{}, &fakeTransactionRepo{}, &fakeCategoryRepo{}, zap.NewNop())
	userID := uuid.New()

	cases := []struct {
		name string
		req  dto.CreateBudgetRequest
	}{
		{"zero amount", dto.CreateBudgetRequest{Amount: "0", Period: "monthly",
			StartDate: "2025-03-01T00:00:00Z", EndDate: "2025-03-31T00:00:00Z"}},
		{"bad period", dto.CreateBudgetRequest{Amount: "100", Period: "daily",
			StartDate: "2025-03-01T00:00:00Z", EndDate: "2025-03-31T00:00:00Z"}},
		{"end before start", dto.CreateBudgetRequest{Amount: "100", Period: "monthly",
			StartDate: "2025-03-31T00:00:00Z", EndDate: "2025-03-01T00:00:00Z"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), userID, &tc.req); !errors.Is(err, ErrInvalidBudget) {
				t.Errorf("err = %v, want ErrInvalidBudget", err)
			}
		})
	}
}
