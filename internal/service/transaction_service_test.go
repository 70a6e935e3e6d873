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

func newTestCategories() []*models.Category {
	return []*models.Category{
		{ID: uuid.New(), Name: "Gıda & İçecek", Color: "#4CAF50", Role: models.RoleExpenseDefault},
		{ID: uuid.New(), Name: "Ulaşım", Color: "#FF9800", Role: models.RoleExpenseDefault},
		{ID: uuid.New(), Name: "Gelir", Color: "#4CAF50", Role: models.RoleIncome},
	}
}

func TestTransactionCreateAutoCategorizes(t *testing.T) {
	txRepo := &fakeTransactionRepo{}
	catRepo := &fakeCategoryRepo{categories: newTestCategories()}
	svc := NewTransactionService(txRepo, catRepo, time.UTC, zap.NewNop())
	userID := uuid.New()

	tx, err := svc.Create(context.Background(), userID, &dto.CreateTransactionRequest{
		Amount:      "150.00",
		Type:        "expense",
		Description: "Migros market alışverişi",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if tx.CategoryID == nil {
		t.Fatal("expected auto-assigned category")
	}
	if *tx.CategoryID != catRepo.categories[0].ID {
		t.Errorf("categorized into %s, want Gıda & İçecek", tx.CategoryID)
	}
	if tx.Source != models.SourceAI {
		t.Errorf("source = %q, want %q", tx.Source, models.SourceAI)
	}
}

func TestTransactionCreateExplicitCategoryWins(t *testing.T) {
	txRepo := &fakeTransactionRepo{}
	catRepo := &fakeCategoryRepo{categories: newTestCategories()}
	svc := NewTransactionService(txRepo, catRepo, time.UTC, zap.NewNop())
	userID := uuid.New()

	chosen := catRepo.categories[1].ID.String()
	tx, err := svc.Create(context.Background(), userID, &dto.CreateTransactionRequest{
		Amount:      "80.00",
		Type:        "expense",
		Description: "market", // would keyword-match Gıda
		CategoryID:  &chosen,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if tx.CategoryID == nil || tx.CategoryID.String() != chosen {
		t.Errorf("category = %v, want explicit %s", tx.CategoryID, chosen)
	}
	if tx.Source != models.SourceManual {
		t.Errorf("source = %q, want manual", tx.Source)
	}
}

func TestTransactionCreateValidation(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{}, &fakeCategoryRepo{}, time.UTC, zap.NewNop())
	userID := uuid.New()

	cases := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{"zero amount", dto.CreateTransactionRequest{Amount: "0", Type: "expense"}},
		{"negative amount", dto.CreateTransactionRequest{Amount: "-5", Type: "expense"}},
		{"malformed amount", dto.CreateTransactionRequest{Amount: "abc", Type: "expense"}},
		{"bad type", dto.CreateTransactionRequest{Amount: "10", Type: "transfer"}},
		{"bad date", dto.CreateTransactionRequest{Amount: "10", Type: "income", Date: "14.03.2025"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), userID, &tc.req); !errors.Is(err, ErrInvalidTransaction) {
				t.Errorf("err = %v, want ErrInvalidTransaction", err)
			}
		})
	}
}

func TestTransactionMonthlyStats(t *testing.T) {
	userID := uuid.New()
	txRepo := &fakeTransactionRepo{txs: []*models.Transaction{
		{ID: uuid.New(), UserID: userID, Amount: "1000.00", Type: models.TransactionIncome,
			Date: time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: userID, Amount: "250.50", Type: models.TransactionExpense,
			Date: time.Date(2025, 3, 20, 18, 30, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: userID, Amount: "999.00", Type: models.TransactionExpense,
			Date: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)}, // next month
	}}
	svc := NewTransactionService(txRepo, &fakeCategoryRepo{}, time.UTC, zap.NewNop())

	stats, err := svc.MonthlyStats(context.Background(), userID, 2025, 3)
	if err != nil {
		t.Fatalf("MonthlyStats: %v", err)
	}
	if got := stats.TotalIncome.String(); got != "1000" {
		t.Errorf("income = %s, want 1000", got)
	}
	if got := stats.TotalExpenses.String(); got != "250.5" {
		t.Errorf("expenses = %s, want 250.5", got)
	}
	if got := stats.Balance.String(); got != "749.5" {
		t.Errorf("balance = %s, want 749.5", got)
	}
}
