package analytics

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

func TestCategoryBreakdown(t *testing.T) {
	food := &models.Category{ID: uuid.New(), Name: "Gıda & İçecek", Color: "#4CAF50"}
	transport := &models.Category{ID: uuid.New(), Name: "Ulaşım", Color: "#FF9800"}
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	withCat := func(amount string, c *models.Category) *models.Transaction {
		out := tx(amount, models.TransactionExpense, date)
		if c != nil {
			out.CategoryID = &c.ID
		}
		return out
	}

	txs := []*models.Transaction{
		withCat("100", food),
		withCat("50.50", food),
		withCat("200", transport),
		withCat("30", nil), // uncategorized
		tx("9999", models.TransactionIncome, date), // income is not spending
	}

	slices, err := CategoryBreakdown(txs, []*models.Category{food, transport})
	if err != nil {
		t.Fatalf("CategoryBreakdown failed: %v", err)
	}
	if len(slices) != 3 {
		t.Fatalf("got %d slices, want 3", len(slices))
	}

	// sorted by total descending
	if slices[0].Name != "Ulaşım" || slices[0].Total.String() != "200" {
		t.Errorf("slices[0] = %+v, want Ulaşım 200", slices[0])
	}
	if slices[1].Name != "Gıda & İçecek" || slices[1].Total.String() != "150.5" {
		t.Errorf("slices[1] = %+v, want Gıda & İçecek 150.5", slices[1])
	}
	if slices[2].Name != "Diğer" || slices[2].Color != "#9E9E9E" {
		t.Errorf("slices[2] = %+v, want the Diğer fallback bucket", slices[2])
	}
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	slices, err := CategoryBreakdown(nil, nil)
	if err != nil {
		t.Fatalf("CategoryBreakdown failed: %v", err)
	}
	if len(slices) != 0 {
		t.Errorf("got %d slices, want none", len(slices))
	}
}
