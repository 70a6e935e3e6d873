package analytics

import (
	"fmt"
	"sort"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	fallbackCategoryName  = "Diğer"
	fallbackCategoryColor = "#9E9E9E"
)

// CategorySlice is one wedge of the spending breakdown chart.
type CategorySlice struct {
	Name  string
	Color string
	Total decimal.Decimal
}

// CategoryBreakdown folds expense transactions into per-category totals,
// sorted by total descending. Uncategorized spending lands in the Diğer
// bucket. The fold builds a fresh mapping per call; nothing is shared
// between invocations.
func CategoryBreakdown(txs []*models.Transaction, categories []*models.Category) ([]CategorySlice, error) {
	byID := make(map[uuid.UUID]*models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	totals := make(map[string]CategorySlice)
	for _, tx := range txs {
		if tx.Type != models.TransactionExpense {
			continue
		}
		amount, err := parseAmount(tx.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", tx.ID, err)
		}

		name, color := fallbackCategoryName, fallbackCategoryColor
		if tx.CategoryID != nil {
			if c, ok := byID[*tx.CategoryID]; ok {
				name, color = c.Name, c.Color
			}
		}

		slice, ok := totals[name]
		if !ok {
			slice = CategorySlice{Name: name, Color: color}
		}
		slice.Total = slice.Total.Add(amount)
		totals[name] = slice
	}

	slices := make([]CategorySlice, 0, len(totals))
	for _, s := range totals {
		slices = append(slices, s)
	}
	sort.Slice(slices, func(i, j int) bool {
		return slices[i].Total.GreaterThan(slices[j].Total)
	})
	return slices, nil
}
