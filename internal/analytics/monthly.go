package analytics

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// MonthlyStats is a pure derivation over one calendar month of a user's
// transactions.
type MonthlyStats struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
}

// MonthWindow returns the inclusive bounds of a calendar month in loc:
// the first instant of the month through the last day at 23:59:59.
func MonthWindow(year, month int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// ComputeMonthlyStats sums income and expense amounts of the transactions
// dated within the given month and derives the balance. Transactions
// outside the window are ignored; an empty input yields zeros.
func ComputeMonthlyStats(txs []*models.Transaction, year, month int, loc *time.Location) (MonthlyStats, error) {
	if month < 1 || month > 12 {
		return MonthlyStats{}, fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}

	start, end := MonthWindow(year, month, loc)
	income := decimal.Zero
	expenses := decimal.Zero

	for _, tx := range txs {
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		amount, err := parseAmount(tx.Amount)
		if err != nil {
			return MonthlyStats{}, fmt.Errorf("transaction %s: %w", tx.ID, err)
		}
		switch tx.Type {
		case models.TransactionIncome:
			income = income.Add(amount)
		case models.TransactionExpense:
			expenses = expenses.Add(amount)
		}
	}

	return MonthlyStats{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}, nil
}

// SavingsRate returns the percentage of income not spent, or 0 when the
// balance is non-positive or there is no income.
func (s MonthlyStats) SavingsRate() float64 {
	if s.Balance.Sign() <= 0 || s.TotalIncome.Sign() <= 0 {
		return 0
	}
	rate, _ := s.Balance.Div(s.TotalIncome).Mul(hundred).Float64()
	return rate
}
