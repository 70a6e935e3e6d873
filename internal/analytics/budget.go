package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

type BudgetStatus string

const (
	StatusSafe    BudgetStatus = "safe"
	StatusWarning BudgetStatus = "warning"
	StatusDanger  BudgetStatus = "danger"
)

type BudgetProgress struct {
	Percentage float64
	Remaining  decimal.Decimal
	Status     BudgetStatus
}

// EvaluateBudget computes how far spending has progressed against a
// budget. The displayed percentage is clamped at 100 and the remaining
// amount is floored at zero, but the status thresholds (>90 danger,
// >75 warning) use the unclamped percentage. A non-positive budget amount
// has no defined ratio and evaluates to zero values with a safe status.
func EvaluateBudget(spent, amount decimal.Decimal) BudgetProgress {
	if amount.Sign() <= 0 {
		return BudgetProgress{Percentage: 0, Remaining: decimal.Zero, Status: StatusSafe}
	}

	raw, _ := spent.Div(amount).Mul(hundred).Float64()

	status := StatusSafe
	if raw > 90 {
		status = StatusDanger
	} else if raw > 75 {
		status = StatusWarning
	}

	remaining := amount.Sub(spent)
	if remaining.Sign() < 0 {
		remaining = decimal.Zero
	}

	return BudgetProgress{
		Percentage: math.Min(100, raw),
		Remaining:  remaining,
		Status:     status,
	}
}
