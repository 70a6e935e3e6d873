// Package analytics contains the pure derivations of the tracker: monthly
// aggregation, budget and goal progress, the financial health score, the
// rule-based insight generator, auto-categorization and display
// formatting. Every function here is deterministic; wall-clock time is
// always an explicit parameter and amounts are parsed from their decimal
// string form only at these boundaries.
package analytics

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

var hundred = decimal.NewFromInt(100)

// parseAmount parses a decimal amount string. An absent amount is zero; a
// malformed one is an error, never silently coerced.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}
