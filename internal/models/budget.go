package models

import (
	"time"

	"github.com/google/uuid"
)

type BudgetPeriod string

const (
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Budget does not store the spent amount; it is derived from expense
// transactions inside [StartDate, EndDate] at read time.
type Budget struct {
	ID         uuid.UUID    `db:"id"`
	UserID     uuid.UUID    `db:"user_id"`
	CategoryID *uuid.UUID   `db:"category_id"`
	Amount     string       `db:"amount"`
	Period     BudgetPeriod `db:"period"`
	StartDate  time.Time    `db:"start_date"`
	EndDate    time.Time    `db:"end_date"`
	IsActive   bool         `db:"is_active"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at"`
}
