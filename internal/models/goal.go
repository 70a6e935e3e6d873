package models

import (
	"time"

	"github.com/google/uuid"
)

type FinancialGoal struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	Title         string    `db:"title"`
	TargetAmount  string    `db:"target_amount"`
	CurrentAmount string    `db:"current_amount"`
	TargetDate    time.Time `db:"target_date"`
	IsCompleted   bool      `db:"is_completed"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}
