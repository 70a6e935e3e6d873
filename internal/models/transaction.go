package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type TransactionSource string

const (
	SourceManual TransactionSource = "manual"
	SourceOCR    TransactionSource = "ocr"
	SourceVoice  TransactionSource = "voice"
	SourceAI     TransactionSource = "ai"
)

// Transaction amounts are stored as exact decimal strings (NUMERIC in
// Postgres). The sign of the cash flow is carried by Type; Amount is
// always positive.
type Transaction struct {
	ID          uuid.UUID         `db:"id"`
	UserID      uuid.UUID         `db:"user_id"`
	Amount      string            `db:"amount"`
	Type        TransactionType   `db:"type"`
	Description string            `db:"description"`
	CategoryID  *uuid.UUID        `db:"category_id"`
	Date        time.Time         `db:"date"`
	Source      TransactionSource `db:"source"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}
