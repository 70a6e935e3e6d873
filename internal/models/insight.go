package models

import (
	"time"

	"github.com/google/uuid"
)

// AiInsight is a persisted snapshot of a generated insight. Insights are
// regenerated on demand from current data; rows are replaced, not
// appended.
type AiInsight struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Type      string    `db:"type"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Priority  int       `db:"priority"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}
