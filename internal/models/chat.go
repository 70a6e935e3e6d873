package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	Message    string    `db:"message"`
	IsFromUser bool      `db:"is_from_user"`
	CreatedAt  time.Time `db:"created_at"`
}
