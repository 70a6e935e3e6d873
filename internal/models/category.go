package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CategoryRole tags a category's function independently of its display
// name. Legacy rows created before the role column exist with
// RoleUserDefined and an income-ish name; IsIncome covers both.
type CategoryRole string

const (
	RoleIncome         CategoryRole = "income"
	RoleExpenseDefault CategoryRole = "expense_default"
	RoleUserDefined    CategoryRole = "user_defined"
)

type Category struct {
	ID        uuid.UUID    `db:"id"`
	UserID    *uuid.UUID   `db:"user_id"` // nil for system defaults
	Name      string       `db:"name"`
	Icon      string       `db:"icon"`
	Color     string       `db:"color"`
	Role      CategoryRole `db:"role"`
	IsDefault bool         `db:"is_default"`
	CreatedAt time.Time    `db:"created_at"`
}

// IsIncome reports whether the category is the income bucket. The name
// check keeps pre-role data ("Gelir") working.
func (c *Category) IsIncome() bool {
	if c.Role == RoleIncome {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), "gelir")
}
