package dto

type CreateTransactionRequest struct {
	Amount      string  `json:"amount" example:"245.80"`
	Type        string  `json:"type" example:"expense"`
	Description string  `json:"description" example:"Market alışverişi"`
	CategoryID  *string `json:"category_id,omitempty"`
	Date        string  `json:"date,omitempty" example:"2025-03-14T12:00:00Z"`
	Source      string  `json:"source,omitempty" example:"manual"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Amount      string  `json:"amount"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	CategoryID  *string `json:"category_id,omitempty"`
	Date        string  `json:"date"`
	Source      string  `json:"source"`
	CreatedAt   string  `json:"created_at"`
}

type MonthlyStatsResponse struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	TotalIncome   string  `json:"total_income"`
	TotalExpenses string  `json:"total_expenses"`
	Balance       string  `json:"balance"`
	SavingsRate   float64 `json:"savings_rate"`
}
