package dto

type CreateBudgetRequest struct {
	CategoryID *string `json:"category_id,omitempty"`
	Amount     string  `json:"amount" example:"2000.00"`
	Period     string  `json:"period" example:"monthly"`
	StartDate  string  `json:"start_date" example:"2025-03-01T00:00:00Z"`
	EndDate    string  `json:"end_date" example:"2025-03-31T23:59:59Z"`
}

type BudgetResponse struct {
	ID           string  `json:"id"`
	CategoryID   *string `json:"category_id,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
	Amount       string  `json:"amount"`
	Spent        string  `json:"spent"`
	Remaining    string  `json:"remaining"`
	Percentage   float64 `json:"percentage"`
	Status       string  `json:"status"`
	Period       string  `json:"period"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
}
