package dto

type CreateGoalRequest struct {
	Title         string `json:"title" example:"Acil durum fonu"`
	TargetAmount  string `json:"target_amount" example:"30000.00"`
	CurrentAmount string `json:"current_amount,omitempty" example:"5000.00"`
	TargetDate    string `json:"target_date" example:"2025-12-31T00:00:00Z"`
}

type ContributeGoalRequest struct {
	Amount string `json:"amount" example:"500.00"`
}

type GoalResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	TargetAmount  string  `json:"target_amount"`
	CurrentAmount string  `json:"current_amount"`
	TargetDate    string  `json:"target_date"`
	IsCompleted   bool    `json:"is_completed"`
	ProgressPct   float64 `json:"progress_pct"`
	DaysRemaining int     `json:"days_remaining"`
	TimeRemaining string  `json:"time_remaining"`
	IsOverdue     bool    `json:"is_overdue"`
}
