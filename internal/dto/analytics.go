package dto

type FactorResponse struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

type HealthFactorsResponse struct {
	Savings    FactorResponse `json:"savings"`
	Budget     FactorResponse `json:"budget"`
	Goals      FactorResponse `json:"goals"`
	Discipline FactorResponse `json:"discipline"`
}

type HealthScoreResponse struct {
	Score   int                   `json:"score"`
	Label   string                `json:"label"`
	Factors HealthFactorsResponse `json:"factors"`
}

type TrendPointResponse struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Label    string `json:"label"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

type BreakdownSliceResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Total string `json:"total"`
}
