package dto

type CreateCategoryRequest struct {
	Name  string `json:"name" example:"Spor"`
	Icon  string `json:"icon" example:"dumbbell"`
	Color string `json:"color" example:"#009688"`
}

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Role      string `json:"role"`
	IsDefault bool   `json:"is_default"`
}
