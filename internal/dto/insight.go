package dto

type InsightResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Priority  int    `json:"priority"`
	IsRead    bool   `json:"is_read"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	CreatedAt string `json:"created_at"`
}
