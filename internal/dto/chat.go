package dto

type ChatRequest struct {
	Message string `json:"message" example:"Bu ay ne kadar harcama yaptım?"`
}

type ChatMessageResponse struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	IsFromUser bool   `json:"is_from_user"`
	CreatedAt  string `json:"created_at"`
}

type ChatExchangeResponse struct {
	Question ChatMessageResponse `json:"question"`
	Answer   ChatMessageResponse `json:"answer"`
}
