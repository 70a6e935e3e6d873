package dto

type RegisterRequest struct {
	Email     string `json:"email" example:"ayse@example.com"`
	Password  string `json:"password" example:"s3cret-pass"`
	FirstName string `json:"first_name" example:"Ayşe"`
	LastName  string `json:"last_name" example:"Yılmaz"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"ayse@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	User         UserResponse `json:"user"`
}
