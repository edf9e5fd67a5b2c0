package dto

// LoginRequest represents the login (session creation) payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"aluno@escola.com"`
	Password string `json:"password" binding:"required,min=6" example:"123456"`
}

// TokenResponse is returned when a session is established
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterRequest represents the user registration payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Ana Souza"`
	Email    string `json:"email" binding:"required,email" example:"ana@escola.com"`
	Password string `json:"password" binding:"required,min=6" example:"123456"`
}

// RegisterResponse is returned when a user account is created
type RegisterResponse struct {
	UserID string `json:"userId"`
}
