package dto

// MessageResponse is the standard body for user-facing failures
// (validation, conflict, invalid credentials).
type MessageResponse struct {
	Message string `json:"message" example:"Credenciais inválidas"`
}

// NewMessageResponse creates a message response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
