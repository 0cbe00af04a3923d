package dto

// MessageResponse represents a simple confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
