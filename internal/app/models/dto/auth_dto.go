package dto

import "github.com/deniz/technexus/internal/app/models"

// LoginRequest represents login credentials. The /token endpoint follows the
// OAuth2 password form shape, so fields bind from form data.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// TokenResponse represents an issued access token. UserID is present only
// for user-role tokens.
type TokenResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type" example:"bearer"`
	UserType    models.UserType `json:"user_type" example:"user"`
	UserID      *int64          `json:"user_id,omitempty"`
	Username    string          `json:"username"`
}

// CreateAdminRequest represents an admin provisioning request
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
