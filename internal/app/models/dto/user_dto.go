package dto

// CreateUserRequest represents a signup request
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

// UpdateUserRequest represents a partial profile update. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Email        *string   `json:"email,omitempty" binding:"omitempty,email"`
	FullName     *string   `json:"full_name,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Interests    *[]string `json:"interests,omitempty"`
	ProfileImage *string   `json:"profile_image,omitempty"`
}

// ToggleSaveResponse reports the membership state after a save toggle
type ToggleSaveResponse struct {
	Saved bool `json:"saved"`
}
