package models

import "time"

// User defines the user model based on the 'users' table.
// saved_events and saved_opportunities hold entity IDs in the order the user
// bookmarked them; toggle semantics guarantee no duplicates.
type User struct {
	ID                 int64     `json:"id" db:"id" example:"1"`
	Email              string    `json:"email" db:"email" example:"ada@example.com"`
	Username           string    `json:"username" db:"username" example:"ada"`
	HashedPassword     string    `json:"-" db:"hashed_password"`
	FullName           string    `json:"full_name" db:"full_name" example:"Ada Lovelace"`
	Bio                *string   `json:"bio,omitempty" db:"bio"`
	ProfileImage       *string   `json:"profile_image,omitempty" db:"profile_image"`
	IsActive           bool      `json:"is_active" db:"is_active" example:"true"`
	Interests          []string  `json:"interests" db:"interests"`
	SavedEvents        []int64   `json:"saved_events" db:"saved_events"`
	SavedOpportunities []int64   `json:"saved_opportunities" db:"saved_opportunities"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
