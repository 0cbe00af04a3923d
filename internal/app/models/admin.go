package models

import "time"

// Admin defines the admin model based on the 'admins' table.
// Admins manage event and opportunity content; they carry no user profile.
type Admin struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	Username       string    `json:"username" db:"username" example:"admin"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	CreatedAt      time.Time `json:"created_at" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
