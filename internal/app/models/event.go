package models

import "time"

// TechEvent defines the event model based on the 'tech_events' table.
// Content fields are admin-managed; attendees and likes are incremented by
// unauthenticated register/like actions.
type TechEvent struct {
	ID               int64     `json:"id" db:"id" example:"1"`
	Title            string    `json:"title" db:"title" example:"GopherCon EU"`
	Organization     string    `json:"organization" db:"organization" example:"GopherCon"`
	Description      string    `json:"description" db:"description"`
	Venue            string    `json:"venue" db:"venue" example:"Berlin Congress Center"`
	RegistrationLink string    `json:"registration_link" db:"registration_link"`
	StartDate        time.Time `json:"start_date" db:"start_date"`
	EndDate          time.Time `json:"end_date" db:"end_date"`
	Location         string    `json:"location" db:"location" example:"Berlin, Germany"`
	Type             EventType `json:"type" db:"type" example:"Conference"`
	Price            *string   `json:"price,omitempty" db:"price"`
	TechStack        []string  `json:"tech_stack" db:"tech_stack"`
	Speakers         []string  `json:"speakers" db:"speakers"`
	Virtual          bool      `json:"virtual" db:"virtual"`
	Tags             []string  `json:"tags" db:"tags"`
	Attendees        int64     `json:"attendees" db:"attendees" example:"0"`
	Likes            int64     `json:"likes" db:"likes" example:"0"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// EventStats aggregates counters over the whole tech_events table.
type EventStats struct {
	TotalEvents       int64            `json:"total_events"`
	TotalAttendees    int64            `json:"total_attendees"`
	TotalLikes        int64            `json:"total_likes"`
	Types             map[string]int64 `json:"types"`
	VirtualVsPhysical map[string]int64 `json:"virtual_vs_physical"`
	UpcomingEvents    int64            `json:"upcoming_events"`
}
