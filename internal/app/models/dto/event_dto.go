package dto

import (
	"time"

	"github.com/deniz/technexus/internal/app/models"
)

// EventRequest carries the admin-managed fields of a tech event. Identity,
// timestamps and counters are always server-assigned.
type EventRequest struct {
	Title            string           `json:"title" binding:"required"`
	Organization     string           `json:"organization" binding:"required"`
	Description      string           `json:"description" binding:"required"`
	Venue            string           `json:"venue" binding:"required"`
	RegistrationLink string           `json:"registration_link" binding:"required"`
	StartDate        time.Time        `json:"start_date" binding:"required"`
	EndDate          time.Time        `json:"end_date" binding:"required"`
	Location         string           `json:"location" binding:"required"`
	Type             models.EventType `json:"type" binding:"required"`
	Price            *string          `json:"price,omitempty"`
	TechStack        []string         `json:"tech_stack"`
	Speakers         []string         `json:"speakers"`
	Virtual          bool             `json:"virtual"`
	Tags             []string         `json:"tags"`
}

// ToModel converts the request into a TechEvent with zeroed counters.
func (r *EventRequest) ToModel() *models.TechEvent {
	return &models.TechEvent{
		Title:            r.Title,
		Organization:     r.Organization,
		Description:      r.Description,
		Venue:            r.Venue,
		RegistrationLink: r.RegistrationLink,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Location:         r.Location,
		Type:             r.Type,
		Price:            r.Price,
		TechStack:        r.TechStack,
		Speakers:         r.Speakers,
		Virtual:          r.Virtual,
		Tags:             r.Tags,
	}
}

// LikeResponse reports the like counter after an increment
type LikeResponse struct {
	Message string `json:"message"`
	Likes   int64  `json:"likes"`
}

// RegisterResponse reports the attendee counter after a registration
type RegisterResponse struct {
	Message   string `json:"message"`
	Attendees int64  `json:"attendees"`
}
