package dto

import (
	"time"

	"github.com/deniz/technexus/internal/app/models"
)

// OpportunityRequest carries the admin-managed fields of a research
// opportunity.
type OpportunityRequest struct {
	Title        string                 `json:"title" binding:"required"`
	Organization string                 `json:"organization" binding:"required"`
	Description  string                 `json:"description" binding:"required"`
	Type         models.OpportunityType `json:"type" binding:"required"`
	Location     string                 `json:"location" binding:"required"`
	Deadline     time.Time              `json:"deadline" binding:"required"`
	Duration     *string                `json:"duration,omitempty"`
	Compensation *string                `json:"compensation,omitempty"`
	Requirements []string               `json:"requirements"`
	Fields       []string               `json:"fields"`
	ContactEmail string                 `json:"contact_email" binding:"required,email"`
	Virtual      bool                   `json:"virtual"`
	Tags         []string               `json:"tags"`
}

// ToModel converts the request into a ResearchOpportunity with zeroed
// counters.
func (r *OpportunityRequest) ToModel() *models.ResearchOpportunity {
	return &models.ResearchOpportunity{
		Title:        r.Title,
		Organization: r.Organization,
		Description:  r.Description,
		Type:         r.Type,
		Location:     r.Location,
		Deadline:     r.Deadline,
		Duration:     r.Duration,
		Compensation: r.Compensation,
		Requirements: r.Requirements,
		Fields:       r.Fields,
		ContactEmail: r.ContactEmail,
		Virtual:      r.Virtual,
		Tags:         r.Tags,
	}
}

// ApplyResponse reports the application counter after an application
type ApplyResponse struct {
	Message      string `json:"message"`
	Applications int64  `json:"applications"`
}
