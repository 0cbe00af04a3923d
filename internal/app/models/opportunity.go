package models

import "time"

// ResearchOpportunity defines the opportunity model based on the
// 'research_opportunities' table. Same lifecycle as TechEvent with
// applications counted instead of attendees.
type ResearchOpportunity struct {
	ID           int64           `json:"id" db:"id" example:"1"`
	Title        string          `json:"title" db:"title" example:"ML Research Assistant"`
	Organization string          `json:"organization" db:"organization" example:"MIT CSAIL"`
	Description  string          `json:"description" db:"description"`
	Type         OpportunityType `json:"type" db:"type" example:"Research"`
	Location     string          `json:"location" db:"location" example:"Cambridge, MA"`
	Deadline     time.Time       `json:"deadline" db:"deadline"`
	Duration     *string         `json:"duration,omitempty" db:"duration"`
	Compensation *string         `json:"compensation,omitempty" db:"compensation"`
	Requirements []string        `json:"requirements" db:"requirements"`
	Fields       []string        `json:"fields" db:"fields"`
	ContactEmail string          `json:"contact_email" db:"contact_email"`
	Virtual      bool            `json:"virtual" db:"virtual"`
	Tags         []string        `json:"tags" db:"tags"`
	Applications int64           `json:"applications" db:"applications" example:"0"`
	Likes        int64           `json:"likes" db:"likes" example:"0"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// OpportunityStats aggregates counters over the research_opportunities table.
type OpportunityStats struct {
	TotalOpportunities    int64            `json:"total_opportunities"`
	TotalApplications     int64            `json:"total_applications"`
	TotalLikes            int64            `json:"total_likes"`
	Types                 map[string]int64 `json:"types"`
	VirtualVsPhysical     map[string]int64 `json:"virtual_vs_physical"`
	UpcomingOpportunities int64            `json:"upcoming_opportunities"`
}
