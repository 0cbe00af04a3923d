// Package models defines the database-backed domain types.
package models

// UserType identifies which credential table a token was issued against.
type UserType string

const (
	UserTypeAdmin UserType = "admin"
	UserTypeUser  UserType = "user"
)

// IsValid reports whether the value is one of the two known roles.
func (t UserType) IsValid() bool {
	return t == UserTypeAdmin || t == UserTypeUser
}

// EventType categorizes a tech event.
type EventType string

const (
	EventConference EventType = "Conference"
	EventHackathon  EventType = "Hackathon"
	EventWorkshop   EventType = "Workshop"
	EventMeetup     EventType = "Meetup"
	EventWebinar    EventType = "Webinar"
	EventTechTalk   EventType = "Tech Talk"
)

// EventTypes lists all valid event types.
var EventTypes = []EventType{
	EventConference,
	EventHackathon,
	EventWorkshop,
	EventMeetup,
	EventWebinar,
	EventTechTalk,
}

// IsValid reports whether the value is a known event type.
func (t EventType) IsValid() bool {
	for _, v := range EventTypes {
		if t == v {
			return true
		}
	}
	return false
}

// OpportunityType categorizes a research opportunity.
type OpportunityType string

const (
	OpportunityResearch   OpportunityType = "Research"
	OpportunityInternship OpportunityType = "Internship"
	OpportunityFellowship OpportunityType = "Fellowship"
	OpportunityGrant      OpportunityType = "Grant"
	OpportunityProject    OpportunityType = "Project"
)

// OpportunityTypes lists all valid opportunity types.
var OpportunityTypes = []OpportunityType{
	OpportunityResearch,
	OpportunityInternship,
	OpportunityFellowship,
	OpportunityGrant,
	OpportunityProject,
}

// IsValid reports whether the value is a known opportunity type.
func (t OpportunityType) IsValid() bool {
	for _, v := range OpportunityTypes {
		if t == v {
			return true
		}
	}
	return false
}
