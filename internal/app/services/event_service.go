package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/app/models/dto"
	"github.com/deniz/technexus/internal/app/repositories"
	"github.com/deniz/technexus/internal/pkg/apperrors"
)

// eventSortColumns is the allow-list mapping API sort keys to columns.
// Anything outside the map is rejected before reaching the repository.
var eventSortColumns = map[string]string{
	"start_date": "start_date",
	"created_at": "created_at",
	"likes":      "likes",
}

// resolveSort validates a sort key and order against an allow-list.
func resolveSort(allowed map[string]string, sortBy, order string) (string, bool, error) {
	column, ok := allowed[sortBy]
	if !ok {
		return "", false, apperrors.NewCustomError(apperrors.ErrInvalidSortField,
			fmt.Sprintf("Cannot sort by %q", sortBy))
	}

	switch strings.ToLower(order) {
	case "asc":
		return column, false, nil
	case "desc":
		return column, true, nil
	default:
		return "", false, apperrors.NewCustomError(apperrors.ErrInvalidSortOrder,
			fmt.Sprintf("Sort order must be asc or desc, got %q", order))
	}
}

// EventService implements tech event operations
type EventService struct {
	eventRepo repositories.IEventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.IEventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// List returns a page of events sorted by a validated column
func (s *EventService) List(ctx context.Context, skip, limit int, sortBy, order string) ([]models.TechEvent, error) {
	column, desc, err := resolveSort(eventSortColumns, sortBy, order)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, skip, limit, column, desc)
}

// Get returns a single event by ID
func (s *EventService) Get(ctx context.Context, id int64) (*models.TechEvent, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func validateEventType(eventType models.EventType) error {
	if !eventType.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("Invalid event type %q", eventType))
	}
	return nil
}

// Create stores a new event with server-assigned identity and counters
func (s *EventService) Create(ctx context.Context, req *dto.EventRequest) (*models.TechEvent, error) {
	if err := validateEventType(req.Type); err != nil {
		return nil, err
	}

	event := req.ToModel()
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update replaces the admin-managed fields of an existing event
func (s *EventService) Update(ctx context.Context, id int64, req *dto.EventRequest) (*models.TechEvent, error) {
	if err := validateEventType(req.Type); err != nil {
		return nil, err
	}

	event := req.ToModel()
	event.ID = id
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes an event
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}

// Search returns events matching all criteria of the filter
func (s *EventService) Search(ctx context.Context, filter repositories.EventFilter) ([]models.TechEvent, error) {
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Invalid event type %q", *filter.Type))
	}
	return s.eventRepo.Search(ctx, filter)
}

// Stats aggregates counters over all events
func (s *EventService) Stats(ctx context.Context) (*models.EventStats, error) {
	return s.eventRepo.Stats(ctx)
}

// Like increments the like counter and returns the new value
func (s *EventService) Like(ctx context.Context, id int64) (int64, error) {
	return s.eventRepo.IncrementLikes(ctx, id)
}

// Register increments the attendee counter and returns the new value
func (s *EventService) Register(ctx context.Context, id int64) (int64, error) {
	return s.eventRepo.IncrementAttendees(ctx, id)
}
