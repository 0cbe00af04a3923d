package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/pkg/apperrors"
)

var eventColumns = []string{
	"id", "title", "organization", "description", "venue",
	"registration_link", "start_date", "end_date", "location", "type",
	"price", "tech_stack", "speakers", "virtual", "tags",
	"attendees", "likes", "created_at", "updated_at",
}

// EventFilter holds the optional search criteria for tech events. All set
// criteria are combined with AND.
type EventFilter struct {
	Query          *string
	Location       *string
	Type           *models.EventType
	Virtual        *bool
	TechStack      []string
	Tags           []string
	StartDateAfter *time.Time
	EndDateBefore  *time.Time
	Skip           int
	Limit          int
}

// EventRepository handles database operations for tech events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row pgx.Row) (*models.TechEvent, error) {
	var event models.TechEvent
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Organization,
		&event.Description,
		&event.Venue,
		&event.RegistrationLink,
		&event.StartDate,
		&event.EndDate,
		&event.Location,
		&event.Type,
		&event.Price,
		&event.TechStack,
		&event.Speakers,
		&event.Virtual,
		&event.Tags,
		&event.Attendees,
		&event.Likes,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) collectEvents(ctx context.Context, sql string, args []interface{}) ([]models.TechEvent, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	events := make([]models.TechEvent, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return events, nil
}

// List retrieves a page of events ordered by the given column. sortColumn
// must already be validated against the service allow-list.
func (r *EventRepository) List(ctx context.Context, skip, limit int, sortColumn string, desc bool) ([]models.TechEvent, error) {
	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	query := squirrel.Select(eventColumns...).
		From("tech_events").
		OrderBy(fmt.Sprintf("%s %s", sortColumn, direction)).
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return r.collectEvents(ctx, sql, args)
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.TechEvent, error) {
	query := squirrel.Select(eventColumns...).
		From("tech_events").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return event, nil
}

// GetByIDs retrieves all events whose ID is in the given set. Missing IDs
// are silently skipped; row order is unspecified.
func (r *EventRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.TechEvent, error) {
	if len(ids) == 0 {
		return []models.TechEvent{}, nil
	}

	query := squirrel.Select(eventColumns...).
		From("tech_events").
		Where("id = ANY(?)", ids).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return r.collectEvents(ctx, sql, args)
}

// Create inserts a new event and fills in the generated fields
func (r *EventRepository) Create(ctx context.Context, event *models.TechEvent) error {
	query := squirrel.Insert("tech_events").
		Columns("title", "organization", "description", "venue",
			"registration_link", "start_date", "end_date", "location", "type",
			"price", "tech_stack", "speakers", "virtual", "tags").
		Values(event.Title, event.Organization, event.Description, event.Venue,
			event.RegistrationLink, event.StartDate, event.EndDate, event.Location, event.Type,
			event.Price, event.TechStack, event.Speakers, event.Virtual, event.Tags).
		Suffix("RETURNING id, attendees, likes, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&event.ID,
		&event.Attendees,
		&event.Likes,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// Update replaces the admin-managed fields of an event. Counters are left
// untouched; the refreshed row state is written back to the model.
func (r *EventRepository) Update(ctx context.Context, event *models.TechEvent) error {
	query := squirrel.Update("tech_events").
		Set("title", event.Title).
		Set("organization", event.Organization).
		Set("description", event.Description).
		Set("venue", event.Venue).
		Set("registration_link", event.RegistrationLink).
		Set("start_date", event.StartDate).
		Set("end_date", event.EndDate).
		Set("location", event.Location).
		Set("type", event.Type).
		Set("price", event.Price).
		Set("tech_stack", event.TechStack).
		Set("speakers", event.Speakers).
		Set("virtual", event.Virtual).
		Set("tags", event.Tags).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", event.ID).
		Suffix("RETURNING attendees, likes, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&event.Attendees,
		&event.Likes,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// Delete removes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tech_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// buildEventSearchQuery translates an EventFilter into SQL. Text criteria
// match as case-insensitive substrings; each tech stack and tag value must
// be contained in the row's array.
func buildEventSearchQuery(filter EventFilter) (string, []interface{}, error) {
	query := squirrel.Select(eventColumns...).
		From("tech_events").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Query != nil {
		pattern := "%" + *filter.Query + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"organization": pattern},
		})
	}
	if filter.Location != nil {
		query = query.Where(squirrel.ILike{"location": "%" + *filter.Location + "%"})
	}
	if filter.Type != nil {
		query = query.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Virtual != nil {
		query = query.Where(squirrel.Eq{"virtual": *filter.Virtual})
	}
	for _, tech := range filter.TechStack {
		query = query.Where("tech_stack @> ?", []string{tech})
	}
	for _, tag := range filter.Tags {
		query = query.Where("tags @> ?", []string{tag})
	}
	if filter.StartDateAfter != nil {
		query = query.Where("start_date >= ?", *filter.StartDateAfter)
	}
	if filter.EndDateBefore != nil {
		query = query.Where("end_date <= ?", *filter.EndDateBefore)
	}

	query = query.OrderBy("start_date ASC")
	if filter.Skip > 0 {
		query = query.Offset(uint64(filter.Skip))
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	return query.ToSql()
}

// Search retrieves events matching all criteria of the filter, soonest
// start date first.
func (r *EventRepository) Search(ctx context.Context, filter EventFilter) ([]models.TechEvent, error) {
	sql, args, err := buildEventSearchQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return r.collectEvents(ctx, sql, args)
}

// Stats aggregates counters over the whole table
func (r *EventRepository) Stats(ctx context.Context) (*models.EventStats, error) {
	stats := &models.EventStats{
		Types:             make(map[string]int64),
		VirtualVsPhysical: map[string]int64{"virtual": 0, "physical": 0},
	}

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(attendees), 0), COALESCE(SUM(likes), 0) FROM tech_events`,
	).Scan(&stats.TotalEvents, &stats.TotalAttendees, &stats.TotalLikes)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT type, COUNT(*) FROM tech_events GROUP BY type`)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var eventType string
		var count int64
		if err := rows.Scan(&eventType, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		stats.Types[eventType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	vrows, err := r.db.Query(ctx, `SELECT virtual, COUNT(*) FROM tech_events GROUP BY virtual`)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer vrows.Close()
	for vrows.Next() {
		var virtual bool
		var count int64
		if err := vrows.Scan(&virtual, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if virtual {
			stats.VirtualVsPhysical["virtual"] = count
		} else {
			stats.VirtualVsPhysical["physical"] = count
		}
	}
	if err := vrows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tech_events WHERE start_date >= NOW()`).
		Scan(&stats.UpcomingEvents)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return stats, nil
}

// IncrementLikes bumps the like counter in a single statement and returns
// the new value.
func (r *EventRepository) IncrementLikes(ctx context.Context, id int64) (int64, error) {
	return r.increment(ctx, "likes", id)
}

// IncrementAttendees bumps the attendee counter in a single statement and
// returns the new value.
func (r *EventRepository) IncrementAttendees(ctx context.Context, id int64) (int64, error) {
	return r.increment(ctx, "attendees", id)
}

func (r *EventRepository) increment(ctx context.Context, column string, id int64) (int64, error) {
	// column is one of two internal constants, never user input
	sql := fmt.Sprintf(`UPDATE tech_events SET %[1]s = %[1]s + 1, updated_at = NOW() WHERE id = $1 RETURNING %[1]s`, column)

	var value int64
	if err := r.db.QueryRow(ctx, sql, id).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrEventNotFound
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return value, nil
}
