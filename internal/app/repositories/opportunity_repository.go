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

var opportunityColumns = []string{
	"id", "title", "organization", "description", "type", "location",
	"deadline", "duration", "compensation", "requirements", "fields",
	"contact_email", "virtual", "tags", "applications", "likes",
	"created_at", "updated_at",
}

// OpportunityFilter holds the optional search criteria for research
// opportunities. All set criteria are combined with AND.
type OpportunityFilter struct {
	Query          *string
	Location       *string
	Type           *models.OpportunityType
	Virtual        *bool
	Fields        []string
	Tags          []string
	DeadlineAfter *time.Time
	Skip          int
	Limit         int
}

// OpportunityRepository handles database operations for research
// opportunities
type OpportunityRepository struct {
	db *pgxpool.Pool
}

// NewOpportunityRepository creates a new OpportunityRepository
func NewOpportunityRepository(db *pgxpool.Pool) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

func scanOpportunity(row pgx.Row) (*models.ResearchOpportunity, error) {
	var opp models.ResearchOpportunity
	err := row.Scan(
		&opp.ID,
		&opp.Title,
		&opp.Organization,
		&opp.Description,
		&opp.Type,
		&opp.Location,
		&opp.Deadline,
		&opp.Duration,
		&opp.Compensation,
		&opp.Requirements,
		&opp.Fields,
		&opp.ContactEmail,
		&opp.Virtual,
		&opp.Tags,
		&opp.Applications,
		&opp.Likes,
		&opp.CreatedAt,
		&opp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &opp, nil
}

func (r *OpportunityRepository) collectOpportunities(ctx context.Context, sql string, args []interface{}) ([]models.ResearchOpportunity, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	opportunities := make([]models.ResearchOpportunity, 0)
	for rows.Next() {
		opp, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		opportunities = append(opportunities, *opp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return opportunities, nil
}

// List retrieves a page of opportunities ordered by the given column.
// sortColumn must already be validated against the service allow-list.
func (r *OpportunityRepository) List(ctx context.Context, skip, limit int, sortColumn string, desc bool) ([]models.ResearchOpportunity, error) {
	direction := "ASC"
	if desc {
		direction = "DESC"
	}

	query := squirrel.Select(opportunityColumns...).
		From("research_opportunities").
		OrderBy(fmt.Sprintf("%s %s", sortColumn, direction)).
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return r.collectOpportunities(ctx, sql, args)
}

// GetByID retrieves an opportunity by ID
func (r *OpportunityRepository) GetByID(ctx context.Context, id int64) (*models.ResearchOpportunity, error) {
	query := squirrel.Select(opportunityColumns...).
		From("research_opportunities").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	opp, err := scanOpportunity(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return opp, nil
}

// GetByIDs retrieves all opportunities whose ID is in the given set.
// Missing IDs are silently skipped; row order is unspecified.
func (r *OpportunityRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.ResearchOpportunity, error) {
	if len(ids) == 0 {
		return []models.ResearchOpportunity{}, nil
	}

	query := squirrel.Select(opportunityColumns...).
		From("research_opportunities").
		Where("id = ANY(?)", ids).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return r.collectOpportunities(ctx, sql, args)
}

// Create inserts a new opportunity and fills in the generated fields
func (r *OpportunityRepository) Create(ctx context.Context, opportunity *models.ResearchOpportunity) error {
	query := squirrel.Insert("research_opportunities").
		Columns("title", "organization", "description", "type", "location",
			"deadline", "duration", "compensation", "requirements", "fields",
			"contact_email", "virtual", "tags").
		Values(opportunity.Title, opportunity.Organization, opportunity.Description,
			opportunity.Type, opportunity.Location, opportunity.Deadline,
			opportunity.Duration, opportunity.Compensation, opportunity.Requirements,
			opportunity.Fields, opportunity.ContactEmail, opportunity.Virtual,
			opportunity.Tags).
		Suffix("RETURNING id, applications, likes, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&opportunity.ID,
		&opportunity.Applications,
		&opportunity.Likes,
		&opportunity.CreatedAt,
		&opportunity.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// Update replaces the admin-managed fields of an opportunity. Counters are
// left untouched; the refreshed row state is written back to the model.
func (r *OpportunityRepository) Update(ctx context.Context, opportunity *models.ResearchOpportunity) error {
	query := squirrel.Update("research_opportunities").
		Set("title", opportunity.Title).
		Set("organization", opportunity.Organization).
		Set("description", opportunity.Description).
		Set("type", opportunity.Type).
		Set("location", opportunity.Location).
		Set("deadline", opportunity.Deadline).
		Set("duration", opportunity.Duration).
		Set("compensation", opportunity.Compensation).
		Set("requirements", opportunity.Requirements).
		Set("fields", opportunity.Fields).
		Set("contact_email", opportunity.ContactEmail).
		Set("virtual", opportunity.Virtual).
		Set("tags", opportunity.Tags).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", opportunity.ID).
		Suffix("RETURNING applications, likes, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&opportunity.Applications,
		&opportunity.Likes,
		&opportunity.CreatedAt,
		&opportunity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrOpportunityNotFound
		}
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// Delete removes an opportunity by ID
func (r *OpportunityRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM research_opportunities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOpportunityNotFound
	}
	return nil
}

// buildOpportunitySearchQuery translates an OpportunityFilter into SQL.
// Text criteria match as case-insensitive substrings; each field and tag
// value must be contained in the row's array.
func buildOpportunitySearchQuery(filter OpportunityFilter) (string, []interface{}, error) {
	query := squirrel.Select(opportunityColumns...).
		From("research_opportunities").
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
	for _, field := range filter.Fields {
		query = query.Where("fields @> ?", []string{field})
	}
	for _, tag := range filter.Tags {
		query = query.Where("tags @> ?", []string{tag})
	}
	if filter.DeadlineAfter != nil {
		query = query.Where("deadline >= ?", *filter.DeadlineAfter)
	}

	query = query.OrderBy("deadline ASC")
	if filter.Skip > 0 {
		query = query.Offset(uint64(filter.Skip))
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	return query.ToSql()
}

// Search retrieves opportunities matching all criteria of the filter,
// nearest deadline first.
func (r *OpportunityRepository) Search(ctx context.Context, filter OpportunityFilter) ([]models.ResearchOpportunity, error) {
	sql, args, err := buildOpportunitySearchQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}
	return r.collectOpportunities(ctx, sql, args)
}

// Stats aggregates counters over the whole table
func (r *OpportunityRepository) Stats(ctx context.Context) (*models.OpportunityStats, error) {
	stats := &models.OpportunityStats{
		Types:             make(map[string]int64),
		VirtualVsPhysical: map[string]int64{"virtual": 0, "physical": 0},
	}

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(applications), 0), COALESCE(SUM(likes), 0) FROM research_opportunities`,
	).Scan(&stats.TotalOpportunities, &stats.TotalApplications, &stats.TotalLikes)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT type, COUNT(*) FROM research_opportunities GROUP BY type`)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var oppType string
		var count int64
		if err := rows.Scan(&oppType, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		stats.Types[oppType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	vrows, err := r.db.Query(ctx, `SELECT virtual, COUNT(*) FROM research_opportunities GROUP BY virtual`)
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

	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM research_opportunities WHERE deadline >= NOW()`).
		Scan(&stats.UpcomingOpportunities)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return stats, nil
}

// IncrementLikes bumps the like counter in a single statement and returns
// the new value.
func (r *OpportunityRepository) IncrementLikes(ctx context.Context, id int64) (int64, error) {
	return r.increment(ctx, "likes", id)
}

// IncrementApplications bumps the application counter in a single statement
// and returns the new value.
func (r *OpportunityRepository) IncrementApplications(ctx context.Context, id int64) (int64, error) {
	return r.increment(ctx, "applications", id)
}

func (r *OpportunityRepository) increment(ctx context.Context, column string, id int64) (int64, error) {
	// column is one of two internal constants, never user input
	sql := fmt.Sprintf(`UPDATE research_opportunities SET %[1]s = %[1]s + 1, updated_at = NOW() WHERE id = $1 RETURNING %[1]s`, column)

	var value int64
	if err := r.db.QueryRow(ctx, sql, id).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrOpportunityNotFound
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return value, nil
}
