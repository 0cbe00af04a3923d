// Package repositories contains the pgx-backed data access layer.
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/deniz/technexus/internal/app/models"
)

// IAdminRepository defines database operations on admin credentials
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// IUserRepository defines database operations on user accounts
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	ToggleSavedEvent(ctx context.Context, userID, eventID int64) (bool, error)
	ToggleSavedOpportunity(ctx context.Context, userID, opportunityID int64) (bool, error)
}

// IEventRepository defines database operations on tech events
type IEventRepository interface {
	List(ctx context.Context, skip, limit int, sortColumn string, desc bool) ([]models.TechEvent, error)
	GetByID(ctx context.Context, id int64) (*models.TechEvent, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.TechEvent, error)
	Create(ctx context.Context, event *models.TechEvent) error
	Update(ctx context.Context, event *models.TechEvent) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter EventFilter) ([]models.TechEvent, error)
	Stats(ctx context.Context) (*models.EventStats, error)
	IncrementLikes(ctx context.Context, id int64) (int64, error)
	IncrementAttendees(ctx context.Context, id int64) (int64, error)
}

// IOpportunityRepository defines database operations on research
// opportunities
type IOpportunityRepository interface {
	List(ctx context.Context, skip, limit int, sortColumn string, desc bool) ([]models.ResearchOpportunity, error)
	GetByID(ctx context.Context, id int64) (*models.ResearchOpportunity, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.ResearchOpportunity, error)
	Create(ctx context.Context, opportunity *models.ResearchOpportunity) error
	Update(ctx context.Context, opportunity *models.ResearchOpportunity) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter OpportunityFilter) ([]models.ResearchOpportunity, error)
	Stats(ctx context.Context) (*models.OpportunityStats, error)
	IncrementLikes(ctx context.Context, id int64) (int64, error)
	IncrementApplications(ctx context.Context, id int64) (int64, error)
}

// Repositories bundles all repositories for dependency injection
type Repositories struct {
	AdminRepository       *AdminRepository
	UserRepository        *UserRepository
	EventRepository       *EventRepository
	OpportunityRepository *OpportunityRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:       NewAdminRepository(db),
		UserRepository:        NewUserRepository(db),
		EventRepository:       NewEventRepository(db),
		OpportunityRepository: NewOpportunityRepository(db),
	}
}
