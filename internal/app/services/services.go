// Package services contains the business logic between controllers and
// repositories.
package services

import (
	"context"

	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/app/models/dto"
	"github.com/deniz/technexus/internal/app/repositories"
	"github.com/deniz/technexus/internal/pkg/auth"
)

// IAuthService defines login and account provisioning operations
type IAuthService interface {
	Login(ctx context.Context, identifier, password string) (*dto.TokenResponse, error)
	CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
}

// IUserService defines profile and bookmark operations
type IUserService interface {
	GetProfile(ctx context.Context, callerType models.UserType, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, callerType models.UserType, userID int64, req *dto.UpdateUserRequest) (*models.User, error)
	ToggleSavedEvent(ctx context.Context, callerType models.UserType, userID, eventID int64) (bool, error)
	ToggleSavedOpportunity(ctx context.Context, callerType models.UserType, userID, opportunityID int64) (bool, error)
	SavedEvents(ctx context.Context, callerType models.UserType, userID int64) ([]models.TechEvent, error)
	SavedOpportunities(ctx context.Context, callerType models.UserType, userID int64) ([]models.ResearchOpportunity, error)
}

// IEventService defines tech event operations
type IEventService interface {
	List(ctx context.Context, skip, limit int, sortBy, order string) ([]models.TechEvent, error)
	Get(ctx context.Context, id int64) (*models.TechEvent, error)
	Create(ctx context.Context, req *dto.EventRequest) (*models.TechEvent, error)
	Update(ctx context.Context, id int64, req *dto.EventRequest) (*models.TechEvent, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter repositories.EventFilter) ([]models.TechEvent, error)
	Stats(ctx context.Context) (*models.EventStats, error)
	Like(ctx context.Context, id int64) (int64, error)
	Register(ctx context.Context, id int64) (int64, error)
}

// IOpportunityService defines research opportunity operations
type IOpportunityService interface {
	List(ctx context.Context, skip, limit int, sortBy, order string) ([]models.ResearchOpportunity, error)
	Get(ctx context.Context, id int64) (*models.ResearchOpportunity, error)
	Create(ctx context.Context, req *dto.OpportunityRequest) (*models.ResearchOpportunity, error)
	Update(ctx context.Context, id int64, req *dto.OpportunityRequest) (*models.ResearchOpportunity, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter repositories.OpportunityFilter) ([]models.ResearchOpportunity, error)
	Stats(ctx context.Context) (*models.OpportunityStats, error)
	Like(ctx context.Context, id int64) (int64, error)
	Apply(ctx context.Context, id int64) (int64, error)
}

// Services bundles all services for dependency injection
type Services struct {
	AuthService        IAuthService
	UserService        IUserService
	EventService       IEventService
	OpportunityService IOpportunityService
}

// NewServices creates all services on top of the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:        NewAuthService(repos.AdminRepository, repos.UserRepository, jwtService),
		UserService:        NewUserService(repos.UserRepository, repos.EventRepository, repos.OpportunityRepository),
		EventService:       NewEventService(repos.EventRepository),
		OpportunityService: NewOpportunityService(repos.OpportunityRepository),
	}
}
