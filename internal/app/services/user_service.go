package services

import (
	"context"

	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/app/models/dto"
	"github.com/deniz/technexus/internal/app/repositories"
	"github.com/deniz/technexus/internal/pkg/apperrors"
	"github.com/deniz/technexus/internal/pkg/dberrors"
)

// UserService implements profile and bookmark operations
type UserService struct {
	userRepo        repositories.IUserRepository
	eventRepo       repositories.IEventRepository
	opportunityRepo repositories.IOpportunityRepository
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.IUserRepository,
	eventRepo repositories.IEventRepository,
	opportunityRepo repositories.IOpportunityRepository,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		eventRepo:       eventRepo,
		opportunityRepo: opportunityRepo,
	}
}

// requireUserCaller rejects admin tokens on profile endpoints. Admin
// accounts have credentials only, no profile row.
func requireUserCaller(callerType models.UserType) error {
	if callerType != models.UserTypeUser {
		return apperrors.NewBadRequestError("Admin accounts do not have a user profile")
	}
	return nil
}

// GetProfile returns the caller's own profile
func (s *UserService) GetProfile(ctx context.Context, callerType models.UserType, userID int64) (*models.User, error) {
	if err := requireUserCaller(callerType); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update to the caller's profile. An email
// change is checked for uniqueness against all other users before writing.
func (s *UserService) UpdateProfile(ctx context.Context, callerType models.UserType, userID int64, req *dto.UpdateUserRequest) (*models.User, error) {
	if err := requireUserCaller(callerType); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.EmailExists(ctx, *req.Email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.Interests != nil {
		user.Interests = *req.Interests
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// ToggleSavedEvent bookmarks the event for the caller, or removes the
// bookmark when already present. The event must exist.
func (s *UserService) ToggleSavedEvent(ctx context.Context, callerType models.UserType, userID, eventID int64) (bool, error) {
	if err := requireUserCaller(callerType); err != nil {
		return false, err
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return false, err
	}
	return s.userRepo.ToggleSavedEvent(ctx, userID, eventID)
}

// ToggleSavedOpportunity behaves like ToggleSavedEvent for opportunities
func (s *UserService) ToggleSavedOpportunity(ctx context.Context, callerType models.UserType, userID, opportunityID int64) (bool, error) {
	if err := requireUserCaller(callerType); err != nil {
		return false, err
	}
	if _, err := s.opportunityRepo.GetByID(ctx, opportunityID); err != nil {
		return false, err
	}
	return s.userRepo.ToggleSavedOpportunity(ctx, userID, opportunityID)
}

// SavedEvents resolves the caller's bookmarked events in the order they
// were saved. IDs of deleted events are dropped from the result without
// rewriting the stored list.
func (s *UserService) SavedEvents(ctx context.Context, callerType models.UserType, userID int64) ([]models.TechEvent, error) {
	if err := requireUserCaller(callerType); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.GetByIDs(ctx, user.SavedEvents)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]models.TechEvent, len(events))
	for _, event := range events {
		byID[event.ID] = event
	}

	ordered := make([]models.TechEvent, 0, len(events))
	for _, id := range user.SavedEvents {
		if event, ok := byID[id]; ok {
			ordered = append(ordered, event)
		}
	}
	return ordered, nil
}

// SavedOpportunities behaves like SavedEvents for opportunities
func (s *UserService) SavedOpportunities(ctx context.Context, callerType models.UserType, userID int64) ([]models.ResearchOpportunity, error) {
	if err := requireUserCaller(callerType); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	opportunities, err := s.opportunityRepo.GetByIDs(ctx, user.SavedOpportunities)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]models.ResearchOpportunity, len(opportunities))
	for _, opp := range opportunities {
		byID[opp.ID] = opp
	}

	ordered := make([]models.ResearchOpportunity, 0, len(opportunities))
	for _, id := range user.SavedOpportunities {
		if opp, ok := byID[id]; ok {
			ordered = append(ordered, opp)
		}
	}
	return ordered, nil
}
