package services

import (
	"context"
	"errors"

	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/app/models/dto"
	"github.com/deniz/technexus/internal/app/repositories"
	"github.com/deniz/technexus/internal/pkg/apperrors"
	"github.com/deniz/technexus/internal/pkg/auth"
	"github.com/deniz/technexus/internal/pkg/dberrors"
	"github.com/deniz/technexus/internal/pkg/logger"
)

// AuthService implements login and account provisioning
type AuthService struct {
	adminRepo  repositories.IAdminRepository
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	adminRepo repositories.IAdminRepository,
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login authenticates against the admin table first, then falls back to
// users matched by username or email. Usernames are unique per table, not
// across tables, so an admin-row password mismatch still tries the user
// branch. Every failure collapses into ErrInvalidCredentials so callers
// cannot probe which accounts exist.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*dto.TokenResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, identifier)
	if err == nil && auth.CheckPassword(admin.HashedPassword, password) {
		return s.issueToken(auth.Identity{
			Subject:  admin.Username,
			UserType: models.UserTypeAdmin,
		})
	}
	if err != nil && !errors.Is(err, apperrors.ErrAdminNotFound) {
		return nil, err
	}

	user, err := s.userRepo.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.HashedPassword, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	userID := user.ID
	return s.issueToken(auth.Identity{
		Subject:  user.Username,
		UserType: models.UserTypeUser,
		UserID:   &userID,
	})
}

func (s *AuthService) issueToken(identity auth.Identity) (*dto.TokenResponse, error) {
	token, err := s.jwtService.Issue(identity)
	if err != nil {
		logger.Error().Err(err).Str("subject", identity.Subject).Msg("Failed to issue access token")
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserType:    identity.UserType,
		UserID:      identity.UserID,
		Username:    identity.Subject,
	}, nil
}

// CreateAdmin provisions a new admin account. Usernames are unique; the
// store constraint backs up the pre-check.
func (s *AuthService) CreateAdmin(ctx context.Context, req *dto.CreateAdminRequest) (*models.Admin, error) {
	exists, err := s.adminRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username:       req.Username,
		HashedPassword: hashed,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, err
	}

	logger.Info().Str("username", admin.Username).Msg("Admin account created")
	return admin, nil
}

// CreateUser registers a new user account. Email and username are unique;
// the store constraints back up the pre-checks.
func (s *AuthService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	emailTaken, err := s.userRepo.EmailExists(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	usernameTaken, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if usernameTaken {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: hashed,
		FullName:       req.FullName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, err
	}

	logger.Info().Str("username", user.Username).Msg("User account created")
	return user, nil
}
