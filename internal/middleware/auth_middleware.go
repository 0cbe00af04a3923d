// Package middleware contains the gin middleware for authentication and
// error translation.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/deniz/technexus/internal/app/models"
	"github.com/deniz/technexus/internal/app/models/dto"
	"github.com/deniz/technexus/internal/app/repositories"
	"github.com/deniz/technexus/internal/pkg/auth"
)

const callerContextKey = "caller"

// Caller is the authenticated principal resolved from a bearer token.
// Exactly one of Admin and User is set, matching UserType.
type Caller struct {
	UserType models.UserType
	Admin    *models.Admin
	User     *models.User
}

// Username returns the principal's username
func (c *Caller) Username() string {
	if c.UserType == models.UserTypeAdmin {
		return c.Admin.Username
	}
	return c.User.Username
}

// UserID returns the user's ID, or 0 for admin callers
func (c *Caller) UserID() int64 {
	if c.UserType == models.UserTypeUser {
		return c.User.ID
	}
	return 0
}

// AuthMiddleware resolves bearer tokens into callers. Tokens are validated
// first, then the principal is re-fetched from its credential table so a
// deleted account cannot keep using an unexpired token.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	adminRepo  repositories.IAdminRepository
	userRepo   repositories.IUserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(
	jwtService *auth.JWTService,
	adminRepo repositories.IAdminRepository,
	userRepo repositories.IUserRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		adminRepo:  adminRepo,
		userRepo:   userRepo,
	}
}

// abortUnauthorized rejects the request with one generic message so callers
// cannot distinguish missing, malformed, expired and orphaned tokens.
func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	detail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Could not validate credentials")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
}

func (m *AuthMiddleware) resolveCaller(c *gin.Context) (*Caller, bool) {
	token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return nil, false
	}

	claims, err := m.jwtService.Validate(token)
	if err != nil {
		return nil, false
	}

	switch claims.UserType {
	case models.UserTypeAdmin:
		admin, err := m.adminRepo.GetByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			return nil, false
		}
		return &Caller{UserType: models.UserTypeAdmin, Admin: admin}, true
	case models.UserTypeUser:
		if claims.UserID == nil {
			return nil, false
		}
		user, err := m.userRepo.GetByID(c.Request.Context(), *claims.UserID)
		if err != nil {
			return nil, false
		}
		return &Caller{UserType: models.UserTypeUser, User: user}, true
	}
	return nil, false
}

// RequireAdmin admits only tokens whose resolved principal is an admin
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := m.resolveCaller(c)
		if !ok || caller.UserType != models.UserTypeAdmin {
			abortUnauthorized(c)
			return
		}
		c.Set(callerContextKey, caller)
		c.Next()
	}
}

// RequireUser admits any resolved principal. Admin callers pass the guard;
// endpoints needing a profile reject them downstream.
func (m *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := m.resolveCaller(c)
		if !ok {
			abortUnauthorized(c)
			return
		}
		c.Set(callerContextKey, caller)
		c.Next()
	}
}

// GetCaller returns the caller resolved by a guard on this request
func GetCaller(c *gin.Context) (*Caller, bool) {
	value, exists := c.Get(callerContextKey)
	if !exists {
		return nil, false
	}
	caller, ok := value.(*Caller)
	return caller, ok
}
