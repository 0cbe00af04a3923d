package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/deniz/technexus/internal/app/models/dto"
	"github.com/deniz/technexus/internal/app/services"
	"github.com/deniz/technexus/internal/middleware"
	"github.com/deniz/technexus/internal/pkg/apperrors"
)

// UserController handles signup, profile and bookmark operations
type UserController struct {
	authService services.IAuthService
	userService services.IUserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(authService services.IAuthService, userService services.IUserService, logger zerolog.Logger) *UserController {
	return &UserController{
		authService: authService,
		userService: userService,
		logger:      logger,
	}
}

func callerOrAbort(ctx *gin.Context) (*middleware.Caller, bool) {
	caller, ok := middleware.GetCaller(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return nil, false
	}
	return caller, true
}

func pathID(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("Invalid " + name + " path parameter")
	}
	return id, nil
}

// CreateUser handles user signup
// @Summary Register a new user
// @Description Creates a new user account with a unique email and username.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Signup information"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Email or username already exists"
// @Router /users/ [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.authService.CreateUser(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// GetMe returns the caller's profile
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Profile"
// @Failure 400 {object} dto.ErrorResponse "Admin accounts have no profile"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Router /users/me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetProfile(ctx.Request.Context(), caller.UserType, caller.UserID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateMe applies a partial update to the caller's profile
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.User "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or admin caller"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /users/me [put]
func (c *UserController) UpdateMe(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), caller.UserType, caller.UserID(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// ToggleSaveEvent bookmarks or unbookmarks an event
// @Summary Toggle a saved event
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.ToggleSaveResponse "Membership after the toggle"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /users/me/save-event/{id} [post]
func (c *UserController) ToggleSaveEvent(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	saved, err := c.userService.ToggleSavedEvent(ctx.Request.Context(), caller.UserType, caller.UserID(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleSaveResponse{Saved: saved})
}

// ToggleSaveOpportunity bookmarks or unbookmarks an opportunity
// @Summary Toggle a saved opportunity
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Opportunity ID"
// @Success 200 {object} dto.ToggleSaveResponse "Membership after the toggle"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Failure 404 {object} dto.ErrorResponse "Opportunity not found"
// @Router /users/me/save-opportunity/{id} [post]
func (c *UserController) ToggleSaveOpportunity(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	saved, err := c.userService.ToggleSavedOpportunity(ctx.Request.Context(), caller.UserType, caller.UserID(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleSaveResponse{Saved: saved})
}

// SavedEvents lists the caller's bookmarked events
// @Summary List saved events
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TechEvent "Saved events in bookmark order"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Router /users/me/saved-events [get]
func (c *UserController) SavedEvents(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	events, err := c.userService.SavedEvents(ctx.Request.Context(), caller.UserType, caller.UserID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// SavedOpportunities lists the caller's bookmarked opportunities
// @Summary List saved opportunities
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ResearchOpportunity "Saved opportunities in bookmark order"
// @Failure 401 {object} dto.ErrorResponse "Could not validate credentials"
// @Router /users/me/saved-opportunities [get]
func (c *UserController) SavedOpportunities(ctx *gin.Context) {
	caller, ok := callerOrAbort(ctx)
	if !ok {
		return
	}

	opportunities, err := c.userService.SavedOpportunities(ctx.Request.Context(), caller.UserType, caller.UserID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, opportunities)
}
