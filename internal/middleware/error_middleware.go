package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/deniz/technexus/internal/app/models/dto"
	"github.com/deniz/technexus/internal/pkg/apperrors"
	"github.com/deniz/technexus/internal/pkg/auth"
	"github.com/deniz/technexus/internal/pkg/logger"
)

// HandleAPIError translates service errors into the standard error
// envelope. Unknown errors become a generic 500 so internals never leak.
func HandleAPIError(c *gin.Context, err error) {
	var status int
	var detail *dto.ErrorDetail

	switch {
	case apperrors.Is(err, apperrors.ErrEventNotFound,
		apperrors.ErrOpportunityNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrAdminNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())

	case apperrors.Is(err, apperrors.ErrEmailAlreadyExists,
		apperrors.ErrUsernameAlreadyExists):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())

	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		c.Header("WWW-Authenticate", "Bearer")
		detail = dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Incorrect username or password")

	case apperrors.Is(err, apperrors.ErrTokenExpired,
		apperrors.ErrTokenInvalid,
		auth.ErrExpiredToken,
		auth.ErrInvalidToken,
		auth.ErrInvalidFormat):
		status = http.StatusUnauthorized
		c.Header("WWW-Authenticate", "Bearer")
		detail = dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Could not validate credentials")

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeUnauthorized, err.Error())

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrInvalidSortField,
		apperrors.ErrInvalidSortOrder,
		apperrors.ErrBadRequest):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())

	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
		status = http.StatusInternalServerError
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

// HandleValidationError reports a request binding failure
func HandleValidationError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
