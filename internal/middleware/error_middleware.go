package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/ojtportal/internal/app/models/dto"
	"github.com/yigit/ojtportal/internal/pkg/apperrors"
	"github.com/yigit/ojtportal/internal/pkg/validation"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError maps an error onto the standard error response.
// The message is the banner text the user sees; fallback is used when the error carries none.
func HandleAPIError(c *gin.Context, err error, fallback ...string) {
	_ = c.Error(err)

	defaultMessage := "Internal server error"
	if len(fallback) > 0 {
		defaultMessage = fallback[0]
	}
	message := apperrors.BannerMessage(err, defaultMessage)

	var formErr *validation.FormError
	switch {
	case errors.As(err, &formErr):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Please correct the highlighted fields").
			WithFields(formErr.Errors)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	case errors.Is(err, apperrors.ErrUnauthenticated):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, apperrors.BannerMessage(err, "Authentication required"))
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, apperrors.BannerMessage(err, "Permission denied"))
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, apperrors.BannerMessage(err, "Resource not found"))
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
	case apperrors.Is(err, apperrors.ErrBadRequest,
		apperrors.ErrInvalidClockAction,
		apperrors.ErrInvalidDate,
		apperrors.ErrMissingUpload,
		apperrors.ErrValidationFailed):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, message).WithSeverity(dto.ErrorSeverityWarning)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	case errors.Is(err, apperrors.ErrUpstreamUnreachable):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, message)
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse(errorDetail))
	case errors.Is(err, apperrors.ErrUpstream):
		// 4xx answers of the API are passed on, its own failures become a bad gateway
		status := apperrors.StatusCode(err)
		if status < http.StatusBadRequest || status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, message)
		c.JSON(status, dto.NewErrorResponse(errorDetail))
	default:
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, message)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}
