package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mikailhassan/bursary-aden/internal/app/models/dto"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to HTTP responses: validation and
// conflict errors to 400, authentication to 401, authorization to 403,
// missing resources to 404, anything else to a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest, apperrors.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, errorMessage(err, "Validation failed"))))

	case apperrors.Is(err, apperrors.ErrConflict, apperrors.ErrEmailAlreadyExists,
		apperrors.ErrAdmissionNumberExists, apperrors.ErrApplicationAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, errorMessage(err, "Resource already exists"))))

	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case apperrors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case apperrors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, errorMessage(err, "Permission denied"))))

	case apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrUserNotFound,
		apperrors.ErrApplicantNotFound, apperrors.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, errorMessage(err, "Resource not found"))))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// errorMessage returns the CustomError message when present, the fallback
// otherwise. Sentinel texts are internal; only wrapped messages are meant
// for clients.
func errorMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}
