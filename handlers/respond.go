package handlers

import (
	"errors"
	"net/http"

	"devtrack-backend/repository"
	"devtrack-backend/service"

	"github.com/gin-gonic/gin"
)

// respondData writes the success envelope
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError translates a service or repository error into the error
// envelope. Unrecognized errors become a generic 500 so internal details
// never reach the client.
func respondError(c *gin.Context, err error) {
	status, code := classifyError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "something went wrong"
	}

	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondValidationError writes a 400 for malformed request bodies and params
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": message,
		},
	})
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "UNAUTHORIZED"

	case errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrPlanNameRequired),
		errors.Is(err, service.ErrActivityFieldsMissing),
		errors.Is(err, service.ErrInvalidDayType),
		errors.Is(err, service.ErrInvalidTime),
		errors.Is(err, service.ErrLogFieldsMissing),
		errors.Is(err, service.ErrInvalidEnergyLevel),
		errors.Is(err, service.ErrLogDateRequired),
		errors.Is(err, service.ErrInvalidEnergyRating):
		return http.StatusBadRequest, "VALIDATION_ERROR"

	case errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrTemplateNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"

	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrSummaryConflict),
		errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, "CONFLICT"

	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusServiceUnavailable, "STORE_UNAVAILABLE"

	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
