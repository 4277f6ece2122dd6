package handlers

import (
	"errors"
	"net/http"

	"promaallem/services/auth"
	"promaallem/services/booking"
	"promaallem/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto the HTTP taxonomy: validation 400,
// unauthorized 401, provider throttling 429, everything else upstream 500.
func respondError(c *gin.Context, err error) {
	var authValidation *auth.ValidationError
	var bookingValidation *booking.ValidationError
	var aiValidation *intelligence.ValidationError
	var unauthorized *auth.UnauthorizedError
	var rateLimited *intelligence.RateLimitError

	switch {
	case errors.As(err, &authValidation),
		errors.As(err, &bookingValidation),
		errors.As(err, &aiValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &unauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &rateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":   "Rate limit exceeded",
			"details": err.Error(),
		})
	default:
		getLogger(c).Error("Request failed on upstream collaborator", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
