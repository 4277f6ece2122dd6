package handlers

import (
	"net/http"

	profileRepo "promaallem/database/repository/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes authenticated profile endpoints.
type UserHandler struct {
	Profiles profileRepo.ProfileRepository
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(profiles profileRepo.ProfileRepository) *UserHandler {
	return &UserHandler{Profiles: profiles}
}

// GetProfileHandler returns the authenticated user's profile. It sits
// behind JWTAuthMiddleware, which puts "userID" in the context.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.Profiles.GetByID(userID.(string))
	if err != nil {
		logger.Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
