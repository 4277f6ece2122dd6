package handlers

import (
	"net/http"

	profileRepo "promaallem/database/repository/profile"
	"promaallem/models"

	"github.com/gin-gonic/gin"
)

// ProviderHandler exposes maallem discovery endpoints.
type ProviderHandler struct {
	Profiles profileRepo.ProfileRepository
}

// NewProviderHandler creates a ProviderHandler.
func NewProviderHandler(profiles profileRepo.ProfileRepository) *ProviderHandler {
	return &ProviderHandler{Profiles: profiles}
}

// NearbyMaallemsHandler handles GET /api/maallems/nearby. The optional
// ?city= query filters by city substring; geospatial ranking is out of
// scope for this version.
func (h *ProviderHandler) NearbyMaallemsHandler(c *gin.Context) {
	city := c.Query("city")

	profiles, err := h.Profiles.AvailableMaallems(city, 0)
	if err != nil {
		respondError(c, err)
		return
	}

	summaries := make([]models.ProviderSummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, models.ProviderSummary{
			ID:        p.ID,
			FullName:  p.FullName,
			Role:      p.Role,
			City:      p.City,
			Rating:    p.Rating,
			AvatarURL: p.AvatarURL,
		})
	}

	c.JSON(http.StatusOK, summaries)
}
