package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promaallem/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProfileRepo serves a fixed maallem list and records the city filter.
type stubProfileRepo struct {
	profiles []models.Profile
	lastCity string
}

func (s *stubProfileRepo) Create(profile *models.Profile) error { return nil }

func (s *stubProfileRepo) GetByID(id string) (*models.Profile, error) { return nil, nil }

func (s *stubProfileRepo) AvailableMaallems(city string, limit int) ([]models.Profile, error) {
	s.lastCity = city
	return s.profiles, nil
}

func TestNearbyMaallems_ReturnsPublicSummaries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &stubProfileRepo{profiles: []models.Profile{
		{ID: "m-1", FullName: "Hassan B.", Role: "maallem", City: "Casablanca", Rating: 4.5, Phone: "0622222222"},
	}}
	handler := NewProviderHandler(repo)

	r := gin.New()
	r.GET("/api/maallems/nearby", handler.NearbyMaallemsHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/maallems/nearby?city=casa", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "casa", repo.lastCity)

	var summaries []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Hassan B.", summaries[0]["full_name"])
	// Contact details stay private in the listing.
	assert.NotContains(t, summaries[0], "phone")
}

func TestNearbyMaallems_EmptyListIsAnEmptyArray(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewProviderHandler(&stubProfileRepo{})

	r := gin.New()
	r.GET("/api/maallems/nearby", handler.NearbyMaallemsHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/maallems/nearby", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
