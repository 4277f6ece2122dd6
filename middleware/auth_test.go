package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"promaallem/models"
	"promaallem/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	identity *models.Identity
}

func (s *stubResolver) Resolve(ctx context.Context, credential string) (*models.Identity, error) {
	return s.identity, nil
}

func (s *stubResolver) Require(ctx context.Context, credential string) (*models.Identity, error) {
	if s.identity == nil {
		return nil, &auth.UnauthorizedError{Message: "Invalid or expired token"}
	}
	return s.identity, nil
}

func newProtectedRouter(resolver auth.IdentityResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(resolver), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return r
}

func TestJWTAuthMiddleware_MissingHeaderIs401(t *testing.T) {
	r := newProtectedRouter(&stubResolver{identity: &models.Identity{UserID: "user-1"}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_InvalidTokenIs401(t *testing.T) {
	r := newProtectedRouter(&stubResolver{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ValidTokenPassesIdentity(t *testing.T) {
	r := newProtectedRouter(&stubResolver{identity: &models.Identity{UserID: "user-1"}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}
