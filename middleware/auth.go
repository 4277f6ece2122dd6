package middleware

import (
	"net/http"
	"strings"

	"promaallem/services/auth"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware enforces the mandatory-auth contract: a missing or
// invalid bearer token aborts with 401. The resolved identity is stored in
// the context for the handler.
func JWTAuthMiddleware(resolver auth.IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := resolver.Require(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("userID", identity.UserID)
		c.Next()
	}
}
