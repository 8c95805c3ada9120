package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tartarus/api/internal/config"
	"tartarus/api/internal/security"
)

const (
	// ClaimsKey is where the auth guard stores verified session claims on the
	// gin context.
	ClaimsKey = "session_claims"
)

// Auth is the single chokepoint for protected routes: it extracts the bearer
// token, verifies it, and attaches the resolved claims to the request context.
// Every failure mode maps to the same pair of generic 401 responses.
func Auth(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseToken(tokenStr, cfg.Security.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ClaimsKey, *claims)

		c.Next()
	}
}

// SessionClaims returns the claims the auth guard attached, or false when the
// route was reached without passing through the guard.
func SessionClaims(c *gin.Context) (security.SessionClaims, bool) {
	val, exists := c.Get(ClaimsKey)
	if !exists {
		return security.SessionClaims{}, false
	}
	claims, ok := val.(security.SessionClaims)
	return claims, ok
}
