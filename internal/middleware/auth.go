package middleware

import (
	"net/http"
	"strings"

	"bayaaz-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuth rejects requests without a valid bearer token and stores the
// caller's identity on the context.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			c.Abort()
			return
		}

		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is invalid or expired"})
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// OptionalAuth sets the caller's identity when a valid token is present and
// proceeds unauthenticated on any token failure. It never aborts.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}
		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.Next()
			return
		}
		c.Set("id", claims.ID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// UserID extracts the authenticated user's id from the context. The second
// return is false when the request is unauthenticated.
func UserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
