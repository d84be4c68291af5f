package middleware

import (
	"net/http"
	"strings"

	"github.com/doctorbhh/Menu-plus/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid admin bearer token and attaches the
// admin's ID and username to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized. Please login."})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
			c.Abort()
			return
		}

		adminID, username, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized. Please login."})
			c.Abort()
			return
		}

		// Attach admin info to request context
		c.Set("userID", adminID)
		c.Set("username", username)
		c.Next()
	}
}
