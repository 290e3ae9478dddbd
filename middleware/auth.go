package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"JournalGo/utils"
)

// AuthMiddleware requires a bearer token on user-scoped endpoints.
// A missing token is 401; an invalid or expired one is 403.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("uid", claims.UserID)
		c.Next()
	}
}
