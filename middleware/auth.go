package middleware

import (
	"net/http"
	"strings"

	"chairbook/utils"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user ID.
const UserIDKey = "userID"

// JWTAuthMiddleware requires a valid bearer token and stores its subject under UserIDKey.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "Invalid token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
