// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"crownart/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is where the authentication guard stores the verified
// email claim for downstream handlers.
const ContextEmailKey = "email"

// AuthRequired verifies the bearer token and exposes its email claim.
// Tokens are stateless; a token older than its 1h expiry fails here.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.EmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "invalid token"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// AuthedEmail returns the email the authentication guard verified.
func AuthedEmail(c *gin.Context) string {
	email, _ := c.Get(ContextEmailKey)
	s, _ := email.(string)
	return s
}
