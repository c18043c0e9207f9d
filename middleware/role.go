package middleware

import (
	"net/http"

	userRepo "crownart/database/repository/user"

	"github.com/gin-gonic/gin"
)

// RequireRole checks the stored role of the authenticated user against the
// required one. The role is re-read from the store on every request, never
// cached, so an admin-gated role change takes effect immediately.
func RequireRole(repo userRepo.Repository, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := AuthedEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "missing authenticated identity"})
			return
		}

		user, err := repo.GetByEmail(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": true, "message": "failed to verify role"})
			return
		}
		if user == nil || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
			return
		}

		c.Next()
	}
}
