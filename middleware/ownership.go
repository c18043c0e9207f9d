package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireSelfParam rejects requests whose :param email differs from the
// authenticated identity. The guard aborts before the handler runs; the
// upstream self-check routes that kept answering after a mismatch relied
// on a missing early return, which is corrected here.
func RequireSelfParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param(param) != AuthedEmail(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
			return
		}
		c.Next()
	}
}

// RequireSelfQuery is RequireSelfParam for query-string emails.
func RequireSelfQuery(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query(key) != AuthedEmail(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
			return
		}
		c.Next()
	}
}
