package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware to catch panics and return the API error envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   true,
					"message": "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends the standard {error: true, message} envelope.
func JSONError(c *gin.Context, status int, message string) {
	logger := GetLogger()
	logger.Warn(message, zap.Int("status", status), zap.String("path", c.FullPath()))
	c.JSON(status, gin.H{"error": true, "message": message})
}

// AbortJSONError sends the envelope and stops the handler chain.
func AbortJSONError(c *gin.Context, status int, message string) {
	logger := GetLogger()
	logger.Warn(message, zap.Int("status", status), zap.String("path", c.FullPath()))
	c.AbortWithStatusJSON(status, gin.H{"error": true, "message": message})
}
