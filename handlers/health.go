package handlers

import (
	"net/http"

	"crownart/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health with the latest stored snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
