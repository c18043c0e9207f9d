package handlers

import (
	"net/http"

	"crownart/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IssueTokenHandler handles POST /jwt. The request body is signed verbatim
// as the token's claims with a fixed one hour expiry. The payload is not
// checked against a stored user; clients call this right after the
// idempotent sign-in insert.
func IssueTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid token payload")
		return
	}

	token, err := utils.IssueToken(payload, utils.TokenTTL)
	if err != nil {
		logger.Error("Failed to sign token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
