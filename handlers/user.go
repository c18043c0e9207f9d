package handlers

import (
	"net/http"

	"crownart/models"
	"crownart/services/user"
	"crownart/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserHandler serves the user and role endpoints.
type UserHandler struct {
	Service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler handles POST /users, the idempotent first-sign-in insert.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user payload")
		return
	}
	if u.Email == "" {
		utils.JSONError(c, http.StatusBadRequest, "email is required")
		return
	}

	created, id, err := h.Service.Register(&u)
	if err != nil {
		logger.Error("Failed to register user", zap.String("email", u.Email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to register user")
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// GetAllUsersHandler handles GET /users (admin).
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByEmailHandler handles GET /users/:email. A missing user is an
// empty result, not an error.
func (h *UserHandler) GetUserByEmailHandler(c *gin.Context) {
	u, err := h.Service.GetByEmail(c.Param("email"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, u)
}

// CheckAdminHandler handles GET /users/admin/:email. Ownership is enforced
// by the guard chain before this runs.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	ok, err := h.Service.HasRole(c.Param("email"), models.RoleAdmin)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": ok})
}

// CheckInstructorHandler handles GET /users/instructor/:email.
func (h *UserHandler) CheckInstructorHandler(c *gin.Context) {
	ok, err := h.Service.HasRole(c.Param("email"), models.RoleInstructor)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"instructor": ok})
}

// GetInstructorsHandler handles GET /instructors.
func (h *UserHandler) GetInstructorsHandler(c *gin.Context) {
	instructors, err := h.Service.Instructors()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list instructors")
		return
	}
	c.JSON(http.StatusOK, instructors)
}

// SetRoleHandler builds the PATCH /users/<role>/:id handler for one role.
func (h *UserHandler) SetRoleHandler(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "malformed user id")
			return
		}

		if err := h.Service.SetRole(id, role); err != nil {
			logger.Error("Failed to set role", zap.String("id", id.Hex()), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to set role")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "role updated", "role": role})
	}
}

// UpdateInstructorProfileHandler handles PUT /instructor/:email.
func (h *UserHandler) UpdateInstructorProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var profile models.InstructorProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid profile payload")
		return
	}

	email := c.Param("email")
	if err := h.Service.UpdateInstructorProfile(email, profile); err != nil {
		logger.Error("Failed to update profile", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update profile")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
