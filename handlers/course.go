package handlers

import (
	"net/http"

	"crownart/middleware"
	"crownart/models"
	"crownart/services/course"
	"crownart/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CourseHandler serves the catalog endpoints.
type CourseHandler struct {
	Service course.Service
}

func NewCourseHandler(svc course.Service) *CourseHandler {
	return &CourseHandler{Service: svc}
}

func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "malformed id")
		return primitive.NilObjectID, false
	}
	return id, true
}

// GetCoursesHandler handles GET /courses: the approved public catalog.
func (h *CourseHandler) GetCoursesHandler(c *gin.Context) {
	courses, err := h.Service.Approved()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list courses")
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetAllCoursesHandler handles GET /courses/admin: the whole catalog.
func (h *CourseHandler) GetAllCoursesHandler(c *gin.Context) {
	courses, err := h.Service.All()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list courses")
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetPopularCoursesHandler handles GET /popularCourses: top six by enrollment.
func (h *CourseHandler) GetPopularCoursesHandler(c *gin.Context) {
	courses, err := h.Service.Popular()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list popular courses")
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourseHandler handles GET /courses/:id.
func (h *CourseHandler) GetCourseHandler(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	crs, err := h.Service.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch course")
		return
	}
	c.JSON(http.StatusOK, crs)
}

// GetInstructorCoursesHandler handles GET /courses/instructor/:email.
func (h *CourseHandler) GetInstructorCoursesHandler(c *gin.Context) {
	courses, err := h.Service.ByInstructor(c.Param("email"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list courses")
		return
	}
	c.JSON(http.StatusOK, courses)
}

// CreateCourseHandler handles POST /courses. The publisher is always the
// authenticated instructor; status and enrollment are server-set.
func (h *CourseHandler) CreateCourseHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var crs models.Course
	if err := c.ShouldBindJSON(&crs); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid course payload")
		return
	}
	crs.InstructorEmail = middleware.AuthedEmail(c)

	id, err := h.Service.Create(&crs)
	if err != nil {
		logger.Error("Failed to create course", zap.String("name", crs.Name), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create course")
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// UpdateCourseHandler handles PUT /courses/:id with the instructor whitelist.
func (h *CourseHandler) UpdateCourseHandler(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var update models.CourseUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid course payload")
		return
	}

	err := h.Service.Update(id, update, middleware.AuthedEmail(c))
	if err == course.ErrNotOwner {
		utils.JSONError(c, http.StatusForbidden, "forbidden access")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update course")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "course updated"})
}

// DeleteCourseHandler handles DELETE /courses/:id (admin).
func (h *CourseHandler) DeleteCourseHandler(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete course")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "course deleted"})
}

// SetFeedbackHandler handles PUT /courses/admin/feedback/:id.
func (h *CourseHandler) SetFeedbackHandler(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid feedback payload")
		return
	}

	if err := h.Service.SetFeedback(id, body.Feedback); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store feedback")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "feedback stored"})
}

// ApproveCourseHandler handles PATCH /courses/admin/approve/:id.
func (h *CourseHandler) ApproveCourseHandler(c *gin.Context) {
	h.setStatus(c, h.Service.Approve, models.CourseStatusApproved)
}

// DenyCourseHandler handles PATCH /courses/admin/deny/:id.
func (h *CourseHandler) DenyCourseHandler(c *gin.Context) {
	h.setStatus(c, h.Service.Deny, models.CourseStatusDenied)
}

func (h *CourseHandler) setStatus(c *gin.Context, apply func(primitive.ObjectID) error, status string) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}
	if err := apply(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update course status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated", "status": status})
}
