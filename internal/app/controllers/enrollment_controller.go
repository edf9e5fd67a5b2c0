package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"schoolapi/internal/app/models/dto"
	"schoolapi/internal/app/services"
	"schoolapi/internal/middleware"
	"schoolapi/internal/pkg/helpers"
)

// EnrollmentController handles enrollment related operations
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService, logger zerolog.Logger) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// Enroll handles enrolling the authenticated user in a course
// @Summary Enroll in a course
// @Tags enrollments
// @Produce json
// @Param id path string true "Course id" format(uuid)
// @Success 201 "Enrollment created"
// @Failure 401 {object} dto.MessageResponse "Missing or invalid token"
// @Failure 404 "Course not found"
// @Failure 409 {object} dto.MessageResponse "Already enrolled"
// @Security BearerAuth
// @Router /courses/{id}/enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Token não informado"))
		return
	}

	courseID := ctx.Param("id")
	if err := c.enrollmentService.Enroll(ctx.Request.Context(), userID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("userId", userID.String()).Str("courseId", courseID).Msg("User enrolled")
	ctx.JSON(http.StatusCreated, gin.H{})
}

// ListByCourse handles listing a course's enrolled users
// @Summary List a course's enrollments
// @Description Lists enrolled users for a course. Restricted to managers.
// @Tags enrollments
// @Produce json
// @Param id path string true "Course id" format(uuid)
// @Param page query int false "1-based page" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.EnrollmentListResponse
// @Failure 401 {object} dto.MessageResponse "Missing or invalid token"
// @Failure 403 {object} dto.MessageResponse "Insufficient role"
// @Failure 404 "Course not found"
// @Security BearerAuth
// @Router /courses/{id}/enrollments [get]
func (c *EnrollmentController) ListByCourse(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	response, err := c.enrollmentService.ListByCourse(ctx.Request.Context(), ctx.Param("id"), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
