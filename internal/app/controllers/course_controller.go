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

// CourseController handles course related operations
type CourseController struct {
	courseService *services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// CreateCourse handles course creation
// @Summary Create a course
// @Description Creates a new course. Restricted to managers.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.CreateCourseResponse "Course created"
// @Failure 400 {object} dto.MessageResponse "Missing title"
// @Failure 401 {object} dto.MessageResponse "Missing or invalid token"
// @Failure 403 {object} dto.MessageResponse "Insufficient role"
// @Failure 409 {object} dto.MessageResponse "Duplicate title"
// @Security BearerAuth
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse(middleware.BindingErrorMessage(err)))
		return
	}

	response, err := c.courseService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("courseId", response.CourseID).Str("title", req.Title).Msg("Course created")
	ctx.JSON(http.StatusCreated, response)
}

// GetCourseByID handles fetching a single course
// @Summary Get a course by id
// @Tags courses
// @Produce json
// @Param id path string true "Course id" format(uuid)
// @Success 200 {object} dto.CourseResponse
// @Failure 400 {object} dto.MessageResponse "Malformed id"
// @Failure 404 "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	response, err := c.courseService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListCourses handles the paginated course listing
// @Summary List courses
// @Description Lists courses with enrollment counts, optionally filtered by a case-insensitive title search
// @Tags courses
// @Produce json
// @Param search query string false "Title substring filter"
// @Param page query int false "1-based page" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.CourseListResponse
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	page, pageSize := helpers.ParsePaginationParams(ctx)

	response, err := c.courseService.List(ctx.Request.Context(), ctx.Query("search"), page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
