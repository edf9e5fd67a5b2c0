package routes

import (
	"github.com/gin-gonic/gin"

	"schoolapi/internal/app/controllers"
	"schoolapi/internal/app/models"
	"schoolapi/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.POST("/sessions", authController.Login)
	router.POST("/users", authController.Register)

	courses := router.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourseByID)

		// --- Authenticated routes ---
		coursesAuthenticated := courses.Group("")
		coursesAuthenticated.Use(authMiddleware.JWTAuth())
		{
			coursesAuthenticated.POST("/:id/enrollments", enrollmentController.Enroll)

			// Manager-only routes
			coursesManagerProtected := coursesAuthenticated.Group("")
			coursesManagerProtected.Use(authMiddleware.RoleRequired(string(models.RoleManager)))
			{
				coursesManagerProtected.POST("", courseController.CreateCourse)
				coursesManagerProtected.GET("/:id/enrollments", enrollmentController.ListByCourse)
			}
		}
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
