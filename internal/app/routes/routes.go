package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/studentms/internal/app/controllers"
	"github.com/emre/studentms/internal/app/models"
	"github.com/emre/studentms/internal/middleware"
)

// SetupRouter configures all application routes. Paths are mounted at
// the root (no version prefix) for compatibility with existing clients.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	gradeController *controllers.GradeController,
	profileController *controllers.ProfileController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Admin routes ---
	admin := router.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/students", studentController.CreateStudent)
		admin.GET("/students", studentController.GetAllStudents)
		admin.GET("/students/:id", studentController.GetStudentByID)
		admin.PUT("/students/:id", studentController.UpdateStudent)
		admin.DELETE("/students/:id", studentController.DeleteStudent)

		admin.POST("/courses", courseController.CreateCourse)
		admin.GET("/courses", courseController.GetAllCourses)
		admin.PUT("/courses/:id", courseController.UpdateCourse)
		admin.DELETE("/courses/:id", courseController.DeleteCourse)

		admin.POST("/grades", gradeController.UpsertGrade)
		admin.GET("/grades", gradeController.GetAllGrades)
		admin.DELETE("/grades/:id", gradeController.DeleteGrade)
	}

	// --- Student self-service routes ---
	student := router.Group("/student")
	student.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleStudent))
	{
		student.GET("/profile", profileController.GetProfile)
		student.PUT("/profile", profileController.UpdateProfile)
		student.GET("/grades", profileController.GetGrades)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger routes are set up in bootstrap.go already
}
