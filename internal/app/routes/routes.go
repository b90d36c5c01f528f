package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/ojtportal/internal/app/controllers"
	"github.com/yigit/ojtportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	registrationController *controllers.RegistrationController,
	studentController *controllers.StudentController,
	submissionController *controllers.SubmissionController,
	timeLogController *controllers.TimeLogController,
	dashboardController *controllers.DashboardController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// every route below sees the caller's session
	sessioned := v1.Group("")
	sessioned.Use(sessionMiddleware.Session())

	// --- Public Auth routes ---
	auth := sessioned.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.POST("/logout", authController.Logout)
		auth.GET("/session", authController.Session)
	}

	// --- Public student self-registration ---
	registration := sessioned.Group("/registration")
	{
		registration.POST("", registrationController.Submit)
		registration.POST("/validate", registrationController.Validate)
		registration.POST("/change", registrationController.Change)
	}

	// --- Authenticated Routes Group ---
	authenticated := sessioned.Group("")
	authenticated.Use(middleware.RequireAuth())
	{
		authenticated.GET("/dashboard", dashboardController.Get)

		students := authenticated.Group("/students")
		{
			students.GET("/profile", studentController.GetProfile)
			students.PUT("/profile", studentController.UpdateProfile)

			students.GET("", studentController.ListStudents)
			students.POST("", studentController.CreateStudent)
			students.GET("/:id", studentController.GetStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		submissions := authenticated.Group("/submissions")
		{
			submissions.GET("", submissionController.Overview)
			submissions.GET("/available", submissionController.Available)
			submissions.POST("", submissionController.Submit)
		}

		timeLogs := authenticated.Group("/timelogs")
		{
			timeLogs.GET("", timeLogController.List)
			timeLogs.GET("/today", timeLogController.Today)
			timeLogs.POST("/clock", timeLogController.Clock)
		}
	}
}
