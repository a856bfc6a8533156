package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tastapp/tast-backend/internal/app/controllers"
	"github.com/tastapp/tast-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	pageController *controllers.PageController,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	quizController *controllers.QuizController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.GET("/", pageController.Home)
	router.POST("/login", authController.Login)
	router.GET("/logout", authController.Logout)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/student", pageController.StudentDashboard)
		authenticated.GET("/course/:id", courseController.GetCourse)
		authenticated.POST("/submit-quiz", quizController.SubmitQuiz)

		// JSON API used by the web frontend
		authenticated.GET("/api/courses", courseController.ListCourses)
		authenticated.GET("/api/course/:id/questions", courseController.GetCourse)

		// --- Admin-only routes ---
		admin := authenticated.Group("")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.GET("/admin", pageController.AdminDashboard)
			admin.POST("/create-course", courseController.CreateCourse)
			admin.POST("/upload-questions", courseController.UploadQuestions)
		}
	}
}
