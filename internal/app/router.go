package app

import (
	"github.com/Bright-ted/SkillTrack/docs"
	"github.com/Bright-ted/SkillTrack/internal/config"
	"github.com/Bright-ted/SkillTrack/internal/middleware"
	"github.com/Bright-ted/SkillTrack/internal/model"
	"github.com/Bright-ted/SkillTrack/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.Profile)
		authGroup.GET("/courses/:id", c.course.CourseDetail)
		authGroup.GET("/courses/:id/leaderboard", c.gradebook.Leaderboard)

		a.registerStudentRoutes(authGroup, c)
		a.registerInstructorRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	student := rg.Group("/student")
	student.Use(middleware.RoleMiddleware(model.Student))
	{
		student.GET("/dashboard", c.student.Dashboard)
		student.GET("/courses", c.student.MyCourses)
		student.POST("/courses/:id/enroll", c.student.Enroll)
		student.DELETE("/courses/:id/enroll", c.student.Drop)
		student.GET("/grades", c.student.GradeHistory)

		student.GET("/quizzes/:id/start", c.student.StartQuiz)
		student.GET("/quizzes/:id/attempt", c.student.AttemptView)
		student.PUT("/quizzes/:id/progress", c.student.SaveProgress)
		student.POST("/quizzes/:id/submit", c.student.Submit)
		student.GET("/results/:id", c.student.ResultReview)
	}
}

func (a *App) registerInstructorRoutes(rg *gin.RouterGroup, c *controllers) {
	instructor := rg.Group("/instructor")
	instructor.Use(middleware.RoleMiddleware(model.Instructor))
	{
		instructor.GET("/dashboard", c.dashboard.InstructorDashboard)

		instructor.GET("/courses", c.course.MyCourses)
		instructor.POST("/courses", c.course.CreateCourse)
		instructor.PUT("/courses/:id", c.course.UpdateCourse)
		instructor.GET("/courses/:id/students", c.course.CourseRoster)
		instructor.POST("/courses/:id/quizzes", c.course.CreateQuiz)
		instructor.GET("/courses/:id/export", c.gradebook.ExportCSV)

		instructor.PUT("/quizzes/:id", c.course.UpdateQuiz)
		instructor.DELETE("/quizzes/:id", c.course.DeleteQuiz)
		instructor.GET("/quizzes/:id/questions", c.course.QuizQuestions)
		instructor.POST("/quizzes/:id/questions", c.course.CreateQuestion)
		instructor.GET("/quizzes/:id/results", c.gradebook.QuizResults)

		instructor.PUT("/questions/:id", c.course.UpdateQuestion)
		instructor.DELETE("/questions/:id", c.course.DeleteQuestion)

		instructor.GET("/reports", c.gradebook.Reports)
		instructor.GET("/results/:id", c.gradebook.AttemptReview)
		instructor.PUT("/results/:id/grade", c.gradebook.ManualGrade)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.admin.ListUsers)
		admin.PUT("/users/:id/disabled", c.admin.SetUserDisabled)
	}
}
