package app

import (
	"lsv_backend/docs"
	"lsv_backend/internal/config"
	"lsv_backend/internal/middleware"
	"lsv_backend/internal/model"
	"lsv_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerLearnerRoutes(router, c, cfg)
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		public.GET("/languages", c.language.GetLanguages)
		public.GET("/languages/:languageId", c.language.GetLanguage)
		public.GET("/languages/:languageId/stages", c.stage.GetStages)
		public.GET("/languages/:languageId/lessons", c.lesson.GetLessons)
		public.GET("/lessons/:id", c.lesson.GetLesson)
		public.GET("/lessons/:id/quizzes", c.lesson.GetLessonQuizzes)
		public.GET("/quizzes/:id", c.quiz.GetQuiz)
	}
}

func (a *App) registerLearnerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/profile", c.auth.GetProfile)

		authGroup.POST("/quizzes/:id/submissions", c.quiz.SubmitQuiz)
		authGroup.GET("/quizzes/:id/submissions", c.quiz.GetMySubmissions)

		authGroup.GET("/languages/:languageId/lessons/progress", c.lesson.GetLessonsWithProgress)
		authGroup.GET("/languages/:languageId/stages/progress", c.stage.GetStageProgress)

		authGroup.GET("/leaderboard", c.leaderboard.GetLeaderboard)
		authGroup.GET("/languages/:languageId/leaderboard", c.leaderboard.GetLeaderboardByLanguage)

		authGroup.GET("/user-lessons", c.userLesson.GetMyLessons)
		authGroup.POST("/user-lessons/:lessonId/start", c.userLesson.StartLesson)
		authGroup.PUT("/user-lessons/:lessonId/completion", c.userLesson.SetCompletion)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/languages", c.language.CreateLanguage)
		admin.PUT("/languages/:languageId", c.language.UpdateLanguage)
		admin.DELETE("/languages/:languageId", c.language.DeleteLanguage)
		admin.GET("/languages/:languageId/quizzes", c.quiz.ListQuizzes)

		admin.POST("/stages", c.stage.CreateStage)
		admin.PUT("/stages/:id", c.stage.UpdateStage)
		admin.DELETE("/stages/:id", c.stage.DeleteStage)

		admin.POST("/lessons", c.lesson.CreateLesson)
		admin.PUT("/lessons/:id", c.lesson.UpdateLesson)
		admin.DELETE("/lessons/:id", c.lesson.DeleteLesson)

		admin.POST("/quizzes", c.quiz.CreateQuiz)
		admin.GET("/quizzes/:id", c.quiz.GetQuizWithAnswers)
		admin.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)
	}
}
