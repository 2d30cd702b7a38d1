package app

import (
	"quizhub_backend/docs"
	"quizhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 测验
		api.GET("/quizzes", c.quiz.ListQuizzes)
		api.POST("/quizzes", c.quiz.CreateQuiz)
		api.GET("/quizzes/:id", c.quiz.GetQuiz)
		api.PUT("/quizzes/:id", c.quiz.UpdateQuiz)
		api.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)
		api.POST("/quizzes/:id/publish", c.quiz.PublishQuiz)
		api.POST("/quizzes/:id/schedule_publish", c.quiz.SchedulePublish)

		// 题目
		api.GET("/quizzes/:id/questions", c.question.ListQuestions)
		api.POST("/quizzes/:id/questions", c.question.CreateQuestion)
		api.GET("/questions/:id", c.question.GetQuestion)
		api.PUT("/questions/:id", c.question.UpdateQuestion)
		api.DELETE("/questions/:id", c.question.DeleteQuestion)

		// 选项
		api.GET("/questions/:id/choices", c.question.ListChoices)
		api.POST("/questions/:id/choices", c.question.CreateChoice)
		api.GET("/choices/:id", c.question.GetChoice)
		api.PUT("/choices/:id", c.question.UpdateChoice)
		api.DELETE("/choices/:id", c.question.DeleteChoice)

		// 答案提交与评分
		api.POST("/quizzes/:id/submit", c.grading.SubmitQuiz)
	}
}
