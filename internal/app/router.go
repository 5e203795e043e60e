package app

import (
	"trivia_quiz_backend/internal/config"
	"trivia_quiz_backend/internal/middleware"
	"trivia_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/api/health", c.health.HealthCheck)

	// Play routes, open to the player.
	router.GET("/", c.quiz.GetCurrent)
	router.POST("/", c.quiz.Submit)

	router.POST("/admin/login", c.auth.Login)

	// Everything else under /admin requires a valid admin token.
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.GET("", c.admin.Dashboard)
		admin.POST("", c.admin.HandleForm)
		admin.GET("/edit/:id", c.admin.GetQuestion)
		admin.POST("/edit/:id", c.admin.UpdateQuestion)
		admin.DELETE("/questions/:id", c.admin.DeleteQuestion)
		admin.POST("/reset", c.admin.Reset)
		admin.POST("/upload/image", c.admin.UploadImage)
	}
}
