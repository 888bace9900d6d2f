package api

import (
	"net/http"

	"planner-backend/internal/auth/delivery"
	authUsecase "planner-backend/internal/auth/usecase"
	importerDelivery "planner-backend/internal/importer/delivery"
	taskDelivery "planner-backend/internal/task/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskHandler *taskDelivery.TaskHandler, importerHandler *importerDelivery.ImporterHandler) {
	authHandler := delivery.NewAuthHandler(authUc)

	// Health check and metrics (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", MetricsHandler())

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/jwt/login", authHandler.Login)
	}

	// Task routes (protected)
	tasks := r.Group("/tasks")
	tasks.Use(delivery.AuthMiddleware(authUc))
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.GetTasks)
		tasks.GET("/:id", taskHandler.GetTaskByID)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}

	// Import routes (protected)
	importGroup := r.Group("/import")
	importGroup.Use(delivery.AuthMiddleware(authUc))
	{
		importGroup.POST("/nager", importerHandler.ImportNager)
	}
}
