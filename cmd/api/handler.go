package api

import (
	authUsecase "planner-backend/internal/auth/usecase"
	importerDelivery "planner-backend/internal/importer/delivery"
	importerUsecasePkg "planner-backend/internal/importer/usecase"
	taskDelivery "planner-backend/internal/task/delivery"
	taskUsecasePkg "planner-backend/internal/task/usecase"
	"planner-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	taskHandler     *taskDelivery.TaskHandler
	importerHandler *importerDelivery.ImporterHandler
	config          *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase, importerUc importerUsecasePkg.ImporterUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:     authUc,
		taskHandler:     taskDelivery.NewTaskHandler(taskUc),
		importerHandler: importerDelivery.NewImporterHandler(importerUc),
		config:          cfg,
	}
}

// Engine builds the configured gin engine. Split from Start so tests can
// exercise the full route table with httptest.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(corsMiddleware(h.config.CORSAllowOrigins))
	r.Use(MetricsMiddleware())

	SetupRoutes(r, h.authUsecase, h.taskHandler, h.importerHandler)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}

// corsMiddleware reflects the request origin when it is on the configured
// allow-list ("*" allows every origin).
func corsMiddleware(allowed []string) gin.HandlerFunc {
	allowAll := false
	allowedSet := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			allowAll = true
		}
		allowedSet[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (allowAll || allowedSet[origin]) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
