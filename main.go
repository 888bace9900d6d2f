package main

import (
	"context"
	"time"

	api "planner-backend/cmd/api"
	authdomain "planner-backend/internal/auth/domain"
	authRepo "planner-backend/internal/auth/repository"
	authUsecase "planner-backend/internal/auth/usecase"
	importerUsecase "planner-backend/internal/importer/usecase"
	taskdomain "planner-backend/internal/task/domain"
	taskRepo "planner-backend/internal/task/repository"
	taskUsecase "planner-backend/internal/task/usecase"
	"planner-backend/pkg/config"
	"planner-backend/pkg/database"
	"planner-backend/pkg/logger"
	"planner-backend/pkg/nager"

	redis "github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	// Initialize repositories. SKIP_DB=1 swaps in the in-memory stores so the
	// server can run without a database (offline testing).
	var (
		userRepository authRepo.UserRepository
		taskRepository taskRepo.TaskRepository
	)
	if cfg.SkipDB {
		logger.Warn("SKIP_DB is set, using in-memory repositories")
		userRepository = authRepo.NewMemoryUserRepository()
		taskRepository = taskRepo.NewMemoryTaskRepository()
	} else {
		db, err := database.NewPostgresConnection(cfg)
		if err != nil {
			logger.Fatal("failed to connect to database", "error", err)
		}
		if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
			logger.Fatal("failed to migrate database", "error", err)
		}
		userRepository = authRepo.NewUserRepository(db)
		taskRepository = taskRepo.NewGormTaskRepository(db)
		logger.Info("database connected")
	}

	// Optional redis cache for holiday provider responses
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, holiday responses will not be cached", "error", err)
			redisClient = nil
		}
		cancel()
	}
	nagerClient := nager.NewClient(cfg.NagerBaseURL, redisClient)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository)
	importerUc := importerUsecase.NewImporterUsecase(nagerClient, taskRepository)

	// Initialize HTTP handler and start the server
	handler := api.NewHandler(authUc, taskUc, importerUc, cfg)

	logger.Info("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", "error", err)
	}
}
