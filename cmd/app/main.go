package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study-group-service/api"
	"study-group-service/internal/auth"
	"study-group-service/internal/config"
	"study-group-service/internal/database"
	"study-group-service/internal/domain"
	"study-group-service/internal/handler"
	"study-group-service/internal/notify"
	"study-group-service/internal/repository"
	"study-group-service/internal/repository/memory"
	"study-group-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Репозитории
	var (
		groupRepo  domain.GroupRepository
		memberRepo domain.MembershipRepository
		taskRepo   domain.TaskRepository
		statsRepo  domain.StatsRepository
	)

	switch cfg.Storage {
	case config.StorageMemory:
		store := memory.NewStore()
		groupRepo, memberRepo, taskRepo = store.Repositories()
		statsRepo = store.Stats()
		logger.Info("Using in-memory storage")
	default:
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			logger.Fatalf("Database connection failed: %v", err)
		}
		defer db.Close()
		logger.Info("Database connected")

		// SQLC queries
		queries := database.New(db)

		groupRepo = repository.NewGroupRepository(db, queries)
		memberRepo = repository.NewMembershipRepository(db, queries)
		taskRepo = repository.NewTaskRepository(db, queries)
		statsRepo = repository.NewStatsRepository(queries)
	}

	// Уведомления
	var notifier domain.Notifier = notify.NewLogNotifier(logger)
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := notify.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		cancel()
		if err != nil {
			logger.Warnf("Redis unavailable, notifications go to log: %v", err)
		} else {
			defer rdb.Close()
			notifier = notify.NewRedisNotifier(rdb, cfg.NotifyChannel, logger)
			logger.WithField("addr", cfg.RedisAddr).Info("Redis client connected")
		}
	}

	// Use Cases
	groupUC := usecase.NewGroupUseCase(groupRepo, memberRepo)
	memberUC := usecase.NewMembershipUseCase(groupRepo, memberRepo, notifier, logger)
	ownershipUC := usecase.NewOwnershipUseCase(groupRepo, memberRepo, notifier, logger)
	taskUC := usecase.NewTaskUseCase(taskRepo, memberRepo)
	statsUC := usecase.NewStatsUseCase(groupRepo, statsRepo)

	jwtService := auth.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

	// Echo + Handlers
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))
	e.Use(handler.AuthMiddleware(jwtService, logger, "/health"))

	// Handlers
	apiHandler := handler.NewAPIHandler(groupUC, memberUC, ownershipUC, taskUC, statsUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
