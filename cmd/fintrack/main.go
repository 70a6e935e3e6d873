package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/api"
	"fintrack/internal/api/handlers"
	"fintrack/internal/repository"
	"fintrack/internal/service"
	"fintrack/internal/storage"
	"fintrack/pkg/auth"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/postgres"

	"go.uber.org/zap"
)

// @title FinTrack API
// @version 1.0
// @description Personal finance tracking and analytics service

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting FinTrack service")

	// Apply schema migrations before opening the pool
	if err := storage.RunMigrations(cfg.Database.DSN()); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)
	insightRepo := repository.NewInsightRepository(db, appLogger)
	chatRepo := repository.NewChatRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	txService := service.NewTransactionService(txRepo, categoryRepo, time.Local, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, txRepo, categoryRepo, appLogger)
	goalService := service.NewGoalService(goalRepo, appLogger)
	analyticsService := service.NewAnalyticsService(txRepo, budgetRepo, goalRepo, categoryRepo, appLogger)
	insightService := service.NewInsightService(insightRepo, txRepo, budgetRepo, categoryRepo, appLogger)
	assistantService := service.NewAssistantService(chatRepo, txRepo, budgetRepo, categoryRepo, appLogger)
	captureService := service.NewCaptureService(txRepo, categoryRepo, appLogger)

	// Setup router
	app := api.SetupRouter(api.Handlers{
		Auth:        handlers.NewAuthHandler(authService, appLogger),
		Category:    handlers.NewCategoryHandler(categoryService, appLogger),
		Transaction: handlers.NewTransactionHandler(txService, appLogger),
		Budget:      handlers.NewBudgetHandler(budgetService, appLogger),
		Goal:        handlers.NewGoalHandler(goalService, appLogger),
		Analytics:   handlers.NewAnalyticsHandler(analyticsService, appLogger),
		Insight:     handlers.NewInsightHandler(insightService, appLogger),
		Chat:        handlers.NewChatHandler(assistantService, appLogger),
		Capture:     handlers.NewCaptureHandler(captureService, appLogger),
	}, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
