package main

import (
	"context"
	"log"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/internal/storage"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// systemCategories become the shared default set (user_id NULL). New
// accounts copy these through the category defaults endpoint.
var systemCategories = []struct {
	name  string
	icon  string
	color string
	role  models.CategoryRole
}{
	{"Gıda & İçecek", "fas fa-utensils", "#4CAF50", models.RoleExpenseDefault},
	{"Ulaşım", "fas fa-car", "#FF9800", models.RoleExpenseDefault},
	{"Eğlence", "fas fa-gamepad", "#F44336", models.RoleExpenseDefault},
	{"Faturalar", "fas fa-file-invoice", "#2196F3", models.RoleExpenseDefault},
	{"Alışveriş", "fas fa-shopping-bag", "#9C27B0", models.RoleExpenseDefault},
	{"Sağlık", "fas fa-heart", "#E91E63", models.RoleExpenseDefault},
	{"Eğitim", "fas fa-graduation-cap", "#00BCD4", models.RoleExpenseDefault},
	{"Ev", "fas fa-home", "#795548", models.RoleExpenseDefault},
	{"Gelir", "fas fa-wallet", "#4CAF50", models.RoleIncome},
	{"Diğer", "fas fa-ellipsis-h", "#9E9E9E", models.RoleExpenseDefault},
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := storage.RunMigrations(cfg.Database.DSN()); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	categoryRepo := repository.NewCategoryRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	existing, err := categoryRepo.ListDefaults(ctx)
	if err != nil {
		appLogger.Fatal("Failed to list default categories", zap.Error(err))
	}
	taken := make(map[string]bool, len(existing))
	for _, c := range existing {
		taken[c.Name] = true
	}

	now := time.Now()
	var toCreate []*models.Category
	for _, def := range systemCategories {
		if taken[def.name] {
			continue
		}
		toCreate = append(toCreate, &models.Category{
			ID:        uuid.New(),
			UserID:    nil,
			Name:      def.name,
			Icon:      def.icon,
			Color:     def.color,
			Role:      def.role,
			IsDefault: true,
			CreatedAt: now,
		})
	}

	if err := categoryRepo.CreateBatch(ctx, toCreate); err != nil {
		appLogger.Fatal("Failed to seed categories", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!",
		zap.Int("created", len(toCreate)),
		zap.Int("skipped", len(taken)),
	)
}
