package service

import (
	"context"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryRepo interface {
	Create(ctx context.Context, category *models.Category) error
	CreateBatch(ctx context.Context, categories []*models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Category, error)
	ListDefaults(ctx context.Context) ([]*models.Category, error)
}

// defaultCategories is the starter set every new account gets. Gelir is
// the income bucket, tagged by role rather than by its display name.
var defaultCategories = []struct {
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

type CategoryService struct {
	categoryRepo CategoryRepo
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo CategoryRepo, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]*models.Category, error) {
	return s.categoryRepo.ListByUser(ctx, userID)
}

func (s *CategoryService) ListDefaults(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.ListDefaults(ctx)
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, name, icon, color string) (*models.Category, error) {
	category := &models.Category{
		ID:        uuid.New(),
		UserID:    &userID,
		Name:      sanitizeUTF8(name),
		Icon:      icon,
		Color:     color,
		Role:      models.RoleUserDefined,
		CreatedAt: time.Now(),
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// InitDefaults creates the starter categories for a user, skipping names
// the user already has.
func (s *CategoryService) InitDefaults(ctx context.Context, userID uuid.UUID) ([]*models.Category, error) {
	existing, err := s.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(existing))
	for _, c := range existing {
		taken[c.Name] = true
	}

	now := time.Now()
	var created []*models.Category
	for _, def := range defaultCategories {
		if taken[def.name] {
			continue
		}
		created = append(created, &models.Category{
			ID:        uuid.New(),
			UserID:    &userID,
			Name:      def.name,
			Icon:      def.icon,
			Color:     def.color,
			Role:      def.role,
			CreatedAt: now,
		})
	}

	if err := s.categoryRepo.CreateBatch(ctx, created); err != nil {
		return nil, err
	}

	s.logger.Info("Default categories initialized",
		zap.String("user_id", userID.String()),
		zap.Int("created", len(created)),
	)
	return created, nil
}
