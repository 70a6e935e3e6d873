package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidBudget = errors.New("invalid budget")

type BudgetRepo interface {
	Create(ctx context.Context, budget *models.Budget) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Budget, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*models.Budget, error)
	Update(ctx context.Context, budget *models.Budget) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// BudgetWithProgress decorates a stored budget with its derived spending
// and progress evaluation.
type BudgetWithProgress struct {
	Budget   *models.Budget
	Category *models.Category
	Spent    decimal.Decimal
	Progress analytics.BudgetProgress
}

type BudgetService struct {
	budgetRepo   BudgetRepo
	txRepo       TransactionRepo
	categoryRepo CategoryRepo
	logger       *zap.Logger
}

func NewBudgetService(budgetRepo BudgetRepo, txRepo TransactionRepo, categoryRepo CategoryRepo, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *BudgetService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount %q", ErrInvalidBudget, req.Amount)
	}

	period := models.BudgetPeriod(req.Period)
	switch period {
	case models.PeriodWeekly, models.PeriodMonthly, models.PeriodYearly:
	default:
		return nil, fmt.Errorf("%w: period %q", ErrInvalidBudget, req.Period)
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date %q", ErrInvalidBudget, req.StartDate)
	}
	endDate, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date %q", ErrInvalidBudget, req.EndDate)
	}
	if !endDate.After(startDate) {
		return nil, fmt.Errorf("%w: end date must follow start date", ErrInvalidBudget)
	}

	var categoryID *uuid.UUID
	if req.CategoryID != nil && *req.CategoryID != "" {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: category id %q", ErrInvalidBudget, *req.CategoryID)
		}
		categoryID = &id
	}

	now := time.Now()
	budget := &models.Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount.String(),
		Period:     period,
		StartDate:  startDate,
		EndDate:    endDate,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// List returns the user's active budgets, each decorated with the spent
// amount derived from its category's expenses inside the budget window.
func (s *BudgetService) List(ctx context.Context, userID uuid.UUID) ([]*BudgetWithProgress, error) {
	budgets, err := s.budgetRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	out := make([]*BudgetWithProgress, 0, len(budgets))
	for _, b := range budgets {
		spent := decimal.Zero
		var category *models.Category
		if b.CategoryID != nil {
			category = byID[*b.CategoryID]
			total, err := s.txRepo.SumExpensesByCategory(ctx, userID, *b.CategoryID, b.StartDate, b.EndDate)
			if err != nil {
				return nil, err
			}
			spent, err = decimal.NewFromString(total)
			if err != nil {
				return nil, fmt.Errorf("budget %s spent total: %w", b.ID, err)
			}
		}

		amount, err := decimal.NewFromString(b.Amount)
		if err != nil {
			return nil, fmt.Errorf("budget %s amount: %w", b.ID, err)
		}

		out = append(out, &BudgetWithProgress{
			Budget:   b,
			Category: category,
			Spent:    spent,
			Progress: analytics.EvaluateBudget(spent, amount),
		})
	}

	return out, nil
}

func (s *BudgetService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.budgetRepo.Delete(ctx, userID, id)
}
