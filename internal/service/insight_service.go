package service

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type InsightRepo interface {
	ReplaceForUser(ctx context.Context, userID uuid.UUID, insights []*models.AiInsight) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.AiInsight, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}

type InsightService struct {
	insightRepo  InsightRepo
	txRepo       TransactionRepo
	budgetRepo   BudgetRepo
	categoryRepo CategoryRepo
	logger       *zap.Logger
}

func NewInsightService(insightRepo InsightRepo, txRepo TransactionRepo, budgetRepo BudgetRepo, categoryRepo CategoryRepo, logger *zap.Logger) *InsightService {
	return &InsightService{
		insightRepo:  insightRepo,
		txRepo:       txRepo,
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Refresh regenerates the user's insight snapshot from the month
// containing now and replaces the stored rows with it.
func (s *InsightService) Refresh(ctx context.Context, userID uuid.UUID, now time.Time) ([]*models.AiInsight, error) {
	loc := now.Location()
	year, month := now.Year(), int(now.Month())

	start, end := analytics.MonthWindow(year, month, loc)
	prevAnchor := start.AddDate(0, -1, 0)
	prevStart, _ := analytics.MonthWindow(prevAnchor.Year(), int(prevAnchor.Month()), loc)

	// One range read covers both the current and the previous month.
	txs, err := s.txRepo.ListByDateRange(ctx, userID, prevStart, end)
	if err != nil {
		return nil, err
	}

	stats, err := analytics.ComputeMonthlyStats(txs, year, month, loc)
	if err != nil {
		return nil, err
	}
	prevStats, err := analytics.ComputeMonthlyStats(txs, prevAnchor.Year(), int(prevAnchor.Month()), loc)
	if err != nil {
		return nil, err
	}

	spendings, err := s.budgetSpendings(ctx, userID)
	if err != nil {
		return nil, err
	}

	insights, err := analytics.GenerateInsights(txs, spendings, stats, &prevStats)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.AiInsight, 0, len(insights))
	for _, in := range insights {
		rows = append(rows, &models.AiInsight{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      string(in.Kind),
			Title:     in.Title,
			Content:   in.Content,
			Priority:  in.Priority,
			CreatedAt: now,
		})
	}

	if err := s.insightRepo.ReplaceForUser(ctx, userID, rows); err != nil {
		return nil, err
	}

	s.logger.Info("insights refreshed",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(rows)),
	)
	return rows, nil
}

func (s *InsightService) List(ctx context.Context, userID uuid.UUID, limit int) ([]*models.AiInsight, error) {
	return s.insightRepo.ListByUser(ctx, userID, limit)
}

func (s *InsightService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.insightRepo.MarkRead(ctx, userID, id)
}

func (s *InsightService) budgetSpendings(ctx context.Context, userID uuid.UUID) ([]analytics.BudgetSpending, error) {
	budgets, err := s.budgetRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	spendings := make([]analytics.BudgetSpending, 0, len(budgets))
	for _, b := range budgets {
		if b.CategoryID == nil {
			continue
		}
		amount, err := decimal.NewFromString(b.Amount)
		if err != nil {
			return nil, fmt.Errorf("budget %s amount: %w", b.ID, err)
		}
		total, err := s.txRepo.SumExpensesByCategory(ctx, userID, *b.CategoryID, b.StartDate, b.EndDate)
		if err != nil {
			return nil, err
		}
		spent, err := decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("budget %s spent total: %w", b.ID, err)
		}

		name := names[*b.CategoryID]
		if name == "" {
			name = "Bütçe"
		}
		spendings = append(spendings, analytics.BudgetSpending{
			CategoryName: name,
			Amount:       amount,
			Spent:        spent,
		})
	}
	return spendings, nil
}
