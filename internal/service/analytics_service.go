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

// Adherence and goal progress default to optimistic baselines when the
// user has no budgets or goals yet, so a fresh account is not scored as
// failing on data it never produced.
const (
	defaultBudgetAdherence = 0.8
	defaultGoalProgress    = 0.6
)

const trendMonths = 6

// MonthPoint is one month of the income/expense trend series.
type MonthPoint struct {
	Year     int
	Month    int
	Label    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

type AnalyticsService struct {
	txRepo       TransactionRepo
	budgetRepo   BudgetRepo
	goalRepo     GoalRepo
	categoryRepo CategoryRepo
	logger       *zap.Logger
}

func NewAnalyticsService(txRepo TransactionRepo, budgetRepo BudgetRepo, goalRepo GoalRepo, categoryRepo CategoryRepo, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		txRepo:       txRepo,
		budgetRepo:   budgetRepo,
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// HealthScore scores the user's current month. Budget adherence and goal
// progress come from live data; without budgets or goals the baselines
// above stand in.
func (s *AnalyticsService) HealthScore(ctx context.Context, userID uuid.UUID, now time.Time) (analytics.HealthScore, error) {
	stats, err := s.monthStats(ctx, userID, now.Year(), int(now.Month()), now.Location())
	if err != nil {
		return analytics.HealthScore{}, err
	}

	adherence, err := s.budgetAdherence(ctx, userID)
	if err != nil {
		return analytics.HealthScore{}, err
	}
	goalProgress, err := s.goalProgress(ctx, userID)
	if err != nil {
		return analytics.HealthScore{}, err
	}

	income, _ := stats.TotalIncome.Float64()
	expenses, _ := stats.TotalExpenses.Float64()
	return analytics.ScoreHealth(income, expenses, stats.SavingsRate(), adherence, goalProgress), nil
}

// Trends computes the income/expense series for the last trendMonths
// calendar months, oldest first, ending with the month containing now.
func (s *AnalyticsService) Trends(ctx context.Context, userID uuid.UUID, now time.Time) ([]MonthPoint, error) {
	loc := now.Location()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -(trendMonths - 1), 0)
	_, last := analytics.MonthWindow(now.Year(), int(now.Month()), loc)

	txs, err := s.txRepo.ListByDateRange(ctx, userID, first, last)
	if err != nil {
		return nil, err
	}

	points := make([]MonthPoint, 0, trendMonths)
	for i := 0; i < trendMonths; i++ {
		month := first.AddDate(0, i, 0)
		stats, err := analytics.ComputeMonthlyStats(txs, month.Year(), int(month.Month()), loc)
		if err != nil {
			return nil, err
		}
		points = append(points, MonthPoint{
			Year:     month.Year(),
			Month:    int(month.Month()),
			Label:    analytics.TurkishMonths[month.Month()-1],
			Income:   stats.TotalIncome,
			Expenses: stats.TotalExpenses,
		})
	}
	return points, nil
}

// Breakdown returns the per-category expense totals for one month.
func (s *AnalyticsService) Breakdown(ctx context.Context, userID uuid.UUID, year, month int, loc *time.Location) ([]analytics.CategorySlice, error) {
	txs, err := s.monthTransactions(ctx, userID, year, month, loc)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.CategoryBreakdown(txs, categories)
}

func (s *AnalyticsService) monthTransactions(ctx context.Context, userID uuid.UUID, year, month int, loc *time.Location) ([]*models.Transaction, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: got %d", analytics.ErrInvalidMonth, month)
	}
	start, end := analytics.MonthWindow(year, month, loc)
	return s.txRepo.ListByDateRange(ctx, userID, start, end)
}

func (s *AnalyticsService) monthStats(ctx context.Context, userID uuid.UUID, year, month int, loc *time.Location) (analytics.MonthlyStats, error) {
	txs, err := s.monthTransactions(ctx, userID, year, month, loc)
	if err != nil {
		return analytics.MonthlyStats{}, err
	}
	return analytics.ComputeMonthlyStats(txs, year, month, loc)
}

// budgetAdherence averages per-budget adherence over the user's active
// budgets: 1.0 while spending stays inside the budget, reduced by the
// overshoot fraction once it does not.
func (s *AnalyticsService) budgetAdherence(ctx context.Context, userID uuid.UUID) (float64, error) {
	budgets, err := s.budgetRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	var sum float64
	var counted int
	for _, b := range budgets {
		if b.CategoryID == nil {
			continue
		}
		amount, err := decimal.NewFromString(b.Amount)
		if err != nil || amount.Sign() <= 0 {
			continue
		}
		total, err := s.txRepo.SumExpensesByCategory(ctx, userID, *b.CategoryID, b.StartDate, b.EndDate)
		if err != nil {
			return 0, err
		}
		spent, err := decimal.NewFromString(total)
		if err != nil {
			return 0, fmt.Errorf("budget %s spent total: %w", b.ID, err)
		}

		ratio, _ := spent.Div(amount).Float64()
		adherence := 1.0
		if ratio > 1 {
			adherence = 1 - (ratio - 1)
			if adherence < 0 {
				adherence = 0
			}
		}
		sum += adherence
		counted++
	}

	if counted == 0 {
		return defaultBudgetAdherence, nil
	}
	return sum / float64(counted), nil
}

// goalProgress averages clamped completion fractions across the user's
// goals.
func (s *AnalyticsService) goalProgress(ctx context.Context, userID uuid.UUID) (float64, error) {
	goals, err := s.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	var sum float64
	var counted int
	for _, g := range goals {
		target, err := decimal.NewFromString(g.TargetAmount)
		if err != nil || target.Sign() <= 0 {
			continue
		}
		current, err := decimal.NewFromString(g.CurrentAmount)
		if err != nil {
			continue
		}
		fraction, _ := current.Div(target).Float64()
		if fraction > 1 {
			fraction = 1
		}
		if fraction < 0 {
			fraction = 0
		}
		sum += fraction
		counted++
	}

	if counted == 0 {
		return defaultGoalProgress, nil
	}
	return sum / float64(counted), nil
}
