package service

import (
	"context"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

type fakeTransactionRepo struct {
	created []*models.Transaction
	txs     []*models.Transaction
	sums    map[uuid.UUID]string
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *models.Transaction) error {
	f.created = append(f.created, tx)
	f.txs = append(f.txs, tx)
	return nil
}

func (f *fakeTransactionRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	for _, tx := range f.txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, tx := range f.txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) ListByDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, tx := range f.txs {
		if tx.UserID != userID || tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (f *fakeTransactionRepo) SumExpensesByCategory(_ context.Context, _, categoryID uuid.UUID, _, _ time.Time) (string, error) {
	if s, ok := f.sums[categoryID]; ok {
		return s, nil
	}
	return "0", nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, _ *models.Transaction) error { return nil }

func (f *fakeTransactionRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	for i, tx := range f.txs {
		if tx.ID == id {
			f.txs = append(f.txs[:i], f.txs[i+1:]...)
			break
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	categories []*models.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *models.Category) error {
	f.categories = append(f.categories, c)
	return nil
}

func (f *fakeCategoryRepo) CreateBatch(_ context.Context, cs []*models.Category) error {
	f.categories = append(f.categories, cs...)
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]*models.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) ListDefaults(_ context.Context) ([]*models.Category, error) {
	var out []*models.Category
	for _, c := range f.categories {
		if c.IsDefault {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeBudgetRepo struct {
	budgets []*models.Budget
}

func (f *fakeBudgetRepo) Create(_ context.Context, b *models.Budget) error {
	f.budgets = append(f.budgets, b)
	return nil
}

func (f *fakeBudgetRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Budget, error) {
	for _, b := range f.budgets {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBudgetRepo) ListActiveByUser(_ context.Context, userID uuid.UUID) ([]*models.Budget, error) {
	var out []*models.Budget
	for _, b := range f.budgets {
		if b.UserID == userID && b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepo) Update(_ context.Context, _ *models.Budget) error { return nil }

func (f *fakeBudgetRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	for i, b := range f.budgets {
		if b.ID == id {
			f.budgets = append(f.budgets[:i], f.budgets[i+1:]...)
			break
		}
	}
	return nil
}

type fakeGoalRepo struct {
	goals   []*models.FinancialGoal
	updated []*models.FinancialGoal
}

func (f *fakeGoalRepo) Create(_ context.Context, g *models.FinancialGoal) error {
	f.goals = append(f.goals, g)
	return nil
}

func (f *fakeGoalRepo) GetByID(_ context.Context, id uuid.UUID) (*models.FinancialGoal, error) {
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGoalRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.FinancialGoal, error) {
	var out []*models.FinancialGoal
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoalRepo) Update(_ context.Context, g *models.FinancialGoal) error {
	f.updated = append(f.updated, g)
	return nil
}

func (f *fakeGoalRepo) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

type fakeInsightRepo struct {
	stored []*models.AiInsight
}

func (f *fakeInsightRepo) ReplaceForUser(_ context.Context, _ uuid.UUID, insights []*models.AiInsight) error {
	f.stored = insights
	return nil
}

func (f *fakeInsightRepo) ListByUser(_ context.Context, _ uuid.UUID, _ int) ([]*models.AiInsight, error) {
	return f.stored, nil
}

func (f *fakeInsightRepo) MarkRead(_ context.Context, _, id uuid.UUID) error {
	for _, row := range f.stored {
		if row.ID == id {
			row.IsRead = true
		}
	}
	return nil
}

type fakeChatRepo struct {
	messages []*models.ChatMessage
}

func (f *fakeChatRepo) Create(_ context.Context, m *models.ChatMessage) error {
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeChatRepo) ListByUser(_ context.Context, _ uuid.UUID, _ int) ([]*models.ChatMessage, error) {
	return f.messages, nil
}
