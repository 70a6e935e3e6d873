package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ChatRepo interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error)
}

// AssistantService answers account questions with rule-based replies
// built from the user's live numbers. There is no model behind it.
type AssistantService struct {
	chatRepo     ChatRepo
	txRepo       TransactionRepo
	budgetRepo   BudgetRepo
	categoryRepo CategoryRepo
	logger       *zap.Logger
}

func NewAssistantService(chatRepo ChatRepo, txRepo TransactionRepo, budgetRepo BudgetRepo, categoryRepo CategoryRepo, logger *zap.Logger) *AssistantService {
	return &AssistantService{
		chatRepo:     chatRepo,
		txRepo:       txRepo,
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Ask stores the question, composes a reply from current-month data and
// stores that too. Both rows are returned so the caller can render the
// exchange without a second read.
func (s *AssistantService) Ask(ctx context.Context, userID uuid.UUID, message string, now time.Time) (*models.ChatMessage, *models.ChatMessage, error) {
	question := &models.ChatMessage{
		ID:         uuid.New(),
		UserID:     userID,
		Message:    message,
		IsFromUser: true,
		CreatedAt:  now,
	}
	if err := s.chatRepo.Create(ctx, question); err != nil {
		return nil, nil, err
	}

	reply, err := s.compose(ctx, userID, message, now)
	if err != nil {
		return nil, nil, err
	}

	answer := &models.ChatMessage{
		ID:         uuid.New(),
		UserID:     userID,
		Message:    reply,
		IsFromUser: false,
		CreatedAt:  now,
	}
	if err := s.chatRepo.Create(ctx, answer); err != nil {
		return nil, nil, err
	}
	return question, answer, nil
}

func (s *AssistantService) History(ctx context.Context, userID uuid.UUID, limit int) ([]*models.ChatMessage, error) {
	return s.chatRepo.ListByUser(ctx, userID, limit)
}

func (s *AssistantService) compose(ctx context.Context, userID uuid.UUID, message string, now time.Time) (string, error) {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "harcama"):
		stats, err := s.monthStats(ctx, userID, now)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Bu ay toplam %s harcama yaptınız. Toplam geliriniz %s oldu.",
			analytics.FormatCurrency(stats.TotalExpenses),
			analytics.FormatCurrency(stats.TotalIncome)), nil

	case strings.Contains(lower, "tasarruf"):
		stats, err := s.monthStats(ctx, userID, now)
		if err != nil {
			return "", err
		}
		if stats.Balance.Sign() > 0 {
			return fmt.Sprintf("Bu ay %s biriktirdiniz, tasarruf oranınız %%%.0f. Bu tempoyu korumaya çalışın.",
				analytics.FormatCurrency(stats.Balance), stats.SavingsRate()), nil
		}
		return "Bu ay gelirinizden fazla harcadınız. Küçük bir aylık tasarruf hedefi belirleyerek başlayabilirsiniz.", nil

	case strings.Contains(lower, "bütçe"):
		return s.composeBudget(ctx, userID)

	case strings.Contains(lower, "kategori"):
		return s.composeTopCategory(ctx, userID, now)
	}

	return "Size harcamalarınız, tasarruflarınız, bütçeleriniz veya kategorileriniz hakkında yardımcı olabilirim. Ne öğrenmek istersiniz?", nil
}

func (s *AssistantService) composeBudget(ctx context.Context, userID uuid.UUID) (string, error) {
	budgets, err := s.budgetRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(budgets) == 0 {
		return "Henüz aktif bir bütçeniz yok. Kategori bazlı bir bütçe oluşturarak harcamalarınızı kontrol altına alabilirsiniz.", nil
	}

	exceeded := 0
	for _, b := range budgets {
		if b.CategoryID == nil {
			continue
		}
		amount, err := decimal.NewFromString(b.Amount)
		if err != nil {
			continue
		}
		total, err := s.txRepo.SumExpensesByCategory(ctx, userID, *b.CategoryID, b.StartDate, b.EndDate)
		if err != nil {
			return "", err
		}
		spent, err := decimal.NewFromString(total)
		if err != nil {
			continue
		}
		if spent.GreaterThan(amount) {
			exceeded++
		}
	}

	if exceeded > 0 {
		return fmt.Sprintf("%d aktif bütçeniz var ve %d tanesinde limiti aştınız. Harcamalarınızı gözden geçirmenizde fayda var.", len(budgets), exceeded), nil
	}
	return fmt.Sprintf("%d aktif bütçeniz var ve hepsinde limitin içindesiniz. Böyle devam edin!", len(budgets)), nil
}

func (s *AssistantService) composeTopCategory(ctx context.Context, userID uuid.UUID, now time.Time) (string, error) {
	start, end := analytics.MonthWindow(now.Year(), int(now.Month()), now.Location())
	txs, err := s.txRepo.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		return "", err
	}
	categories, err := s.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	slices, err := analytics.CategoryBreakdown(txs, categories)
	if err != nil {
		return "", err
	}
	if len(slices) == 0 {
		return "Bu ay henüz kategorize edilmiş bir harcamanız yok.", nil
	}
	top := slices[0]
	return fmt.Sprintf("Bu ay en çok %s kategorisinde harcama yaptınız: %s.",
		top.Name, analytics.FormatCurrency(top.Total)), nil
}

func (s *AssistantService) monthStats(ctx context.Context, userID uuid.UUID, now time.Time) (analytics.MonthlyStats, error) {
	start, end := analytics.MonthWindow(now.Year(), int(now.Month()), now.Location())
	txs, err := s.txRepo.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		return analytics.MonthlyStats{}, err
	}
	return analytics.ComputeMonthlyStats(txs, now.Year(), int(now.Month()), now.Location())
}
