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

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidTransaction  = errors.New("invalid transaction")
)

type TransactionRepo interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error)
	ListByDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*models.Transaction, error)
	SumExpensesByCategory(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (string, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type TransactionService struct {
	txRepo       TransactionRepo
	categoryRepo CategoryRepo
	loc          *time.Location
	logger       *zap.Logger
}

func NewTransactionService(txRepo TransactionRepo, categoryRepo CategoryRepo, loc *time.Location, logger *zap.Logger) *TransactionService {
	if loc == nil {
		loc = time.Local
	}
	return &TransactionService{
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
		loc:          loc,
		logger:       logger,
	}
}

// Create validates and stores a transaction. When no category is given
// the description is keyword-matched against the user's categories; a
// hit marks the transaction as auto-categorized.
func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount %q", ErrInvalidTransaction, req.Amount)
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidTransaction)
	}

	txType := models.TransactionType(req.Type)
	if txType != models.TransactionIncome && txType != models.TransactionExpense {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidTransaction, req.Type)
	}

	date := time.Now().In(s.loc)
	if req.Date != "" {
		date, err = time.ParseInLocation(time.RFC3339, req.Date, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q", ErrInvalidTransaction, req.Date)
		}
	}

	source := models.SourceManual
	if req.Source != "" {
		source = models.TransactionSource(req.Source)
	}

	var categoryID *uuid.UUID
	if req.CategoryID != nil && *req.CategoryID != "" {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: category id %q", ErrInvalidTransaction, *req.CategoryID)
		}
		categoryID = &id
	} else if req.Description != "" {
		categories, err := s.categoryRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if suggested := analytics.SuggestCategory(req.Description, categories); suggested != nil {
			categoryID = &suggested.ID
			source = models.SourceAI
			s.logger.Debug("Transaction auto-categorized",
				zap.String("category", suggested.Name),
			)
		}
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount.String(),
		Type:        txType,
		Description: sanitizeUTF8(req.Description),
		CategoryID:  categoryID,
		Date:        date,
		Source:      source,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error) {
	return s.txRepo.ListByUser(ctx, userID, limit)
}

func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.txRepo.Delete(ctx, userID, id)
}

// MonthlyStats aggregates one calendar month of the user's transactions.
func (s *TransactionService) MonthlyStats(ctx context.Context, userID uuid.UUID, year, month int) (analytics.MonthlyStats, error) {
	if month < 1 || month > 12 {
		return analytics.MonthlyStats{}, analytics.ErrInvalidMonth
	}

	start, end := analytics.MonthWindow(year, month, s.loc)
	txs, err := s.txRepo.ListByDateRange(ctx, userID, start, end)
	if err != nil {
		return analytics.MonthlyStats{}, err
	}

	return analytics.ComputeMonthlyStats(txs, year, month, s.loc)
}
