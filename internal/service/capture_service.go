package service

import (
	"context"
	"errors"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyCapture = errors.New("empty capture payload")

// ReceiptScan is the extraction result for an uploaded receipt image.
type ReceiptScan struct {
	Amount       string
	Description  string
	Merchant     string
	CategoryName string
	Date         time.Time
	Confidence   float64
}

// VoiceParse is the extraction result for a recorded voice note.
type VoiceParse struct {
	Transcript  string
	Amount      string
	Type        models.TransactionType
	Description string
	Confidence  float64
}

// CaptureService fronts the receipt and voice intake endpoints. The
// extraction itself is stubbed with fixed results; the persistence path
// is the real one, so swapping in a provider later only changes the
// scan methods.
type CaptureService struct {
	txRepo       TransactionRepo
	categoryRepo CategoryRepo
	logger       *zap.Logger
}

func NewCaptureService(txRepo TransactionRepo, categoryRepo CategoryRepo, logger *zap.Logger) *CaptureService {
	return &CaptureService{txRepo: txRepo, categoryRepo: categoryRepo, logger: logger}
}

// ScanReceipt accepts raw image bytes and returns the extracted fields.
func (s *CaptureService) ScanReceipt(ctx context.Context, userID uuid.UUID, image []byte, now time.Time) (*ReceiptScan, error) {
	if len(image) == 0 {
		return nil, ErrEmptyCapture
	}

	s.logger.Info("receipt scanned",
		zap.String("user_id", userID.String()),
		zap.Int("bytes", len(image)),
	)
	return &ReceiptScan{
		Amount:       "245.80",
		Description:  "Market Alışverişi",
		Merchant:     "ABC Market",
		CategoryName: "Gıda & İçecek",
		Date:         now,
		Confidence:   0.95,
	}, nil
}

// ParseVoice accepts raw audio bytes and returns the recognized intent.
func (s *CaptureService) ParseVoice(ctx context.Context, userID uuid.UUID, audio []byte) (*VoiceParse, error) {
	if len(audio) == 0 {
		return nil, ErrEmptyCapture
	}

	s.logger.Info("voice note parsed",
		zap.String("user_id", userID.String()),
		zap.Int("bytes", len(audio)),
	)
	return &VoiceParse{
		Transcript:  "Market alışverişi için iki yüz kırk beş lira ödedim",
		Amount:      "245.00",
		Type:        models.TransactionExpense,
		Description: "Market alışverişi",
		Confidence:  0.88,
	}, nil
}

// CommitReceipt stores the scanned receipt as an expense transaction,
// resolving the extracted category name against the user's categories.
func (s *CaptureService) CommitReceipt(ctx context.Context, userID uuid.UUID, scan *ReceiptScan) (*models.Transaction, error) {
	if scan == nil {
		return nil, ErrEmptyCapture
	}

	var categoryID *uuid.UUID
	categories, err := s.categoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c.Name == scan.CategoryName {
			id := c.ID
			categoryID = &id
			break
		}
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      scan.Amount,
		Type:        models.TransactionExpense,
		Description: scan.Description,
		CategoryID:  categoryID,
		Date:        scan.Date,
		Source:      models.SourceOCR,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}
