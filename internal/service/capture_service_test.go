package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestScanReceiptExtractsFields(t *testing.T) {
	svc := NewCaptureService(&fakeTransactionRepo{}, &fakeCategoryRepo{}, zap.NewNop())
	now := time.Now()

	scan, err := svc.ScanReceipt(context.Background(), uuid.New(), []byte{0xFF, 0xD8}, now)
	if err != nil {
		t.Fatalf("ScanReceipt: %v", err)
	}
	if scan.Amount != "245.80" || scan.Merchant != "ABC Market" {
		t.Errorf("scan = %+v", scan)
	}
	if scan.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", scan.Confidence)
	}

	if _, err := svc.ScanReceipt(context.Background(), uuid.New(), nil, now); !errors.Is(err, ErrEmptyCapture) {
		t.Errorf("empty image err = %v, want ErrEmptyCapture", err)
	}
}

func TestCommitReceiptResolvesCategory(t *testing.T) {
	food := &models.Category{ID: uuid.New(), Name: "Gıda & İçecek"}
	txRepo := &fakeTransactionRepo{}
	svc := NewCaptureService(txRepo, &fakeCategoryRepo{categories: []*models.Category{food}}, zap.NewNop())
	userID := uuid.New()

	tx, err := svc.CommitReceipt(context.Background(), userID, &ReceiptScan{
		Amount:       "245.80",
		Description:  "Market Alışverişi",
		CategoryName: "Gıda & İçecek",
		Date:         time.Now(),
	})
	if err != nil {
		t.Fatalf("CommitReceipt: %v", err)
	}

	if tx.Source != models.SourceOCR {
		t.Errorf("source = %q, want ocr", tx.Source)
	}
	if tx.CategoryID == nil || *tx.CategoryID != food.ID {
		t.Errorf("category = %v, want %s", tx.CategoryID, food.ID)
	}
	if len(txRepo.created) != 1 {
		t.Fatalf("persisted %d transactions, want 1", len(txRepo.created))
	}
}

func TestParseVoiceReturnsIntent(t *testing.T) {
	svc := NewCaptureService(&fakeTransactionRepo{}, &fakeCategoryRepo{}, zap.NewNop())

	parsed, err := svc.ParseVoice(context.Background(), uuid.New(), []byte{0x01})
	if err != nil {
		t.Fatalf("ParseVoice: %v", err)
	}
	if parsed.Type != models.TransactionExpense {
		t.Errorf("type = %q, want expense", parsed.Type)
	}
	if parsed.Amount != "245.00" {
		t.Errorf("amount = %q, want 245.00", parsed.Amount)
	}
}
