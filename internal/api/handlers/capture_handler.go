package handlers

import (
	"errors"
	"io"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CaptureHandler struct {
	captureService *service.CaptureService
	logger         *zap.Logger
}

func NewCaptureHandler(captureService *service.CaptureService, logger *zap.Logger) *CaptureHandler {
	return &CaptureHandler{
		captureService: captureService,
		logger:         logger,
	}
}

// ScanReceipt godoc
// @Summary Scan a receipt image
// @Description Extract amount, merchant and category from an uploaded receipt photo
// @Tags capture
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Receipt image"
// @Success 200 {object} dto.ReceiptScanResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/capture/receipt [post]
func (h *CaptureHandler) ScanReceipt(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	image, err := readFormFile(c, "image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image file is required",
		})
	}

	scan, err := h.captureService.ScanReceipt(c.Context(), userID, image, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCapture) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Image file is empty",
			})
		}
		h.logger.Error("Receipt scan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not scan receipt",
		})
	}

	return c.JSON(dto.ReceiptScanResponse{
		Amount:       scan.Amount,
		Description:  scan.Description,
		Merchant:     scan.Merchant,
		CategoryName: scan.CategoryName,
		Date:         scan.Date.Format(time.RFC3339),
		Confidence:   scan.Confidence,
	})
}

// CommitReceipt godoc
// @Summary Save a scanned receipt
// @Description Store the confirmed scan result as an expense transaction
// @Tags capture
// @Accept json
// @Produce json
// @Param request body dto.CommitReceiptRequest true "Confirmed scan"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/capture/receipt/commit [post]
func (h *CaptureHandler) CommitReceipt(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CommitReceiptRequest
	if err := c.BodyParser(&req); err != nil || req.Amount == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	date := time.Now()
	if req.Date != "" {
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date",
			})
		}
	}

	tx, err := h.captureService.CommitReceipt(c.Context(), userID, &service.ReceiptScan{
		Amount:       req.Amount,
		Description:  req.Description,
		CategoryName: req.CategoryName,
		Date:         date,
	})
	if err != nil {
		h.logger.Error("Receipt commit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save receipt",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(transactionResponse(tx))
}

// ParseVoice godoc
// @Summary Parse a voice note
// @Description Recognize a spoken transaction from an uploaded audio clip
// @Tags capture
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio clip"
// @Success 200 {object} dto.VoiceParseResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/capture/voice [post]
func (h *CaptureHandler) ParseVoice(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	audio, err := readFormFile(c, "audio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Audio file is required",
		})
	}

	parsed, err := h.captureService.ParseVoice(c.Context(), userID, audio)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCapture) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Audio file is empty",
			})
		}
		h.logger.Error("Voice parse failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not parse voice note",
		})
	}

	return c.JSON(dto.VoiceParseResponse{
		Transcript:  parsed.Transcript,
		Amount:      parsed.Amount,
		Type:        string(parsed.Type),
		Description: parsed.Description,
		Confidence:  parsed.Confidence,
	})
}

func readFormFile(c *fiber.Ctx, field string) ([]byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
