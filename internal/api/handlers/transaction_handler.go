package handlers

import (
	"errors"
	"strconv"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// Create godoc
// @Summary Create a transaction
// @Description Create an income or expense transaction; uncategorized expenses are keyword-matched against the user's categories
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tx, err := h.txService.Create(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransaction) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Transaction create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(transactionResponse(tx))
}

// List godoc
// @Summary List transactions
// @Description List the user's transactions, newest first
// @Tags transactions
// @Produce json
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 50)
	txs, err := h.txService.List(c.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Transaction list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not list transactions",
		})
	}

	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, transactionResponse(tx))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid transaction id",
		})
	}

	if err := h.txService.Delete(c.Context(), userID, id); err != nil {
		h.logger.Error("Transaction delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete transaction",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats godoc
// @Summary Monthly statistics
// @Description Income, expense and balance totals for one calendar month
// @Tags transactions
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} dto.MonthlyStatsResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/transactions/stats [get]
func (h *TransactionHandler) Stats(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	stats, err := h.txService.MonthlyStats(c.Context(), userID, year, month)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidMonth) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Month must be between 1 and 12, got " + strconv.Itoa(month),
			})
		}
		h.logger.Error("Monthly stats failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not compute statistics",
		})
	}

	return c.JSON(dto.MonthlyStatsResponse{
		Year:          year,
		Month:         month,
		TotalIncome:   stats.TotalIncome.StringFixed(2),
		TotalExpenses: stats.TotalExpenses.StringFixed(2),
		Balance:       stats.Balance.StringFixed(2),
		SavingsRate:   stats.SavingsRate(),
	})
}

func transactionResponse(tx *models.Transaction) dto.TransactionResponse {
	var categoryID *string
	if tx.CategoryID != nil {
		s := tx.CategoryID.String()
		categoryID = &s
	}
	return dto.TransactionResponse{
		ID:          tx.ID.String(),
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Description: tx.Description,
		CategoryID:  categoryID,
		Date:        tx.Date.Format(time.RFC3339),
		Source:      string(tx.Source),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
