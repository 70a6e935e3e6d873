package handlers

import (
	"errors"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	budgetService *service.BudgetService
	logger        *zap.Logger
}

func NewBudgetHandler(budgetService *service.BudgetService, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
	}
}

// Create godoc
// @Summary Create a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param request body dto.CreateBudgetRequest true "Budget"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/budgets [post]
func (h *BudgetHandler) Create(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	budget, err := h.budgetService.Create(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBudget) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Budget create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create budget",
		})
	}

	var categoryID *string
	if budget.CategoryID != nil {
		s := budget.CategoryID.String()
		categoryID = &s
	}
	return c.Status(fiber.StatusCreated).JSON(dto.BudgetResponse{
		ID:         budget.ID.String(),
		CategoryID: categoryID,
		Amount:     budget.Amount,
		Spent:      "0.00",
		Remaining:  budget.Amount,
		Status:     "safe",
		Period:     string(budget.Period),
		StartDate:  budget.StartDate.Format(time.RFC3339),
		EndDate:    budget.EndDate.Format(time.RFC3339),
	})
}

// List godoc
// @Summary List budgets with progress
// @Description List the user's active budgets, each with derived spending and status
// @Tags budgets
// @Produce json
// @Success 200 {array} dto.BudgetResponse
// @Security BearerAuth
// @Router /api/budgets [get]
func (h *BudgetHandler) List(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	budgets, err := h.budgetService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Budget list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not list budgets",
		})
	}

	out := make([]dto.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		var categoryID *string
		var categoryName string
		if b.Budget.CategoryID != nil {
			s := b.Budget.CategoryID.String()
			categoryID = &s
		}
		if b.Category != nil {
			categoryName = b.Category.Name
		}
		out = append(out, dto.BudgetResponse{
			ID:           b.Budget.ID.String(),
			CategoryID:   categoryID,
			CategoryName: categoryName,
			Amount:       b.Budget.Amount,
			Spent:        b.Spent.StringFixed(2),
			Remaining:    b.Progress.Remaining.StringFixed(2),
			Percentage:   b.Progress.Percentage,
			Status:       string(b.Progress.Status),
			Period:       string(b.Budget.Period),
			StartDate:    b.Budget.StartDate.Format(time.RFC3339),
			EndDate:      b.Budget.EndDate.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary Delete a budget
// @Tags budgets
// @Param id path string true "Budget ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/budgets/{id} [delete]
func (h *BudgetHandler) Delete(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid budget id",
		})
	}

	if err := h.budgetService.Delete(c.Context(), userID, id); err != nil {
		h.logger.Error("Budget delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete budget",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
