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

type GoalHandler struct {
	goalService *service.GoalService
	logger      *zap.Logger
}

func NewGoalHandler(goalService *service.GoalService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// Create godoc
// @Summary Create a financial goal
// @Tags goals
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/goals [post]
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.Create(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidGoal) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Goal create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create goal",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.GoalResponse{
		ID:            goal.ID.String(),
		Title:         goal.Title,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate.Format(time.RFC3339),
		IsCompleted:   goal.IsCompleted,
	})
}

// List godoc
// @Summary List goals with progress
// @Description List the user's goals, each with completion percentage and time remaining
// @Tags goals
// @Produce json
// @Success 200 {array} dto.GoalResponse
// @Security BearerAuth
// @Router /api/goals [get]
func (h *GoalHandler) List(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	goals, err := h.goalService.List(c.Context(), userID, time.Now())
	if err != nil {
		h.logger.Error("Goal list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not list goals",
		})
	}

	out := make([]dto.GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, goalResponse(g))
	}
	return c.JSON(out)
}

// Contribute godoc
// @Summary Add money to a goal
// @Description Add an amount to the goal's saved total; the goal completes when the target is reached
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.ContributeGoalRequest true "Contribution"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/goals/{id}/contribute [post]
func (h *GoalHandler) Contribute(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal id",
		})
	}

	var req dto.ContributeGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.Contribute(c.Context(), userID, id, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGoalNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Goal not found",
			})
		case errors.Is(err, service.ErrInvalidGoal):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Goal contribution failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update goal",
		})
	}

	return c.JSON(goalResponse(goal))
}

// Delete godoc
// @Summary Delete a goal
// @Tags goals
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/goals/{id} [delete]
func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal id",
		})
	}

	if err := h.goalService.Delete(c.Context(), userID, id); err != nil {
		h.logger.Error("Goal delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete goal",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func goalResponse(g *service.GoalWithProgress) dto.GoalResponse {
	return dto.GoalResponse{
		ID:            g.Goal.ID.String(),
		Title:         g.Goal.Title,
		TargetAmount:  g.Goal.TargetAmount,
		CurrentAmount: g.Goal.CurrentAmount,
		TargetDate:    g.Goal.TargetDate.Format(time.RFC3339),
		IsCompleted:   g.Goal.IsCompleted,
		ProgressPct:   g.Progress.ProgressPct,
		DaysRemaining: g.Progress.DaysRemaining,
		TimeRemaining: g.Progress.TimeRemaining,
		IsOverdue:     g.Progress.IsOverdue,
	}
}
