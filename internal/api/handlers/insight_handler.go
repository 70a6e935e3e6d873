package handlers

import (
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InsightHandler struct {
	insightService *service.InsightService
	logger         *zap.Logger
}

func NewInsightHandler(insightService *service.InsightService, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
		logger:         logger,
	}
}

// Refresh godoc
// @Summary Regenerate insights
// @Description Rebuild the user's insights from current data, replacing the stored set
// @Tags insights
// @Produce json
// @Success 200 {array} dto.InsightResponse
// @Security BearerAuth
// @Router /api/insights/refresh [post]
func (h *InsightHandler) Refresh(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	rows, err := h.insightService.Refresh(c.Context(), userID, time.Now())
	if err != nil {
		h.logger.Error("Insight refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not refresh insights",
		})
	}
	return c.JSON(insightResponses(rows))
}

// List godoc
// @Summary List insights
// @Description List stored insights, most urgent first
// @Tags insights
// @Produce json
// @Param limit query int false "Maximum rows" default(20)
// @Success 200 {array} dto.InsightResponse
// @Security BearerAuth
// @Router /api/insights [get]
func (h *InsightHandler) List(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 20)
	rows, err := h.insightService.List(c.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Insight list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not list insights",
		})
	}
	return c.JSON(insightResponses(rows))
}

// MarkRead godoc
// @Summary Mark an insight read
// @Tags insights
// @Param id path string true "Insight ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/insights/{id}/read [post]
func (h *InsightHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid insight id",
		})
	}

	if err := h.insightService.MarkRead(c.Context(), userID, id); err != nil {
		h.logger.Error("Insight mark read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update insight",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func insightResponses(rows []*models.AiInsight) []dto.InsightResponse {
	out := make([]dto.InsightResponse, 0, len(rows))
	for _, row := range rows {
		meta := analytics.MetaFor(analytics.InsightKind(row.Type))
		out = append(out, dto.InsightResponse{
			ID:        row.ID.String(),
			Type:      row.Type,
			Title:     row.Title,
			Content:   row.Content,
			Priority:  row.Priority,
			IsRead:    row.IsRead,
			Icon:      meta.Icon,
			Color:     meta.Color,
			CreatedAt: row.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
