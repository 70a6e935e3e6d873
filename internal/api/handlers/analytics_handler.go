package handlers

import (
	"errors"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// HealthScore godoc
// @Summary Financial health score
// @Description Composite 0-100 score with labeled savings, budget, goals and discipline factors
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.HealthScoreResponse
// @Security BearerAuth
// @Router /api/analytics/health [get]
func (h *AnalyticsHandler) HealthScore(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	score, err := h.analyticsService.HealthScore(c.Context(), userID, time.Now())
	if err != nil {
		h.logger.Error("Health score failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not compute health score",
		})
	}

	return c.JSON(dto.HealthScoreResponse{
		Score: score.Score,
		Label: analytics.ScoreLabel(float64(score.Score)),
		Factors: dto.HealthFactorsResponse{
			Savings:    factorResponse(score.Savings),
			Budget:     factorResponse(score.Budget),
			Goals:      factorResponse(score.Goals),
			Discipline: factorResponse(score.Discipline),
		},
	})
}

// Trends godoc
// @Summary Income and expense trend
// @Description Monthly income/expense totals for the last six months, oldest first
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.TrendPointResponse
// @Security BearerAuth
// @Router /api/analytics/trends [get]
func (h *AnalyticsHandler) Trends(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	points, err := h.analyticsService.Trends(c.Context(), userID, time.Now())
	if err != nil {
		h.logger.Error("Trends failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not compute trends",
		})
	}

	out := make([]dto.TrendPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.TrendPointResponse{
			Year:     p.Year,
			Month:    p.Month,
			Label:    p.Label,
			Income:   p.Income.StringFixed(2),
			Expenses: p.Expenses.StringFixed(2),
		})
	}
	return c.JSON(out)
}

// Breakdown godoc
// @Summary Category spending breakdown
// @Description Per-category expense totals for one month, largest first
// @Tags analytics
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {array} dto.BreakdownSliceResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/analytics/breakdown [get]
func (h *AnalyticsHandler) Breakdown(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	slices, err := h.analyticsService.Breakdown(c.Context(), userID, year, month, now.Location())
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidMonth) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Month must be between 1 and 12",
			})
		}
		h.logger.Error("Breakdown failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not compute breakdown",
		})
	}

	out := make([]dto.BreakdownSliceResponse, 0, len(slices))
	for _, s := range slices {
		out = append(out, dto.BreakdownSliceResponse{
			Name:  s.Name,
			Color: s.Color,
			Total: s.Total.StringFixed(2),
		})
	}
	return c.JSON(out)
}

func factorResponse(f analytics.FactorScore) dto.FactorResponse {
	return dto.FactorResponse{Score: f.Score, Label: f.Label}
}
