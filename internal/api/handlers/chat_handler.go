package handlers

import (
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	assistantService *service.AssistantService
	logger           *zap.Logger
}

func NewChatHandler(assistantService *service.AssistantService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		assistantService: assistantService,
		logger:           logger,
	}
}

// Ask godoc
// @Summary Ask the assistant
// @Description Send a question about spending, savings, budgets or categories and get a reply built from the user's data
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Question"
// @Success 200 {object} dto.ChatExchangeResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/chat [post]
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	question, answer, err := h.assistantService.Ask(c.Context(), userID, req.Message, time.Now())
	if err != nil {
		h.logger.Error("Chat failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not process message",
		})
	}

	return c.JSON(dto.ChatExchangeResponse{
		Question: chatMessageResponse(question),
		Answer:   chatMessageResponse(answer),
	})
}

// History godoc
// @Summary Chat history
// @Tags chat
// @Produce json
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {array} dto.ChatMessageResponse
// @Security BearerAuth
// @Router /api/chat [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 50)
	messages, err := h.assistantService.History(c.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Chat history failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not load history",
		})
	}

	out := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, chatMessageResponse(m))
	}
	return c.JSON(out)
}

func chatMessageResponse(m *models.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		ID:         m.ID.String(),
		Message:    m.Message,
		IsFromUser: m.IsFromUser,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}
