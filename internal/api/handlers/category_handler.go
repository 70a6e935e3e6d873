package handlers

import (
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// List godoc
// @Summary List categories
// @Description List the user's categories including system defaults
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	categories, err := h.categoryService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Category list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not list categories",
		})
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryResponse(cat))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category name is required",
		})
	}

	category, err := h.categoryService.Create(c.Context(), userID, req.Name, req.Icon, req.Color)
	if err != nil {
		h.logger.Error("Category create failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create category",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(categoryResponse(category))
}

// InitDefaults godoc
// @Summary Initialize default categories
// @Description Create the starter category set for the user, skipping names already taken
// @Tags categories
// @Produce json
// @Success 201 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /api/categories/defaults [post]
func (h *CategoryHandler) InitDefaults(c *fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	created, err := h.categoryService.InitDefaults(c.Context(), userID)
	if err != nil {
		h.logger.Error("Default categories init failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not initialize categories",
		})
	}

	out := make([]dto.CategoryResponse, 0, len(created))
	for _, cat := range created {
		out = append(out, categoryResponse(cat))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func categoryResponse(cat *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		Icon:      cat.Icon,
		Color:     cat.Color,
		Role:      string(cat.Role),
		IsDefault: cat.IsDefault,
	}
}
