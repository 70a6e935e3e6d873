package api

import (
	"fintrack/docs"
	"fintrack/internal/api/handlers"
	"fintrack/pkg/auth"
	"fintrack/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Category    *handlers.CategoryHandler
	Transaction *handlers.TransactionHandler
	Budget      *handlers.BudgetHandler
	Goal        *handlers.GoalHandler
	Analytics   *handlers.AnalyticsHandler
	Insight     *handlers.InsightHandler
	Chat        *handlers.ChatHandler
	Capture     *handlers.CaptureHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // importing docs registers the spec via init()
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Protected routes
	protected := app.Group("/api", middleware.AuthMiddleware(jwtManager, appLogger))

	categories := protected.Group("/categories")
	categories.Get("", h.Category.List)
	categories.Post("", h.Category.Create)
	categories.Post("/defaults", h.Category.InitDefaults)

	transactions := protected.Group("/transactions")
	transactions.Get("", h.Transaction.List)
	transactions.Post("", h.Transaction.Create)
	transactions.Get("/stats", h.Transaction.Stats)
	transactions.Delete("/:id", h.Transaction.Delete)

	budgets := protected.Group("/budgets")
	budgets.Get("", h.Budget.List)
	budgets.Post("", h.Budget.Create)
	budgets.Delete("/:id", h.Budget.Delete)

	goals := protected.Group("/goals")
	goals.Get("", h.Goal.List)
	goals.Post("", h.Goal.Create)
	goals.Post("/:id/contribute", h.Goal.Contribute)
	goals.Delete("/:id", h.Goal.Delete)

	analytics := protected.Group("/analytics")
	analytics.Get("/health", h.Analytics.HealthScore)
	analytics.Get("/trends", h.Analytics.Trends)
	analytics.Get("/breakdown", h.Analytics.Breakdown)

	insights := protected.Group("/insights")
	insights.Get("", h.Insight.List)
	insights.Post("/refresh", h.Insight.Refresh)
	insights.Post("/:id/read", h.Insight.MarkRead)

	chat := protected.Group("/chat")
	chat.Get("", h.Chat.History)
	chat.Post("", h.Chat.Ask)

	capture := protected.Group("/capture")
	capture.Post("/receipt", h.Capture.ScanReceipt)
	capture.Post("/receipt/commit", h.Capture.CommitReceipt)
	capture.Post("/voice", h.Capture.ParseVoice)

	return app
}
