package routes

import (
	"time"

	"github.com/gitmindapp/gitmind-backend/internal/config"
	"github.com/gitmindapp/gitmind-backend/internal/handlers"
	"github.com/gitmindapp/gitmind-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	projectHandler *handlers.ProjectHandler,
	questionHandler *handlers.QuestionHandler,
	webhookHandler *handlers.WebhookHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Identity webhook — svix-signature auth, no session token
	api.Post("/webhooks/identity", webhookHandler.HandleIdentity)

	// Everything else requires a verified Clerk session
	protected := api.Group("", middleware.ClerkProtected(cfg))
	protected.Get("/me", userHandler.Me)
	protected.Post("/projects", projectHandler.Create)
	protected.Get("/projects", projectHandler.List)
	protected.Post("/projects/:projectId/questions", questionHandler.Ask)
	protected.Get("/projects/:projectId/questions", questionHandler.History)
}
