package api

import (
	"time"

	"hitech-quote/docs"
	"hitech-quote/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// Per-route request budgets, matching how abusive the endpoint is to serve
// (the search and quote routes fan out to the LLM collaborator).
const (
	searchRequestsPerMinute = 10
	quoteRequestsPerMinute  = 5
	sendRequestsPerMinute   = 3
)

func SetupRouter(
	healthHandler *handlers.HealthHandler,
	productHandler *handlers.ProductHandler,
	quoteHandler *handlers.QuoteHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Importing docs registers the swagger spec through its init().
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Health)
	api.Get("/products", productHandler.ListProducts)
	api.Post("/products/search", perMinuteLimiter(searchRequestsPerMinute), productHandler.SearchProducts)

	quote := api.Group("/quote")
	quote.Post("/generate", perMinuteLimiter(quoteRequestsPerMinute), quoteHandler.GenerateQuote)
	quote.Post("/send", perMinuteLimiter(sendRequestsPerMinute), quoteHandler.SendQuote)

	return app
}

func perMinuteLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Rate limit exceeded",
			})
		},
	})
}
