package handlers

import (
	"time"

	"hitech-quote/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	catalog *repository.CatalogRepository
}

func NewHealthHandler(catalog *repository.CatalogRepository) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":          "healthy",
		"timestamp":       time.Now().Format(time.RFC3339),
		"products_loaded": h.catalog.Count(),
	})
}
