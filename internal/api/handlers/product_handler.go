package handlers

import (
	"fmt"
	"strings"

	"hitech-quote/internal/dto"
	"hitech-quote/internal/models"
	"hitech-quote/internal/repository"
	"hitech-quote/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProductHandler struct {
	catalog    *repository.CatalogRepository
	recService *service.RecommendationService
	logger     *zap.Logger
}

func NewProductHandler(
	catalog *repository.CatalogRepository,
	recService *service.RecommendationService,
	logger *zap.Logger,
) *ProductHandler {
	return &ProductHandler{
		catalog:    catalog,
		recService: recService,
		logger:     logger,
	}
}

// ListProducts godoc
// @Summary List the product catalog
// @Description Get all catalog products with standards split into discrete codes
// @Tags products
// @Produce json
// @Success 200 {object} dto.ProductListResponse
// @Router /api/products [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	all := h.catalog.All()
	products := make([]dto.ProductDetail, 0, len(all))
	for _, p := range all {
		products = append(products, toProductDetail(p))
	}

	return c.JSON(dto.ProductListResponse{
		Success:  true,
		Products: products,
		Total:    len(products),
	})
}

// SearchProducts godoc
// @Summary Search products by free-text requirement
// @Description Rank catalog products against the query and return the top matches with an AI summary
// @Tags products
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search query"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/products/search [post]
func (h *ProductHandler) SearchProducts(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Query is required",
		})
	}

	results, summary := h.recService.Search(c.Context(), req.Query, req.Limit)

	recommendations := make([]dto.RecommendationResponse, 0, len(results))
	for _, r := range results {
		recommendations = append(recommendations, toRecommendation(r))
	}

	h.logger.Info("product search served",
		zap.String("query", req.Query),
		zap.Int("matches", len(recommendations)),
	)

	return c.JSON(dto.SearchResponse{
		Success:         true,
		Query:           req.Query,
		Recommendations: recommendations,
		AISummary:       summary,
		Total:           len(recommendations),
	})
}

func toProductDetail(p *models.Product) dto.ProductDetail {
	standards := p.Standards()
	if standards == nil {
		standards = []string{}
	}
	return dto.ProductDetail{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Subcategory: p.Subcategory,
		Description: p.Description,
		Capacity:    p.Capacity,
		Accuracy:    p.Accuracy,
		Standards:   standards,
		Power:       p.Power,
		Warranty:    p.Warranty,
		Display:     p.Display,
		Control:     p.Control,
		PriceHint:   p.PriceHint,
		Image:       p.Image,
	}
}

func toRecommendation(r *models.MatchResult) dto.RecommendationResponse {
	p := r.Product
	return dto.RecommendationResponse{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		Specs: []string{
			fmt.Sprintf("Capacity: %s", p.Capacity),
			fmt.Sprintf("Accuracy: %s", p.Accuracy),
			fmt.Sprintf("Standards: %s", strings.Join(p.Standards(), ", ")),
			fmt.Sprintf("Control: %s", p.Control),
			fmt.Sprintf("Display: %s", p.Display),
		},
		PriceHint:   p.PriceHint,
		MatchScore:  r.Score,
		Reasoning:   r.Reasoning,
		Accessories: r.Accessories,
		Image:       p.Image,
	}
}
