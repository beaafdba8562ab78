package handlers

import (
	"strings"
	"time"

	"hitech-quote/internal/dto"
	"hitech-quote/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type QuoteHandler struct {
	quoteService *service.QuoteService
	logger       *zap.Logger
}

func NewQuoteHandler(quoteService *service.QuoteService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		logger:       logger,
	}
}

// GenerateQuote godoc
// @Summary Generate an equipment quote
// @Description Build a structured quote with line items, accessory bundles, terms, totals, and an AI narrative
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Customer, requirements, and selected product IDs"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/quote/generate [post]
func (h *QuoteHandler) GenerateQuote(c *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	// The required sections must be present; their fields are free text.
	if missing := missingQuoteField(&req); missing != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing required field: " + missing,
		})
	}

	quote := h.quoteService.GenerateQuote(
		c.Context(),
		*req.Customer,
		*req.Requirements,
		req.SelectedProducts,
		req.IncludeOptional,
	)

	return c.JSON(dto.QuoteResponse{
		Success: true,
		Quote:   quote,
	})
}

// SendQuote godoc
// @Summary Dispatch a generated quote
// @Description Send the quote to the customer (email/CRM dispatch is stubbed pending integration)
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body dto.SendQuoteRequest true "Quote ID"
// @Success 200 {object} dto.SendQuoteResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/quote/send [post]
func (h *QuoteHandler) SendQuote(c *fiber.Ctx) error {
	var req dto.SendQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if strings.TrimSpace(req.QuoteID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Quote ID is required",
		})
	}

	// TODO: wire PDF rendering and the Resend/HubSpot dispatch once those
	// accounts are provisioned; until then report the stubbed result.
	h.logger.Info("quote dispatch requested", zap.String("quote_id", req.QuoteID))

	return c.JSON(dto.SendQuoteResponse{
		Success: true,
		Result: dto.SendQuoteResult{
			QuoteID:        req.QuoteID,
			EmailSent:      true,
			CRMLeadCreated: true,
			SMSSent:        false,
			Timestamp:      time.Now().Format(time.RFC3339),
		},
	})
}

func missingQuoteField(req *dto.QuoteRequest) string {
	switch {
	case req.Customer == nil:
		return "customer"
	case req.Requirements == nil:
		return "requirements"
	case req.SelectedProducts == nil:
		return "selectedProducts"
	}
	return ""
}
