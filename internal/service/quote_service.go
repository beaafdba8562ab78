package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hitech-quote/internal/models"
	"hitech-quote/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FlatEquipmentPrice is the placeholder per-product rate used until a real
// pricing backend is plugged in behind PriceLookup.
var FlatEquipmentPrice = decimal.NewFromInt(15000)

var (
	priceInstallation     = decimal.NewFromInt(2500)
	priceCalibrationCert  = decimal.NewFromInt(500)
	priceAnnualService    = decimal.NewFromInt(1800)
	priceExtendedWarranty = decimal.NewFromInt(1200)
	priceExtraTraining    = decimal.NewFromInt(800)
)

// QuoteService assembles quotes from a catalog selection: line items,
// accessory bundles, fixed commercial terms, totals, and an AI narrative.
type QuoteService struct {
	catalog          *repository.CatalogRepository
	pricing          PriceLookup
	narrator         NarrativeGenerator
	narrativeTimeout time.Duration
	logger           *zap.Logger
}

func NewQuoteService(
	catalog *repository.CatalogRepository,
	pricing PriceLookup,
	narrator NarrativeGenerator,
	narrativeTimeout time.Duration,
	logger *zap.Logger,
) *QuoteService {
	return &QuoteService{
		catalog:          catalog,
		pricing:          pricing,
		narrator:         narrator,
		narrativeTimeout: narrativeTimeout,
		logger:           logger,
	}
}

// GenerateQuote builds a complete quote for the selected product IDs.
// Unknown IDs are silently skipped, so the quote may carry fewer line items
// than the selection. Narrative failures degrade to a placeholder string.
func (s *QuoteService) GenerateQuote(
	ctx context.Context,
	customer models.CustomerInfo,
	requirements models.Requirements,
	selectedProducts []string,
	includeOptional bool,
) *models.Quote {
	now := time.Now()

	lineItems := s.buildLineItems(selectedProducts)
	accessories := buildAccessoryBundle()
	totals := CalculateTotals(lineItems, accessories, includeOptional)

	narrativeCtx, cancel := context.WithTimeout(ctx, s.narrativeTimeout)
	defer cancel()

	narrative, err := s.narrator.QuoteNarrative(narrativeCtx, customer, requirements, selectedProducts)
	if err != nil {
		s.logger.Warn("quote narrative unavailable", zap.Error(err))
		narrative = narrativeFallback
	}

	quote := &models.Quote{
		ID:               newQuoteID(now),
		Customer:         customer,
		Requirements:     requirements,
		SelectedProducts: selectedProducts,
		LineItems:        lineItems,
		Accessories:      accessories,
		Delivery: models.DeliveryTerms{
			LeadTime:     "4-6 weeks",
			Shipping:     "FOB Destination",
			Installation: "Included with training",
		},
		Terms: models.QuoteTerms{
			Warranty:    "2 years parts and labor",
			Calibration: "NIST-traceable certificate included",
			Payment:     "Net 30 terms available on credit approval",
		},
		Totals:     totals,
		ValidUntil: now.AddDate(0, 0, 30).Format("2006-01-02"),
		Narrative:  narrative,
		CreatedAt:  now,
	}

	s.logger.Info("quote generated",
		zap.String("quote_id", quote.ID),
		zap.Int("requested_products", len(selectedProducts)),
		zap.Int("line_items", len(lineItems)),
	)

	return quote
}

// newQuoteID builds identifiers like QUO-20260831-4F9A1C2B. The 8-character
// random suffix makes same-day collisions negligible.
func newQuoteID(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("QUO-%s-%s", now.Format("20060102"), suffix)
}

func (s *QuoteService) buildLineItems(selectedProducts []string) []models.LineItem {
	lineItems := make([]models.LineItem, 0, len(selectedProducts))
	for _, id := range selectedProducts {
		product, ok := s.catalog.FindByID(id)
		if !ok {
			// Lenient by contract: unknown IDs are dropped, not errors.
			s.logger.Warn("selected product not in catalog, skipping", zap.String("product_id", id))
			continue
		}
		unit := s.pricing.PriceOf(id)
		lineItems = append(lineItems, models.LineItem{
			ProductID:   id,
			Description: product.Title,
			Quantity:    1,
			UnitPrice:   unit,
			Total:       unit,
			Category:    models.LineItemEquipment,
		})
	}
	return lineItems
}

func buildAccessoryBundle() models.AccessoryBundle {
	return models.AccessoryBundle{
		Mandatory: []models.LineItem{
			{
				Description: "Installation & Operator Training",
				Quantity:    1,
				UnitPrice:   priceInstallation,
				Total:       priceInstallation,
				Category:    models.LineItemService,
				Notes:       "On-site installation and comprehensive operator training included",
			},
			{
				Description: "NIST-Traceable Calibration Certificate",
				Quantity:    1,
				UnitPrice:   priceCalibrationCert,
				Total:       priceCalibrationCert,
				Category:    models.LineItemCalibration,
				Notes:       "Annual calibration certificate with NIST traceability",
			},
		},
		Optional: []models.LineItem{
			{
				Description: "Annual Service Plan (Year 1)",
				Quantity:    1,
				UnitPrice:   priceAnnualService,
				Total:       priceAnnualService,
				Category:    models.LineItemService,
				Notes:       "Includes preventive maintenance, calibration, and priority support",
			},
			{
				Description: "Extended Warranty (3 years)",
				Quantity:    1,
				UnitPrice:   priceExtendedWarranty,
				Total:       priceExtendedWarranty,
				Category:    models.LineItemWarranty,
				Notes:       "Extended warranty coverage for 3 years total",
			},
			{
				Description: "Additional Operator Training (2 people)",
				Quantity:    1,
				UnitPrice:   priceExtraTraining,
				Total:       priceExtraTraining,
				Category:    models.LineItemTraining,
				Notes:       "Additional training for 2 additional operators",
			},
		},
	}
}
