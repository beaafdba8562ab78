package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type LineItemCategory string

const (
	LineItemEquipment   LineItemCategory = "Equipment"
	LineItemService     LineItemCategory = "Service"
	LineItemCalibration LineItemCategory = "Calibration"
	LineItemWarranty    LineItemCategory = "Warranty"
	LineItemTraining    LineItemCategory = "Training"
)

// LineItem is one priced row of a quote, either equipment or an accessory.
// Total is always Quantity × UnitPrice.
type LineItem struct {
	ProductID   string           `json:"product_id,omitempty"`
	Description string           `json:"description"`
	Quantity    int              `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	Total       decimal.Decimal  `json:"total"`
	Category    LineItemCategory `json:"category"`
	Notes       string           `json:"notes,omitempty"`
}

// AccessoryBundle groups the accessory line items attached to every quote.
// Mandatory items are always included; optional ones only on request.
type AccessoryBundle struct {
	Mandatory []LineItem `json:"mandatory"`
	Optional  []LineItem `json:"optional"`
}

type DeliveryTerms struct {
	LeadTime     string `json:"lead_time"`
	Shipping     string `json:"shipping"`
	Installation string `json:"installation"`
}

type QuoteTerms struct {
	Warranty    string `json:"warranty"`
	Calibration string `json:"calibration"`
	Payment     string `json:"payment"`
}

// QuoteTotals is the deterministic pricing roll-up. All amounts are exact
// decimals; rounding happens only at the presentation boundary.
type QuoteTotals struct {
	EquipmentSubtotal    decimal.Decimal `json:"equipment_subtotal"`
	MandatoryAccessories decimal.Decimal `json:"mandatory_accessories"`
	OptionalAccessories  decimal.Decimal `json:"optional_accessories"`
	Subtotal             decimal.Decimal `json:"subtotal"`
	TaxRate              decimal.Decimal `json:"tax_rate"`
	TaxAmount            decimal.Decimal `json:"tax_amount"`
	Total                decimal.Decimal `json:"total"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	City    string `json:"city"`
	Email   string `json:"email"`
}

type Requirements struct {
	Material string `json:"material"`
	TestType string `json:"test_type"`
	Capacity string `json:"capacity"`
	Standard string `json:"standard"`
	Extras   string `json:"extras"`
}

// Quote is created once per generation call and never mutated afterwards.
// Quotes are not stored anywhere; the caller owns the result.
type Quote struct {
	ID               string          `json:"id"`
	Customer         CustomerInfo    `json:"customer"`
	Requirements     Requirements    `json:"requirements"`
	SelectedProducts []string        `json:"selected_products"`
	LineItems        []LineItem      `json:"line_items"`
	Accessories      AccessoryBundle `json:"accessories"`
	Delivery         DeliveryTerms   `json:"delivery"`
	Terms            QuoteTerms      `json:"terms"`
	Totals           QuoteTotals     `json:"total"`
	ValidUntil       string          `json:"valid_until"`
	Narrative        string          `json:"ai_generated_content"`
	CreatedAt        time.Time       `json:"created_at"`
}
