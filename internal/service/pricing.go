package service

import (
	"hitech-quote/internal/models"

	"github.com/shopspring/decimal"
)

// TaxRate is the fixed 8% rate applied to every quote subtotal.
var TaxRate = decimal.RequireFromString("0.08")

// PriceLookup resolves the unit price for a catalog product. The default is
// a flat placeholder; a real pricing backend can be swapped in without
// touching quote assembly.
type PriceLookup interface {
	PriceOf(productID string) decimal.Decimal
}

// FlatRatePricing prices every product at the same placeholder rate.
type FlatRatePricing struct {
	rate decimal.Decimal
}

func NewFlatRatePricing(rate decimal.Decimal) *FlatRatePricing {
	return &FlatRatePricing{rate: rate}
}

func (f *FlatRatePricing) PriceOf(_ string) decimal.Decimal {
	return f.rate
}

// CalculateTotals rolls equipment line items and the accessory bundle up into
// the quote totals. Sums stay exact decimals; two-decimal rounding belongs to
// the presentation boundary only.
func CalculateTotals(lineItems []models.LineItem, accessories models.AccessoryBundle, includeOptional bool) models.QuoteTotals {
	equipment := sumLineItems(lineItems)
	mandatory := sumLineItems(accessories.Mandatory)

	optional := decimal.Zero
	if includeOptional {
		optional = sumLineItems(accessories.Optional)
	}

	subtotal := equipment.Add(mandatory).Add(optional)
	tax := subtotal.Mul(TaxRate)

	return models.QuoteTotals{
		EquipmentSubtotal:    equipment,
		MandatoryAccessories: mandatory,
		OptionalAccessories:  optional,
		Subtotal:             subtotal,
		TaxRate:              TaxRate,
		TaxAmount:            tax,
		Total:                subtotal.Add(tax),
	}
}

func sumLineItems(items []models.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total)
	}
	return sum
}
