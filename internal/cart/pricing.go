package cart

import (
	"fmt"

	"github.com/fjod/foodbay/internal/domain"
	"github.com/shopspring/decimal"
)

// Pricing holds the delivery and tax constants used to derive cart totals.
type Pricing struct {
	// FreeDeliveryThreshold is the subtotal at and above which delivery is free.
	FreeDeliveryThreshold decimal.Decimal
	DeliveryFee           decimal.Decimal
	TaxRate               decimal.Decimal
}

func DefaultPricing() Pricing {
	return Pricing{
		FreeDeliveryThreshold: decimal.RequireFromString("25.00"),
		DeliveryFee:           decimal.RequireFromString("4.99"),
		TaxRate:               decimal.RequireFromString("0.08"),
	}
}

func (p Pricing) Validate() error {
	if p.FreeDeliveryThreshold.IsNegative() || p.DeliveryFee.IsNegative() || p.TaxRate.IsNegative() {
		return fmt.Errorf("pricing values must not be negative: %+v", p)
	}
	return nil
}

func (p Pricing) Subtotal(lines []domain.CartLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	return subtotal
}

func (p Pricing) DeliveryFeeFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(p.FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return p.DeliveryFee
}

// TaxFor rounds to cents, half away from zero.
func (p Pricing) TaxFor(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(p.TaxRate).Round(2)
}

// Totals derives every monetary figure from lines in one pass.
func (p Pricing) Totals(lines []domain.CartLine) domain.Totals {
	subtotal := p.Subtotal(lines)
	fee := p.DeliveryFeeFor(subtotal)
	tax := p.TaxFor(subtotal)
	return domain.Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       subtotal.Add(fee).Add(tax),
	}
}
