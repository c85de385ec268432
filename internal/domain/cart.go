package domain

import "github.com/shopspring/decimal"

// CartLine is one item in a cart together with how many of it were ordered.
type CartLine struct {
	Item     FoodItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// LineTotal is the effective unit price times the quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Item.EffectivePrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals are the monetary figures derived from a set of cart lines.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}
