package domain

import "time"

type DeliveryInfo struct {
	FullName     string `json:"full_name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
	Phone        string `json:"phone"`
	Instructions string `json:"instructions,omitempty"`
}

type PaymentMethod string

const (
	PaymentCard    PaymentMethod = "card"
	PaymentPayPal  PaymentMethod = "paypal"
	PaymentDigital PaymentMethod = "digital"
	PaymentCash    PaymentMethod = "cash"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentPayPal, PaymentDigital, PaymentCash:
		return true
	}
	return false
}

// Label is the human readable name shown on receipts.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCard:
		return "Credit/Debit Card"
	case PaymentPayPal:
		return "PayPal"
	case PaymentDigital:
		return "Apple Pay / Google Pay"
	default:
		return "Cash on Delivery"
	}
}

// String representation (for logging)
func (m PaymentMethod) String() string {
	return string(m)
}

// OrderSnapshot is the frozen state of a cart at the moment an order was placed.
// It owns deep copies of the lines and is never mutated after creation.
type OrderSnapshot struct {
	OrderNumber   string        `json:"order_number"`
	SessionID     string        `json:"session_id,omitempty"`
	Lines         []CartLine    `json:"lines"`
	Totals        Totals        `json:"totals"`
	DeliveryInfo  DeliveryInfo  `json:"delivery_info"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PlacedAt      time.Time     `json:"placed_at"`
}

// ItemCount is the sum of all line quantities.
func (s *OrderSnapshot) ItemCount() int {
	n := 0
	for _, l := range s.Lines {
		n += l.Quantity
	}
	return n
}
