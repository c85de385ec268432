package events

import (
	"context"
	"log"
	"time"

	"github.com/fjod/foodbay/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Publisher announces placed orders to the outside world.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, snapshot *domain.OrderSnapshot) error
	Close() error
}

type OrderPlacedItem struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderPlacedEvent is the payload written for every placed order.
type OrderPlacedEvent struct {
	EventID       string               `json:"event_id"`
	OrderNumber   string               `json:"order_number"`
	Items         []OrderPlacedItem    `json:"items"`
	Totals        domain.Totals        `json:"totals"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	PlacedAt      time.Time            `json:"placed_at"`
}

func NewOrderPlacedEvent(snapshot *domain.OrderSnapshot) OrderPlacedEvent {
	items := make([]OrderPlacedItem, 0, len(snapshot.Lines))
	for _, l := range snapshot.Lines {
		items = append(items, OrderPlacedItem{
			ItemID:    l.Item.ID,
			Name:      l.Item.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Item.EffectivePrice(),
			LineTotal: l.LineTotal(),
		})
	}
	return OrderPlacedEvent{
		EventID:       uuid.NewString(),
		OrderNumber:   snapshot.OrderNumber,
		Items:         items,
		Totals:        snapshot.Totals,
		PaymentMethod: snapshot.PaymentMethod,
		PlacedAt:      snapshot.PlacedAt,
	}
}

// LogPublisher only logs orders. Used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) PublishOrderPlaced(_ context.Context, snapshot *domain.OrderSnapshot) error {
	log.Printf("order placed: number=%s items=%d total=%s payment=%s",
		snapshot.OrderNumber, snapshot.ItemCount(), snapshot.Totals.Total.StringFixed(2), snapshot.PaymentMethod)
	return nil
}

func (LogPublisher) Close() error {
	return nil
}
