package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fjod/foodbay/internal/cart"
	"github.com/fjod/foodbay/internal/domain"
	"github.com/fjod/foodbay/internal/events"
	"github.com/fjod/foodbay/internal/receipts"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	orderNumberPrefix   = "FD"
	orderNumberLen      = 6
	orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// attempts at finding a free order number before giving up on the receipt
	maxOrderNumberAttempts = 5
)

type Service struct {
	receipts       receipts.Store
	publisher      events.Publisher
	sfg            singleflight.Group // Prevents concurrent lookups of the same receipt
	now            func() time.Time
	newOrderNumber func() string
}

func NewService(store receipts.Store, publisher events.Publisher) *Service {
	return &Service{
		receipts:       store,
		publisher:      publisher,
		now:            time.Now,
		newOrderNumber: NewOrderNumber,
	}
}

// PlaceOrder freezes the ledger into an OrderSnapshot and empties it.
// Delivery info and payment method are taken verbatim; form validation is
// the caller's job. The receipt cache and event publisher are best effort.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, ledger *cart.Ledger, info domain.DeliveryInfo, method domain.PaymentMethod) (*domain.OrderSnapshot, error) {
	lines, totals, err := ledger.Drain()
	if err != nil {
		return nil, err
	}

	snapshot := &domain.OrderSnapshot{
		SessionID:     sessionID,
		Lines:         lines,
		Totals:        totals,
		DeliveryInfo:  info,
		PaymentMethod: method,
		PlacedAt:      s.now(),
	}

	s.storeReceipt(ctx, snapshot)
	if errPub := s.publisher.PublishOrderPlaced(ctx, snapshot); errPub != nil {
		log.Printf("order placed publish error: %v", errPub)
	}

	return snapshot, nil
}

// storeReceipt assigns the order number, drawing a fresh one while the
// drawn number still belongs to a live receipt.
func (s *Service) storeReceipt(ctx context.Context, snapshot *domain.OrderSnapshot) {
	for attempt := 1; attempt <= maxOrderNumberAttempts; attempt++ {
		snapshot.OrderNumber = s.newOrderNumber()

		err := s.receipts.Add(ctx, snapshot)
		if err == nil {
			return
		}
		if !errors.Is(err, receipts.ErrOrderNumberTaken) {
			log.Printf("receipt store add error for order %s: %v", snapshot.OrderNumber, err)
			return
		}
	}
	log.Printf("no free order number after %d attempts, order %s has no receipt", maxOrderNumberAttempts, snapshot.OrderNumber)
}

// Receipt returns a previously placed order while it is still cached. Orders
// placed by another session are reported as not found.
func (s *Service) Receipt(ctx context.Context, sessionID, orderNumber string) (*domain.OrderSnapshot, error) {
	v, err, _ := s.sfg.Do(orderNumber, func() (interface{}, error) {
		return s.receipts.Get(ctx, orderNumber)
	})
	if errors.Is(err, receipts.ErrNotFound) {
		return nil, ErrReceiptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get receipt %s: %w", orderNumber, err)
	}

	snapshot := v.(*domain.OrderSnapshot)
	if sessionID == "" || snapshot.SessionID != sessionID {
		return nil, ErrReceiptNotFound
	}
	return snapshot, nil
}

// NewOrderNumber returns "FD" followed by six characters from [0-9A-Z].
func NewOrderNumber() string {
	var sb strings.Builder
	sb.WriteString(orderNumberPrefix)

	for n := 0; n < orderNumberLen; {
		id := uuid.New()
		for i, b := range id {
			// bytes 6 and 8 carry the version and variant bits; 252 and up
			// would skew the alphabet
			if i == 6 || i == 8 || b >= 252 {
				continue
			}
			sb.WriteByte(orderNumberAlphabet[int(b)%len(orderNumberAlphabet)])
			if n++; n == orderNumberLen {
				break
			}
		}
	}
	return sb.String()
}
