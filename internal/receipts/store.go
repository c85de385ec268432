package receipts

import (
	"context"
	"errors"

	"github.com/fjod/foodbay/internal/domain"
)

// Store keeps placed orders around for a limited time so the confirmation
// view can fetch them again by order number. Receipts are write-once: Add
// never replaces a live receipt.
type Store interface {
	Get(ctx context.Context, orderNumber string) (*domain.OrderSnapshot, error)
	Add(ctx context.Context, snapshot *domain.OrderSnapshot) error
}

var (
	ErrNotFound         = errors.New("receipt not found")
	ErrOrderNumberTaken = errors.New("order number already in use")
)
