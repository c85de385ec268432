package checkout

import (
	"errors"

	"github.com/fjod/foodbay/internal/cart"
)

var (
	// ErrEmptyCart is returned when an order is placed on a cart with no lines.
	ErrEmptyCart = cart.ErrEmptyCart

	ErrReceiptNotFound      = errors.New("receipt not found")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
