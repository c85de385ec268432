package cart

import (
	"errors"
	"sync"

	"github.com/fjod/foodbay/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyCart       = errors.New("cart is empty, nothing to checkout")
)

// Ledger is the cart of one shopping session. Lines are keyed by item id and
// kept in the order they were first added. It is safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	pricing Pricing
	lines   map[string]*domain.CartLine
	order   []string
}

func NewLedger(pricing Pricing) *Ledger {
	return &Ledger{
		pricing: pricing,
		lines:   make(map[string]*domain.CartLine),
	}
}

// AddItem increases the quantity of an existing line or appends a new one.
func (l *Ledger) AddItem(item domain.FoodItem, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if line, ok := l.lines[item.ID]; ok {
		line.Quantity += quantity
		return nil
	}
	l.lines[item.ID] = &domain.CartLine{Item: item.Clone(), Quantity: quantity}
	l.order = append(l.order, item.ID)
	return nil
}

// RemoveItem is a no-op for ids not in the cart.
func (l *Ledger) RemoveItem(itemID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.removeLocked(itemID)
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line. Unknown ids are ignored.
func (l *Ledger) UpdateQuantity(itemID string, quantity int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if quantity <= 0 {
		l.removeLocked(itemID)
		return
	}
	if line, ok := l.lines[itemID]; ok {
		line.Quantity = quantity
	}
}

func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clearLocked()
}

// Lines returns deep copies of the current lines in insertion order.
func (l *Ledger) Lines() []domain.CartLine {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.linesLocked()
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}

func (l *Ledger) ItemCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

func (l *Ledger) Subtotal() decimal.Decimal {
	return l.Totals().Subtotal
}

func (l *Ledger) DeliveryFee() decimal.Decimal {
	return l.Totals().DeliveryFee
}

func (l *Ledger) Tax() decimal.Decimal {
	return l.Totals().Tax
}

func (l *Ledger) Total() decimal.Decimal {
	return l.Totals().Total
}

// Totals computes all figures from a single consistent view of the lines.
func (l *Ledger) Totals() domain.Totals {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pricing.Totals(l.linesLocked())
}

// View returns the lines together with the totals computed from exactly
// those lines.
func (l *Ledger) View() ([]domain.CartLine, domain.Totals) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	lines := l.linesLocked()
	return lines, l.pricing.Totals(lines)
}

// Drain copies the lines and their totals and empties the ledger in one
// critical section, so no caller can observe the lines after they were taken.
func (l *Ledger) Drain() ([]domain.CartLine, domain.Totals, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.order) == 0 {
		return nil, domain.Totals{}, ErrEmptyCart
	}
	lines := l.linesLocked()
	totals := l.pricing.Totals(lines)
	l.clearLocked()
	return lines, totals, nil
}

func (l *Ledger) linesLocked() []domain.CartLine {
	lines := make([]domain.CartLine, 0, len(l.order))
	for _, id := range l.order {
		line := l.lines[id]
		lines = append(lines, domain.CartLine{Item: line.Item.Clone(), Quantity: line.Quantity})
	}
	return lines
}

func (l *Ledger) removeLocked(itemID string) {
	if _, ok := l.lines[itemID]; !ok {
		return
	}
	delete(l.lines, itemID)
	for i, id := range l.order {
		if id == itemID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *Ledger) clearLocked() {
	l.lines = make(map[string]*domain.CartLine)
	l.order = nil
}
