package session

import (
	"sync"
	"testing"
	"time"

	"github.com/fjod/foodbay/internal/cart"
	"github.com/fjod/foodbay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupManager(t *testing.T) *Manager {
	m := NewManager(cart.DefaultPricing(), time.Hour)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestManager_LedgerIsPerSession(t *testing.T) {
	m := setupManager(t)
	item := domain.FoodItem{ID: "x", Price: decimal.NewFromInt(3)}

	require.NoError(t, m.Ledger("alice").AddItem(item, 2))

	assert.Same(t, m.Ledger("alice"), m.Ledger("alice"))
	assert.Equal(t, 2, m.Ledger("alice").ItemCount())
	assert.Equal(t, 0, m.Ledger("bob").ItemCount())
	assert.Equal(t, 2, m.Len())
}

func TestManager_ExpireIdle(t *testing.T) {
	m := setupManager(t)
	now := time.Now()
	m.now = func() time.Time { return now }

	m.Ledger("old")
	now = now.Add(30 * time.Minute)
	m.Ledger("fresh")
	now = now.Add(45 * time.Minute)

	m.expireIdle()

	m.mu.Lock()
	_, oldExists := m.sessions["old"]
	_, freshExists := m.sessions["fresh"]
	m.mu.Unlock()
	assert.False(t, oldExists)
	assert.True(t, freshExists)
}

func TestManager_ConcurrentFirstUse(t *testing.T) {
	m := setupManager(t)

	var wg sync.WaitGroup
	ledgers := make([]*cart.Ledger, 20)
	for i := range ledgers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ledgers[i] = m.Ledger("same")
		}(i)
	}
	wg.Wait()

	for _, l := range ledgers {
		assert.Same(t, ledgers[0], l)
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
