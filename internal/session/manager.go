package session

import (
	"sync"
	"time"

	"github.com/fjod/foodbay/internal/cart"
	"github.com/google/uuid"
)

const (
	// DefaultIdleTTL is how long a cart survives without being touched
	DefaultIdleTTL = 2 * time.Hour

	// CleanupInterval is how often the background cleanup runs
	CleanupInterval = time.Minute
)

type entry struct {
	ledger   *cart.Ledger
	lastSeen time.Time
}

// Manager owns one cart ledger per shopping session. Views receive ledgers
// from it instead of sharing a global cart.
type Manager struct {
	mu       sync.Mutex
	pricing  cart.Pricing
	idleTTL  time.Duration
	sessions map[string]*entry
	now      func() time.Time

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewManager creates a manager and starts the idle session cleanup.
func NewManager(pricing cart.Pricing, idleTTL time.Duration) *Manager {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	m := &Manager{
		pricing:     pricing,
		idleTTL:     idleTTL,
		sessions:    make(map[string]*entry),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}

	m.wg.Add(1)
	go m.cleanupLoop()

	return m
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// Ledger returns the cart of the session, creating an empty one on first use.
func (m *Manager) Ledger(sessionID string) *cart.Ledger {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[sessionID]
	if !ok {
		e = &entry{ledger: cart.NewLedger(m.pricing)}
		m.sessions[sessionID] = e
	}
	e.lastSeen = m.now()
	return e.ledger
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) cleanupLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.expireIdle()
		case <-m.stopCleanup:
			return
		}
	}
}

func (m *Manager) expireIdle() {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.idleTTL)
	for id, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

// Close stops the background cleanup and waits for it to finish
func (m *Manager) Close() error {
	close(m.stopCleanup)
	m.wg.Wait()
	return nil
}
