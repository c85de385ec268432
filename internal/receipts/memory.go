package receipts

import (
	"context"
	"sync"
	"time"

	"github.com/fjod/foodbay/internal/domain"
)

type memoryEntry struct {
	snapshot  *domain.OrderSnapshot
	expiresAt time.Time
}

// MemoryStore implements Store in process memory. Expired receipts are
// hidden on read and removed by a background sweep.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:         ttl,
		entries:     make(map[string]memoryEntry),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

func (s *MemoryStore) Get(_ context.Context, orderNumber string) (*domain.OrderSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[orderNumber]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, ErrNotFound
	}
	return e.snapshot, nil
}

func (s *MemoryStore) Add(_ context.Context, snapshot *domain.OrderSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, ok := s.entries[snapshot.OrderNumber]; ok && now.Before(e.expiresAt) {
		return ErrOrderNumberTaken
	}
	s.entries[snapshot.OrderNumber] = memoryEntry{
		snapshot:  snapshot,
		expiresAt: now.Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}

func (s *MemoryStore) Close() error {
	close(s.stopCleanup)
	s.wg.Wait()
	return nil
}
