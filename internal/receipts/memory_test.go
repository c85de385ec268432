package receipts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMemoryStore(t *testing.T) *MemoryStore {
	store := NewMemoryStore(15 * time.Minute)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMemoryStore_AddAndGet(t *testing.T) {
	store := setupMemoryStore(t)
	ctx := context.Background()
	snap := sampleSnapshot("FDMEM001")

	require.NoError(t, store.Add(ctx, snap))

	got, err := store.Get(ctx, "FDMEM001")
	require.NoError(t, err)
	assert.Same(t, snap, got)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := setupMemoryStore(t)
	ctx := context.Background()
	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Add(ctx, sampleSnapshot("FDMEM002")))

	now = now.Add(16 * time.Minute)
	_, err := store.Get(ctx, "FDMEM002")
	assert.ErrorIs(t, err, ErrNotFound)

	store.sweep()
	store.mu.RLock()
	assert.Empty(t, store.entries)
	store.mu.RUnlock()
}

func TestMemoryStore_AddRejectsLiveOrderNumber(t *testing.T) {
	store := setupMemoryStore(t)
	ctx := context.Background()
	now := time.Now()
	store.now = func() time.Time { return now }

	first := sampleSnapshot("FDMEM003")
	first.SessionID = "alice"
	require.NoError(t, store.Add(ctx, first))

	second := sampleSnapshot("FDMEM003")
	second.SessionID = "bob"
	assert.ErrorIs(t, store.Add(ctx, second), ErrOrderNumberTaken)

	got, err := store.Get(ctx, "FDMEM003")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.SessionID)

	// an expired receipt frees its number
	now = now.Add(16 * time.Minute)
	require.NoError(t, store.Add(ctx, second))
	got, err = store.Get(ctx, "FDMEM003")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.SessionID)
}
