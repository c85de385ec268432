package receipts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fjod/foodbay/internal/domain"
	"github.com/redis/go-redis/v9"
)

const receiptKeyPrefix = "foodbay:receipt:"

// RedisStore keeps receipts as JSON strings that expire after ttl.
type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, orderNumber string) (*domain.OrderSnapshot, error) {
	raw, err := s.rdb.Get(ctx, receiptKey(orderNumber)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("load receipt %s: %w", orderNumber, err)
	}

	snapshot := new(domain.OrderSnapshot)
	if err := json.Unmarshal(raw, snapshot); err != nil {
		return nil, fmt.Errorf("decode receipt %s: %w", orderNumber, err)
	}
	return snapshot, nil
}

// Add writes the receipt only if no receipt with the same order number is
// still live.
func (s *RedisStore) Add(ctx context.Context, snapshot *domain.OrderSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode receipt %s: %w", snapshot.OrderNumber, err)
	}

	stored, err := s.rdb.SetNX(ctx, receiptKey(snapshot.OrderNumber), raw, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("store receipt %s: %w", snapshot.OrderNumber, err)
	}
	if !stored {
		return ErrOrderNumberTaken
	}
	return nil
}

func receiptKey(orderNumber string) string {
	return receiptKeyPrefix + orderNumber
}
