// Package cache keeps JSON snapshots of single records in Redis, keyed by
// the domain cache keys, and drops them when the record changes.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/ticket-office/internal/domain"
	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 5 * time.Minute

// Store is a record cache. A miss is reported with ok == false and no error.
type Store interface {
	domain.CacheInvalidator
	Get(ctx context.Context, key string, dest any) (ok bool, err error)
	Set(ctx context.Context, key string, value any) error
}

type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	err = json.Unmarshal(data, dest)
	if err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}

	return true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	return s.client.Set(ctx, key, data, s.ttl).Err()
}

func (s *RedisStore) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return s.client.Del(ctx, keys...).Err()
}

// Noop is used when no Redis is configured: every read misses.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) {
	return false, nil
}

func (Noop) Set(context.Context, string, any) error {
	return nil
}

func (Noop) Invalidate(context.Context, ...string) error {
	return nil
}

// ReadThrough serves key from the store or falls back to load and fills the
// store with the result. Cache failures are logged and never returned.
func ReadThrough[T any](
	ctx context.Context,
	store Store,
	logger *slog.Logger,
	key string,
	load func(context.Context) (*T, error)) (*T, error) {

	var cached T

	ok, err := store.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("cache read failed", "key", key, "error", err)
	}

	if ok {
		return &cached, nil
	}

	record, err := load(ctx)
	if err != nil {
		return nil, err
	}

	err = store.Set(ctx, key, record)
	if err != nil {
		logger.Warn("cache write failed", "key", key, "error", err)
	}

	return record, nil
}
