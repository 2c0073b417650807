package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sm8ta/goride_admin_dashboard/internal/core/domain"
)

const DefaultKeyPrefix = "goride:session:"

type RedisAdapter struct {
	client *redis.Client
	prefix string
}

func NewRedisAdapter(client *redis.Client, prefix string) *RedisAdapter {
	return &RedisAdapter{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "redis.Get"

	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return val, nil
}

// Set writes all values in one MULTI/EXEC transaction.
func (r *RedisAdapter) Set(ctx context.Context, values map[string][]byte, ttl time.Duration) error {
	const op = "redis.Set"

	pipe := r.client.TxPipeline()
	for k, v := range values {
		pipe.Set(ctx, r.prefix+k, v, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *RedisAdapter) Delete(ctx context.Context, keys ...string) error {
	const op = "redis.Delete"

	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = r.prefix + k
	}
	if err := r.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
