package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces portal session keys
const DefaultRedisPrefix = "ojt:sess"

// RedisBackend keeps sessions in Redis so several portal instances can share them.
// Each session is one hash; its TTL is refreshed on every write.
type RedisBackend struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisBackend creates a Redis backed session backend. A zero ttl keeps sessions forever.
func NewRedisBackend(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisBackend {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisBackend{client: client, prefix: prefix, ttl: ttl}
}

// Ping checks the connection
func (b *RedisBackend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Scope implements Backend
func (b *RedisBackend) Scope(sid string) Storage {
	return &redisStorage{backend: b, key: b.prefix + ":" + sid}
}

type redisStorage struct {
	backend *RedisBackend
	key     string
}

func (s *redisStorage) Get(ctx context.Context, field string) (string, error) {
	value, err := s.backend.client.HGet(ctx, s.key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis hget %s: %w", field, err)
	}
	return value, nil
}

func (s *redisStorage) Set(ctx context.Context, field, value string) error {
	_, err := s.backend.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.key, field, value)
		if s.backend.ttl > 0 {
			pipe.Expire(ctx, s.key, s.backend.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis hset %s: %w", field, err)
	}
	return nil
}

func (s *redisStorage) Remove(ctx context.Context, field string) error {
	if err := s.backend.client.HDel(ctx, s.key, field).Err(); err != nil {
		return fmt.Errorf("redis hdel %s: %w", field, err)
	}
	return nil
}
