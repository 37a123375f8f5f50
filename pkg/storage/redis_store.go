package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a native Engine backed by Redis. It gives headless visitors a
// persistent store that survives process restarts, the way localStorage
// survives page loads.
type RedisStore struct {
	db        redis.UniversalClient
	namespace string
	ttl       time.Duration
}

var _ Engine = (*RedisStore)(nil)

// NewRedisStore creates a store that prefixes every key with namespace.
// A zero ttl keeps items forever.
func NewRedisStore(client redis.UniversalClient, namespace string, ttl time.Duration) *RedisStore {
	return &RedisStore{db: client, namespace: namespace, ttl: ttl}
}

func (s *RedisStore) GetItem(ctx context.Context, key string) (string, error) {
	val, err := s.db.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Join(ErrEngineFailure, err)
	}
	return val, nil
}

func (s *RedisStore) SetItem(ctx context.Context, key, value string) error {
	if err := s.db.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return errors.Join(ErrEngineFailure, err)
	}
	return nil
}

func (s *RedisStore) RemoveItem(ctx context.Context, key string) error {
	if err := s.db.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Join(ErrEngineFailure, err)
	}
	return nil
}

func (s *RedisStore) key(k string) string {
	if s.namespace == "" {
		return k
	}
	return s.namespace + ":" + k
}
