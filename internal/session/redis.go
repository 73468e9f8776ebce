package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const redisSessionKey = "spicytrolly:session"

// RedisStore keeps the session in Redis so several admin terminals can
// share one login. Last write wins; there is no cross-client locking.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Get() (Session, error) {
	ctx := context.Background()
	val, err := s.rdb.Get(ctx, redisSessionKey).Result()
	if err == redis.Nil {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return sess, nil
}

func (s *RedisStore) Set(sess Session) error {
	ctx := context.Background()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.rdb.Set(ctx, redisSessionKey, data, 0).Err()
}

func (s *RedisStore) Clear() error {
	ctx := context.Background()
	return s.rdb.Del(ctx, redisSessionKey).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
