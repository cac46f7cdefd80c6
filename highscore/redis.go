package highscore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the key the score is stored under when none is configured.
const DefaultRedisKey = "blockfall:highscore"

// RedisStore keeps the highscore under a single Redis string key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore wraps an existing client. The store owns the client and closes
// it on Close.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// LoadHighscore reads the key. A missing key is a score of 0.
func (s *RedisStore) LoadHighscore(ctx context.Context) (int, error) {
	value, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return parseScore(value)
}

func (s *RedisStore) SaveHighscore(ctx context.Context, score int) error {
	if err := s.client.Set(ctx, s.key, formatScore(score), 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
