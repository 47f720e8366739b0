package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ogurasousui/learning-dashboard/internal/core/session"
	"github.com/redis/go-redis/v9"
)

// redisClient は RedisStore が使うコマンドだけを切り出したものです。*redis.Client が満たします。
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore はセッションを Redis の 1 キーに保存します。有効期限は付けません。
type RedisStore struct {
	client redisClient
	key    string
}

// NewRedisStore は RedisStore を生成します。
func NewRedisStore(client redisClient, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

// Load は保存済みのセッションを読み込みます。
func (s *RedisStore) Load(ctx context.Context) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNotPersisted
		}
		return nil, fmt.Errorf("sessionstore: redis get %s: %w", s.key, err)
	}
	return b, nil
}

// Save はセッションを書き込みます。
func (s *RedisStore) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("sessionstore: redis set %s: %w", s.key, err)
	}
	return nil
}

// Delete はキーを削除します。
func (s *RedisStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("sessionstore: redis del %s: %w", s.key, err)
	}
	return nil
}
