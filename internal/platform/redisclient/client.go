// Package redisclient は設定から go-redis クライアントを組み立てます。
package redisclient

import (
	"context"
	"errors"
	"fmt"

	"github.com/ogurasousui/learning-dashboard/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// ErrConnection は Redis への疎通確認に失敗したことを示します。
var ErrConnection = errors.New("redisclient: connection failed")

// BuildOptions は redis 設定から redis.Options を構築します。
func BuildOptions(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// NewClient はクライアントを生成し Ping で疎通確認を行います。
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(BuildOptions(cfg))

	pingCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrConnection, cfg.Addr, err)
	}
	return client, nil
}
