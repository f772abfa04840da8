package database

import (
	"context"
	"fmt"

	"trade_credit/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a pinged Redis client for the distributed lock.
func ConnectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect redis addr=%s: %w", cfg.RedisAddr(), err)
	}
	return rdb, nil
}
