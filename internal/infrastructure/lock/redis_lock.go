package lock

import (
	"context"
	"errors"
	"time"

	"trade_credit/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "settlement:lock:"

// RedisLockManager holds obligation locks in Redis so several service instances
// serialize payments on the same obligation.
type RedisLockManager struct {
	locker    *redislock.Client
	ttl       time.Duration
	retryWait time.Duration
	retries   int
	logger    *zap.Logger
}

var _ interfaces.ILockManager = (*RedisLockManager)(nil)

func NewRedisLockManager(client redis.UniversalClient, ttl, retryWait time.Duration, retries int, logger *zap.Logger) *RedisLockManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisLockManager{
		locker:    redislock.New(client),
		ttl:       ttl,
		retryWait: retryWait,
		retries:   retries,
		logger:    logger.Named("redis_lock"),
	}
}

func (m *RedisLockManager) Acquire(ctx context.Context, key string) (func(), error) {
	l, err := m.locker.Obtain(ctx, redisKeyPrefix+key, m.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(m.retryWait), m.retries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		m.logger.Warn("could not obtain lock", zap.String("key", key))
		return nil, interfaces.ErrLockNotObtained
	}
	if err != nil {
		m.logger.Error("error obtaining lock", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	return func() {
		// The request context may already be cancelled when the handler returns.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := l.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			m.logger.Warn("failed to release lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}
