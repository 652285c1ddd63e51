package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/persistence"
)

// releaseScript deletes the key only while it still holds the caller's token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisRunLock implements RunLock with SET NX PX, shared across processes
type RedisRunLock struct {
	client redis.UniversalClient
	logger coreport.Logger
}

// NewRedisRunLock creates a run lock backed by Redis
func NewRedisRunLock(client redis.UniversalClient, logger coreport.Logger) *RedisRunLock {
	return &RedisRunLock{
		client: client,
		logger: logger,
	}
}

// TryAcquire takes the lock for ttl; returns false when another holder owns it
func (l *RedisRunLock) TryAcquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		l.logger.Error("Failed to acquire run lock", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return "", false, fmt.Errorf("acquire run lock %s: %w", key, err)
	}
	if !ok {
		l.logger.Debug("Run lock held elsewhere", map[string]any{"key": key})
		return "", false, nil
	}

	l.logger.Debug("Run lock acquired", map[string]any{
		"key": key,
		"ttl": ttl.String(),
	})
	return token, true, nil
}

// Release frees the lock while it still holds token; a lock that expired or changed hands is ignored
func (l *RedisRunLock) Release(ctx context.Context, key, token string) error {
	if token == "" {
		return nil
	}

	deleted, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
	if err != nil {
		l.logger.Error("Failed to release run lock", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return fmt.Errorf("release run lock %s: %w", key, err)
	}
	if deleted == 0 {
		l.logger.Warn("Run lock expired before release", map[string]any{"key": key})
	}
	return nil
}

var _ persistence.RunLock = (*RedisRunLock)(nil)
