package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/persistence"
)

type localHold struct {
	token string
	until time.Time
}

// LocalRunLock implements RunLock in process memory, for single-instance deployments without Redis
type LocalRunLock struct {
	timeProvider coreport.TimeProvider

	mu    sync.Mutex
	holds map[string]localHold
}

// NewLocalRunLock creates an in-memory run lock
func NewLocalRunLock(timeProvider coreport.TimeProvider) *LocalRunLock {
	return &LocalRunLock{
		timeProvider: timeProvider,
		holds:        make(map[string]localHold),
	}
}

// TryAcquire takes the lock for ttl; an expired holder is replaced
func (l *LocalRunLock) TryAcquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	now := l.timeProvider.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if hold, held := l.holds[key]; held && hold.until.After(now) {
		return "", false, nil
	}

	token := uuid.NewString()
	l.holds[key] = localHold{token: token, until: now.Add(ttl)}
	return token, true, nil
}

// Release frees the lock if token still owns it; a holder that was taken over is left alone
func (l *LocalRunLock) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if hold, held := l.holds[key]; held && hold.token == token {
		delete(l.holds, key)
	}
	return nil
}

var _ persistence.RunLock = (*LocalRunLock)(nil)
