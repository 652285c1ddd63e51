package persistence

import (
	"context"
	"time"
)

// RunLock is a short-lived exclusive marker that keeps two runs of the same job from overlapping
type RunLock interface {
	// TryAcquire takes the lock for ttl and returns the holder's token; acquired is false when another holder owns it
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (token string, acquired bool, err error)

	// Release frees the lock only while it is still held under token
	Release(ctx context.Context, key, token string) error
}
