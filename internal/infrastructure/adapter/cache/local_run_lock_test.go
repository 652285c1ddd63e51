package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockcore "github.com/amirhossein-jamali/invest-ledger-bot/mocks/port/core"
)

func TestLocalRunLock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	clock := mockcore.NewMockTimeProvider(t)
	current := now
	clock.EXPECT().Now().RunAndReturn(func() time.Time { return current })

	lock := NewLocalRunLock(clock)

	token, ok, err := lock.TryAcquire(ctx, "ledger:accrual", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	_, ok, err = lock.TryAcquire(ctx, "ledger:accrual", 10*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be refused")

	_, ok, err = lock.TryAcquire(ctx, "other", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "keys are independent")

	require.NoError(t, lock.Release(ctx, "ledger:accrual", "someone-else"))
	_, ok, err = lock.TryAcquire(ctx, "ledger:accrual", 10*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "a foreign token must not free the lock")

	require.NoError(t, lock.Release(ctx, "ledger:accrual", token))
	_, ok, err = lock.TryAcquire(ctx, "ledger:accrual", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalRunLockStaleRelease(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	clock := mockcore.NewMockTimeProvider(t)
	current := now
	clock.EXPECT().Now().RunAndReturn(func() time.Time { return current })

	lock := NewLocalRunLock(clock)

	stale, ok, err := lock.TryAcquire(ctx, "ledger:accrual", 10*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	current = now.Add(11 * time.Minute)
	fresh, ok, err := lock.TryAcquire(ctx, "ledger:accrual", 10*time.Minute)
	require.NoError(t, err)
	require.True(t, ok, "expired lock can be taken over")
	assert.NotEqual(t, stale, fresh)

	// The overrunning holder finishes late and releases
	require.NoError(t, lock.Release(ctx, "ledger:accrual", stale))

	_, ok, err = lock.TryAcquire(ctx, "ledger:accrual", 10*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "current holder must keep the lock")

	require.NoError(t, lock.Release(ctx, "ledger:accrual", fresh))
	_, ok, err = lock.TryAcquire(ctx, "ledger:accrual", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalRunLockConcurrentAcquire(t *testing.T) {
	clock := mockcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))

	lock := NewLocalRunLock(clock)

	var winners atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok, _ := lock.TryAcquire(context.Background(), "ledger:accrual", time.Minute); ok {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestLocalRunLockCanceledContext(t *testing.T) {
	lock := NewLocalRunLock(mockcore.NewMockTimeProvider(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := lock.TryAcquire(ctx, "ledger:accrual", time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}
