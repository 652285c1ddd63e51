package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
)

const (
	adminID      = int64(999)
	accrualToken = "run-token"
)

func matchDaily(userID int64, amount string) any {
	return mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.UserID == userID &&
			tx.Kind == entity.KindDaily &&
			entity.FormatAmount(tx.Amount) == amount &&
			tx.Description == "Daily profit"
	})
}

func TestLedgerUseCase_AccrueDailyProfit(t *testing.T) {
	t.Run("Non-admin is rejected before any store access", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		f.gate.EXPECT().IsAdmin(int64(5)).Return(false).Once()

		// Execute
		result, err := f.uc.AccrueDailyProfit(f.ctx, 5)

		// Assertions
		assert.Nil(t, result)
		assert.True(t, errs.IsUnauthorizedError(err))
		f.users.AssertNotCalled(t, "ListWithTradingBalance", mock.Anything)
		f.runLock.AssertNotCalled(t, "TryAcquire", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Accrues one percent on each trading balance", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		f.gate.EXPECT().IsAdmin(adminID).Return(true).Once()
		f.runLock.EXPECT().TryAcquire(mock.Anything, AccrualLockKey, DefaultPolicy().AccrualLockTTL).Return(accrualToken, true, nil).Once()
		f.runLock.EXPECT().Release(mock.Anything, AccrualLockKey, accrualToken).Return(nil).Once()

		f.users.EXPECT().ListWithTradingBalance(f.ctx).Return([]*entity.User{
			newStoredUser(1, nil, "0", "100", "0"),
			newStoredUser(2, nil, "5", "200", "1"),
			newStoredUser(3, nil, "7", "0", "0"),
		}, nil).Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Times(2)
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Times(2)

		f.users.EXPECT().GetForUpdate(f.txCtx, int64(1)).Return(newStoredUser(1, nil, "0", "100", "0"), nil).Once()
		f.users.EXPECT().GetForUpdate(f.txCtx, int64(2)).Return(newStoredUser(2, nil, "5", "200", "1"), nil).Once()

		var updated []*entity.User
		f.users.EXPECT().Update(f.txCtx, mock.Anything).Run(func(_ context.Context, u *entity.User) {
			updated = append(updated, u)
		}).Return(nil).Times(2)

		f.transactions.EXPECT().Create(f.txCtx, matchDaily(1, "1.00")).Return(nil).Once()
		f.transactions.EXPECT().Create(f.txCtx, matchDaily(2, "2.00")).Return(nil).Once()

		// Execute
		result, err := f.uc.AccrueDailyProfit(f.ctx, adminID)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, 2, result.UsersAffected)
		assert.Equal(t, "3.00", entity.FormatAmount(result.TotalAccrued))
		assert.Empty(t, result.FailedUserIDs)

		require.Len(t, updated, 2)
		assert.Equal(t, "1.00", entity.FormatAmount(updated[0].Available()))
		assert.Equal(t, "1.00", entity.FormatAmount(updated[0].TotalEarned()))
		assert.Equal(t, "100.00", entity.FormatAmount(updated[0].Trading()))
		assert.Equal(t, "7.00", entity.FormatAmount(updated[1].Available()))
		assert.Equal(t, "3.00", entity.FormatAmount(updated[1].TotalEarned()))
	})

	t.Run("Failure on one user does not affect the others", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		f.gate.EXPECT().IsAdmin(adminID).Return(true).Once()
		f.runLock.EXPECT().TryAcquire(mock.Anything, AccrualLockKey, mock.Anything).Return(accrualToken, true, nil).Once()
		f.runLock.EXPECT().Release(mock.Anything, AccrualLockKey, accrualToken).Return(nil).Once()

		f.users.EXPECT().ListWithTradingBalance(f.ctx).Return([]*entity.User{
			newStoredUser(1, nil, "0", "100", "0"),
			newStoredUser(2, nil, "0", "200", "0"),
		}, nil).Once()

		f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Times(2)
		f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()
		f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()

		f.users.EXPECT().GetForUpdate(f.txCtx, int64(1)).Return(newStoredUser(1, nil, "0", "100", "0"), nil).Once()
		f.users.EXPECT().Update(f.txCtx, mock.Anything).Return(nil).Once()
		f.transactions.EXPECT().Create(f.txCtx, matchDaily(1, "1.00")).
			Return(errs.NewStoreError("create transaction", errors.New("deadlock detected"))).Once()

		f.users.EXPECT().GetForUpdate(f.txCtx, int64(2)).Return(newStoredUser(2, nil, "0", "200", "0"), nil).Once()
		f.users.EXPECT().Update(f.txCtx, mock.Anything).Return(nil).Once()
		f.transactions.EXPECT().Create(f.txCtx, matchDaily(2, "2.00")).Return(nil).Once()

		// Execute
		result, err := f.uc.AccrueDailyProfit(f.ctx, adminID)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, 1, result.UsersAffected)
		assert.Equal(t, "2.00", entity.FormatAmount(result.TotalAccrued))
		assert.Equal(t, []int64{1}, result.FailedUserIDs)
	})

	t.Run("Overlapping run is refused", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		f.gate.EXPECT().IsAdmin(adminID).Return(true).Once()
		f.runLock.EXPECT().TryAcquire(mock.Anything, AccrualLockKey, mock.Anything).Return("", false, nil).Once()

		// Execute
		result, err := f.uc.AccrueDailyProfit(f.ctx, adminID)

		// Assertions
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrAccrualInProgress)
	})

	t.Run("Run lock failure", func(t *testing.T) {
		f := newFixture(t)
		f.gate.EXPECT().IsAdmin(adminID).Return(true).Once()
		f.runLock.EXPECT().TryAcquire(mock.Anything, AccrualLockKey, mock.Anything).
			Return("", false, errors.New("redis: connection refused")).Once()

		_, err := f.uc.AccrueDailyProfit(f.ctx, adminID)

		assert.EqualError(t, err, "redis: connection refused")
	})

	t.Run("Listing failure aborts the run and releases the lock", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		f.gate.EXPECT().IsAdmin(adminID).Return(true).Once()
		f.runLock.EXPECT().TryAcquire(mock.Anything, AccrualLockKey, mock.Anything).Return(accrualToken, true, nil).Once()
		f.runLock.EXPECT().Release(mock.Anything, AccrualLockKey, accrualToken).Return(nil).Once()
		f.users.EXPECT().ListWithTradingBalance(f.ctx).Return(nil, errs.NewStoreError("list users", errors.New("timeout"))).Once()

		// Execute
		result, err := f.uc.AccrueDailyProfit(f.ctx, adminID)

		// Assertions
		assert.Nil(t, result)
		assert.True(t, errs.IsStoreUnavailableError(err))
	})

	t.Run("Cancelled context reports remaining users as failed", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		ctx, cancel := context.WithCancel(f.ctx)
		cancel()

		f.gate.EXPECT().IsAdmin(adminID).Return(true).Once()
		f.runLock.EXPECT().TryAcquire(ctx, AccrualLockKey, mock.Anything).Return(accrualToken, true, nil).Once()
		f.runLock.EXPECT().Release(mock.Anything, AccrualLockKey, accrualToken).Return(nil).Once()
		f.users.EXPECT().ListWithTradingBalance(ctx).Return([]*entity.User{
			newStoredUser(1, nil, "0", "100", "0"),
			newStoredUser(2, nil, "0", "200", "0"),
		}, nil).Once()

		// Execute
		result, err := f.uc.AccrueDailyProfit(ctx, adminID)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, 0, result.UsersAffected)
		assert.Equal(t, []int64{1, 2}, result.FailedUserIDs)
	})
}
