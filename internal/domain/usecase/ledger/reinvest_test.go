package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
)

func TestLedgerUseCase_Reinvest(t *testing.T) {
	t.Run("Moves available balance into trading", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		user := newStoredUser(7, nil, "150.25", "50", "3")
		expectedUnlock := fixedNow.Add(20 * 24 * time.Hour)

		f.expectCommit()
		f.users.EXPECT().GetForUpdate(f.txCtx, int64(7)).Return(user, nil).Once()
		f.users.EXPECT().Update(f.txCtx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Available().IsZero() && u.Trading().String() == "200.25" && u.TotalEarned().String() == "3"
		})).Return(nil).Once()
		f.investments.EXPECT().Create(f.txCtx, mock.MatchedBy(func(i *entity.Investment) bool {
			return i.UserID == 7 && i.Amount.String() == "150.25" && i.StartedAt.Equal(fixedNow) && i.UnlockAt.Equal(expectedUnlock)
		})).Return(nil).Once()
		f.transactions.EXPECT().Create(f.txCtx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.UserID == 7 &&
				tx.Kind == entity.KindInvestment &&
				tx.Amount.String() == "150.25" &&
				tx.Description == "Reinvestment"
		})).Return(nil).Once()

		// Execute
		result, err := f.uc.Reinvest(f.ctx, 7)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, "150.25", result.Amount.String())
		assert.Equal(t, expectedUnlock, result.UnlockAt)
	})

	t.Run("Zero available balance is rejected without changes", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		f.expectRollback()
		f.users.EXPECT().GetForUpdate(f.txCtx, int64(7)).Return(newStoredUser(7, nil, "0", "80", "0"), nil).Once()

		// Execute
		result, err := f.uc.Reinvest(f.ctx, 7)

		// Assertions
		assert.Nil(t, result)
		assert.True(t, errs.IsInsufficientFundsError(err))

		var typed *errs.InsufficientFundsError
		require.ErrorAs(t, err, &typed)
		assert.Equal(t, int64(7), typed.UserID)
		assert.Equal(t, "0.00", typed.Available)
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.expectRollback()
		f.users.EXPECT().GetForUpdate(f.txCtx, int64(7)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.uc.Reinvest(f.ctx, 7)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Failure after balance update rolls everything back", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		storeErr := errs.NewStoreError("create transaction", errors.New("connection reset"))
		f.expectRollback()
		f.users.EXPECT().GetForUpdate(f.txCtx, int64(7)).Return(newStoredUser(7, nil, "10", "0", "0"), nil).Once()
		f.users.EXPECT().Update(f.txCtx, mock.Anything).Return(nil).Once()
		f.investments.EXPECT().Create(f.txCtx, mock.Anything).Return(nil).Once()
		f.transactions.EXPECT().Create(f.txCtx, mock.Anything).Return(storeErr).Once()

		// Execute
		result, err := f.uc.Reinvest(f.ctx, 7)

		// Assertions
		assert.Nil(t, result)
		assert.True(t, errs.IsStoreUnavailableError(err))
	})

	t.Run("Begin failure", func(t *testing.T) {
		f := newFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(nil, errs.ErrStoreUnavailable).Once()

		_, err := f.uc.Reinvest(f.ctx, 7)

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("Invalid user ID", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Reinvest(f.ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
