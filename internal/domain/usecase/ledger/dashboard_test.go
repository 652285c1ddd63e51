package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
)

func TestLedgerUseCase_GetDashboard(t *testing.T) {
	t.Run("Nearest unlock in five days and one hour", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		user := newStoredUser(7, nil, "10.5", "200", "4.25")
		unlock := fixedNow.Add(5*24*time.Hour + time.Hour)
		f.users.EXPECT().GetByID(f.ctx, int64(7)).Return(user, nil).Once()
		f.investments.EXPECT().NearestUnlockAfter(f.ctx, int64(7), fixedNow).Return(&unlock, nil).Once()

		// Execute
		dashboard, err := f.uc.GetDashboard(f.ctx, 7)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, int64(7), dashboard.UserID)
		assert.Equal(t, "10.5", dashboard.Available.String())
		assert.Equal(t, "200", dashboard.Trading.String())
		assert.Equal(t, "4.25", dashboard.TotalEarned.String())
		assert.Equal(t, 5, dashboard.DaysUntilUnlock)
	})

	t.Run("No unexpired investment", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		f.users.EXPECT().GetByID(f.ctx, int64(7)).Return(newStoredUser(7, nil, "0", "0", "0"), nil).Once()
		f.investments.EXPECT().NearestUnlockAfter(f.ctx, int64(7), fixedNow).Return(nil, nil).Once()

		// Execute
		dashboard, err := f.uc.GetDashboard(f.ctx, 7)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, 0, dashboard.DaysUntilUnlock)
		assert.True(t, dashboard.Available.IsZero())
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByID(f.ctx, int64(7)).Return(nil, errs.ErrUserNotFound).Once()

		dashboard, err := f.uc.GetDashboard(f.ctx, 7)

		assert.Nil(t, dashboard)
		assert.True(t, errs.IsUserNotFoundError(err))
	})

	t.Run("Investment lookup failure", func(t *testing.T) {
		f := newFixture(t)
		storeErr := errs.NewStoreError("nearest unlock", errors.New("timeout"))
		f.users.EXPECT().GetByID(f.ctx, int64(7)).Return(newStoredUser(7, nil, "0", "0", "0"), nil).Once()
		f.investments.EXPECT().NearestUnlockAfter(f.ctx, int64(7), fixedNow).Return(nil, storeErr).Once()

		dashboard, err := f.uc.GetDashboard(f.ctx, 7)

		assert.Nil(t, dashboard)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("Invalid user ID", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.GetDashboard(f.ctx, -1)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
