package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/persistence"
)

func TestLedgerUseCase_GetReferralStats(t *testing.T) {
	t.Run("Counts per level and earned sum", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		f.referrals.EXPECT().SummaryByReferrer(f.ctx, int64(50)).Return(&persistence.ReferralSummary{
			Level1Count: 3,
			Level2Count: 1,
			TotalEarned: decimal.Zero,
		}, nil).Once()

		// Execute
		stats, err := f.uc.GetReferralStats(f.ctx, 50)

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.Level1Count)
		assert.Equal(t, int64(1), stats.Level2Count)
		assert.True(t, stats.TotalEarned.IsZero())
	})

	t.Run("Store failure", func(t *testing.T) {
		f := newFixture(t)
		f.referrals.EXPECT().SummaryByReferrer(f.ctx, int64(50)).
			Return(nil, errs.NewStoreError("referral summary", errors.New("timeout"))).Once()

		stats, err := f.uc.GetReferralStats(f.ctx, 50)

		assert.Nil(t, stats)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestLedgerUseCase_CreditReferralCommissions(t *testing.T) {
	t.Run("Pays ten and five percent to both levels", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		f.expectCommit()
		f.referrals.EXPECT().ListByReferral(f.txCtx, int64(100)).Return([]*entity.ReferralEdge{
			{ID: 11, ReferrerID: 50, ReferralID: 100, Level: entity.LevelDirect, Earned: decimal.Zero},
			{ID: 12, ReferrerID: 10, ReferralID: 100, Level: entity.LevelIndirect, Earned: decimal.Zero},
		}, nil).Once()

		f.users.EXPECT().GetForUpdate(f.txCtx, int64(50)).Return(newStoredUser(50, ptr(10), "1", "0", "1"), nil).Once()
		f.users.EXPECT().GetForUpdate(f.txCtx, int64(10)).Return(newStoredUser(10, nil, "0", "0", "0"), nil).Once()
		f.users.EXPECT().Update(f.txCtx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 50 && entity.FormatAmount(u.Available()) == "11.00" && entity.FormatAmount(u.TotalEarned()) == "11.00"
		})).Return(nil).Once()
		f.users.EXPECT().Update(f.txCtx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 10 && entity.FormatAmount(u.Available()) == "5.00"
		})).Return(nil).Once()

		f.referrals.EXPECT().AddEarned(f.txCtx, int64(11), mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(10)) })).Return(nil).Once()
		f.referrals.EXPECT().AddEarned(f.txCtx, int64(12), mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(5)) })).Return(nil).Once()

		f.transactions.EXPECT().Create(f.txCtx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.UserID == 50 && tx.Kind == entity.KindReferral && tx.Description == "Referral bonus (level 1)"
		})).Return(nil).Once()
		f.transactions.EXPECT().Create(f.txCtx, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.UserID == 10 && tx.Kind == entity.KindReferral && tx.Description == "Referral bonus (level 2)"
		})).Return(nil).Once()

		// Execute
		result, err := f.uc.CreditReferralCommissions(f.ctx, 100, decimal.NewFromInt(100))

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, "15.00", entity.FormatAmount(result.TotalCredited))
		assert.Equal(t, "10.00", entity.FormatAmount(result.Credited[50]))
		assert.Equal(t, "5.00", entity.FormatAmount(result.Credited[10]))
	})

	t.Run("Referral without edges credits nothing", func(t *testing.T) {
		f := newFixture(t)
		f.expectCommit()
		f.referrals.EXPECT().ListByReferral(f.txCtx, int64(100)).Return([]*entity.ReferralEdge{}, nil).Once()

		result, err := f.uc.CreditReferralCommissions(f.ctx, 100, decimal.NewFromInt(100))

		require.NoError(t, err)
		assert.True(t, result.TotalCredited.IsZero())
		assert.Empty(t, result.Credited)
	})

	t.Run("Failure rolls back all levels", func(t *testing.T) {
		// Setup mocks
		f := newFixture(t)
		f.expectRollback()
		f.referrals.EXPECT().ListByReferral(f.txCtx, int64(100)).Return([]*entity.ReferralEdge{
			{ID: 11, ReferrerID: 50, ReferralID: 100, Level: entity.LevelDirect, Earned: decimal.Zero},
		}, nil).Once()
		f.users.EXPECT().GetForUpdate(f.txCtx, int64(50)).Return(newStoredUser(50, nil, "0", "0", "0"), nil).Once()
		f.users.EXPECT().Update(f.txCtx, mock.Anything).Return(nil).Once()
		f.referrals.EXPECT().AddEarned(f.txCtx, int64(11), mock.Anything).Return(errs.ErrStoreUnavailable).Once()

		// Execute
		result, err := f.uc.CreditReferralCommissions(f.ctx, 100, decimal.NewFromInt(100))

		// Assertions
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("Invalid input", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.CreditReferralCommissions(f.ctx, 100, decimal.Zero)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = f.uc.CreditReferralCommissions(f.ctx, 0, decimal.NewFromInt(1))
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
