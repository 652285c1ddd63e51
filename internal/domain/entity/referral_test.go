package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/invest-ledger-bot/mocks/port/core"
)

func TestNewReferralEdge(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	t.Run("Valid edge starts with nothing earned", func(t *testing.T) {
		edge, err := NewReferralEdge(1, 2, LevelDirect, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(1), edge.ReferrerID)
		assert.Equal(t, int64(2), edge.ReferralID)
		assert.Equal(t, LevelDirect, edge.Level)
		assert.True(t, edge.Earned.IsZero())
		assert.Equal(t, now, edge.CreatedAt)
	})

	t.Run("Level out of range", func(t *testing.T) {
		for _, level := range []ReferralLevel{0, 3} {
			edge, err := NewReferralEdge(1, 2, level, mockTime)

			assert.ErrorIs(t, err, errs.ErrInvalidReferralLevel)
			assert.Nil(t, edge)
		}
	})

	t.Run("Self referral", func(t *testing.T) {
		edge, err := NewReferralEdge(5, 5, LevelIndirect, mockTime)

		assert.ErrorIs(t, err, errs.ErrSelfReferral)
		assert.Nil(t, edge)
	})

	t.Run("Invalid IDs", func(t *testing.T) {
		_, err := NewReferralEdge(0, 5, LevelDirect, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestReferralEdgeCredit(t *testing.T) {
	edge := &ReferralEdge{Earned: decimal.Zero}

	edge.Credit(decimal.RequireFromString("10"))
	edge.Credit(decimal.RequireFromString("0.5"))

	assert.Equal(t, "10.50", FormatAmount(edge.Earned))
}
