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

func TestNewInvestment(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	t.Run("Unlock is start plus lock period", func(t *testing.T) {
		inv, err := NewInvestment(9, decimal.NewFromInt(100), 20*24*time.Hour, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(9), inv.UserID)
		assert.Equal(t, now, inv.StartedAt)
		assert.Equal(t, now.AddDate(0, 0, 20), inv.UnlockAt)
		assert.True(t, inv.IsLocked(now))
		assert.False(t, inv.IsLocked(inv.UnlockAt))
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		inv, err := NewInvestment(9, decimal.Zero, time.Hour, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, inv)
	})

	t.Run("Invalid user", func(t *testing.T) {
		inv, err := NewInvestment(-1, decimal.NewFromInt(1), time.Hour, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, inv)
	})
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		unlock   time.Time
		expected int
	}{
		{"Five days one hour", now.Add(5*24*time.Hour + time.Hour), 5},
		{"Exactly twenty days", now.AddDate(0, 0, 20), 20},
		{"Less than a day", now.Add(23 * time.Hour), 0},
		{"Already unlocked", now.Add(-time.Hour), 0},
		{"Same instant", now, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DaysUntil(tc.unlock, now))
		})
	}
}
