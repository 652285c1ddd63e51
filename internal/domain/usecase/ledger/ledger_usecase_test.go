package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
)

func TestPolicyWithDefaults(t *testing.T) {
	t.Run("Zero policy becomes default policy", func(t *testing.T) {
		p := Policy{}.withDefaults()
		d := DefaultPolicy()

		assert.True(t, d.DailyRate.Equal(p.DailyRate))
		assert.Equal(t, 20*24*time.Hour, p.LockPeriod)
		assert.Equal(t, 10, p.HistoryLimit)
		assert.Equal(t, 100, p.MaxHistoryLimit)
		assert.Equal(t, 5, p.RecentUsersLimit)
		assert.Equal(t, d.AccrualLockTTL, p.AccrualLockTTL)
	})

	t.Run("Zero commission rate stays off", func(t *testing.T) {
		p := DefaultPolicy()
		p.Level2Rate = decimal.Zero

		p = p.withDefaults()

		assert.Equal(t, "0.1", p.Level1Rate.String())
		assert.True(t, p.Level2Rate.IsZero())
		assert.True(t, p.commissionRate(entity.LevelIndirect).IsZero())
	})

	t.Run("Configured values are kept", func(t *testing.T) {
		p := Policy{
			DailyRate:       decimal.RequireFromString("0.02"),
			LockPeriod:      time.Hour,
			HistoryLimit:    500,
			MaxHistoryLimit: 50,
		}.withDefaults()

		assert.Equal(t, "0.02", p.DailyRate.String())
		assert.Equal(t, time.Hour, p.LockPeriod)
		assert.Equal(t, 50, p.HistoryLimit, "default limit is capped by the maximum")
		assert.Equal(t, 50, p.MaxHistoryLimit)
	})
}

func TestPolicyCommissionRate(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, "0.1", p.commissionRate(entity.LevelDirect).String())
	assert.Equal(t, "0.05", p.commissionRate(entity.LevelIndirect).String())
	assert.True(t, p.commissionRate(entity.ReferralLevel(3)).IsZero())
}
