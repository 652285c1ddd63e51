package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
)

// Investment records principal moved into trading and when it unlocks
type Investment struct {
	ID        int64
	UserID    int64
	Amount    decimal.Decimal
	StartedAt time.Time
	UnlockAt  time.Time
}

// NewInvestment creates an investment starting now and unlocking after lockPeriod
func NewInvestment(userID int64, amount decimal.Decimal, lockPeriod time.Duration, timeProvider coreport.TimeProvider) (*Investment, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: investment must be positive", errs.ErrInvalidAmount)
	}

	now := timeProvider.Now()
	return &Investment{
		UserID:    userID,
		Amount:    amount,
		StartedAt: now,
		UnlockAt:  now.Add(lockPeriod),
	}, nil
}

// IsLocked reports whether the investment unlocks strictly after now
func (i *Investment) IsLocked(now time.Time) bool {
	return i.UnlockAt.After(now)
}

// DaysUntil returns the whole days between now and unlock, never negative
// 5 days and 1 hour yields 5
func DaysUntil(unlock, now time.Time) int {
	remaining := unlock.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(remaining / (24 * time.Hour))
}
