package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
)

// RegisterRequest represents an inbound registration
type RegisterRequest struct {
	UserID        int64
	Username      string
	FirstName     string
	ReferrerToken string // Raw start parameter, may be empty or garbage
}

// Dashboard is the balance overview of one user
type Dashboard struct {
	UserID          int64
	Available       decimal.Decimal
	Trading         decimal.Decimal
	TotalEarned     decimal.Decimal
	DaysUntilUnlock int
}

// ReinvestResult describes a completed reinvestment
type ReinvestResult struct {
	Amount   decimal.Decimal
	UnlockAt time.Time
}

// AccrualResult summarizes one daily profit run
type AccrualResult struct {
	TotalAccrued  decimal.Decimal
	UsersAffected int
	FailedUserIDs []int64
}

// ReferralStats is the referral overview of one referrer
type ReferralStats struct {
	Level1Count int64
	Level2Count int64
	TotalEarned decimal.Decimal
}

// HistoryEntry is a transaction annotated with its display category
type HistoryEntry struct {
	Transaction *entity.Transaction
	Category    entity.Category
}

// LedgerStats is the administrator overview of the whole ledger
type LedgerStats struct {
	TotalUsers    int64
	TotalBalance  decimal.Decimal
	TotalInvested decimal.Decimal
	RecentUsers   []*entity.User
}

// UserInfo is the administrator view of one user
type UserInfo struct {
	User      *entity.User
	Dashboard *Dashboard
	Referrals *ReferralStats
}

// CommissionResult summarizes a commission crediting pass
type CommissionResult struct {
	TotalCredited decimal.Decimal
	Credited      map[int64]decimal.Decimal // referrer ID -> commission
}

// LedgerUseCase defines the ledger operations exposed to the presentation layers
type LedgerUseCase interface {
	// Register creates the user and its referral edges; an existing user is returned unchanged
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)

	// GetDashboard returns balances and the days left until the nearest unlock
	GetDashboard(ctx context.Context, userID int64) (*Dashboard, error)

	// Reinvest moves the available balance into trading and opens a locked investment
	Reinvest(ctx context.Context, userID int64) (*ReinvestResult, error)

	// AccrueDailyProfit credits the daily rate on every trading balance (admin only)
	AccrueDailyProfit(ctx context.Context, callerID int64) (*AccrualResult, error)

	// GetReferralStats returns edge counts by level and the commission earned
	GetReferralStats(ctx context.Context, userID int64) (*ReferralStats, error)

	// GetHistory returns the user's most recent transactions, newest first
	GetHistory(ctx context.Context, userID int64, limit int) ([]HistoryEntry, error)

	// GetLedgerStats returns totals across all users (admin only)
	GetLedgerStats(ctx context.Context, callerID int64) (*LedgerStats, error)

	// GetUserInfo returns the profile, dashboard and referral stats of any user (admin only)
	GetUserInfo(ctx context.Context, callerID, userID int64) (*UserInfo, error)

	// CreditReferralCommissions pays level commissions on a referral's deposit
	CreditReferralCommissions(ctx context.Context, referralID int64, depositAmount decimal.Decimal) (*CommissionResult, error)
}
