package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
)

// DefaultFirstName is used when the messaging platform does not provide a first name
const DefaultFirstName = "User"

// User represents a ledger participant identified by their Telegram ID
type User struct {
	ID           int64  // Externally assigned identifier
	Username     string // Platform username, may be empty
	FirstName    string
	ReferrerID   *int64 // Direct referrer, fixed at registration
	available    decimal.Decimal
	trading      decimal.Decimal
	totalEarned  decimal.Decimal
	RegisteredAt time.Time
	UpdatedAt    time.Time
}

// Balances groups the three money fields of a user
type Balances struct {
	Available   decimal.Decimal
	Trading     decimal.Decimal
	TotalEarned decimal.Decimal
}

// NewUser creates a new user with zero balances
func NewUser(id int64, username, firstName string, referrerID *int64, timeProvider coreport.TimeProvider) (*User, error) {
	if id <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	if referrerID != nil {
		if *referrerID <= 0 {
			return nil, errs.ErrInvalidUserID
		}
		if *referrerID == id {
			return nil, errs.ErrSelfReferral
		}
	}

	if firstName == "" {
		firstName = DefaultFirstName
	}

	now := timeProvider.Now()
	return &User{
		ID:           id,
		Username:     username,
		FirstName:    firstName,
		ReferrerID:   referrerID,
		available:    decimal.Zero,
		trading:      decimal.Zero,
		totalEarned:  decimal.Zero,
		RegisteredAt: now,
		UpdatedAt:    now,
	}, nil
}

// RestoreUser rebuilds a user from persisted state (for repositories)
func RestoreUser(id int64, username, firstName string, referrerID *int64, balances Balances, registeredAt, updatedAt time.Time) *User {
	return &User{
		ID:           id,
		Username:     username,
		FirstName:    firstName,
		ReferrerID:   referrerID,
		available:    balances.Available,
		trading:      balances.Trading,
		totalEarned:  balances.TotalEarned,
		RegisteredAt: registeredAt,
		UpdatedAt:    updatedAt,
	}
}

// Available returns the withdrawable balance
func (u *User) Available() decimal.Decimal {
	return u.available
}

// Trading returns the balance locked in investments
func (u *User) Trading() decimal.Decimal {
	return u.trading
}

// TotalEarned returns the cumulative profit and commissions
func (u *User) TotalEarned() decimal.Decimal {
	return u.totalEarned
}

// TotalBalance returns available plus trading
func (u *User) TotalBalance() decimal.Decimal {
	return u.available.Add(u.trading)
}

// Balances returns a copy of the money fields
func (u *User) Balances() Balances {
	return Balances{
		Available:   u.available,
		Trading:     u.trading,
		TotalEarned: u.totalEarned,
	}
}

// HasReferrer reports whether the user was registered through a referral link
func (u *User) HasReferrer() bool {
	return u.ReferrerID != nil
}

// DisplayName prefers the username and falls back to the first name
func (u *User) DisplayName() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return u.FirstName
}

// Reinvest moves the whole available balance into trading and returns the moved amount
// Returns an InsufficientFundsError when nothing is available
func (u *User) Reinvest(timeProvider coreport.TimeProvider) (decimal.Decimal, error) {
	if !u.available.IsPositive() {
		return decimal.Zero, errs.NewInsufficientFundsError(u.ID, FormatAmount(u.available))
	}

	amount := u.available
	u.available = decimal.Zero
	u.trading = u.trading.Add(amount)
	u.UpdatedAt = timeProvider.Now()
	return amount, nil
}

// ApplyDailyProfit credits trading*rate to available and total earned and returns the profit
// Profit is computed from the trading balance before the credit
func (u *User) ApplyDailyProfit(rate decimal.Decimal, timeProvider coreport.TimeProvider) decimal.Decimal {
	profit := RoundAmount(u.trading.Mul(rate))
	if !profit.IsPositive() {
		return decimal.Zero
	}

	u.available = u.available.Add(profit)
	u.totalEarned = u.totalEarned.Add(profit)
	u.UpdatedAt = timeProvider.Now()
	return profit
}

// CreditCommission adds a referral commission to available and total earned
func (u *User) CreditCommission(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if amount.IsNegative() {
		return errs.ErrNegativeAmount
	}

	u.available = u.available.Add(amount)
	u.totalEarned = u.totalEarned.Add(amount)
	u.UpdatedAt = timeProvider.Now()
	return nil
}
