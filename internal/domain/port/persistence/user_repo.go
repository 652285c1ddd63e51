package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
)

// UserTotals aggregates balances across all users
type UserTotals struct {
	TotalUsers    int64
	TotalBalance  decimal.Decimal // Σ(available + trading)
	TotalInvested decimal.Decimal // Σ trading
}

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrStoreUnavailable: If the store fails
	GetByID(ctx context.Context, id int64) (*entity.User, error)

	// GetForUpdate retrieves a user and locks the row until the surrounding transaction ends
	// Must be called with a transactional context
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrStoreUnavailable: If the store fails
	GetForUpdate(ctx context.Context, id int64) (*entity.User, error)

	// Exists checks whether a user with the given ID is registered
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If user with same ID already exists
	// - ErrConstraintViolation: If user data violates a constraint
	// - ErrStoreUnavailable: If the store fails
	Create(ctx context.Context, user *entity.User) error

	// Update persists the user's balances
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrStoreUnavailable: If the store fails
	Update(ctx context.Context, user *entity.User) error

	// ListWithTradingBalance returns every user whose trading balance is positive
	ListWithTradingBalance(ctx context.Context) ([]*entity.User, error)

	// ListRecent returns the most recently registered users, newest first
	ListRecent(ctx context.Context, limit int) ([]*entity.User, error)

	// Totals aggregates user count and balances
	Totals(ctx context.Context) (*UserTotals, error)
}
