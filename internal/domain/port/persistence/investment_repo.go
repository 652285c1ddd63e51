package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
)

// InvestmentRepository defines methods to interact with investments
type InvestmentRepository interface {
	// Create inserts a new investment and sets its ID
	Create(ctx context.Context, investment *entity.Investment) error

	// NearestUnlockAfter returns the earliest unlock time strictly after the given instant
	// Returns nil when the user has no such investment
	NearestUnlockAfter(ctx context.Context, userID int64, after time.Time) (*time.Time, error)
}
