package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
)

// ReferralSummary holds edge counts by level and the earned sum for one referrer
type ReferralSummary struct {
	Level1Count int64
	Level2Count int64
	TotalEarned decimal.Decimal
}

// ReferralRepository defines methods to interact with referral edges
type ReferralRepository interface {
	// Create inserts a new edge
	//
	// Possible errors:
	// - ErrDuplicateReferral: If an edge for the same referrer, referral and level exists
	// - ErrConstraintViolation: If a referenced user doesn't exist
	// - ErrStoreUnavailable: If the store fails
	Create(ctx context.Context, edge *entity.ReferralEdge) error

	// ListByReferral returns the incoming edges of a referral, ordered by level
	ListByReferral(ctx context.Context, referralID int64) ([]*entity.ReferralEdge, error)

	// AddEarned increments the earned amount of an edge
	AddEarned(ctx context.Context, edgeID int64, amount decimal.Decimal) error

	// SummaryByReferrer counts outgoing edges by level and sums their earned amounts
	SummaryByReferrer(ctx context.Context, referrerID int64) (*ReferralSummary, error)
}
