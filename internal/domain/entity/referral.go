package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
)

// ReferralLevel is the distance between referrer and referral in the referral chain
type ReferralLevel int

// Referral levels
const (
	LevelDirect   ReferralLevel = 1
	LevelIndirect ReferralLevel = 2
)

// IsValid reports whether the level is 1 or 2
func (l ReferralLevel) IsValid() bool {
	return l == LevelDirect || l == LevelIndirect
}

// ReferralEdge is a directed, leveled attribution link from a referrer to a referral
type ReferralEdge struct {
	ID         int64
	ReferrerID int64
	ReferralID int64
	Level      ReferralLevel
	Earned     decimal.Decimal // Commission credited through this edge
	CreatedAt  time.Time
}

// NewReferralEdge creates an edge with nothing earned yet
func NewReferralEdge(referrerID, referralID int64, level ReferralLevel, timeProvider coreport.TimeProvider) (*ReferralEdge, error) {
	if referrerID <= 0 || referralID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	if referrerID == referralID {
		return nil, errs.ErrSelfReferral
	}
	if !level.IsValid() {
		return nil, errs.ErrInvalidReferralLevel
	}

	return &ReferralEdge{
		ReferrerID: referrerID,
		ReferralID: referralID,
		Level:      level,
		Earned:     decimal.Zero,
		CreatedAt:  timeProvider.Now(),
	}, nil
}

// Credit adds a commission to the edge's earned total
func (e *ReferralEdge) Credit(amount decimal.Decimal) {
	e.Earned = e.Earned.Add(amount)
}
