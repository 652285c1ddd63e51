package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Referral represents one leveled edge of the referral graph
type Referral struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	ReferrerID int64           `gorm:"not null;uniqueIndex:idx_referrals_edge,priority:1"`
	ReferralID int64           `gorm:"not null;index;uniqueIndex:idx_referrals_edge,priority:2"`
	Level      int             `gorm:"not null;uniqueIndex:idx_referrals_edge,priority:3"`
	Earned     decimal.Decimal `gorm:"type:numeric(20,8);not null;default:0"`
	CreatedAt  time.Time       `gorm:"not null"`

	Referrer User `gorm:"foreignKey:ReferrerID;references:ID;constraint:OnDelete:CASCADE"`
	Referred User `gorm:"foreignKey:ReferralID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Referral
func (Referral) TableName() string {
	return "referrals"
}
