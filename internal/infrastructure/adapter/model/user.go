package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents the database model for users
type User struct {
	ID               int64           `gorm:"primaryKey;autoIncrement:false"` // Telegram user ID
	Username         string          `gorm:"size:64"`
	FirstName        string          `gorm:"size:255;not null;default:'User'"`
	BalanceAvailable decimal.Decimal `gorm:"type:numeric(20,8);not null;default:0"`
	BalanceTrading   decimal.Decimal `gorm:"type:numeric(20,8);not null;default:0"`
	TotalEarned      decimal.Decimal `gorm:"type:numeric(20,8);not null;default:0"`
	ReferrerID       *int64          `gorm:"index"`
	RegisteredAt     time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
