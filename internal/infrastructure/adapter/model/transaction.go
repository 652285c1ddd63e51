package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for the append-only transaction log
type Transaction struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	UserID      int64           `gorm:"not null;index"`
	Kind        string          `gorm:"not null;size:20"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
