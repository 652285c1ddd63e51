package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment represents principal moved into trading and its unlock date
type Investment struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	UserID    int64           `gorm:"not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	StartedAt time.Time       `gorm:"not null"`
	UnlockAt  time.Time       `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Investment
func (Investment) TableName() string {
	return "investments"
}
