package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	tport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
)

// TransactionKind represents what caused a ledger movement
type TransactionKind string

// Transaction kinds
const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdraw   TransactionKind = "withdraw"
	KindInvestment TransactionKind = "investment"
	KindDaily      TransactionKind = "daily"
	KindReferral   TransactionKind = "referral"
)

// Descriptions written by the ledger engine
const (
	DescriptionReinvestment = "Reinvestment"
	DescriptionDailyProfit  = "Daily profit"
	DescriptionReferral     = "Referral bonus (level %d)"
)

// Category is the display annotation of a transaction kind
type Category struct {
	Icon  string
	Label string
}

// String renders the category as "icon label"
func (c Category) String() string {
	return c.Icon + " " + c.Label
}

var categories = map[TransactionKind]Category{
	KindDeposit:    {Icon: "📥", Label: "Deposit"},
	KindWithdraw:   {Icon: "📤", Label: "Withdrawal"},
	KindInvestment: {Icon: "💰", Label: "Investment"},
	KindDaily:      {Icon: "📈", Label: "Daily profit"},
	KindReferral:   {Icon: "👥", Label: "Referral bonus"},
}

// OtherCategory is used for kinds without a dedicated category
var OtherCategory = Category{Icon: "📝", Label: "Other"}

// CategoryOf returns the display category for a kind
func CategoryOf(kind TransactionKind) Category {
	if c, ok := categories[kind]; ok {
		return c
	}
	return OtherCategory
}

// IsValid reports whether the kind belongs to the known set
func (k TransactionKind) IsValid() bool {
	_, ok := categories[k]
	return ok
}

// Transaction is an immutable, append-only ledger record
type Transaction struct {
	ID          int64
	UserID      int64
	Kind        TransactionKind
	Amount      decimal.Decimal // Signed amount
	Description string
	CreatedAt   time.Time
}

// NewTransaction creates a new transaction with basic validation
func NewTransaction(
	userID int64,
	kind TransactionKind,
	amount decimal.Decimal,
	description string,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionKind, kind)
	}

	return &Transaction{
		UserID:      userID,
		Kind:        kind,
		Amount:      RoundAmount(amount),
		Description: description,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// Category returns the display category of the transaction
func (t *Transaction) Category() Category {
	return CategoryOf(t.Kind)
}

// IsCredit returns true if this transaction increased a balance
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}
