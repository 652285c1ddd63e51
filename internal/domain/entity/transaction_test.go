package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/invest-ledger-bot/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid transaction", func(t *testing.T) {
		tx, err := NewTransaction(42, KindInvestment, decimal.RequireFromString("12.5"), DescriptionReinvestment, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(42), tx.UserID)
		assert.Equal(t, KindInvestment, tx.Kind)
		assert.Equal(t, "12.50", FormatAmount(tx.Amount))
		assert.Equal(t, "Reinvestment", tx.Description)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.True(t, tx.IsCredit())
	})

	t.Run("Negative amount is kept signed", func(t *testing.T) {
		tx, err := NewTransaction(42, KindWithdraw, decimal.NewFromInt(-20), "Withdrawal", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "-20.00", FormatAmount(tx.Amount))
		assert.False(t, tx.IsCredit())
	})

	t.Run("Amount is rounded to stored scale", func(t *testing.T) {
		tx, err := NewTransaction(42, KindDaily, decimal.RequireFromString("0.123456789"), DescriptionDailyProfit, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "0.12345679", tx.Amount.String())
	})

	t.Run("Invalid user ID", func(t *testing.T) {
		tx, err := NewTransaction(0, KindDaily, decimal.NewFromInt(1), "", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, tx)
	})

	t.Run("Invalid kind", func(t *testing.T) {
		tx, err := NewTransaction(42, TransactionKind("bonus"), decimal.NewFromInt(1), "", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidTransactionKind)
		assert.Contains(t, err.Error(), "bonus")
		assert.Nil(t, tx)
	})
}

func TestCategoryOf(t *testing.T) {
	testCases := []struct {
		kind     TransactionKind
		expected string
	}{
		{KindDeposit, "📥 Deposit"},
		{KindWithdraw, "📤 Withdrawal"},
		{KindInvestment, "💰 Investment"},
		{KindDaily, "📈 Daily profit"},
		{KindReferral, "👥 Referral bonus"},
		{TransactionKind("bonus"), "📝 Other"},
		{TransactionKind(""), "📝 Other"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.expected, CategoryOf(tc.kind).String())

			tx := &Transaction{Kind: tc.kind}
			assert.Equal(t, tc.expected, tx.Category().String())
		})
	}
}
