package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
)

// AmountScale is the number of fractional digits kept for stored amounts
const AmountScale = 8

// DisplayPlaces is the number of fractional digits shown to users
const DisplayPlaces = 2

// ParseAmount validates a non-negative decimal string and returns it as a decimal
// Accepts at most AmountScale fractional digits
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return decimal.Zero, errs.ErrNegativeAmount
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if -value.Exponent() > AmountScale {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, AmountScale)
	}

	return value, nil
}

// RoundAmount rounds a computed amount to the stored scale
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(AmountScale)
}

// FormatAmount renders an amount with two decimal places
// For example: 10 becomes "10.00", 1.005 becomes "1.01"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPlaces)
}

// FormatSignedAmount renders an amount with an explicit sign, as used in history lines
func FormatSignedAmount(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return FormatAmount(amount)
	}
	return "+" + FormatAmount(amount)
}
