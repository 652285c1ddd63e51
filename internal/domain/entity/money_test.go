package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{"Integer", "100", "100", nil},
		{"Two decimals", "10.15", "10.15", nil},
		{"Eight decimals", "0.00000001", "0.00000001", nil},
		{"Surrounding whitespace", "  5.5 ", "5.5", nil},
		{"Zero", "0", "0", nil},
		{"Empty", "", "", errs.ErrInvalidAmount},
		{"Negative", "-1.00", "", errs.ErrNegativeAmount},
		{"Not a number", "abc", "", errs.ErrInvalidAmount},
		{"Currency sign", "$10", "", errs.ErrInvalidAmount},
		{"Too many decimals", "1.123456789", "", errs.ErrInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := ParseAmount(tc.input)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(value), "got %s", value)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "10.00", FormatAmount(decimal.NewFromInt(10)))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
	assert.Equal(t, "1.01", FormatAmount(decimal.RequireFromString("1.005")))
	assert.Equal(t, "3.00", FormatAmount(decimal.RequireFromString("2.999")))
	assert.Equal(t, "-5.50", FormatAmount(decimal.RequireFromString("-5.5")))
}

func TestFormatSignedAmount(t *testing.T) {
	assert.Equal(t, "+100.00", FormatSignedAmount(decimal.NewFromInt(100)))
	assert.Equal(t, "+0.00", FormatSignedAmount(decimal.Zero))
	assert.Equal(t, "-20.00", FormatSignedAmount(decimal.NewFromInt(-20)))
}

func TestRoundAmount(t *testing.T) {
	rounded := RoundAmount(decimal.RequireFromString("1.123456789"))
	assert.Equal(t, "1.12345679", rounded.String())
}
