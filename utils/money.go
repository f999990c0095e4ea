package utils

import "github.com/shopspring/decimal"

// Money columns are NUMERIC(14, 2)
const (
	AmountScale         = 2
	AmountIntegerDigits = 12
)

var maxAmount = decimal.New(1, AmountIntegerDigits)

// FitsAmountColumn reports whether d is stored without rounding or overflow.
// Trailing zeros beyond the scale are fine: 1.230 fits, 1.239 does not.
func FitsAmountColumn(d decimal.Decimal) bool {
	return d.Abs().LessThan(maxAmount) && d.Equal(d.Truncate(AmountScale))
}
