package expenses

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The ledger tracks a single currency; amounts are displayed in it.
const displayCurrency = "USD"

// Money wraps a decimal amount for currency display ("$1,234.56").
type Money struct {
	value decimal.Decimal
}

// M builds a Money from a decimal major-unit value.
func M(value decimal.Decimal) Money { return Money{value: value} }

// currency returns the display currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, displayCurrency).Currency()
}

// String renders the value with the currency symbol, thousands separators and
// the currency's fraction digits.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// FormatAmount renders an amount as currency text. A missing amount (failed
// numeric coercion on load) renders as "n/a".
func FormatAmount(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return "n/a"
	}
	return M(amount.Decimal).String()
}
