package expenses

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"expenses/date"

	"github.com/shopspring/decimal"
)

// Record represents a single spending event.
//
// Records are immutable once created: the ledger only grows within a session
// and there is no update or delete operation.
type Record struct {
	// Date is the calendar day the expense was recorded on.
	Date date.Date
	// Category is the normalized grouping label, e.g. "Food".
	Category string
	// Description is a free-text note about the expense.
	Description string
	// Amount is the expense value. Amount.Valid is false when the value could
	// not be coerced to a number on load; such amounts are excluded from sums.
	Amount decimal.NullDecimal
}

// NewRecord creates a record dated today with a normalized category, a
// trimmed description and a valid amount.
func NewRecord(category, description string, amount decimal.Decimal) Record {
	return Record{
		Date:        date.Today(),
		Category:    NormalizeCategory(category),
		Description: strings.TrimSpace(description),
		Amount:      decimal.NewNullDecimal(amount),
	}
}

// NormalizeCategory trims the label and capitalizes it: first rune upper,
// rest lower ("foOD" becomes "Food"). Grouping equality is defined on the
// normalized form.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(category)
	return string(unicode.ToUpper(first)) + strings.ToLower(category[size:])
}
