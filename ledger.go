package expenses

import (
	"errors"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel errors for the failure cases an operation can report. Every one of
// them is recoverable: callers surface a message and return to their loop.
var (
	// ErrInvalidAmount reports an amount input that is not a number.
	ErrInvalidAmount = errors.New("invalid amount: not a number")
	// ErrAmountNotPositive reports an amount input that is zero or negative.
	ErrAmountNotPositive = errors.New("amount must be positive")
	// ErrNoRecords reports an aggregate requested on an empty ledger.
	ErrNoRecords = errors.New("no expenses recorded yet")
)

// Ledger holds the ordered collection of all expense records.
//
// Insertion order is preserved and is the order of display. A Ledger is not
// safe for concurrent use; the CLI is strictly single-threaded.
type Ledger struct {
	records []Record
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{records: make([]Record, 0)}
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns a copy of all records in insertion order.
func (l *Ledger) Records() []Record { return slices.Clone(l.records) }

// Append adds an already-built record to the end of the ledger. It is used by
// the decoder; interactive input goes through Add which validates the amount.
func (l *Ledger) Append(r Record) { l.records = append(l.records, r) }

// Add validates amountInput, builds a record dated today and appends it.
//
// It returns ErrInvalidAmount when amountInput does not parse as a decimal
// number, and ErrAmountNotPositive when it parses to a value <= 0. In both
// cases the ledger is left unchanged. On success the created record is
// returned so the caller can confirm it to the user. Nothing is written to
// disk here; persistence is an explicit Save.
func (l *Ledger) Add(category, description, amountInput string) (Record, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(amountInput))
	if err != nil {
		return Record{}, ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return Record{}, ErrAmountNotPositive
	}
	r := NewRecord(category, description, amount)
	l.records = append(l.records, r)
	return r, nil
}
