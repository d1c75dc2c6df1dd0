package expenses

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"expenses/date"

	"github.com/shopspring/decimal"
)

// The backing file is a flat CSV table with this exact header. Save always
// rewrites the whole file; there is no append or merge with on-disk content.
var csvHeader = []string{"Date", "Category", "Description", "Amount"}

// DecodeLedger decodes records from a CSV stream and returns a Ledger in file
// order.
//
// The decoder is deliberately forgiving about cell values: an amount that
// does not parse as a number is kept as a missing amount (excluded from
// sums), and a date that does not parse is kept as a zero date. Structural
// problems (unreadable CSV, wrong header) are errors; callers degrade those
// to an empty ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read expense table: %w", err)
	}

	ledger := NewLedger()
	if len(rows) == 0 {
		return ledger, nil // empty file, fresh start
	}

	if !equalHeader(rows[0], csvHeader) {
		return nil, fmt.Errorf("unexpected header %v, want %v", rows[0], csvHeader)
	}

	for _, row := range rows[1:] {
		rec := Record{
			Category:    row[1],
			Description: row[2],
		}
		if on, err := date.Parse(row[0]); err == nil {
			rec.Date = on
		}
		if amount, err := decimal.NewFromString(strings.TrimSpace(row[3])); err == nil {
			rec.Amount = decimal.NewNullDecimal(amount)
		}
		ledger.Append(rec)
	}
	return ledger, nil
}

// EncodeLedger writes the full record sequence as a CSV table: one header row
// then one row per record in insertion order. Dates are written at calendar
// day granularity; missing amounts are written as empty cells.
func EncodeLedger(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write expense table header: %w", err)
	}
	for _, r := range l.Records() {
		amount := ""
		if r.Amount.Valid {
			amount = r.Amount.Decimal.String()
		}
		day := ""
		if !r.Date.IsZero() {
			day = r.Date.String()
		}
		row := []string{day, r.Category, r.Description, amount}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write expense row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func equalHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !strings.EqualFold(strings.TrimSpace(got[i]), want[i]) {
			return false
		}
	}
	return true
}
