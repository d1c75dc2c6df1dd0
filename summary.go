package expenses

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryTotal is the summed amount of all records sharing a category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary is the per-category aggregation of a ledger.
type Summary struct {
	// Categories holds one entry per distinct category, ordered by
	// descending total. Categories with equal totals keep the order in
	// which they were first encountered in the ledger.
	Categories []CategoryTotal
	// GrandTotal is the sum of all valid amounts across the whole ledger.
	GrandTotal decimal.Decimal
}

// SummarizeByCategory groups all records by category and sums their amounts.
//
// Records whose amount failed numeric coercion on load are excluded from both
// the per-category totals and the grand total. An empty ledger yields
// ErrNoRecords.
func (l *Ledger) SummarizeByCategory() (*Summary, error) {
	totals, err := l.CategoryTotals()
	if err != nil {
		return nil, err
	}
	grand := decimal.Zero
	for _, ct := range totals {
		grand = grand.Add(ct.Total)
	}
	return &Summary{Categories: totals, GrandTotal: grand}, nil
}

// CategoryTotals returns the per-category sums sorted by descending total.
// This is the raw, unformatted aggregate shared by the summary report and the
// bar chart. An empty ledger yields ErrNoRecords.
func (l *Ledger) CategoryTotals() ([]CategoryTotal, error) {
	if len(l.records) == 0 {
		return nil, ErrNoRecords
	}

	// Single pass: running sum per category, slice keeps first-seen order.
	index := make(map[string]int)
	var totals []CategoryTotal
	for _, r := range l.records {
		if !r.Amount.Valid {
			continue // skip missing amounts, like a NaN-skipping sum
		}
		i, ok := index[r.Category]
		if !ok {
			i = len(totals)
			index[r.Category] = i
			totals = append(totals, CategoryTotal{Category: r.Category})
		}
		totals[i].Total = totals[i].Total.Add(r.Amount.Decimal)
	}

	// Stable sort so that equal totals stay in first-seen order.
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
	return totals, nil
}
