// Package renderer converts ledger values into markdown reports and the
// terminal bar chart. It holds no state: every function is a pure mapping
// from a report value to a string.
package renderer

import (
	"bytes"
	"fmt"

	"expenses"

	md "github.com/nao1215/markdown"
)

// Records renders the full expense listing to a markdown string, one row per
// record in insertion order.
func Records(records []expenses.Record) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("All Recorded Expenses")

	table := md.TableSet{
		Header: []string{"#", "Date", "Category", "Description", "Amount"},
	}
	for i, r := range records {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i),
			r.Date.String(),
			r.Category,
			r.Description,
			expenses.FormatAmount(r.Amount),
		})
	}
	doc.Table(table)

	return doc.String()
}
