package renderer

import (
	"bytes"
	"fmt"

	"expenses"

	md "github.com/nao1215/markdown"
)

// Summary renders the per-category totals to a markdown string, highest
// spending first, with the grand total underneath.
func Summary(s *expenses.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Category Summary")

	table := md.TableSet{
		Header: []string{"Category", "Total"},
	}
	for _, ct := range s.Categories {
		table.Rows = append(table.Rows, []string{
			ct.Category,
			expenses.M(ct.Total).String(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("**TOTAL SPENT: %s**", expenses.M(s.GrandTotal).String()))

	return doc.String()
}
