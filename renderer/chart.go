package renderer

import (
	"fmt"
	"strings"

	"expenses"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// maxBarWidth is the width, in cells, of the longest bar.
const maxBarWidth = 40

var (
	chartTitleStyle = lipgloss.NewStyle().Bold(true)
	chartBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // teal
)

// Chart renders the per-category totals as a horizontal bar chart for the
// terminal: one bar per category, highest spending first, every bar scaled
// against the largest total.
func Chart(totals []expenses.CategoryTotal) string {
	var b strings.Builder

	b.WriteString(chartTitleStyle.Render("Total Spending by Category"))
	b.WriteString("\n\n")

	labelWidth := 0
	max := decimal.Zero
	for _, ct := range totals {
		if len(ct.Category) > labelWidth {
			labelWidth = len(ct.Category)
		}
		if ct.Total.GreaterThan(max) {
			max = ct.Total
		}
	}

	for _, ct := range totals {
		width := 0
		if max.IsPositive() {
			width = int(ct.Total.Div(max).Mul(decimal.NewFromInt(maxBarWidth)).IntPart())
		}
		if width < 1 && ct.Total.IsPositive() {
			width = 1 // a positive total always shows a bar
		}
		bar := chartBarStyle.Render(strings.Repeat("█", width))
		fmt.Fprintf(&b, "%-*s %s %s\n", labelWidth, ct.Category, bar, expenses.M(ct.Total).String())
	}

	return b.String()
}
