package expenses

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// add is a test helper that fails the test on a rejected expense.
func add(t *testing.T, l *Ledger, category, amount string) {
	t.Helper()
	if _, err := l.Add(category, "", amount); err != nil {
		t.Fatalf("Add(%q, %q): %v", category, amount, err)
	}
}

func TestLedger_SummarizeByCategory(t *testing.T) {
	ledger := NewLedger()
	add(t, ledger, "Food", "10.00")
	add(t, ledger, "food", "5.00")
	add(t, ledger, "Rent", "800.00")

	summary, err := ledger.SummarizeByCategory()
	if err != nil {
		t.Fatalf("SummarizeByCategory(): %v", err)
	}

	want := []struct {
		category string
		total    string
	}{
		{"Rent", "800"},
		{"Food", "15"},
	}
	if len(summary.Categories) != len(want) {
		t.Fatalf("got %d categories; want %d", len(summary.Categories), len(want))
	}
	for i, w := range want {
		got := summary.Categories[i]
		if got.Category != w.category || got.Total.String() != w.total {
			t.Errorf("category[%d] = %s %s; want %s %s", i, got.Category, got.Total, w.category, w.total)
		}
	}
	if summary.GrandTotal.String() != "815" {
		t.Errorf("GrandTotal = %s; want 815", summary.GrandTotal)
	}
}

func TestLedger_SummarizeByCategory_Empty(t *testing.T) {
	_, err := NewLedger().SummarizeByCategory()
	if !errors.Is(err, ErrNoRecords) {
		t.Errorf("SummarizeByCategory() on empty ledger: error = %v; want %v", err, ErrNoRecords)
	}
	_, err = NewLedger().CategoryTotals()
	if !errors.Is(err, ErrNoRecords) {
		t.Errorf("CategoryTotals() on empty ledger: error = %v; want %v", err, ErrNoRecords)
	}
}

// Categories with equal totals keep the order in which they first appear in
// the ledger.
func TestLedger_CategoryTotals_TieKeepsFirstSeenOrder(t *testing.T) {
	ledger := NewLedger()
	add(t, ledger, "zoo", "10")
	add(t, ledger, "arcade", "10")
	add(t, ledger, "books", "10")

	totals, err := ledger.CategoryTotals()
	if err != nil {
		t.Fatalf("CategoryTotals(): %v", err)
	}

	want := []string{"Zoo", "Arcade", "Books"}
	for i, w := range want {
		if totals[i].Category != w {
			t.Errorf("totals[%d] = %s; want %s", i, totals[i].Category, w)
		}
	}
}

// Records whose amount failed coercion on load are excluded from every sum.
func TestLedger_CategoryTotals_SkipsMissingAmounts(t *testing.T) {
	ledger := NewLedger()
	add(t, ledger, "Food", "10")
	ledger.Append(Record{Category: "Food"})                                             // missing amount
	ledger.Append(Record{Category: "Ghost"})                                            // category with only missing amounts
	ledger.Append(Record{Category: "Food", Amount: decimal.NewNullDecimal(decimal.New(5, 0))}) // valid

	summary, err := ledger.SummarizeByCategory()
	if err != nil {
		t.Fatalf("SummarizeByCategory(): %v", err)
	}
	if len(summary.Categories) != 1 {
		t.Fatalf("got %d categories; want 1 (missing-only categories are dropped)", len(summary.Categories))
	}
	if got := summary.Categories[0].Total.String(); got != "15" {
		t.Errorf("Food total = %s; want 15", got)
	}
	if summary.GrandTotal.String() != "15" {
		t.Errorf("GrandTotal = %s; want 15", summary.GrandTotal)
	}
}
