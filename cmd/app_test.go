package cmd

import "testing"

func TestLedgerPath(t *testing.T) {
	// Flag wins over environment, environment wins over the default.
	t.Setenv("EXPENSES_FILE", "")
	if got := ledgerPath(); got != "expenses.csv" {
		t.Errorf("default ledgerPath() = %q; want expenses.csv", got)
	}

	t.Setenv("EXPENSES_FILE", "/tmp/env.csv")
	if got := ledgerPath(); got != "/tmp/env.csv" {
		t.Errorf("env ledgerPath() = %q; want /tmp/env.csv", got)
	}

	*expensesFile = "flag.csv"
	defer func() { *expensesFile = "" }()
	if got := ledgerPath(); got != "flag.csv" {
		t.Errorf("flag ledgerPath() = %q; want flag.csv", got)
	}
}
