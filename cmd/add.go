package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCmd struct {
	category    string
	description string
	amount      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense" }
func (*addCmd) Usage() string {
	return `spent add -c <category> -a <amount> [-d <description>]

  Records a new expense dated today and saves the ledger.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Expense category (e.g. Food, Transport, Rent)")
	f.StringVar(&c.description, "d", "", "Free-text description")
	f.StringVar(&c.amount, "a", "", "Amount spent")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" && c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger := loadLedger()
	rec, err := ledger.Add(c.category, c.description, c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	fmt.Printf("✅ Added expense: %s - %s (%s)\n", rec.Category, rec.Description, rec.Amount.Decimal.StringFixed(2))
	return saveLedger(ledger)
}
