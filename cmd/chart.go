package cmd

import (
	"context"
	"flag"
	"fmt"

	"expenses/renderer"

	"github.com/google/subcommands"
)

type chartCmd struct{}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw a bar chart of spending by category" }
func (*chartCmd) Usage() string {
	return `spent chart

  Draws a terminal bar chart of total spending by category.
`
}

func (*chartCmd) SetFlags(*flag.FlagSet) {}

func (*chartCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := loadLedger()
	totals, err := ledger.CategoryTotals()
	if err != nil {
		fmt.Printf("Cannot visualize: %v\n", err)
		return subcommands.ExitSuccess
	}
	fmt.Print(renderer.Chart(totals))
	return subcommands.ExitSuccess
}
