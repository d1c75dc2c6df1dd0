package cmd

import (
	"context"
	"flag"
	"fmt"

	"expenses/renderer"

	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display total spending by category" }
func (*summaryCmd) Usage() string {
	return `spent summary

  Displays per-category spending totals, highest first, and the grand total.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := loadLedger()
	summary, err := ledger.SummarizeByCategory()
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Summary(summary))
	return subcommands.ExitSuccess
}
