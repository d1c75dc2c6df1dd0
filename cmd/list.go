package cmd

import (
	"context"
	"flag"
	"fmt"

	"expenses"
	"expenses/renderer"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all recorded expenses" }
func (*listCmd) Usage() string {
	return `spent list

  Lists every expense in the ledger, in the order they were recorded.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := loadLedger()
	if ledger.Len() == 0 {
		fmt.Println(expenses.ErrNoRecords)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Records(ledger.Records()))
	return subcommands.ExitSuccess
}
