// Package cmd implements the CLI application to manage an expense ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"expenses"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the subcommands the main package registers.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&summaryCmd{},
	&chartCmd{},
	&menuCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var expensesFile = flag.String("expenses-file", "", "Path to the expenses CSV file (defaults to $EXPENSES_FILE or expenses.csv)")

// ledgerPath resolves the backing file: flag, then environment, then default.
func ledgerPath() string {
	if *expensesFile != "" {
		return *expensesFile
	}
	if path := os.Getenv("EXPENSES_FILE"); path != "" {
		return path
	}
	return "expenses.csv"
}

// loadLedger is the central function to open the expense ledger. Any load
// failure degrades to an empty ledger: a missing, empty or unreadable file is
// never fatal, the user just starts fresh.
func loadLedger() *expenses.Ledger {
	path := ledgerPath()
	ledger, err := expenses.LoadLedger(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("no expense file %q found, starting a new ledger", path)
		return expenses.NewLedger()
	case err != nil:
		log.Printf("warning, %v; starting a new ledger", err)
		return expenses.NewLedger()
	}
	return ledger
}

// saveLedger writes the ledger snapshot back to the backing file.
func saveLedger(ledger *expenses.Ledger) subcommands.ExitStatus {
	path := ledgerPath()
	if err := expenses.SaveLedger(path, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving expenses: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("💾 Saved %d expense records to %s.\n", ledger.Len(), path)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text if rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
