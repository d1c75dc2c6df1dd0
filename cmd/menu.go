package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"expenses"
	"expenses/renderer"

	"github.com/google/subcommands"
)

// menuCmd is the interactive menu loop. It is the default command when the
// binary runs without arguments.
type menuCmd struct {
	in    io.Reader // defaults to os.Stdin
	out   io.Writer // defaults to os.Stdout
	plain bool      // skip terminal markdown rendering (used by tests)
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive expense tracker menu" }
func (*menuCmd) Usage() string {
	return `spent menu

  Runs the interactive menu loop: add, view, summarize, visualize, then save
  and exit or exit without saving.
`
}

func (*menuCmd) SetFlags(*flag.FlagSet) {}

func (m *menuCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if m.in == nil {
		m.in = os.Stdin
	}
	if m.out == nil {
		m.out = os.Stdout
	}

	ledger := loadLedger()
	if m.run(ledger) {
		return saveLedger(ledger)
	}
	fmt.Fprintln(m.out, "⚠️ Exiting without saving. Changes will be lost.")
	return subcommands.ExitSuccess
}

// run loops over the menu until the user picks one of the two exit choices.
// It reports whether the ledger should be saved on the way out. End of input
// counts as exit without saving.
func (m *menuCmd) run(ledger *expenses.Ledger) (save bool) {
	scanner := bufio.NewScanner(m.in)
	for {
		m.printMenu()
		choice, ok := m.readLine(scanner, "Enter your choice (1-6): ")
		if !ok {
			return false
		}

		switch choice {
		case "1":
			m.addExpense(scanner, ledger)
		case "2":
			m.viewAll(ledger)
		case "3":
			m.summarize(ledger)
		case "4":
			m.visualize(ledger)
		case "5":
			fmt.Fprintln(m.out, "Exiting. Goodbye!")
			return true
		case "6":
			return false
		default:
			fmt.Fprintln(m.out, "⚠️ Invalid choice. Please enter a number between 1 and 6.")
		}
	}
}

func (m *menuCmd) printMenu() {
	fmt.Fprint(m.out, `
========================================
  EXPENSE TRACKER
========================================
1. Add a new expense
2. View all expenses
3. Summarize by category
4. Visualize expenses (bar chart)
5. Save and exit
6. Exit without saving
----------------------------------------
`)
}

// readLine prompts and reads one trimmed line. ok is false at end of input.
func (m *menuCmd) readLine(scanner *bufio.Scanner, prompt string) (line string, ok bool) {
	fmt.Fprint(m.out, prompt)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func (m *menuCmd) addExpense(scanner *bufio.Scanner, ledger *expenses.Ledger) {
	fmt.Fprintln(m.out, "\n--- Add New Expense ---")
	category, ok := m.readLine(scanner, "Category (e.g. Food, Transport, Rent): ")
	if !ok {
		return
	}
	description, ok := m.readLine(scanner, "Description: ")
	if !ok {
		return
	}
	amount, ok := m.readLine(scanner, "Amount: ")
	if !ok {
		return
	}

	rec, err := ledger.Add(category, description, amount)
	if err != nil {
		fmt.Fprintf(m.out, "❌ %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "✅ Added expense: %s - %s (%s)\n", rec.Category, rec.Description, rec.Amount.Decimal.StringFixed(2))
}

func (m *menuCmd) viewAll(ledger *expenses.Ledger) {
	if ledger.Len() == 0 {
		fmt.Fprintln(m.out, expenses.ErrNoRecords)
		return
	}
	m.show(renderer.Records(ledger.Records()))
}

func (m *menuCmd) summarize(ledger *expenses.Ledger) {
	summary, err := ledger.SummarizeByCategory()
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	m.show(renderer.Summary(summary))
}

func (m *menuCmd) visualize(ledger *expenses.Ledger) {
	totals, err := ledger.CategoryTotals()
	if err != nil {
		fmt.Fprintf(m.out, "Cannot visualize: %v\n", err)
		return
	}
	fmt.Fprint(m.out, renderer.Chart(totals))
}

// show renders a markdown report to the menu output.
func (m *menuCmd) show(md string) {
	if m.plain {
		fmt.Fprint(m.out, md)
		return
	}
	printMarkdown(md)
}
