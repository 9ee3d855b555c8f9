package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/etnz/smartledger"
	"github.com/etnz/smartledger/date"
	"github.com/etnz/smartledger/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	kind         string
	category     string
	note         string
	date         string
	reimbursable bool
	refund       bool
}

func (*addCmd) Name() string { return "add" }
func (*addCmd) Synopsis() string {
	return "record a transaction from an arithmetic amount expression"
}
func (*addCmd) Usage() string {
	return `sl add [-k <kind>] [-c <category>] [-n <note>] [-d <date>] [-reimbursable] [-refund] <expression>

  Records one transaction. The expression is typed into the keypad one
  character at a time, so it follows the keypad rules: digits, one decimal
  point per number, and the + - * / operators.

Usage Examples:
# A 12.50 coffee.
$ sl add -c Food -n coffee 12.5

# Three bus tickets.
$ sl add -c Transport -n "bus tickets" "3*2.5"
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.kind, "k", "expense", "Transaction kind (expense, income, transfer).")
	f.StringVar(&p.category, "c", string(smartledger.Other), "Transaction category.")
	f.StringVar(&p.note, "n", "", "Note describing the transaction.")
	f.StringVar(&p.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today.")
	f.BoolVar(&p.reimbursable, "reimbursable", false, "Tag the transaction as reimbursable.")
	f.BoolVar(&p.refund, "refund", false, "Tag the transaction as a refund.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	expr := strings.Join(f.Args(), "")
	if expr == "" {
		fmt.Fprintln(os.Stderr, "Error: an amount expression is required")
		return subcommands.ExitUsageError
	}

	store := openStore()
	ledger, err := store.LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	settings, err := store.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	session := smartledger.NewSession(ledger)
	session.Keypad().SetSettleDelay(0)
	session.Keypad().SetCues(terminalCues{settings})
	if err := session.BeginManual(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	session.Form.Kind = smartledger.ParseKind(p.kind)
	session.Form.Category = smartledger.Category(p.category)
	session.Form.Note = p.note
	session.Form.Reimbursable = p.reimbursable
	session.Form.Refund = p.refund
	if p.date != "" {
		d, err := date.Parse(p.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		session.Form.When = d.Local()
	}

	if session.Keypad().PressSequence(expr) == 0 {
		fmt.Fprintf(os.Stderr, "Error: expression %q holds no valid keystroke\n", expr)
		return subcommands.ExitUsageError
	}

	tx, err := session.Complete()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded: %s\n", renderer.Transaction(*tx))
	remaining := ledger.RemainingBudget(settings.MonthlyBudget, time.Now())
	fmt.Printf("Remaining budget this month: %s\n", smartledger.FormatAmount(remaining))
	return subcommands.ExitSuccess
}
