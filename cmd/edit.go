package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/smartledger"
	"github.com/etnz/smartledger/date"
	"github.com/etnz/smartledger/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	id           string
	remove       bool
	kind         string
	category     string
	note         string
	date         string
	reimbursable bool
	refund       bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "rewrite or delete a recorded transaction" }
func (*editCmd) Usage() string {
	return `sl edit -id <id> [-delete] [field flags] [<expression>]

  Opens the transaction for edition. Field flags override only the fields
  they name; an expression, when given, replaces the amount. With -delete
  the transaction is removed instead.

Usage Examples:
# Fix the amount.
$ sl edit -id 3f2a... 13.5

# Recategorize only.
$ sl edit -id 3f2a... -c Transport
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Id of the transaction to edit.")
	f.BoolVar(&p.remove, "delete", false, "Delete the transaction.")
	f.StringVar(&p.kind, "k", "", "New transaction kind (expense, income, transfer).")
	f.StringVar(&p.category, "c", "", "New category.")
	f.StringVar(&p.note, "n", "", "New note.")
	f.StringVar(&p.date, "d", "", "New date (YYYY-MM-DD).")
	f.BoolVar(&p.reimbursable, "reimbursable", false, "Set the reimbursable tag.")
	f.BoolVar(&p.refund, "refund", false, "Set the refund tag.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	store := openStore()
	ledger, err := store.LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	session := smartledger.NewSession(ledger)
	session.Keypad().SetSettleDelay(0)
	if err := session.BeginEdit(p.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.remove {
		if err := session.DeleteEditing(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := store.SaveLedger(ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted transaction %s\n", p.id)
		return subcommands.ExitSuccess
	}

	// Apply only the flags the user actually set; the others keep the
	// values seeded from the stored record.
	var badDate error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "k":
			session.Form.Kind = smartledger.ParseKind(p.kind)
		case "c":
			session.Form.Category = smartledger.Category(p.category)
		case "n":
			session.Form.Note = p.note
		case "d":
			d, err := date.Parse(p.date)
			if err != nil {
				badDate = err
				return
			}
			session.Form.When = d.Local()
		case "reimbursable":
			session.Form.Reimbursable = p.reimbursable
		case "refund":
			session.Form.Refund = p.refund
		}
	})
	if badDate != nil {
		fmt.Fprintln(os.Stderr, badDate)
		return subcommands.ExitUsageError
	}

	if expr := strings.Join(f.Args(), ""); expr != "" {
		session.Keypad().Clear()
		if session.Keypad().PressSequence(expr) == 0 {
			fmt.Fprintf(os.Stderr, "Error: expression %q holds no valid keystroke\n", expr)
			return subcommands.ExitUsageError
		}
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
	fmt.Printf("Updated: %s\n", renderer.Transaction(*tx))
	return subcommands.ExitSuccess
}
