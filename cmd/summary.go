package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/smartledger/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display balance, monthly spending and budget" }
func (*summaryCmd) Usage() string {
	return `sl summary

  Displays the headline figures: balance, this month's spending, remaining
  budget, overall totals and the top spending categories.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	now := time.Now()
	month := ledger.MonthlyExpense(now)
	remaining := ledger.RemainingBudget(settings.MonthlyBudget, now)
	printMarkdown(renderer.Summary(ledger, settings, month, remaining))
	return subcommands.ExitSuccess
}
