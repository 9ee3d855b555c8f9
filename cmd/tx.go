package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/smartledger"
	"github.com/etnz/smartledger/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	query string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, grouped by day" }
func (*txCmd) Usage() string {
	return `sl tx [-q <term>]

  Lists transactions grouped by calendar day, most recent first. With -q,
  only transactions whose note, category or amount text contains the term
  are listed.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.query, "q", "", "Case-insensitive search term.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openStore().LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	groups := smartledger.GroupByDay(ledger.Search(p.query))
	printMarkdown(renderer.Transactions(groups))
	return subcommands.ExitSuccess
}
