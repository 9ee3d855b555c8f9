package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/smartledger"
	"github.com/google/subcommands"
)

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger with an exported JSON array" }
func (*importCmd) Usage() string {
	return `sl import -i <file>

  Reads a JSON array of transactions (as written by "sl export") and
  replaces the whole ledger with it. A payload that is not a JSON array is
  rejected and the ledger is left untouched.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.input, "i", "", "Input file to import.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <file> is required")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(p.input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	txs, err := smartledger.ImportTransactions(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store := openStore()
	ledger, err := store.LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger.ReplaceAll(txs)
	if err := store.SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d transaction(s)\n", len(txs))
	return subcommands.ExitSuccess
}
