package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/smartledger"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as a JSON array" }
func (*exportCmd) Usage() string {
	return `sl export [-o <file>]

  Writes the full ledger as a pretty-printed JSON array, to stdout or to the
  given file. The output is what "sl import" accepts.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file (defaults to stdout).")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := openStore().LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if p.output != "" {
		file, err := os.Create(p.output)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := smartledger.ExportTransactions(w, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.output != "" {
		fmt.Printf("Exported %d transaction(s) to %s\n", ledger.Len(), p.output)
	}
	return subcommands.ExitSuccess
}
