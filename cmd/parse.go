package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/smartledger"
	"github.com/etnz/smartledger/renderer"
	"github.com/google/subcommands"
)

type parseCmd struct{}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "record a transaction from a free text sentence" }
func (*parseCmd) Usage() string {
	return `sl parse <sentence...>

  Extracts one transaction from a free text sentence and records it
  immediately.

Usage Examples:
$ sl parse lunch with the team 45.80, will expense it
`
}

func (*parseCmd) SetFlags(*flag.FlagSet) {}

func (p *parseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input := strings.TrimSpace(strings.Join(f.Args(), " "))
	if input == "" {
		fmt.Fprintln(os.Stderr, "Error: a sentence is required")
		return subcommands.ExitUsageError
	}

	store := openStore()
	ledger, err := store.LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := newParser(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, credentialHint(err))
		return subcommands.ExitFailure
	}

	session := smartledger.NewSession(ledger)
	outcome, tx, err := session.SubmitText(ctx, client, input)
	switch outcome {
	case smartledger.ParseCommitted:
		if err := store.SaveLedger(ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Recorded: %s\n", renderer.Transaction(*tx))
		return subcommands.ExitSuccess
	case smartledger.ParseNothing:
		fmt.Fprintln(os.Stderr, "No transaction recognized in the sentence.")
		return subcommands.ExitFailure
	case smartledger.ParseNoCredential:
		fmt.Fprintln(os.Stderr, credentialHint(err))
		return subcommands.ExitFailure
	default:
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		return subcommands.ExitFailure
	}
}

// credentialHint turns a credential error into an actionable message.
func credentialHint(err error) string {
	return fmt.Sprintf("%v\nSet GEMINI_API_KEY in the environment or in a .env file.", err)
}
