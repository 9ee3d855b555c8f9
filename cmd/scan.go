package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/smartledger"
	"github.com/etnz/smartledger/renderer"
	"github.com/google/subcommands"
)

type scanCmd struct {
	image  string
	pick   string
	review bool
}

func (*scanCmd) Name() string     { return "scan" }
func (*scanCmd) Synopsis() string { return "extract and record transactions from a receipt image" }
func (*scanCmd) Usage() string {
	return `sl scan -i <image> [-pick <indexes>] [-review]

  Extracts transaction candidates from a receipt, bill or screenshot image.
  All candidates are selected by default; -pick keeps only the given
  comma-separated indexes selected. The selected candidates are committed to
  the ledger unless -review is set, which only prints them.

Usage Examples:
# Record everything on the receipt.
$ sl scan -i receipt.jpg

# Look first, then keep only rows 0 and 2.
$ sl scan -i receipt.jpg -review
$ sl scan -i receipt.jpg -pick 0,2
`
}

func (p *scanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.image, "i", "", "Path to the image file.")
	f.StringVar(&p.pick, "pick", "", "Comma-separated candidate indexes to keep selected.")
	f.BoolVar(&p.review, "review", false, "Print the candidates without committing.")
}

func (p *scanCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.image == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <image> is required")
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(p.image)
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

	client, err := newParser(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, credentialHint(err))
		return subcommands.ExitFailure
	}

	session := smartledger.NewSession(ledger)
	outcome, err := session.SubmitImage(ctx, client, data, mimeType(p.image))
	switch outcome {
	case smartledger.ParseBatchReady:
		// fall through to the review below
	case smartledger.ParseNothing:
		fmt.Fprintln(os.Stderr, "No transactions recognized in the image.")
		return subcommands.ExitFailure
	case smartledger.ParseNoCredential:
		fmt.Fprintln(os.Stderr, credentialHint(err))
		return subcommands.ExitFailure
	default:
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		return subcommands.ExitFailure
	}

	batch := session.Batch()
	if p.pick != "" {
		keep, err := parsePicks(p.pick, batch.Len())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		for i := 0; i < batch.Len(); i++ {
			if batch.IsSelected(i) != keep[i] {
				if err := batch.Toggle(i); err != nil {
					fmt.Fprintln(os.Stderr, err)
					return subcommands.ExitFailure
				}
			}
		}
	}

	printMarkdown(renderer.Candidates(batch))
	if p.review {
		return subcommands.ExitSuccess
	}

	txs, err := session.CommitBatch()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %d transaction(s):\n", len(txs))
	for _, tx := range txs {
		fmt.Printf("  %s\n", renderer.Transaction(tx))
	}
	return subcommands.ExitSuccess
}

// parsePicks parses a comma-separated index list into a selection mask.
func parsePicks(s string, n int) (map[int]bool, error) {
	keep := make(map[int]bool, n)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid candidate index %q", part)
		}
		if i < 0 || i >= n {
			return nil, fmt.Errorf("candidate index %d out of range [0,%d)", i, n)
		}
		keep[i] = true
	}
	return keep, nil
}

// mimeType guesses the image MIME type from the file extension.
func mimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
