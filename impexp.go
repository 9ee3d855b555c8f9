package smartledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// This file contains the import/export format: a single pretty-printed JSON
// array, readable by humans and by the web application the data came from.

// ErrNotArray is returned when an import payload is valid JSON but not an
// array of transactions.
var ErrNotArray = errors.New("import payload is not a JSON array")

// ExportTransactions writes the ledger as an indented JSON array, in display
// order.
func ExportTransactions(w io.Writer, ledger *Ledger) error {
	txs := ledger.All()
	if txs == nil {
		txs = []Transaction{}
	}
	data, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal transactions: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write export: %w", err)
	}
	return nil
}

// ImportTransactions reads an exported JSON array. The payload is rejected
// outright unless it is an array; the caller only replaces its ledger with
// the returned slice on success, so a bad file never half-applies.
func ImportTransactions(r io.Reader) ([]Transaction, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("cannot read import payload: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, ErrNotArray
	}
	txs := []Transaction{}
	for dec.More() {
		var tx Transaction
		if err := dec.Decode(&tx); err != nil {
			return nil, fmt.Errorf("cannot decode transaction %d: %w", len(txs), err)
		}
		txs = append(txs, tx)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("cannot read import payload: %w", err)
	}
	return txs, nil
}
