package smartledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// File names inside the store directory.
const (
	ledgerFile   = "transactions.jsonl"
	settingsFile = "settings.json"
)

// Store is the durable home of a ledger and its settings: a directory with
// one JSONL file for transactions and one JSON file for settings. Loads are
// forgiving: a missing or corrupt file yields the empty ledger or the
// default settings, never an abort, because user data that fails to parse
// must not brick the application.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on the
// first save.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the store directory.
func (s *Store) Dir() string { return s.dir }

// LoadLedger reads the stored ledger. Missing file means empty ledger; a
// corrupt file is logged and treated as empty.
func (s *Store) LoadLedger() (*Ledger, error) {
	path := filepath.Join(s.dir, ledgerFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		log.Printf("warning: ledger file %q is corrupt, starting empty: %v", path, err)
		return NewLedger(), nil
	}
	return ledger, nil
}

// SaveLedger rewrites the stored ledger.
func (s *Store) SaveLedger(ledger *Ledger) error {
	path := filepath.Join(s.dir, ledgerFile)
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	defer f.Close()
	return EncodeLedger(f, ledger)
}

// LoadSettings reads the stored settings, falling back to defaults when the
// file is missing or corrupt.
func (s *Store) LoadSettings() (Settings, error) {
	path := filepath.Join(s.dir, settingsFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("could not read settings file %q: %w", path, err)
	}
	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("warning: settings file %q is corrupt, using defaults: %v", path, err)
		return DefaultSettings(), nil
	}
	return settings, nil
}

// SaveSettings rewrites the stored settings.
func (s *Store) SaveSettings(settings Settings) error {
	path := filepath.Join(s.dir, settingsFile)
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal settings: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("error writing settings file %q: %w", path, err)
	}
	return nil
}
