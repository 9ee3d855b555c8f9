package smartledger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	l := testLedger()
	if err := store.SaveLedger(l); err != nil {
		t.Fatal(err)
	}
	back, err := store.LoadLedger()
	if err != nil {
		t.Fatal(err)
	}
	if back.Len() != l.Len() {
		t.Fatalf("loaded %d records, want %d", back.Len(), l.Len())
	}

	settings := Settings{MonthlyBudget: 123400, SoundEnabled: false, HapticsEnabled: true}
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	got, err := store.LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got != settings {
		t.Errorf("LoadSettings() = %+v, want %+v", got, settings)
	}
}

func TestStoreMissingFiles(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))

	l, err := store.LoadLedger()
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Errorf("missing ledger file should load empty, got %d records", l.Len())
	}

	settings, err := store.LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings != DefaultSettings() {
		t.Errorf("missing settings file should load defaults, got %+v", settings)
	}
}

func TestStoreCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "transactions.jsonl"), []byte("corrupt\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(dir)

	l, err := store.LoadLedger()
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Errorf("corrupt ledger file should load empty, got %d records", l.Len())
	}

	settings, err := store.LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings != DefaultSettings() {
		t.Errorf("corrupt settings file should load defaults, got %+v", settings)
	}
}
