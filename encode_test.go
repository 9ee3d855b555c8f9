package smartledger

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeLedger(t *testing.T) {
	l := testLedger()

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatal(err)
	}
	if got, want := strings.Count(buf.String(), "\n"), 3; got != want {
		t.Fatalf("encoded %d lines, want %d", got, want)
	}

	back, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if back.Len() != l.Len() {
		t.Fatalf("decoded %d records, want %d", back.Len(), l.Len())
	}
	want := l.All()
	for i, tx := range back.All() {
		if !tx.Equal(want[i]) {
			t.Errorf("record %d = %+v, want %+v", i, tx, want[i])
		}
	}
}

func TestEncodeStableKeyOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeTransaction(&buf, testLedger().All()[0]); err != nil {
		t.Fatal(err)
	}
	line := buf.String()
	// Keys appear in the canonical order.
	order := []string{`"id"`, `"amount"`, `"kind"`, `"category"`, `"note"`, `"date"`, `"createdAt"`}
	last := -1
	for _, key := range order {
		i := strings.Index(line, key)
		if i < 0 {
			t.Fatalf("key %s missing from %s", key, line)
		}
		if i < last {
			t.Errorf("key %s out of order in %s", key, line)
		}
		last = i
	}
}

func TestDecodeLedgerSkipsEmptyLines(t *testing.T) {
	input := "\n\n"
	l, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Errorf("decoded %d records from empty input", l.Len())
	}
}

func TestDecodeLedgerMalformedLine(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("not json\n")); err == nil {
		t.Errorf("malformed line should fail the decode")
	}
}
