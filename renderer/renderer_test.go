package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/smartledger"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var testNow = time.Date(2026, time.August, 28, 10, 30, 0, 0, time.Local)

func record(amount int64, kind smartledger.Kind, category smartledger.Category, note, day string) smartledger.Transaction {
	return smartledger.Draft{Amount: amount, Kind: kind, Category: category, Note: note, Date: day}.Normalize(testNow)
}

// headings parses markdown and returns the heading texts in document order.
func headings(t *testing.T, source string) []string {
	t.Helper()
	content := []byte(source)
	root := goldmark.DefaultParser().Parse(text.NewReader(content))

	var out []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			out = append(out, string(h.Text(content)))
		}
		return ast.WalkContinue, nil
	})
	return out
}

func TestTransactionLine(t *testing.T) {
	tx := record(1250, smartledger.Expense, smartledger.Food, "coffee", "2026-08-10")
	tx.Tags = []string{"reimbursable"}
	line := Transaction(tx)
	for _, want := range []string{"2026-08-10", smartledger.FormatSignedAmount(-1250), "coffee", "Food & Drink", "[reimbursable]"} {
		if !strings.Contains(line, want) {
			t.Errorf("Transaction() = %q, missing %q", line, want)
		}
	}
}

func TestTransactions(t *testing.T) {
	l := smartledger.NewLedger()
	l.Add(record(1000, smartledger.Expense, smartledger.Food, "breakfast", "2026-08-10"))
	l.Add(record(5000, smartledger.Income, smartledger.Other, "gift", "2026-08-12"))
	l.Add(record(2000, smartledger.Expense, smartledger.Food, "lunch", "2026-08-10"))

	out := Transactions(smartledger.GroupByDay(l.All()))

	got := headings(t, out)
	want := []string{"Transactions", "2026-08-12", "2026-08-10"}
	if len(got) != len(want) {
		t.Fatalf("headings = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heading %d = %q, want %q", i, got[i], want[i])
		}
	}

	// Per-day totals and one table row per record.
	if !strings.Contains(out, "spent "+smartledger.FormatAmount(3000)) {
		t.Errorf("missing day expense total in:\n%s", out)
	}
	if !strings.Contains(out, "received "+smartledger.FormatAmount(5000)) {
		t.Errorf("missing day income total in:\n%s", out)
	}
	for _, note := range []string{"breakfast", "lunch", "gift"} {
		if !strings.Contains(out, "| "+note+" |") {
			t.Errorf("missing table row for %q in:\n%s", note, out)
		}
	}
}

func TestTransactionsEmpty(t *testing.T) {
	out := Transactions(nil)
	if !strings.Contains(out, "No transactions.") {
		t.Errorf("empty rendering = %q", out)
	}
}

func TestCandidates(t *testing.T) {
	b, err := smartledger.NewBatch([]smartledger.Draft{
		{Amount: 100, Kind: smartledger.Expense, Note: "tea", Confidence: 0.9},
		{Amount: 200, Kind: smartledger.Expense, Date: "2026-08-10"},
	})
	if err != nil {
		t.Fatal(err)
	}
	b.Toggle(1)

	out := Candidates(b)
	if !strings.Contains(out, "(1 selected of 2)") {
		t.Errorf("missing selection count in:\n%s", out)
	}
	if !strings.Contains(out, "[x] 0. ") || !strings.Contains(out, "[ ] 1. ") {
		t.Errorf("selection markers wrong in:\n%s", out)
	}
	if !strings.Contains(out, "(90%)") {
		t.Errorf("missing confidence in:\n%s", out)
	}
	if !strings.Contains(out, "(no note)") {
		t.Errorf("missing note placeholder in:\n%s", out)
	}

	// The checklist parses as a markdown list with one item per candidate.
	content := []byte(out)
	root := goldmark.DefaultParser().Parse(text.NewReader(content))
	items := 0
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if _, ok := n.(*ast.ListItem); ok {
				items++
			}
		}
		return ast.WalkContinue, nil
	})
	if items != 2 {
		t.Errorf("rendered %d list items, want 2", items)
	}
}

func TestSummary(t *testing.T) {
	l := smartledger.NewLedger()
	l.Add(record(30000, smartledger.Income, smartledger.Salary, "salary", "2026-08-05"))
	l.Add(record(12000, smartledger.Expense, smartledger.Food, "dinner", "2026-08-10"))

	out := Summary(l, smartledger.DefaultSettings(), 12000, 488000)

	got := headings(t, out)
	if len(got) != 2 || got[0] != "Summary" || got[1] != "Top spending" {
		t.Errorf("headings = %v, want [Summary, Top spending]", got)
	}
	for _, want := range []string{
		"| Balance | " + smartledger.FormatAmount(18000) + " |",
		"| This month | " + smartledger.FormatAmount(12000) + " |",
		"| Budget | " + smartledger.FormatAmount(500000) + " |",
		"| Remaining | " + smartledger.FormatAmount(488000) + " |",
		"| Food & Drink | " + smartledger.FormatAmount(12000) + " |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
