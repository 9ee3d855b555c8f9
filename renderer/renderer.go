// Package renderer renders ledger views as markdown strings, ready for a
// terminal markdown renderer or for plain reading.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/smartledger"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx smartledger.Transaction) string {
	line := fmt.Sprintf("%s %s %s · %s",
		tx.When(),
		smartledger.FormatSignedAmount(tx.Signed()),
		tx.Note,
		tx.Category.DisplayName())
	if len(tx.Tags) > 0 {
		line += " [" + strings.Join(tx.Tags, ", ") + "]"
	}
	return line
}

// Transactions renders day groups as markdown, one section per day with its
// totals, one table row per record.
func Transactions(groups []smartledger.DayGroup) string {
	var b strings.Builder
	b.WriteString("# Transactions\n")
	if len(groups) == 0 {
		b.WriteString("\nNo transactions.\n")
		return b.String()
	}
	for _, g := range groups {
		fmt.Fprintf(&b, "\n## %s\n\n", g.Day)
		var totals []string
		if g.Expense != 0 {
			totals = append(totals, "spent "+smartledger.FormatAmount(g.Expense))
		}
		if g.Income != 0 {
			totals = append(totals, "received "+smartledger.FormatAmount(g.Income))
		}
		if len(totals) > 0 {
			fmt.Fprintf(&b, "%s\n\n", strings.Join(totals, " · "))
		}
		b.WriteString("| Amount | Note | Category | Tags |\n")
		b.WriteString("|-------:|------|----------|------|\n")
		for _, tx := range g.Transactions {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				smartledger.FormatSignedAmount(tx.Signed()),
				tx.Note,
				tx.Category.DisplayName(),
				strings.Join(tx.Tags, ", "))
		}
	}
	return b.String()
}

// Candidates renders a batch under review, with selection markers and the
// indices used to address candidates.
func Candidates(b *smartledger.Batch) string {
	var out strings.Builder
	fmt.Fprintf(&out, "# Candidates (%d selected of %d)\n\n", b.SelectedCount(), b.Len())
	for i, d := range b.Drafts() {
		mark := " "
		if b.IsSelected(i) {
			mark = "x"
		}
		note := d.Note
		if note == "" {
			note = "(no note)"
		}
		fmt.Fprintf(&out, "- [%s] %d. %s %s · %s", mark, i,
			smartledger.FormatAmount(d.Amount), note, d.Category.DisplayName())
		if d.Date != "" {
			fmt.Fprintf(&out, " · %s", d.Date)
		}
		if d.Confidence > 0 {
			fmt.Fprintf(&out, " (%.0f%%)", d.Confidence*100)
		}
		out.WriteString("\n")
	}
	return out.String()
}

// Summary renders the headline figures: balance, current month spending,
// remaining budget, overall totals and the top spending categories.
func Summary(l *smartledger.Ledger, settings smartledger.Settings, monthExpense, remaining int64) string {
	var b strings.Builder
	b.WriteString("# Summary\n\n")
	fmt.Fprintf(&b, "| Balance | %s |\n", smartledger.FormatAmount(l.Balance()))
	b.WriteString("|---|---:|\n")
	fmt.Fprintf(&b, "| This month | %s |\n", smartledger.FormatAmount(monthExpense))
	fmt.Fprintf(&b, "| Budget | %s |\n", smartledger.FormatAmount(settings.MonthlyBudget))
	fmt.Fprintf(&b, "| Remaining | %s |\n", smartledger.FormatAmount(remaining))
	fmt.Fprintf(&b, "| Total income | %s |\n", smartledger.FormatAmount(l.TotalIncome()))
	fmt.Fprintf(&b, "| Total expense | %s |\n", smartledger.FormatAmount(l.TotalExpense()))

	if top := l.TopCategories(4); len(top) > 0 {
		b.WriteString("\n## Top spending\n\n")
		b.WriteString("| Category | Total |\n")
		b.WriteString("|----------|------:|\n")
		for _, ct := range top {
			fmt.Fprintf(&b, "| %s | %s |\n", ct.Category.DisplayName(), smartledger.FormatAmount(ct.Total))
		}
	}
	return b.String()
}
