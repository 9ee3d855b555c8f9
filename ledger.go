package smartledger

import (
	"errors"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/etnz/smartledger/date"
)

// ErrUnknownTransaction is returned when an id does not match any record.
var ErrUnknownTransaction = errors.New("unknown transaction")

// Ledger is the single owner of the transaction list. The list order is the
// display order: new records are inserted at the head, so the most recent
// entry always comes first. All derived figures (balance, monthly expense,
// groups, rankings) are computed from this one list.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions iterates over the records in display order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// All returns a copy of the records in display order.
func (l *Ledger) All() []Transaction {
	return append([]Transaction(nil), l.transactions...)
}

// Add inserts records at the head of the list, preserving their relative
// order.
func (l *Ledger) Add(txs ...Transaction) {
	if len(txs) == 0 {
		return
	}
	l.transactions = append(append([]Transaction(nil), txs...), l.transactions...)
}

// Get returns the record with the given id.
func (l *Ledger) Get(id string) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Update rewrites the record matching tx.ID in place.
func (l *Ledger) Update(tx Transaction) error {
	for i := range l.transactions {
		if l.transactions[i].ID == tx.ID {
			l.transactions[i] = tx
			return nil
		}
	}
	return ErrUnknownTransaction
}

// Delete removes the record with the given id.
func (l *Ledger) Delete(id string) error {
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			l.transactions = slices.Delete(l.transactions, i, i+1)
			return nil
		}
	}
	return ErrUnknownTransaction
}

// ReplaceAll swaps the whole list for the given records, keeping their
// order. Used by import.
func (l *Ledger) ReplaceAll(txs []Transaction) {
	l.transactions = append([]Transaction(nil), txs...)
}

// Balance returns the signed sum of all records: income and transfers add,
// expenses subtract, negative expenses (refunds) add back.
func (l *Ledger) Balance() int64 {
	var total int64
	for _, tx := range l.transactions {
		total += tx.Signed()
	}
	return total
}

// MonthlyExpense sums expense amounts for the calendar month of now, in
// local time. Refunds recorded in the month reduce it.
func (l *Ledger) MonthlyExpense(now time.Time) int64 {
	month := date.Of(now)
	var total int64
	for _, tx := range l.transactions {
		if tx.Kind == Expense && tx.When().SameMonth(month) {
			total += tx.Amount
		}
	}
	return total
}

// RemainingBudget returns the monthly budget minus this month's expenses.
// It goes negative once the budget is blown.
func (l *Ledger) RemainingBudget(budget int64, now time.Time) int64 {
	return budget - l.MonthlyExpense(now)
}

// TotalExpense sums the amounts of all expense records.
func (l *Ledger) TotalExpense() int64 {
	var total int64
	for _, tx := range l.transactions {
		if tx.Kind == Expense {
			total += tx.Amount
		}
	}
	return total
}

// TotalIncome sums the amounts of all income records.
func (l *Ledger) TotalIncome() int64 {
	var total int64
	for _, tx := range l.transactions {
		if tx.Kind == Income {
			total += tx.Amount
		}
	}
	return total
}

// CategoryTotal is a spending total for one category.
type CategoryTotal struct {
	Category Category
	Total    int64
}

// TopCategories returns up to n categories ranked by total expense,
// descending. Refund rows (negative amounts) are left out of the ranking so
// a refunded purchase does not deflate its category. Ties keep the category
// order of first appearance.
func (l *Ledger) TopCategories(n int) []CategoryTotal {
	totals := make(map[Category]int64)
	var order []Category
	for _, tx := range l.transactions {
		if tx.Kind != Expense || tx.Amount <= 0 {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] += tx.Amount
	}
	ranking := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		ranking = append(ranking, CategoryTotal{Category: c, Total: totals[c]})
	}
	slices.SortStableFunc(ranking, func(a, b CategoryTotal) int {
		switch {
		case a.Total > b.Total:
			return -1
		case a.Total < b.Total:
			return 1
		}
		return 0
	})
	if n > 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// Search returns the records matching the term, in display order. The match
// is a case-insensitive substring over the note, the category display name
// and the major-unit decimal text of the amount. An empty term matches
// everything.
func (l *Ledger) Search(term string) []Transaction {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return l.All()
	}
	var out []Transaction
	for _, tx := range l.transactions {
		if strings.Contains(strings.ToLower(tx.Note), term) ||
			strings.Contains(strings.ToLower(tx.Category.DisplayName()), term) ||
			strings.Contains(AmountString(tx.Amount), term) {
			out = append(out, tx)
		}
	}
	return out
}

// DayGroup is one calendar day of records with its own totals.
type DayGroup struct {
	Day          date.Date
	Transactions []Transaction
	Expense      int64 // sum of the day's expense amounts
	Income       int64 // sum of the day's income amounts
}

// GroupByDay splits records into local calendar days, most recent day
// first. Within a day the given order is preserved.
func GroupByDay(txs []Transaction) []DayGroup {
	index := make(map[date.Date]int)
	var groups []DayGroup
	for _, tx := range txs {
		day := tx.When()
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Day: day})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
		switch tx.Kind {
		case Expense:
			groups[i].Expense += tx.Amount
		case Income:
			groups[i].Income += tx.Amount
		}
	}
	slices.SortStableFunc(groups, func(a, b DayGroup) int {
		return b.Day.Compare(a.Day)
	})
	return groups
}
