package smartledger

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/etnz/smartledger/date"
)

// Kind is a typed string identifying the direction of a transaction.
type Kind string

// Transaction kinds.
const (
	Expense  Kind = "EXPENSE"
	Income   Kind = "INCOME"
	Transfer Kind = "TRANSFER"
)

// ParseKind parses a kind from a string, case-insensitively. Unknown values
// default to Expense: extraction output is untrusted and an expense is the
// safest reading of a receipt line.
func ParseKind(s string) Kind {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Income):
		return Income
	case string(Transfer):
		return Transfer
	default:
		return Expense
	}
}

// Category is a free-form transaction category. A handful of well-known
// categories get display names; anything else renders as itself.
type Category string

// Well-known categories.
const (
	Food       Category = "Food"
	Transport  Category = "Transport"
	Shopping   Category = "Shopping"
	Housing    Category = "Housing"
	Salary     Category = "Salary"
	Investment Category = "Investment"
	Other      Category = "Other"
)

// Categories lists the well-known categories, in display order.
var Categories = []Category{Food, Transport, Shopping, Housing, Salary, Investment, Other}

var categoryNames = map[Category]string{
	Food:       "Food & Drink",
	Transport:  "Transport",
	Shopping:   "Shopping",
	Housing:    "Housing",
	Salary:     "Salary",
	Investment: "Investment",
	Other:      "Other",
}

// DisplayName returns the human readable name of the category. Unknown
// categories are displayed verbatim.
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// Canonical tags understood by the normalizer.
const (
	TagReimbursable = "reimbursable"
	TagRefund       = "refund"
)

// Transaction is a single ledger record. Amount is in minor currency units
// (cents); its sign is resolved once, at normalization, and never
// reinterpreted afterwards.
type Transaction struct {
	ID        string    `json:"id"`
	Amount    int64     `json:"amount"`
	Kind      Kind      `json:"kind"`
	Category  Category  `json:"category"`
	Note      string    `json:"note,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	Tags      []string  `json:"tags,omitempty"`
}

// When returns the calendar day the transaction occurred on, in local time.
func (t Transaction) When() date.Date { return date.Of(t.Date.Local()) }

// HasTag reports whether the transaction carries the given tag.
func (t Transaction) HasTag(tag string) bool { return slices.Contains(t.Tags, tag) }

// Signed returns the ledger impact of the transaction: expenses subtract,
// everything else adds. A negative expense (a refund) therefore adds back.
func (t Transaction) Signed() int64 {
	if t.Kind == Expense {
		return -t.Amount
	}
	return t.Amount
}

// Equal reports whether two transactions hold the same data.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Amount == o.Amount &&
		t.Kind == o.Kind &&
		t.Category == o.Category &&
		t.Note == o.Note &&
		t.Date.Equal(o.Date) &&
		t.CreatedAt.Equal(o.CreatedAt) &&
		slices.Equal(t.Tags, o.Tags)
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s (%s)", t.When(), t.Kind, FormatAmount(t.Amount), t.Note)
}

// MarshalJSON implements the json.Marshaler interface for Transaction. Keys
// are written in a stable order so that the persisted form is canonical.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("amount", t.Amount)
	w.Append("kind", t.Kind)
	w.Append("category", t.Category)
	w.Optional("note", t.Note)
	w.Append("date", t.Date)
	w.Append("createdAt", t.CreatedAt)
	w.Optional("tags", t.Tags)
	return w.MarshalJSON()
}
