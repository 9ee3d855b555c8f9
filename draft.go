package smartledger

import (
	"slices"
	"strings"
	"time"

	"github.com/etnz/smartledger/date"
	"github.com/google/uuid"
)

// Draft is a transaction candidate that has not been committed yet: the
// shape of a Transaction minus identity and bookkeeping, plus an extraction
// confidence. Drafts come from the AI parser or from manual entry; either
// way they only become records through Normalize.
type Draft struct {
	Amount     int64    `json:"amount"` // minor units; sign not yet resolved
	Kind       Kind     `json:"kind"`
	Category   Category `json:"category"`
	Note       string   `json:"note,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Date       string   `json:"date,omitempty"` // "YYYY-MM-DD" or RFC 3339; empty means now
	Confidence float64  `json:"confidence,omitempty"`
}

// HasTag reports whether the draft carries the given tag.
func (d Draft) HasTag(tag string) bool { return slices.Contains(d.Tags, tag) }

// parseWhen resolves the draft date string to an instant. Day-only dates
// resolve to local midnight.
func parseWhen(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if d, err := date.Parse(s); err == nil {
		return d.Local(), true
	}
	return time.Time{}, false
}

// Normalize turns the draft into a committed transaction. This is the single
// place where the final sign of an amount is decided:
//
//  1. an expense tagged "refund" is stored negative, whatever sign came in;
//  2. an expense that already arrived negative keeps its sign;
//  3. everything else is stored as an absolute value.
//
// Empty notes get a placeholder derived from the tags, an unparsable or
// missing date falls back to now, and the record is stamped with a fresh id
// and creation time.
func (d Draft) Normalize(now time.Time) Transaction {
	occurred := now
	if d.Date != "" {
		if t, ok := parseWhen(d.Date); ok {
			occurred = t
		}
	}

	kind := d.Kind
	if kind == "" {
		kind = Expense
	}

	amount := d.Amount
	switch {
	case kind == Expense && d.HasTag(TagRefund):
		if amount < 0 {
			amount = -amount
		}
		amount = -amount
	case kind == Expense && amount < 0:
		// keep: a pre-resolved refund round-trips unchanged
	default:
		if amount < 0 {
			amount = -amount
		}
	}

	note := strings.TrimSpace(d.Note)
	if note == "" {
		switch {
		case d.HasTag(TagReimbursable):
			note = "reimbursement"
		case d.HasTag(TagRefund):
			note = "refund"
		default:
			note = "quick entry"
		}
	}

	category := d.Category
	if category == "" {
		category = Other
	}

	return Transaction{
		ID:        uuid.NewString(),
		Amount:    amount,
		Kind:      kind,
		Category:  category,
		Note:      note,
		Date:      occurred,
		CreatedAt: now,
		Tags:      slices.Clone(d.Tags),
	}
}
