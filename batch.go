package smartledger

import (
	"errors"
	"fmt"
	"time"
)

// ErrNothingRecognized is returned when an extraction produced no candidates
// at all; the caller should tell the user rather than open an empty review.
var ErrNothingRecognized = errors.New("no transactions recognized")

// Batch holds extraction candidates pending user review. Candidates are
// addressed by their current index; committing or discarding removes rows
// and renumbers the rest, so indices are only stable between mutations.
type Batch struct {
	drafts   []Draft
	selected map[int]bool
}

// NewBatch opens a review over the given candidates, all selected. An empty
// candidate list is a failed extraction, not an empty review.
func NewBatch(drafts []Draft) (*Batch, error) {
	if len(drafts) == 0 {
		return nil, ErrNothingRecognized
	}
	b := &Batch{
		drafts:   append([]Draft(nil), drafts...),
		selected: make(map[int]bool, len(drafts)),
	}
	for i := range b.drafts {
		b.selected[i] = true
	}
	return b, nil
}

// Len returns the number of candidates still under review.
func (b *Batch) Len() int { return len(b.drafts) }

// Drafts returns a copy of the candidates in review order.
func (b *Batch) Drafts() []Draft { return append([]Draft(nil), b.drafts...) }

// Draft returns the candidate at index i.
func (b *Batch) Draft(i int) (Draft, error) {
	if err := b.check(i); err != nil {
		return Draft{}, err
	}
	return b.drafts[i], nil
}

// IsSelected reports whether the candidate at index i is selected.
func (b *Batch) IsSelected(i int) bool { return b.selected[i] }

// SelectedCount returns the number of selected candidates.
func (b *Batch) SelectedCount() int {
	n := 0
	for _, on := range b.selected {
		if on {
			n++
		}
	}
	return n
}

// Toggle flips the selection of the candidate at index i.
func (b *Batch) Toggle(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.selected[i] = !b.selected[i]
	return nil
}

// Replace swaps the candidate at index i for an edited draft. The selection
// state of the row is preserved.
func (b *Batch) Replace(i int, d Draft) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.drafts[i] = d
	return nil
}

// Append adds a new candidate at the end of the review and selects it.
// It returns the new candidate's index.
func (b *Batch) Append(d Draft) int {
	b.drafts = append(b.drafts, d)
	i := len(b.drafts) - 1
	b.selected[i] = true
	return i
}

// Commit normalizes the selected candidates, in review order, and removes
// them from the batch. The survivors are renumbered from zero and the
// selection is cleared. Committing with nothing selected is a no-op.
func (b *Batch) Commit(now time.Time) []Transaction {
	if b.SelectedCount() == 0 {
		return nil
	}
	var committed []Transaction
	var kept []Draft
	for i, d := range b.drafts {
		if b.selected[i] {
			committed = append(committed, d.Normalize(now))
		} else {
			kept = append(kept, d)
		}
	}
	b.drafts = kept
	b.selected = make(map[int]bool, len(kept))
	return committed
}

// Discard removes the selected candidates without committing them and
// returns how many were dropped. The survivors are renumbered and the
// selection is cleared.
func (b *Batch) Discard() int {
	var kept []Draft
	for i, d := range b.drafts {
		if !b.selected[i] {
			kept = append(kept, d)
		}
	}
	dropped := len(b.drafts) - len(kept)
	b.drafts = kept
	b.selected = make(map[int]bool, len(kept))
	return dropped
}

func (b *Batch) check(i int) error {
	if i < 0 || i >= len(b.drafts) {
		return fmt.Errorf("candidate index %d out of range [0,%d)", i, len(b.drafts))
	}
	return nil
}
