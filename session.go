package smartledger

import (
	"context"
	"errors"
	"time"
)

// Sentinels for session misuse.
var (
	ErrSessionActive = errors.New("an entry session is already active")
	ErrNoSession     = errors.New("no entry session is active")
	ErrNoBatch       = errors.New("no candidate batch under review")
	ErrBatchOpen     = errors.New("a candidate batch is already under review")

	// ErrCredentialMissing is returned by parsers constructed without an API
	// key. It is distinguished so callers can point at configuration instead
	// of retrying.
	ErrCredentialMissing = errors.New("missing API credential")
)

// Mode identifies what an active entry session will do on completion.
type Mode int

const (
	ModeIdle            Mode = iota // no session
	ModeNewManual                   // a brand new record
	ModeEditTransaction             // rewrite a stored record
	ModeEditCandidate               // rewrite a batch candidate
	ModeAppendCandidate             // add a candidate to the batch
)

func (m Mode) String() string {
	switch m {
	case ModeNewManual:
		return "new"
	case ModeEditTransaction:
		return "edit"
	case ModeEditCandidate:
		return "edit-candidate"
	case ModeAppendCandidate:
		return "append-candidate"
	default:
		return "idle"
	}
}

// Form holds the non-amount fields of the entry in progress. The amount
// lives in the keypad.
type Form struct {
	Kind         Kind
	Category     Category
	Note         string
	When         time.Time // zero means now
	Reimbursable bool
	Refund       bool
}

// TextParser extracts a single draft from free text. A nil draft with a nil
// error means the text held no transaction.
type TextParser interface {
	ParseText(ctx context.Context, input string) (*Draft, error)
}

// ImageParser extracts zero or more drafts from an image.
type ImageParser interface {
	ParseImage(ctx context.Context, data []byte, mime string) ([]Draft, error)
}

// ParseOutcome tells a caller what a parse submission did.
type ParseOutcome int

const (
	ParseFailed       ParseOutcome = iota // extraction errored
	ParseNoCredential                     // no API key configured
	ParseNothing                          // extraction ran but found nothing
	ParseCommitted                        // one record committed to the ledger
	ParseBatchReady                       // candidates await review
)

// Session coordinates one user's ingestion work over a ledger: at most one
// entry session (mode) at a time, at most one candidate batch under review,
// and the routing of completed amounts and parse results to the right
// destination.
type Session struct {
	Form  Form
	Clock func() time.Time

	ledger    *Ledger
	keypad    *Keypad
	batch     *Batch
	mode      Mode
	editID    string
	candidate int
}

// NewSession creates an idle session over the ledger.
func NewSession(ledger *Ledger) *Session {
	return &Session{
		ledger: ledger,
		keypad: NewKeypad(),
		Clock:  time.Now,
	}
}

// Mode returns the current session mode.
func (s *Session) Mode() Mode { return s.mode }

// Keypad returns the session's keypad.
func (s *Session) Keypad() *Keypad { return s.keypad }

// Batch returns the candidate batch under review, or nil.
func (s *Session) Batch() *Batch { return s.batch }

// Ledger returns the ledger the session works on.
func (s *Session) Ledger() *Ledger { return s.ledger }

// BeginManual opens an entry session for a brand new record.
func (s *Session) BeginManual() error {
	if s.mode != ModeIdle {
		return ErrSessionActive
	}
	s.mode = ModeNewManual
	s.Form = Form{Kind: Expense, Category: Other}
	s.keypad.Clear()
	return nil
}

// BeginEdit opens an entry session over a stored record, seeding the keypad
// with its absolute amount and the form with its fields.
func (s *Session) BeginEdit(id string) error {
	if s.mode != ModeIdle {
		return ErrSessionActive
	}
	old, ok := s.ledger.Get(id)
	if !ok {
		return ErrUnknownTransaction
	}
	s.mode = ModeEditTransaction
	s.editID = id
	s.Form = Form{
		Kind:         old.Kind,
		Category:     old.Category,
		Note:         old.Note,
		When:         old.Date,
		Reimbursable: old.HasTag(TagReimbursable),
		Refund:       old.HasTag(TagRefund) || (old.Kind == Expense && old.Amount < 0),
	}
	s.keypad.Seed(old.Amount)
	return nil
}

// BeginCandidateEdit opens an entry session over a batch candidate.
func (s *Session) BeginCandidateEdit(i int) error {
	if s.mode != ModeIdle {
		return ErrSessionActive
	}
	if s.batch == nil {
		return ErrNoBatch
	}
	d, err := s.batch.Draft(i)
	if err != nil {
		return err
	}
	var when time.Time
	if d.Date != "" {
		when, _ = parseWhen(d.Date)
	}
	s.mode = ModeEditCandidate
	s.candidate = i
	s.Form = Form{
		Kind:         ParseKind(string(d.Kind)),
		Category:     d.Category,
		Note:         d.Note,
		When:         when,
		Reimbursable: d.HasTag(TagReimbursable),
		Refund:       d.HasTag(TagRefund) || (ParseKind(string(d.Kind)) == Expense && d.Amount < 0),
	}
	s.keypad.Seed(d.Amount)
	return nil
}

// BeginCandidateAppend opens an entry session whose completion adds a new
// candidate to the batch under review.
func (s *Session) BeginCandidateAppend() error {
	if s.mode != ModeIdle {
		return ErrSessionActive
	}
	if s.batch == nil {
		return ErrNoBatch
	}
	s.mode = ModeAppendCandidate
	s.Form = Form{Kind: Expense, Category: Other}
	s.keypad.Clear()
	return nil
}

// Cancel abandons the entry session, leaving ledger and batch untouched.
func (s *Session) Cancel() { s.reset() }

func (s *Session) reset() {
	s.mode = ModeIdle
	s.editID = ""
	s.candidate = 0
}

// draft assembles the pending entry into a Draft. The refund flag is encoded
// as a tag so the normalizer resolves the sign, the same way for every path.
func (s *Session) draft(amount int64) Draft {
	var tags []string
	if s.Form.Reimbursable {
		tags = append(tags, TagReimbursable)
	}
	if s.Form.Refund {
		tags = append(tags, TagRefund)
	}
	var when string
	if !s.Form.When.IsZero() {
		when = s.Form.When.Format(time.RFC3339)
	}
	return Draft{
		Amount:     amount,
		Kind:       s.Form.Kind,
		Category:   s.Form.Category,
		Note:       s.Form.Note,
		Tags:       tags,
		Date:       when,
		Confidence: 1,
	}
}

// Complete settles the keypad and routes the entry to its destination:
// replace a candidate, append a candidate, rewrite a stored record, or
// commit a new one. The returned transaction is nil for the candidate
// destinations. The session ends either way.
func (s *Session) Complete() (*Transaction, error) {
	if s.mode == ModeIdle {
		return nil, ErrNoSession
	}
	amount := s.keypad.Complete()
	now := s.Clock()
	defer s.reset()

	switch s.mode {
	case ModeEditCandidate:
		if s.batch == nil {
			return nil, ErrNoBatch
		}
		if err := s.batch.Replace(s.candidate, s.draft(amount)); err != nil {
			return nil, err
		}
		return nil, nil
	case ModeAppendCandidate:
		if s.batch == nil {
			return nil, ErrNoBatch
		}
		s.batch.Append(s.draft(amount))
		return nil, nil
	case ModeEditTransaction:
		old, ok := s.ledger.Get(s.editID)
		if !ok {
			return nil, ErrUnknownTransaction
		}
		tx := s.draft(amount).Normalize(now)
		tx.ID, tx.CreatedAt = old.ID, old.CreatedAt
		if err := s.ledger.Update(tx); err != nil {
			return nil, err
		}
		return &tx, nil
	default: // ModeNewManual
		tx := s.draft(amount).Normalize(now)
		s.ledger.Add(tx)
		return &tx, nil
	}
}

// DeleteEditing removes the record the session is editing and ends the
// session.
func (s *Session) DeleteEditing() error {
	if s.mode != ModeEditTransaction {
		return ErrNoSession
	}
	defer s.reset()
	return s.ledger.Delete(s.editID)
}

// SubmitText runs text extraction and commits the resulting record
// immediately; free-text entry has no review step.
func (s *Session) SubmitText(ctx context.Context, p TextParser, input string) (ParseOutcome, *Transaction, error) {
	if s.mode != ModeIdle {
		return ParseFailed, nil, ErrSessionActive
	}
	d, err := p.ParseText(ctx, input)
	switch {
	case errors.Is(err, ErrCredentialMissing):
		return ParseNoCredential, nil, err
	case err != nil:
		return ParseFailed, nil, err
	case d == nil:
		return ParseNothing, nil, nil
	}
	tx := d.Normalize(s.Clock())
	s.ledger.Add(tx)
	return ParseCommitted, &tx, nil
}

// SubmitImage runs image extraction and opens a candidate batch for review.
// Nothing reaches the ledger until the batch is committed.
func (s *Session) SubmitImage(ctx context.Context, p ImageParser, data []byte, mime string) (ParseOutcome, error) {
	if s.mode != ModeIdle {
		return ParseFailed, ErrSessionActive
	}
	if s.batch != nil {
		return ParseFailed, ErrBatchOpen
	}
	drafts, err := p.ParseImage(ctx, data, mime)
	switch {
	case errors.Is(err, ErrCredentialMissing):
		return ParseNoCredential, err
	case err != nil:
		return ParseFailed, err
	}
	b, err := NewBatch(drafts)
	if errors.Is(err, ErrNothingRecognized) {
		return ParseNothing, nil
	}
	if err != nil {
		return ParseFailed, err
	}
	s.batch = b
	return ParseBatchReady, nil
}

// CommitBatch commits the selected candidates to the ledger, in review
// order. The review stays open while unselected candidates remain; it closes
// once empty.
func (s *Session) CommitBatch() ([]Transaction, error) {
	if s.batch == nil {
		return nil, ErrNoBatch
	}
	txs := s.batch.Commit(s.Clock())
	s.ledger.Add(txs...)
	if s.batch.Len() == 0 {
		s.batch = nil
	}
	return txs, nil
}

// DiscardSelected drops the selected candidates, closing the review once
// empty. It returns how many were dropped.
func (s *Session) DiscardSelected() (int, error) {
	if s.batch == nil {
		return 0, ErrNoBatch
	}
	n := s.batch.Discard()
	if s.batch.Len() == 0 {
		s.batch = nil
	}
	return n, nil
}

// CloseBatch abandons the whole review, committed nothing.
func (s *Session) CloseBatch() {
	s.batch = nil
	if s.mode == ModeEditCandidate || s.mode == ModeAppendCandidate {
		s.reset()
	}
}
