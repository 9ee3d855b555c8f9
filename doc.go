// Package smartledger provides the ingestion and reconciliation engine of a
// personal expense ledger. It is designed to be local-first and auditable:
// every amount is an integer count of minor currency units, every record
// gets its sign resolved exactly once, and the stored order is the display
// order.
//
// The core functionalities include:
//   - Amount Entry: a keystroke-driven arithmetic evaluator that keeps an
//     always-current minor-unit amount for the expression being typed.
//   - Normalization: the single path turning untrusted transaction drafts
//     (manual or AI-extracted) into committed, signed, stamped records.
//   - Batch Reconciliation: review, edit, selection and partial commit of
//     candidate lists extracted from receipt images.
//   - Aggregation: balance, calendar-month spending, budget tracking,
//     search, day grouping and category rankings over the ledger.
//   - Session Control: at most one entry session and one candidate review
//     at a time, with parse results routed to the right destination.
//   - Data Persistence: encoding and decoding of the ledger to and from
//     human-readable, version-controllable formats (JSONL, JSON array).
//
// This package serves as the foundational logic for the `sl` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package smartledger
