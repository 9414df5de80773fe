package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus is the lifecycle state of a journal entry. Only POSTED entries
// participate in balances and reports.
type EntryStatus string

const (
	StatusDraft  EntryStatus = "DRAFT"
	StatusPosted EntryStatus = "POSTED"
	StatusVoid   EntryStatus = "VOID"
)

// JournalLine is one debit or credit row of a journal entry.
type JournalLine struct {
	ID          int64           `json:"id,omitempty"`
	EntryID     string          `json:"entry_id,omitempty"`
	AccountID   string          `json:"account_id"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// JournalEntry is a dated, balanced set of journal lines.
type JournalEntry struct {
	ID          string        `json:"id"`
	CompanyID   string        `json:"company_id"`
	EntryNumber string        `json:"entry_number"`
	EntryDate   time.Time     `json:"entry_date"`
	Description string        `json:"description"`
	Status      EntryStatus   `json:"status"`
	Lines       []JournalLine `json:"lines"`
	CreatedAt   time.Time     `json:"created_at,omitempty"`
}

// Validate checks the double-entry invariants: at least two lines, no negative
// magnitudes, and total debits equal total credits exactly.
func (e *JournalEntry) Validate() error {
	if e.Description == "" {
		return ErrEmptyDescription
	}
	if len(e.Lines) < 2 {
		return ErrTooFewLines
	}
	var debits, credits decimal.Decimal
	for _, l := range e.Lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return fmt.Errorf("%w: line for account %s has a negative amount", ErrUnbalancedEntry, l.AccountID)
		}
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits %s vs credits %s", ErrUnbalancedEntry, debits, credits)
	}
	return nil
}

// PostedLine is the read-only shape the reporting engine consumes from the
// ledger query layer: one line of a POSTED entry joined with its entry header.
type PostedLine struct {
	Seq             int64           `json:"-"`
	EntryID         string          `json:"entry_id"`
	EntryNumber     string          `json:"entry_number"`
	EntryDate       time.Time       `json:"entry_date"`
	AccountID       string          `json:"account_id"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	Description     string          `json:"description"`
	LineDescription string          `json:"line_description,omitempty"`
}

// LineFilter narrows a posted-line query. Nil bounds mean unbounded; both
// bounds are inclusive at date granularity.
type LineFilter struct {
	AccountIDs []string
	From       *time.Time
	To         *time.Time
}
