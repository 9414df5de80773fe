package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PostEntry validates and writes a journal entry as POSTED, and rolls each
// line's signed contribution into the affected accounts' current_balance.
// The whole write is one transaction: the posting workflow is the only owner
// of current_balance, and a posted entry either lands completely or not at all.
func (s *Store) PostEntry(ctx context.Context, entry *ledger.JournalEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if entry.EntryNumber == "" {
		// Allocated under the single-connection writer, inside the same tx
		// as the insert, so concurrent posts cannot claim the same number.
		entry.EntryNumber, err = nextEntryNumber(ctx, tx, entry.CompanyID)
		if err != nil {
			return err
		}
	}

	// Insert as DRAFT, add lines, then flip to POSTED so the immutability
	// triggers see the lines arrive before the entry is final.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO journal_entries (id, company_id, entry_number, entry_date, description, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.CompanyID, entry.EntryNumber,
		entry.EntryDate.Format(ledger.DateLayout), entry.Description, string(ledger.StatusDraft),
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	for i := range entry.Lines {
		l := &entry.Lines[i]
		res, err := tx.ExecContext(ctx,
			`INSERT INTO journal_lines (entry_id, account_id, debit, credit, description)
			VALUES (?, ?, ?, ?, ?)`,
			entry.ID, l.AccountID, l.Debit.String(), l.Credit.String(), l.Description,
		)
		if err != nil {
			return fmt.Errorf("insert line: %w", err)
		}
		l.ID, _ = res.LastInsertId()

		var nb string
		var balance string
		err = tx.QueryRowContext(ctx,
			`SELECT normal_balance, current_balance FROM accounts WHERE company_id = ? AND id = ?`,
			entry.CompanyID, l.AccountID).Scan(&nb, &balance)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", ledger.ErrAccountNotFound, l.AccountID)
		}
		if err != nil {
			return fmt.Errorf("read account balance: %w", err)
		}
		current, err := decimal.NewFromString(balance)
		if err != nil {
			return fmt.Errorf("parse balance %q: %w", balance, err)
		}
		next := current.Add(ledger.Contribution(ledger.NormalBalance(nb), l.Debit, l.Credit))
		if _, err := tx.ExecContext(ctx,
			`UPDATE accounts SET current_balance = ?, updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')
			WHERE company_id = ? AND id = ?`,
			next.String(), entry.CompanyID, l.AccountID,
		); err != nil {
			return fmt.Errorf("update account balance: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE journal_entries SET status = ? WHERE id = ?`,
		string(ledger.StatusPosted), entry.ID,
	); err != nil {
		return fmt.Errorf("mark entry posted: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	entry.Status = ledger.StatusPosted
	s.log.Debug("journal entry posted",
		zap.String("entry", entry.EntryNumber),
		zap.String("company", entry.CompanyID),
		zap.Int("lines", len(entry.Lines)))
	return nil
}

// nextEntryNumber allocates the next sequential entry number for a company
// from the highest number already taken.
func nextEntryNumber(ctx context.Context, tx *sql.Tx, companyID string) (string, error) {
	var max int
	err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(CAST(substr(entry_number, 4) AS INTEGER)), 0)
		FROM journal_entries WHERE company_id = ?`, companyID).Scan(&max)
	if err != nil {
		return "", fmt.Errorf("max entry number: %w", err)
	}
	return fmt.Sprintf("JE-%04d", max+1), nil
}

// ListPostedLines is the ledger query layer consumed by the reporting engine:
// lines of POSTED entries only, date-bounded inclusively, ordered by
// (entry_date, line creation order).
func (s *Store) ListPostedLines(ctx context.Context, companyID string, f ledger.LineFilter) ([]ledger.PostedLine, error) {
	query := `SELECT l.id, e.id, e.entry_number, e.entry_date, l.account_id,
		l.debit, l.credit, e.description, l.description
	FROM journal_lines l
	JOIN journal_entries e ON e.id = l.entry_id
	WHERE e.company_id = ? AND e.status = 'POSTED'`
	args := []any{companyID}

	if len(f.AccountIDs) > 0 {
		query += ` AND l.account_id IN (?` + strings.Repeat(",?", len(f.AccountIDs)-1) + `)`
		for _, id := range f.AccountIDs {
			args = append(args, id)
		}
	}
	if f.From != nil {
		query += ` AND e.entry_date >= ?`
		args = append(args, f.From.Format(ledger.DateLayout))
	}
	if f.To != nil {
		query += ` AND e.entry_date <= ?`
		args = append(args, f.To.Format(ledger.DateLayout))
	}

	query += ` ORDER BY e.entry_date, l.id`

	rows, err := s.reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posted lines: %w", err)
	}
	defer rows.Close()

	var lines []ledger.PostedLine
	for rows.Next() {
		var l ledger.PostedLine
		var entryDate, debit, credit string
		if err := rows.Scan(&l.Seq, &l.EntryID, &l.EntryNumber, &entryDate, &l.AccountID,
			&debit, &credit, &l.Description, &l.LineDescription); err != nil {
			return nil, fmt.Errorf("scan posted line: %w", err)
		}
		l.EntryDate, err = time.Parse(ledger.DateLayout, entryDate)
		if err != nil {
			return nil, fmt.Errorf("parse entry date %q: %w", entryDate, err)
		}
		if l.Debit, err = decimal.NewFromString(debit); err != nil {
			return nil, fmt.Errorf("parse debit %q: %w", debit, err)
		}
		if l.Credit, err = decimal.NewFromString(credit); err != nil {
			return nil, fmt.Errorf("parse credit %q: %w", credit, err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

