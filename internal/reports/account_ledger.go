package reports

import (
	"context"
	"time"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/shopspring/decimal"
)

// AccountLedger produces one account's activity with a running balance. The
// opening balance sums posted lines strictly before startDate; the running
// balance applies each in-window line in (entryDate, creation-order) sequence.
// This is the one computation in the engine that is inherently sequential.
func (e *Engine) AccountLedger(ctx context.Context, companyID, accountID string, startDate, endDate *time.Time) (*ledger.AccountLedger, error) {
	acct, err := e.accounts.GetAccount(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}
	if !acct.IsActive {
		return nil, ledger.ErrAccountNotFound
	}

	opening := decimal.Zero
	if startDate != nil {
		// Strictly before the window: entry dates are day-granular, so the
		// cutoff is the day before startDate, inclusive.
		before := startDate.AddDate(0, 0, -1)
		priorLines, err := e.lines.ListPostedLines(ctx, companyID, ledger.LineFilter{
			AccountIDs: []string{accountID},
			To:         &before,
		})
		if err != nil {
			return nil, err
		}
		for _, l := range priorLines {
			opening = opening.Add(ledger.Contribution(acct.NormalBalance, l.Debit, l.Credit))
		}
	}

	lines, err := e.lines.ListPostedLines(ctx, companyID, ledger.LineFilter{
		AccountIDs: []string{accountID},
		From:       startDate,
		To:         endDate,
	})
	if err != nil {
		return nil, err
	}

	result := &ledger.AccountLedger{
		Account:        *acct,
		Period:         ledger.ReportPeriod{StartDate: startDate, EndDate: endDate},
		OpeningBalance: opening,
		Lines:          make([]ledger.LedgerLine, 0, len(lines)),
	}

	running := opening
	for _, l := range lines {
		running = running.Add(ledger.Contribution(acct.NormalBalance, l.Debit, l.Credit))
		desc := l.Description
		if l.LineDescription != "" {
			desc = l.LineDescription
		}
		result.Lines = append(result.Lines, ledger.LedgerLine{
			Date:           l.EntryDate,
			EntryID:        l.EntryID,
			EntryNumber:    l.EntryNumber,
			Description:    desc,
			Debit:          l.Debit,
			Credit:         l.Credit,
			RunningBalance: running,
		})
	}
	result.ClosingBalance = running

	return result, nil
}
