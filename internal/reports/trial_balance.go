package reports

import (
	"context"
	"time"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// TrialBalance lists every active account's balance split into debit and
// credit columns. With no asOf the cached current balances are used; with an
// asOf each balance is re-summed from posted lines dated on or before it.
func (e *Engine) TrialBalance(ctx context.Context, companyID string, asOf *time.Time) (*ledger.TrialBalance, error) {
	var accts []ledger.Account
	var lines []ledger.PostedLine

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accts, err = e.accounts.ListActiveAccounts(gctx, companyID)
		return err
	})
	if asOf != nil {
		g.Go(func() error {
			var err error
			lines, err = e.lines.ListPostedLines(gctx, companyID, ledger.LineFilter{To: asOf})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tb := &ledger.TrialBalance{
		AsOfDate: asOf,
		Accounts: []ledger.TrialBalanceRow{},
		Grouped:  map[ledger.AccountType][]ledger.TrialBalanceRow{},
	}

	var sums map[string]decimal.Decimal
	if asOf != nil {
		sums = sumByAccount(lines, normalBalances(accts))
	}

	for _, a := range accts {
		balance := a.CurrentBalance
		if asOf != nil {
			balance = sums[a.ID]
		}

		row := ledger.TrialBalanceRow{
			AccountID:     a.ID,
			AccountNumber: a.AccountNumber,
			Name:          a.Name,
			Type:          a.Type,
			NormalBalance: a.NormalBalance,
		}
		// A positive balance sits on the account's normal side; a negative
		// one flips to the opposite column with its sign dropped.
		onNormalSide := !balance.IsNegative()
		magnitude := balance.Abs()
		if (a.NormalBalance == ledger.Debit) == onNormalSide {
			row.DebitBalance = magnitude
		} else {
			row.CreditBalance = magnitude
		}

		tb.Accounts = append(tb.Accounts, row)
		tb.Grouped[a.Type] = append(tb.Grouped[a.Type], row)
		tb.Totals.TotalDebits = tb.Totals.TotalDebits.Add(row.DebitBalance)
		tb.Totals.TotalCredits = tb.Totals.TotalCredits.Add(row.CreditBalance)
	}

	// The equality of the two columns is the defining check of the ledger.
	// An imbalance is reportable data, never an error.
	tb.Totals.IsBalanced = ledger.AmountsEqual(tb.Totals.TotalDebits, tb.Totals.TotalCredits)
	return tb, nil
}
