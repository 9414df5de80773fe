package reports

import (
	"context"
	"time"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"golang.org/x/sync/errgroup"
)

// BalanceSheet reports assets, liabilities and equity as cumulative balances
// from inception through the cutoff (asOf end-of-day, or now). Net income over
// the same span is folded into equity, and the accounting identity
// Assets = Liabilities + Equity is exposed as an explicit flag.
func (e *Engine) BalanceSheet(ctx context.Context, companyID string, asOf *time.Time) (*ledger.BalanceSheet, error) {
	var accts []ledger.Account
	var lines []ledger.PostedLine

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accts, err = e.accounts.ListActiveAccounts(gctx, companyID)
		return err
	})
	g.Go(func() error {
		var err error
		lines, err = e.lines.ListPostedLines(gctx, companyID, ledger.LineFilter{To: asOf})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sums := sumByAccount(lines, normalBalances(accts))

	bs := &ledger.BalanceSheet{
		AsOfDate:    asOf,
		Assets:      ledger.ReportSection{Accounts: []ledger.ReportAccount{}},
		Liabilities: ledger.ReportSection{Accounts: []ledger.ReportAccount{}},
		Equity:      ledger.EquitySection{Accounts: []ledger.ReportAccount{}},
	}

	for _, a := range accts {
		amount, ok := sums[a.ID]

		if ledger.IsIncomeStatementType(a.Type) {
			if !ok {
				continue
			}
			// Revenue − COGS − expenses to the cutoff is this period's net
			// income, which belongs to equity until it is closed out.
			if ledger.IsRevenueType(a.Type) {
				bs.Equity.NetIncome = bs.Equity.NetIncome.Add(amount)
			} else {
				bs.Equity.NetIncome = bs.Equity.NetIncome.Sub(amount)
			}
			continue
		}

		if !ledger.IsBalanceSheetType(a.Type) || !ok || amount.IsZero() {
			continue
		}
		ra := reportAccount(a, amount)
		switch ledger.GroupFor(a.Type) {
		case ledger.GroupAssets:
			bs.Assets.Accounts = append(bs.Assets.Accounts, ra)
			bs.Assets.Total = bs.Assets.Total.Add(amount)
		case ledger.GroupLiabilities:
			bs.Liabilities.Accounts = append(bs.Liabilities.Accounts, ra)
			bs.Liabilities.Total = bs.Liabilities.Total.Add(amount)
		case ledger.GroupEquity:
			bs.Equity.Accounts = append(bs.Equity.Accounts, ra)
			bs.Equity.Total = bs.Equity.Total.Add(amount)
		}
	}

	bs.Equity.TotalIncludingNetIncome = bs.Equity.Total.Add(bs.Equity.NetIncome)
	bs.Totals.TotalAssets = bs.Assets.Total
	bs.Totals.TotalLiabilitiesAndEquity = bs.Liabilities.Total.Add(bs.Equity.TotalIncludingNetIncome)
	bs.Totals.IsBalanced = ledger.AmountsEqual(bs.Totals.TotalAssets, bs.Totals.TotalLiabilitiesAndEquity)
	return bs, nil
}
