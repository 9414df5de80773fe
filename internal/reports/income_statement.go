package reports

import (
	"context"
	"time"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"golang.org/x/sync/errgroup"
)

// IncomeStatement aggregates revenue, cost of goods sold and expenses over a
// date window. Unlike the cumulative balance sheet, this is a period report:
// only movement inside the window counts.
func (e *Engine) IncomeStatement(ctx context.Context, companyID string, startDate, endDate *time.Time) (*ledger.IncomeStatement, error) {
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
		lines, err = e.lines.ListPostedLines(gctx, companyID, ledger.LineFilter{From: startDate, To: endDate})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sums := sumByAccount(lines, normalBalances(accts))

	is := &ledger.IncomeStatement{
		Period:          ledger.ReportPeriod{StartDate: startDate, EndDate: endDate},
		Revenue:         ledger.ReportSection{Accounts: []ledger.ReportAccount{}},
		CostOfGoodsSold: ledger.ReportSection{Accounts: []ledger.ReportAccount{}},
		Expenses:        ledger.ReportSection{Accounts: []ledger.ReportAccount{}},
	}

	for _, a := range accts {
		if !ledger.IsIncomeStatementType(a.Type) {
			continue
		}
		amount, ok := sums[a.ID]
		if !ok || amount.IsZero() {
			continue
		}
		ra := reportAccount(a, amount)
		switch {
		case ledger.IsRevenueType(a.Type):
			is.Revenue.Accounts = append(is.Revenue.Accounts, ra)
			is.Revenue.Total = is.Revenue.Total.Add(amount)
		case a.Type == ledger.TypeCostOfGoodsSold:
			is.CostOfGoodsSold.Accounts = append(is.CostOfGoodsSold.Accounts, ra)
			is.CostOfGoodsSold.Total = is.CostOfGoodsSold.Total.Add(amount)
		default:
			is.Expenses.Accounts = append(is.Expenses.Accounts, ra)
			is.Expenses.Total = is.Expenses.Total.Add(amount)
		}
	}

	is.GrossProfit = is.Revenue.Total.Sub(is.CostOfGoodsSold.Total)
	is.NetIncome = is.GrossProfit.Sub(is.Expenses.Total)
	return is, nil
}
