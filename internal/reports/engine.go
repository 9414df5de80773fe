// Package reports computes the standard double-entry financial reports from
// the chart of accounts and the posted-entry ledger. All computations are
// side-effect-free reads; the engine never writes.
package reports

import (
	"context"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/shopspring/decimal"
)

// AccountSource supplies the chart of accounts.
type AccountSource interface {
	GetAccount(ctx context.Context, companyID, id string) (*ledger.Account, error)
	ListActiveAccounts(ctx context.Context, companyID string) ([]ledger.Account, error)
}

// LineSource is the ledger query layer: lines of POSTED entries only.
type LineSource interface {
	ListPostedLines(ctx context.Context, companyID string, f ledger.LineFilter) ([]ledger.PostedLine, error)
}

type Engine struct {
	accounts AccountSource
	lines    LineSource
}

func NewEngine(accounts AccountSource, lines LineSource) *Engine {
	return &Engine{accounts: accounts, lines: lines}
}

// sumByAccount folds posted lines into per-account signed balances using each
// account's normal balance direction: debit − credit for debit-normal
// accounts, credit − debit for credit-normal ones.
func sumByAccount(lines []ledger.PostedLine, normal map[string]ledger.NormalBalance) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, l := range lines {
		nb, ok := normal[l.AccountID]
		if !ok {
			// Line against an unknown or inactive account: skip rather than
			// guess a direction. The trial balance will expose any resulting
			// imbalance instead of hiding it.
			continue
		}
		sums[l.AccountID] = sums[l.AccountID].Add(ledger.Contribution(nb, l.Debit, l.Credit))
	}
	return sums
}

func normalBalances(accts []ledger.Account) map[string]ledger.NormalBalance {
	m := make(map[string]ledger.NormalBalance, len(accts))
	for _, a := range accts {
		m[a.ID] = a.NormalBalance
	}
	return m
}

func reportAccount(a ledger.Account, amount decimal.Decimal) ledger.ReportAccount {
	return ledger.ReportAccount{
		AccountID:     a.ID,
		AccountNumber: a.AccountNumber,
		Name:          a.Name,
		Type:          a.Type,
		Amount:        amount,
	}
}
