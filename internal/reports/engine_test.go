package reports

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/store"
)

const testCompany = "co1"

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newTestEngine opens a fresh store with a small chart: checking (bank),
// capital (equity), sales (income), cogs, and rent (expenses).
func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	accts := []*ledger.Account{
		acct("checking", "Checking", ledger.TypeBank),
		acct("capital", "Owner's Capital", ledger.TypeEquity),
		acct("sales", "Sales", ledger.TypeIncome),
		acct("cogs", "Cost of Goods Sold", ledger.TypeCostOfGoodsSold),
		acct("rent", "Rent", ledger.TypeExpenses),
	}
	require.NoError(t, st.CreateAccounts(context.Background(), accts))
	return NewEngine(st, st), st
}

func acct(id, name string, at ledger.AccountType) *ledger.Account {
	nb, _ := ledger.NormalBalanceFor(at)
	return &ledger.Account{
		ID: id, CompanyID: testCompany, Name: name,
		Type: at, NormalBalance: nb, FullPath: name, IsActive: true,
	}
}

func post(t *testing.T, st *store.Store, id string, day time.Time, desc string, lines ...ledger.JournalLine) {
	t.Helper()
	err := st.PostEntry(context.Background(), &ledger.JournalEntry{
		ID: id, CompanyID: testCompany, EntryNumber: "JE-" + id,
		EntryDate: day, Description: desc, Lines: lines,
	})
	require.NoError(t, err)
}

func TestAccountLedger_RunningBalance(t *testing.T) {
	eng, st := newTestEngine(t)

	post(t, st, "e1", date(2025, 1, 5), "Deposit",
		ledger.JournalLine{AccountID: "checking", Debit: dec("100.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("100.00")},
	)
	post(t, st, "e2", date(2025, 1, 10), "Rent paid",
		ledger.JournalLine{AccountID: "rent", Debit: dec("40.00")},
		ledger.JournalLine{AccountID: "checking", Credit: dec("40.00")},
	)

	al, err := eng.AccountLedger(context.Background(), testCompany, "checking", nil, nil)
	require.NoError(t, err)
	require.Len(t, al.Lines, 2)
	assert.True(t, al.OpeningBalance.IsZero())
	assert.True(t, al.Lines[0].RunningBalance.Equal(dec("100.00")), "got %s", al.Lines[0].RunningBalance)
	assert.True(t, al.Lines[1].RunningBalance.Equal(dec("60.00")), "got %s", al.Lines[1].RunningBalance)
	assert.True(t, al.ClosingBalance.Equal(dec("60.00")))
}

func TestAccountLedger_OpeningBalanceBeforeWindow(t *testing.T) {
	eng, st := newTestEngine(t)

	post(t, st, "e1", date(2025, 1, 5), "Deposit",
		ledger.JournalLine{AccountID: "checking", Debit: dec("100.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("100.00")},
	)
	post(t, st, "e2", date(2025, 2, 10), "Another deposit",
		ledger.JournalLine{AccountID: "checking", Debit: dec("50.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("50.00")},
	)

	start := date(2025, 2, 1)
	end := date(2025, 2, 28)
	al, err := eng.AccountLedger(context.Background(), testCompany, "checking", &start, &end)
	require.NoError(t, err)
	assert.True(t, al.OpeningBalance.Equal(dec("100.00")), "got %s", al.OpeningBalance)
	require.Len(t, al.Lines, 1)
	assert.True(t, al.ClosingBalance.Equal(dec("150.00")))
}

func TestAccountLedger_WindowStartIsNotPrior(t *testing.T) {
	eng, st := newTestEngine(t)

	// posted on the window's first day: in-window, not opening
	post(t, st, "e1", date(2025, 2, 1), "Deposit",
		ledger.JournalLine{AccountID: "checking", Debit: dec("75.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("75.00")},
	)

	start := date(2025, 2, 1)
	al, err := eng.AccountLedger(context.Background(), testCompany, "checking", &start, nil)
	require.NoError(t, err)
	assert.True(t, al.OpeningBalance.IsZero())
	require.Len(t, al.Lines, 1)
}

func TestAccountLedger_UnknownOrInactiveAccount(t *testing.T) {
	eng, st := newTestEngine(t)

	_, err := eng.AccountLedger(context.Background(), testCompany, "missing", nil, nil)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)

	dormant := acct("dormant", "Dormant", ledger.TypeBank)
	dormant.IsActive = false
	require.NoError(t, st.CreateAccount(context.Background(), dormant))
	_, err = eng.AccountLedger(context.Background(), testCompany, "dormant", nil, nil)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestIncomeStatement_GrossProfitAndNetIncome(t *testing.T) {
	eng, st := newTestEngine(t)

	post(t, st, "e1", date(2025, 1, 5), "Sale",
		ledger.JournalLine{AccountID: "checking", Debit: dec("500.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("500.00")},
	)
	post(t, st, "e2", date(2025, 1, 6), "Materials",
		ledger.JournalLine{AccountID: "cogs", Debit: dec("200.00")},
		ledger.JournalLine{AccountID: "checking", Credit: dec("200.00")},
	)
	post(t, st, "e3", date(2025, 1, 7), "Rent",
		ledger.JournalLine{AccountID: "rent", Debit: dec("150.00")},
		ledger.JournalLine{AccountID: "checking", Credit: dec("150.00")},
	)

	is, err := eng.IncomeStatement(context.Background(), testCompany, nil, nil)
	require.NoError(t, err)
	assert.True(t, is.Revenue.Total.Equal(dec("500.00")), "revenue %s", is.Revenue.Total)
	assert.True(t, is.CostOfGoodsSold.Total.Equal(dec("200.00")))
	assert.True(t, is.GrossProfit.Equal(dec("300.00")), "gross profit %s", is.GrossProfit)
	assert.True(t, is.Expenses.Total.Equal(dec("150.00")))
	assert.True(t, is.NetIncome.Equal(dec("150.00")), "net income %s", is.NetIncome)
}

func TestIncomeStatement_WindowExcludesOutsideActivity(t *testing.T) {
	eng, st := newTestEngine(t)

	post(t, st, "e1", date(2025, 1, 5), "January sale",
		ledger.JournalLine{AccountID: "checking", Debit: dec("500.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("500.00")},
	)
	post(t, st, "e2", date(2025, 2, 5), "February sale",
		ledger.JournalLine{AccountID: "checking", Debit: dec("300.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("300.00")},
	)

	start := date(2025, 2, 1)
	end := date(2025, 2, 28)
	is, err := eng.IncomeStatement(context.Background(), testCompany, &start, &end)
	require.NoError(t, err)
	assert.True(t, is.Revenue.Total.Equal(dec("300.00")), "revenue %s", is.Revenue.Total)
	assert.True(t, is.NetIncome.Equal(dec("300.00")))
}

func TestIncomeStatement_OmitsZeroMovementAccounts(t *testing.T) {
	eng, st := newTestEngine(t)

	post(t, st, "e1", date(2025, 1, 5), "Sale",
		ledger.JournalLine{AccountID: "checking", Debit: dec("100.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("100.00")},
	)

	is, err := eng.IncomeStatement(context.Background(), testCompany, nil, nil)
	require.NoError(t, err)
	require.Len(t, is.Revenue.Accounts, 1)
	assert.Empty(t, is.CostOfGoodsSold.Accounts)
	assert.Empty(t, is.Expenses.Accounts)
}

func TestTrialBalance_CurrentBalances(t *testing.T) {
	eng, st := newTestEngine(t)

	post(t, st, "e1", date(2025, 1, 5), "Opening capital",
		ledger.JournalLine{AccountID: "checking", Debit: dec("1000.00")},
		ledger.JournalLine{AccountID: "capital", Credit: dec("1000.00")},
	)

	tb, err := eng.TrialBalance(context.Background(), testCompany, nil)
	require.NoError(t, err)
	// every active account is listed, movement or not
	assert.Len(t, tb.Accounts, 5)
	assert.True(t, tb.Totals.TotalDebits.Equal(dec("1000.00")), "debits %s", tb.Totals.TotalDebits)
	assert.True(t, tb.Totals.TotalCredits.Equal(dec("1000.00")))
	assert.True(t, tb.Totals.IsBalanced)

	byID := make(map[string]ledger.TrialBalanceRow)
	for _, row := range tb.Accounts {
		byID[row.AccountID] = row
	}
	assert.True(t, byID["checking"].DebitBalance.Equal(dec("1000.00")))
	assert.True(t, byID["capital"].CreditBalance.Equal(dec("1000.00")))
}

func TestTrialBalance_NegativeBalanceFlipsColumn(t *testing.T) {
	eng, st := newTestEngine(t)

	// overdrawn checking: debit-normal account driven negative
	post(t, st, "e1", date(2025, 1, 5), "Rent overdraft",
		ledger.JournalLine{AccountID: "rent", Debit: dec("80.00")},
		ledger.JournalLine{AccountID: "checking", Credit: dec("80.00")},
	)

	tb, err := eng.TrialBalance(context.Background(), testCompany, nil)
	require.NoError(t, err)
	var checking ledger.TrialBalanceRow
	for _, row := range tb.Accounts {
		if row.AccountID == "checking" {
			checking = row
		}
	}
	assert.True(t, checking.DebitBalance.IsZero())
	assert.True(t, checking.CreditBalance.Equal(dec("80.00")), "got %s", checking.CreditBalance)
	assert.True(t, tb.Totals.IsBalanced)
}

func TestTrialBalance_AsOfPointInTime(t *testing.T) {
	eng, st := newTestEngine(t)

	post(t, st, "e1", date(2025, 1, 5), "January capital",
		ledger.JournalLine{AccountID: "checking", Debit: dec("1000.00")},
		ledger.JournalLine{AccountID: "capital", Credit: dec("1000.00")},
	)
	post(t, st, "e2", date(2025, 3, 5), "March sale",
		ledger.JournalLine{AccountID: "checking", Debit: dec("400.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("400.00")},
	)

	asOf := date(2025, 1, 31)
	tb, err := eng.TrialBalance(context.Background(), testCompany, &asOf)
	require.NoError(t, err)
	assert.True(t, tb.Totals.TotalDebits.Equal(dec("1000.00")), "debits %s", tb.Totals.TotalDebits)
	assert.True(t, tb.Totals.IsBalanced)
}

func TestBalanceSheet_IdentityHolds(t *testing.T) {
	eng, st := newTestEngine(t)

	post(t, st, "e1", date(2025, 1, 5), "Opening capital",
		ledger.JournalLine{AccountID: "checking", Debit: dec("1000.00")},
		ledger.JournalLine{AccountID: "capital", Credit: dec("1000.00")},
	)
	post(t, st, "e2", date(2025, 1, 10), "Sale",
		ledger.JournalLine{AccountID: "checking", Debit: dec("500.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("500.00")},
	)
	post(t, st, "e3", date(2025, 1, 15), "Rent",
		ledger.JournalLine{AccountID: "rent", Debit: dec("150.00")},
		ledger.JournalLine{AccountID: "checking", Credit: dec("150.00")},
	)

	bs, err := eng.BalanceSheet(context.Background(), testCompany, nil)
	require.NoError(t, err)
	assert.True(t, bs.Assets.Total.Equal(dec("1350.00")), "assets %s", bs.Assets.Total)
	assert.True(t, bs.Equity.Total.Equal(dec("1000.00")))
	assert.True(t, bs.Equity.NetIncome.Equal(dec("350.00")), "net income %s", bs.Equity.NetIncome)
	assert.True(t, bs.Equity.TotalIncludingNetIncome.Equal(dec("1350.00")))
	assert.True(t, bs.Totals.IsBalanced)
}

func TestTrialBalance_ImbalanceIsReportedNotError(t *testing.T) {
	eng, st := newTestEngine(t)
	ctx := context.Background()

	post(t, st, "e1", date(2025, 1, 5), "Sale",
		ledger.JournalLine{AccountID: "checking", Debit: dec("500.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("500.00")},
	)

	// deactivating the credit side leaves a one-sided view of the ledger
	sales, err := st.GetAccount(ctx, testCompany, "sales")
	require.NoError(t, err)
	sales.IsActive = false
	require.NoError(t, st.UpdateAccount(ctx, sales, nil))

	asOf := date(2025, 1, 31)
	tb, err := eng.TrialBalance(ctx, testCompany, &asOf)
	require.NoError(t, err)
	assert.False(t, tb.Totals.IsBalanced)
	assert.True(t, tb.Totals.TotalDebits.Equal(dec("500.00")), "debits %s", tb.Totals.TotalDebits)
	assert.True(t, tb.Totals.TotalCredits.IsZero(), "credits %s", tb.Totals.TotalCredits)
}

func TestBalanceSheet_ImbalanceIsReportedNotError(t *testing.T) {
	eng, st := newTestEngine(t)
	ctx := context.Background()

	post(t, st, "e1", date(2025, 1, 5), "Opening capital",
		ledger.JournalLine{AccountID: "checking", Debit: dec("1000.00")},
		ledger.JournalLine{AccountID: "capital", Credit: dec("1000.00")},
	)

	capital, err := st.GetAccount(ctx, testCompany, "capital")
	require.NoError(t, err)
	capital.IsActive = false
	require.NoError(t, st.UpdateAccount(ctx, capital, nil))

	bs, err := eng.BalanceSheet(ctx, testCompany, nil)
	require.NoError(t, err)
	assert.False(t, bs.Totals.IsBalanced)
	assert.True(t, bs.Totals.TotalAssets.Equal(dec("1000.00")), "assets %s", bs.Totals.TotalAssets)
	assert.True(t, bs.Totals.TotalLiabilitiesAndEquity.IsZero())
}

func TestBalanceSheet_AsOfExcludesLaterActivity(t *testing.T) {
	eng, st := newTestEngine(t)

	post(t, st, "e1", date(2025, 1, 5), "Opening capital",
		ledger.JournalLine{AccountID: "checking", Debit: dec("1000.00")},
		ledger.JournalLine{AccountID: "capital", Credit: dec("1000.00")},
	)
	post(t, st, "e2", date(2025, 6, 1), "Later sale",
		ledger.JournalLine{AccountID: "checking", Debit: dec("999.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("999.00")},
	)

	asOf := date(2025, 1, 31)
	bs, err := eng.BalanceSheet(context.Background(), testCompany, &asOf)
	require.NoError(t, err)
	assert.True(t, bs.Assets.Total.Equal(dec("1000.00")), "assets %s", bs.Assets.Total)
	assert.True(t, bs.Equity.NetIncome.IsZero())
	assert.True(t, bs.Totals.IsBalanced)
}
