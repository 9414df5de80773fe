package store

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
)

const testCompany = "co1"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

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

func testAccount(id, name string, at ledger.AccountType) *ledger.Account {
	nb, _ := ledger.NormalBalanceFor(at)
	return &ledger.Account{
		ID:            id,
		CompanyID:     testCompany,
		Name:          name,
		Type:          at,
		DetailType:    "",
		NormalBalance: nb,
		FullPath:      name,
		IsActive:      true,
	}
}

func seedTwoAccounts(t *testing.T, s *Store) {
	t.Helper()
	require.NoError(t, s.CreateAccount(context.Background(), testAccount("checking", "Checking", ledger.TypeBank)))
	require.NoError(t, s.CreateAccount(context.Background(), testAccount("sales", "Sales", ledger.TypeIncome)))
}

func postTestEntry(t *testing.T, s *Store, id string, day time.Time, desc string, lines ...ledger.JournalLine) {
	t.Helper()
	err := s.PostEntry(context.Background(), &ledger.JournalEntry{
		ID:          id,
		CompanyID:   testCompany,
		EntryNumber: "JE-" + id,
		EntryDate:   day,
		Description: desc,
		Lines:       lines,
	})
	require.NoError(t, err)
}

func TestCreateAndGetAccount(t *testing.T) {
	s := newTestStore(t)
	acct := testAccount("a1", "Business Checking", ledger.TypeBank)
	acct.AccountNumber = "1000"
	acct.DetailType = "Checking"
	require.NoError(t, s.CreateAccount(context.Background(), acct))

	got, err := s.GetAccount(context.Background(), testCompany, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Business Checking", got.Name)
	assert.Equal(t, "1000", got.AccountNumber)
	assert.Equal(t, ledger.Debit, got.NormalBalance)
	assert.True(t, got.CurrentBalance.IsZero())
	assert.True(t, got.IsActive)
}

func TestGetAccount_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetAccount(context.Background(), testCompany, "missing")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestGetAccount_MalformedTimestamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.CreateAccount(ctx, testAccount("a1", "Checking", ledger.TypeBank)))

	_, err := s.writer.Exec(`UPDATE accounts SET created_at = 'last tuesday' WHERE id = 'a1'`)
	require.NoError(t, err)

	_, err = s.GetAccount(ctx, testCompany, "a1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at")
}

func TestGetAccount_CompanyIsolation(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.CreateAccount(context.Background(), testAccount("a1", "Checking", ledger.TypeBank)))

	_, err := s.GetAccount(context.Background(), "other-co", "a1")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestPostEntry_UpdatesCurrentBalances(t *testing.T) {
	s := newTestStore(t)
	seedTwoAccounts(t, s)

	postTestEntry(t, s, "e1", date(2025, 1, 10), "Invoice paid",
		ledger.JournalLine{AccountID: "checking", Debit: dec("500.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("500.00")},
	)

	checking, err := s.GetAccount(context.Background(), testCompany, "checking")
	require.NoError(t, err)
	assert.True(t, checking.CurrentBalance.Equal(dec("500.00")), "got %s", checking.CurrentBalance)

	sales, err := s.GetAccount(context.Background(), testCompany, "sales")
	require.NoError(t, err)
	assert.True(t, sales.CurrentBalance.Equal(dec("500.00")), "got %s", sales.CurrentBalance)
}

func TestPostEntry_RejectsUnbalanced(t *testing.T) {
	s := newTestStore(t)
	seedTwoAccounts(t, s)

	err := s.PostEntry(context.Background(), &ledger.JournalEntry{
		ID: "e1", CompanyID: testCompany, EntryNumber: "JE-0001",
		EntryDate: date(2025, 1, 10), Description: "broken",
		Lines: []ledger.JournalLine{
			{AccountID: "checking", Debit: dec("500.00")},
			{AccountID: "sales", Credit: dec("400.00")},
		},
	})
	assert.ErrorIs(t, err, ledger.ErrUnbalancedEntry)

	// nothing written
	lines, err := s.ListPostedLines(context.Background(), testCompany, ledger.LineFilter{})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestPostEntry_UnknownAccountRollsBack(t *testing.T) {
	s := newTestStore(t)
	seedTwoAccounts(t, s)

	err := s.PostEntry(context.Background(), &ledger.JournalEntry{
		ID: "e1", CompanyID: testCompany, EntryNumber: "JE-0001",
		EntryDate: date(2025, 1, 10), Description: "bad account",
		Lines: []ledger.JournalLine{
			{AccountID: "checking", Debit: dec("100.00")},
			{AccountID: "nope", Credit: dec("100.00")},
		},
	})
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)

	checking, err := s.GetAccount(context.Background(), testCompany, "checking")
	require.NoError(t, err)
	assert.True(t, checking.CurrentBalance.IsZero(), "partial entry leaked into balance")
}

func TestPostedLines_Immutable(t *testing.T) {
	s := newTestStore(t)
	seedTwoAccounts(t, s)
	postTestEntry(t, s, "e1", date(2025, 1, 10), "Invoice",
		ledger.JournalLine{AccountID: "checking", Debit: dec("100.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("100.00")},
	)

	_, err := s.writer.Exec(`UPDATE journal_lines SET debit = '999' WHERE entry_id = 'e1'`)
	assert.Error(t, err)

	_, err = s.writer.Exec(`DELETE FROM journal_lines WHERE entry_id = 'e1'`)
	assert.Error(t, err)

	_, err = s.writer.Exec(`INSERT INTO journal_lines (entry_id, account_id, debit, credit) VALUES ('e1', 'checking', '1', '0')`)
	assert.Error(t, err)
}

func TestPostEntry_AssignsSequentialNumbers(t *testing.T) {
	s := newTestStore(t)
	seedTwoAccounts(t, s)
	ctx := context.Background()

	postWithoutNumber := func(id string) *ledger.JournalEntry {
		e := &ledger.JournalEntry{
			ID: id, CompanyID: testCompany,
			EntryDate: date(2025, 1, 10), Description: "Invoice",
			Lines: []ledger.JournalLine{
				{AccountID: "checking", Debit: dec("100.00")},
				{AccountID: "sales", Credit: dec("100.00")},
			},
		}
		require.NoError(t, s.PostEntry(ctx, e))
		return e
	}

	assert.Equal(t, "JE-0001", postWithoutNumber("e1").EntryNumber)
	assert.Equal(t, "JE-0002", postWithoutNumber("e2").EntryNumber)

	// numbering is per company
	other := &ledger.JournalEntry{
		ID: "e3", CompanyID: "other-co",
		EntryDate: date(2025, 1, 10), Description: "Invoice",
		Lines: []ledger.JournalLine{
			{AccountID: "c2", Debit: dec("50.00")},
			{AccountID: "s2", Credit: dec("50.00")},
		},
	}
	c2 := testAccount("c2", "Checking", ledger.TypeBank)
	c2.CompanyID = "other-co"
	s2 := testAccount("s2", "Sales", ledger.TypeIncome)
	s2.CompanyID = "other-co"
	require.NoError(t, s.CreateAccounts(ctx, []*ledger.Account{c2, s2}))
	require.NoError(t, s.PostEntry(ctx, other))
	assert.Equal(t, "JE-0001", other.EntryNumber)
}

func TestListPostedLines_DateBoundsInclusive(t *testing.T) {
	s := newTestStore(t)
	seedTwoAccounts(t, s)

	for i, day := range []time.Time{date(2025, 1, 1), date(2025, 1, 15), date(2025, 2, 1)} {
		postTestEntry(t, s, "e"+string(rune('1'+i)), day, "entry",
			ledger.JournalLine{AccountID: "checking", Debit: dec("10.00")},
			ledger.JournalLine{AccountID: "sales", Credit: dec("10.00")},
		)
	}

	from := date(2025, 1, 1)
	to := date(2025, 1, 15)
	lines, err := s.ListPostedLines(context.Background(), testCompany, ledger.LineFilter{From: &from, To: &to})
	require.NoError(t, err)
	// two entries of two lines each; the Feb 1 entry falls outside
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.False(t, l.EntryDate.After(to))
	}
}

func TestListPostedLines_AccountFilterAndOrder(t *testing.T) {
	s := newTestStore(t)
	seedTwoAccounts(t, s)

	// posted out of date order; listing must come back date-ordered
	postTestEntry(t, s, "e2", date(2025, 3, 1), "later",
		ledger.JournalLine{AccountID: "checking", Debit: dec("20.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("20.00")},
	)
	postTestEntry(t, s, "e1", date(2025, 1, 1), "earlier",
		ledger.JournalLine{AccountID: "checking", Debit: dec("10.00")},
		ledger.JournalLine{AccountID: "sales", Credit: dec("10.00")},
	)

	lines, err := s.ListPostedLines(context.Background(), testCompany,
		ledger.LineFilter{AccountIDs: []string{"checking"}})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "e1", lines[0].EntryID)
	assert.Equal(t, "e2", lines[1].EntryID)
	for _, l := range lines {
		assert.Equal(t, "checking", l.AccountID)
	}
}

func TestUpdateAccount_CascadesPathsAtomically(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	parent := testAccount("p", "Checking", ledger.TypeBank)
	child := testAccount("c", "Payroll", ledger.TypeBank)
	child.ParentID = "p"
	child.Depth = 1
	child.FullPath = "Checking > Payroll"
	require.NoError(t, s.CreateAccounts(ctx, []*ledger.Account{parent, child}))

	parent.Name = "Business Checking"
	parent.FullPath = "Business Checking"
	err := s.UpdateAccount(ctx, parent, map[string]string{"c": "Business Checking > Payroll"})
	require.NoError(t, err)

	got, err := s.GetAccount(ctx, testCompany, "c")
	require.NoError(t, err)
	assert.Equal(t, "Business Checking > Payroll", got.FullPath)
}

func TestUniquenessChecks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	acct := testAccount("a1", "Checking", ledger.TypeBank)
	acct.AccountNumber = "1000"
	require.NoError(t, s.CreateAccount(ctx, acct))

	exists, err := s.AccountNumberExists(ctx, testCompany, "1000", "")
	require.NoError(t, err)
	assert.True(t, exists)

	// the account itself is excluded when checking its own update
	exists, err = s.AccountNumberExists(ctx, testCompany, "1000", "a1")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = s.SiblingNameExists(ctx, testCompany, "", "Checking", "")
	require.NoError(t, err)
	assert.True(t, exists)

	// case-sensitive: "checking" is a different name
	exists, err = s.SiblingNameExists(ctx, testCompany, "", "checking", "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListAccounts_Filters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTwoAccounts(t, s)

	inactive := testAccount("old", "Old Savings", ledger.TypeBank)
	inactive.IsActive = false
	require.NoError(t, s.CreateAccount(ctx, inactive))

	active, err := s.ListAccounts(ctx, testCompany, AccountFilter{})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := s.ListAccounts(ctx, testCompany, AccountFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	banks, err := s.ListAccounts(ctx, testCompany, AccountFilter{Type: ledger.TypeBank})
	require.NoError(t, err)
	require.Len(t, banks, 1)
	assert.Equal(t, "Checking", banks[0].Name)
}
