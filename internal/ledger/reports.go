package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod is the optional date window of a period report.
type ReportPeriod struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// TrialBalanceRow is one account's balance split into debit/credit columns.
type TrialBalanceRow struct {
	AccountID     string          `json:"account_id"`
	AccountNumber string          `json:"account_number,omitempty"`
	Name          string          `json:"name"`
	Type          AccountType     `json:"account_type"`
	NormalBalance NormalBalance   `json:"normal_balance"`
	DebitBalance  decimal.Decimal `json:"debit_balance"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
}

// TrialBalanceTotals carries the defining correctness check of the ledger:
// total debits must equal total credits.
type TrialBalanceTotals struct {
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	IsBalanced   bool            `json:"is_balanced"`
}

type TrialBalance struct {
	AsOfDate *time.Time                        `json:"as_of_date,omitempty"`
	Accounts []TrialBalanceRow                 `json:"accounts"`
	Grouped  map[AccountType][]TrialBalanceRow `json:"grouped"`
	Totals   TrialBalanceTotals                `json:"totals"`
}

// LedgerLine is one row of an account ledger with the running balance after it.
type LedgerLine struct {
	Date           time.Time       `json:"date"`
	EntryID        string          `json:"entry_id"`
	EntryNumber    string          `json:"entry_number"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

type AccountLedger struct {
	Account        Account         `json:"account"`
	Period         ReportPeriod    `json:"period"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Lines          []LedgerLine    `json:"lines"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// ReportAccount is one account's aggregated amount inside a report section.
type ReportAccount struct {
	AccountID     string          `json:"account_id"`
	AccountNumber string          `json:"account_number,omitempty"`
	Name          string          `json:"name"`
	Type          AccountType     `json:"account_type"`
	Amount        decimal.Decimal `json:"amount"`
}

type ReportSection struct {
	Accounts []ReportAccount `json:"accounts"`
	Total    decimal.Decimal `json:"total"`
}

type IncomeStatement struct {
	Period          ReportPeriod    `json:"period"`
	Revenue         ReportSection   `json:"revenue"`
	CostOfGoodsSold ReportSection   `json:"cost_of_goods_sold"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	Expenses        ReportSection   `json:"expenses"`
	NetIncome       decimal.Decimal `json:"net_income"`
}

// EquitySection extends a plain section with net income, which belongs to
// equity on the balance sheet even though no account carries it.
type EquitySection struct {
	Accounts                []ReportAccount `json:"accounts"`
	Total                   decimal.Decimal `json:"total"`
	NetIncome               decimal.Decimal `json:"net_income"`
	TotalIncludingNetIncome decimal.Decimal `json:"total_including_net_income"`
}

type BalanceSheetTotals struct {
	TotalAssets               decimal.Decimal `json:"total_assets"`
	TotalLiabilitiesAndEquity decimal.Decimal `json:"total_liabilities_and_equity"`
	IsBalanced                bool            `json:"is_balanced"`
}

type BalanceSheet struct {
	AsOfDate    *time.Time         `json:"as_of_date,omitempty"`
	Assets      ReportSection      `json:"assets"`
	Liabilities ReportSection      `json:"liabilities"`
	Equity      EquitySection      `json:"equity"`
	Totals      BalanceSheetTotals `json:"totals"`
}

// TreeNode is an account with its active sub-accounts nested beneath it.
type TreeNode struct {
	Account
	SubAccounts []*TreeNode `json:"sub_accounts"`
}

// TreeGroup collects the root accounts of one top-level group.
type TreeGroup struct {
	Group    Group       `json:"group"`
	Label    string      `json:"label"`
	Accounts []*TreeNode `json:"accounts"`
}

// ChartTree is the full chart of accounts arranged for display.
type ChartTree struct {
	Groups []TreeGroup `json:"groups"`
}

// AccountSummary is an account row for list views, with the sub-account count
// the UI needs without a second round trip.
type AccountSummary struct {
	Account
	SubAccountsCount int `json:"sub_accounts_count"`
}
