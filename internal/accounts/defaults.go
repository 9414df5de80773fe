package accounts

import "github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"

// seedAccount is one row of the starter chart a new company receives.
type seedAccount struct {
	Name        string
	Number      string
	Type        ledger.AccountType
	DetailType  string
	Description string
}

// DefaultChart is the starter chart of accounts seeded for every company,
// in display order. All seeded accounts are roots and system accounts.
func DefaultChart() []seedAccount {
	return []seedAccount{
		{"Checking", "1000", ledger.TypeBank, "Checking", "Primary business checking account"},
		{"Savings", "1010", ledger.TypeBank, "Savings", "Business savings account"},
		{"Accounts Receivable", "1100", ledger.TypeAccountsReceivable, "Accounts Receivable", "Amounts owed by customers"},
		{"Inventory", "1200", ledger.TypeOtherCurrentAsset, "Inventory", "Goods held for sale"},
		{"Undeposited Funds", "1250", ledger.TypeOtherCurrentAsset, "Undeposited Funds", "Payments received but not yet deposited"},
		{"Accounts Payable", "2000", ledger.TypeAccountsPayable, "Accounts Payable", "Amounts owed to vendors"},
		{"Credit Card", "2100", ledger.TypeCreditCard, "Credit Card", "Business credit card"},
		{"Sales Tax Payable", "2200", ledger.TypeOtherCurrentLiability, "Sales Tax Payable", "Sales tax collected, owed to tax authorities"},
		{"Owner's Equity", "3000", ledger.TypeEquity, "Owner's Equity", "Owner's capital contributions and draws"},
		{"Opening Balance Equity", "3010", ledger.TypeEquity, "Opening Balance Equity", "Offset for opening balances"},
		{"Retained Earnings", "3900", ledger.TypeEquity, "Retained Earnings", "Accumulated profits retained in the business"},
		{"Sales", "4000", ledger.TypeIncome, "Sales of Product Income", "Income from product sales"},
		{"Service Income", "4100", ledger.TypeIncome, "Service Income", "Income from services rendered"},
		{"Cost of Goods Sold", "5000", ledger.TypeCostOfGoodsSold, "Supplies & Materials", "Direct costs of goods sold"},
		{"Advertising", "6000", ledger.TypeExpenses, "Advertising", "Advertising and marketing costs"},
		{"Bank Charges", "6100", ledger.TypeExpenses, "Bank Charges", "Bank fees and service charges"},
		{"Insurance", "6200", ledger.TypeExpenses, "Insurance", "Business insurance premiums"},
		{"Legal & Professional Fees", "6300", ledger.TypeExpenses, "Legal & Professional Fees", "Legal, accounting and consulting fees"},
		{"Office Expenses", "6400", ledger.TypeExpenses, "Office Expenses", "Office supplies and expenses"},
		{"Rent or Lease", "6500", ledger.TypeExpenses, "Rent or Lease", "Rent for business premises"},
		{"Utilities", "6600", ledger.TypeExpenses, "Utilities", "Electricity, water, internet"},
	}
}
