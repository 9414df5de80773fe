package ledger

// AccountType is the closed classification set for accounts.
type AccountType string

const (
	TypeBank                  AccountType = "bank"
	TypeAccountsReceivable    AccountType = "accounts_receivable"
	TypeOtherCurrentAsset     AccountType = "other_current_asset"
	TypeFixedAsset            AccountType = "fixed_asset"
	TypeOtherAsset            AccountType = "other_asset"
	TypeAccountsPayable       AccountType = "accounts_payable"
	TypeCreditCard            AccountType = "credit_card"
	TypeOtherCurrentLiability AccountType = "other_current_liability"
	TypeLongTermLiability     AccountType = "long_term_liability"
	TypeEquity                AccountType = "equity"
	TypeIncome                AccountType = "income"
	TypeOtherIncome           AccountType = "other_income"
	TypeCostOfGoodsSold       AccountType = "cost_of_goods_sold"
	TypeExpenses              AccountType = "expenses"
	TypeOtherExpense          AccountType = "other_expense"
)

// NormalBalance is the side on which an account type's balance increases.
type NormalBalance string

const (
	Debit  NormalBalance = "DEBIT"
	Credit NormalBalance = "CREDIT"
)

// Group is the top-level presentation grouping for account types.
type Group string

const (
	GroupAssets      Group = "assets"
	GroupLiabilities Group = "liabilities"
	GroupEquity      Group = "equity"
	GroupIncome      Group = "income"
	GroupExpenses    Group = "expenses"
)

var AllGroups = []Group{
	GroupAssets,
	GroupLiabilities,
	GroupEquity,
	GroupIncome,
	GroupExpenses,
}

// TypeInfo is one row of the account types catalog.
type TypeInfo struct {
	Type          AccountType   `json:"type"`
	Label         string        `json:"label"`
	Group         Group         `json:"group"`
	NormalBalance NormalBalance `json:"normal_balance"`
	DetailTypes   []string      `json:"detail_types"`
}

// AllTypes lists every account type in catalog order. The order doubles as the
// sort order for reports grouped by type.
var AllTypes = []TypeInfo{
	{TypeBank, "Bank", GroupAssets, Debit,
		[]string{"Checking", "Savings", "Money Market", "Cash on Hand", "Trust Account"}},
	{TypeAccountsReceivable, "Accounts Receivable", GroupAssets, Debit,
		[]string{"Accounts Receivable"}},
	{TypeOtherCurrentAsset, "Other Current Asset", GroupAssets, Debit,
		[]string{"Inventory", "Prepaid Expenses", "Undeposited Funds", "Employee Cash Advances", "Other Current Assets"}},
	{TypeFixedAsset, "Fixed Asset", GroupAssets, Debit,
		[]string{"Buildings", "Furniture & Fixtures", "Machinery & Equipment", "Vehicles", "Accumulated Depreciation", "Leasehold Improvements"}},
	{TypeOtherAsset, "Other Asset", GroupAssets, Debit,
		[]string{"Goodwill", "Security Deposits", "Other Long-term Assets"}},
	{TypeAccountsPayable, "Accounts Payable", GroupLiabilities, Credit,
		[]string{"Accounts Payable"}},
	{TypeCreditCard, "Credit Card", GroupLiabilities, Credit,
		[]string{"Credit Card"}},
	{TypeOtherCurrentLiability, "Other Current Liability", GroupLiabilities, Credit,
		[]string{"Payroll Liabilities", "Sales Tax Payable", "Accrued Liabilities", "Line of Credit", "Other Current Liabilities"}},
	{TypeLongTermLiability, "Long Term Liability", GroupLiabilities, Credit,
		[]string{"Notes Payable", "Mortgage Payable", "Shareholder Loans", "Other Long-term Liabilities"}},
	{TypeEquity, "Equity", GroupEquity, Credit,
		[]string{"Owner's Equity", "Opening Balance Equity", "Retained Earnings", "Partner Contributions", "Partner Distributions"}},
	{TypeIncome, "Income", GroupIncome, Credit,
		[]string{"Sales of Product Income", "Service Income", "Discounts/Refunds Given", "Other Primary Income"}},
	{TypeOtherIncome, "Other Income", GroupIncome, Credit,
		[]string{"Interest Earned", "Dividend Income", "Gain on Sale of Assets", "Other Miscellaneous Income"}},
	{TypeCostOfGoodsSold, "Cost of Goods Sold", GroupExpenses, Debit,
		[]string{"Supplies & Materials", "Cost of Labor", "Shipping, Freight & Delivery", "Other Costs of Sales"}},
	{TypeExpenses, "Expenses", GroupExpenses, Debit,
		[]string{"Advertising", "Bank Charges", "Insurance", "Legal & Professional Fees", "Office Expenses", "Payroll Expenses", "Rent or Lease", "Repair & Maintenance", "Travel", "Utilities", "Other Business Expenses"}},
	{TypeOtherExpense, "Other Expense", GroupExpenses, Debit,
		[]string{"Depreciation", "Amortization", "Penalties & Settlements", "Other Miscellaneous Expense"}},
}

var typeIndex = func() map[AccountType]TypeInfo {
	m := make(map[AccountType]TypeInfo, len(AllTypes))
	for _, ti := range AllTypes {
		m[ti.Type] = ti
	}
	return m
}()

// LookupType returns the catalog row for a type, or false if unknown.
func LookupType(t AccountType) (TypeInfo, bool) {
	ti, ok := typeIndex[t]
	return ti, ok
}

// ValidType reports whether t is a known account type.
func ValidType(t AccountType) bool {
	_, ok := typeIndex[t]
	return ok
}

// ValidDetailType reports whether dt is whitelisted for account type t.
// An unknown type yields false, never an error; the caller decides severity.
func ValidDetailType(t AccountType, dt string) bool {
	ti, ok := typeIndex[t]
	if !ok {
		return false
	}
	for _, d := range ti.DetailTypes {
		if d == dt {
			return true
		}
	}
	return false
}

// NormalBalanceFor derives the normal balance from the account type.
// Asset and expense types are debit-normal; everything else is credit-normal.
func NormalBalanceFor(t AccountType) (NormalBalance, bool) {
	ti, ok := typeIndex[t]
	if !ok {
		return "", false
	}
	return ti.NormalBalance, true
}

// GroupFor returns the top-level group for an account type.
func GroupFor(t AccountType) Group {
	return typeIndex[t].Group
}

// TypeLabel returns the display label for an account type.
func TypeLabel(t AccountType) string {
	if ti, ok := typeIndex[t]; ok {
		return ti.Label
	}
	return string(t)
}

// TypeSortKey returns the catalog position of a type, used to order report
// rows by (accountType, displayOrder, accountNumber).
func TypeSortKey(t AccountType) int {
	for i, ti := range AllTypes {
		if ti.Type == t {
			return i
		}
	}
	return len(AllTypes)
}

// GroupLabel returns a human-readable label for a group.
func GroupLabel(g Group) string {
	switch g {
	case GroupAssets:
		return "Assets"
	case GroupLiabilities:
		return "Liabilities"
	case GroupEquity:
		return "Equity"
	case GroupIncome:
		return "Income"
	case GroupExpenses:
		return "Expenses"
	default:
		return string(g)
	}
}

// TypesCatalog is the account-types reference payload served to clients.
type TypesCatalog struct {
	All     []TypeInfo           `json:"all"`
	Grouped map[Group][]TypeInfo `json:"grouped"`
	Groups  []Group              `json:"groups"`
}

// Catalog assembles the full account types catalog.
func Catalog() TypesCatalog {
	grouped := make(map[Group][]TypeInfo, len(AllGroups))
	for _, ti := range AllTypes {
		grouped[ti.Group] = append(grouped[ti.Group], ti)
	}
	return TypesCatalog{All: AllTypes, Grouped: grouped, Groups: AllGroups}
}

// IsIncomeStatementType reports whether t participates in the income statement.
func IsIncomeStatementType(t AccountType) bool {
	switch t {
	case TypeIncome, TypeOtherIncome, TypeCostOfGoodsSold, TypeExpenses, TypeOtherExpense:
		return true
	}
	return false
}

// IsBalanceSheetType reports whether t participates in the balance sheet.
func IsBalanceSheetType(t AccountType) bool {
	switch GroupFor(t) {
	case GroupAssets, GroupLiabilities, GroupEquity:
		return true
	}
	return false
}

// IsRevenueType reports whether t counts toward revenue.
func IsRevenueType(t AccountType) bool {
	return t == TypeIncome || t == TypeOtherIncome
}

// IsExpenseType reports whether t counts toward operating expenses
// (cost of goods sold is tracked separately).
func IsExpenseType(t AccountType) bool {
	return t == TypeExpenses || t == TypeOtherExpense
}
