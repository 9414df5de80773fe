package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxDepth is the maximum allowed nesting: roots at depth 0, at most three
// levels of sub-accounts below them. A computed depth must stay below this.
const MaxDepth = 4

// PathSeparator joins ancestor names into an account's full path.
const PathSeparator = " > "

// Account is one node of a company's chart of accounts.
type Account struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	Name           string          `json:"name"`
	AccountNumber  string          `json:"account_number,omitempty"`
	Type           AccountType     `json:"account_type"`
	DetailType     string          `json:"detail_type"`
	NormalBalance  NormalBalance   `json:"normal_balance"`
	Description    string          `json:"description,omitempty"`
	ParentID       string          `json:"parent_account_id,omitempty"`
	Depth          int             `json:"depth"`
	FullPath       string          `json:"full_path"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	IsSystem       bool            `json:"is_system_account"`
	IsActive       bool            `json:"is_active"`
	DisplayOrder   int             `json:"display_order"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ChildPath builds a sub-account's full path from its parent's path.
func ChildPath(parentPath, name string) string {
	if parentPath == "" {
		return name
	}
	return parentPath + PathSeparator + name
}

// balanceEpsilon is the tolerance for "equal" monetary comparisons. Posted
// lines carry two decimal places, so anything below a cent is rounding noise.
var balanceEpsilon = decimal.New(1, -2) // 0.01

// AmountsEqual reports whether two amounts match within the bookkeeping tolerance.
func AmountsEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(balanceEpsilon)
}

// IsZeroAmount reports whether an amount is zero within the bookkeeping tolerance.
func IsZeroAmount(a decimal.Decimal) bool {
	return a.Abs().LessThanOrEqual(balanceEpsilon)
}

// Contribution returns a line's signed contribution to an account balance.
// Debit-normal accounts grow by debit − credit, credit-normal by credit − debit.
func Contribution(nb NormalBalance, debit, credit decimal.Decimal) decimal.Decimal {
	if nb == Debit {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// DateLayout is the wire format for report dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string. Empty input yields a nil time,
// meaning "no bound". Malformed input is rejected before any query runs.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
