package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalBalanceFor_DebitTypes(t *testing.T) {
	debitTypes := []AccountType{
		TypeBank, TypeAccountsReceivable, TypeOtherCurrentAsset, TypeFixedAsset,
		TypeOtherAsset, TypeCostOfGoodsSold, TypeExpenses, TypeOtherExpense,
	}
	for _, at := range debitTypes {
		nb, ok := NormalBalanceFor(at)
		require.True(t, ok, "type %s", at)
		assert.Equal(t, Debit, nb, "type %s", at)
	}
}

func TestNormalBalanceFor_CreditTypes(t *testing.T) {
	creditTypes := []AccountType{
		TypeAccountsPayable, TypeCreditCard, TypeOtherCurrentLiability,
		TypeLongTermLiability, TypeEquity, TypeIncome, TypeOtherIncome,
	}
	for _, at := range creditTypes {
		nb, ok := NormalBalanceFor(at)
		require.True(t, ok, "type %s", at)
		assert.Equal(t, Credit, nb, "type %s", at)
	}
}

func TestNormalBalanceFor_Unknown(t *testing.T) {
	_, ok := NormalBalanceFor("petty_cash")
	assert.False(t, ok)
}

func TestValidDetailType(t *testing.T) {
	assert.True(t, ValidDetailType(TypeBank, "Checking"))
	assert.True(t, ValidDetailType(TypeExpenses, "Utilities"))

	// "Checking" belongs to bank, not equity
	assert.False(t, ValidDetailType(TypeEquity, "Checking"))
	assert.False(t, ValidDetailType(TypeBank, "Retained Earnings"))
	assert.False(t, ValidDetailType("bogus", "Checking"))
}

func TestTypeSortKey_FollowsCatalogOrder(t *testing.T) {
	assert.Less(t, TypeSortKey(TypeBank), TypeSortKey(TypeAccountsPayable))
	assert.Less(t, TypeSortKey(TypeEquity), TypeSortKey(TypeIncome))
	assert.Less(t, TypeSortKey(TypeIncome), TypeSortKey(TypeExpenses))
	assert.Equal(t, len(AllTypes), TypeSortKey("bogus"))
}

func TestCatalog_CoversEveryGroup(t *testing.T) {
	cat := Catalog()
	assert.Len(t, cat.All, len(AllTypes))
	for _, g := range AllGroups {
		assert.NotEmpty(t, cat.Grouped[g], "group %s", g)
	}
}

func TestStatementMembership(t *testing.T) {
	assert.True(t, IsIncomeStatementType(TypeIncome))
	assert.True(t, IsIncomeStatementType(TypeCostOfGoodsSold))
	assert.False(t, IsIncomeStatementType(TypeBank))

	assert.True(t, IsBalanceSheetType(TypeBank))
	assert.True(t, IsBalanceSheetType(TypeEquity))
	assert.False(t, IsBalanceSheetType(TypeExpenses))

	assert.True(t, IsRevenueType(TypeOtherIncome))
	assert.False(t, IsRevenueType(TypeCostOfGoodsSold))
	assert.True(t, IsExpenseType(TypeOtherExpense))
	assert.False(t, IsExpenseType(TypeCostOfGoodsSold))
}
