package simulation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bucketwise/bucketwise/internal/domain"
)

func testParams() domain.ParameterSet {
	return domain.ParameterSet{
		CurrentAge:     55,
		RetirementAge:  60,
		LifeExpectancy: 85,
		MonthlyExpense: decimal.NewFromInt(75000),
		MonthlyPension: decimal.NewFromInt(40000),
		TotalCorpus:    decimal.NewFromInt(11000000),
		InflationRate:  decimal.NewFromFloat(0.06),
		CashReturn:     decimal.NewFromFloat(0.04),
		DebtReturn:     decimal.NewFromFloat(0.06),
		GrowthReturn:   decimal.NewFromFloat(0.09),
	}
}

func TestExpenseProjector_MonthlyExpenseAtRetirement(t *testing.T) {
	ep := NewExpenseProjector(testParams(), false)

	// 75000 * 1.06^5
	assert.True(t, ep.MonthlyExpenseAtRetirement().Round(2).Equal(decimal.RequireFromString("100366.92")),
		"Retirement-day expense should compound today's expense over the accumulation horizon")
}

func TestExpenseProjector_AnnualExpenseBase(t *testing.T) {
	ep := NewExpenseProjector(testParams(), false)

	assert.True(t, ep.AnnualExpenseBase().Equal(ep.MonthlyExpenseAtRetirement().Mul(decimal.NewFromInt(12))),
		"Annual base should be 12x the retirement-day monthly expense")
	assert.True(t, ep.AnnualExpense(1).Equal(ep.AnnualExpenseBase()),
		"Year 1 expense should equal the base with no extra inflation applied")
}

func TestExpenseProjector_MonotonicWithoutShock(t *testing.T) {
	ep := NewExpenseProjector(testParams(), false)

	prev := ep.AnnualExpense(1)
	for year := 2; year <= 25; year++ {
		current := ep.AnnualExpense(year)
		assert.True(t, current.GreaterThan(prev), "Expense should grow every year at positive inflation")
		prev = current
	}
}

func TestExpenseProjector_InflationShock(t *testing.T) {
	base := NewExpenseProjector(testParams(), false)
	shocked := NewExpenseProjector(testParams(), true)

	assert.True(t, shocked.AnnualExpense(1).Equal(base.AnnualExpense(1)),
		"Year 1 has no compounding so the shock cannot show yet")

	for year := 2; year <= 5; year++ {
		assert.True(t, shocked.AnnualExpense(year).GreaterThan(base.AnnualExpense(year)),
			"Shock years should run hotter than the base inflation path")
	}

	// Past the shock window the projection reverts to the base rate
	// compounded from retirement, matching the unshocked path.
	assert.True(t, shocked.AnnualExpense(6).Equal(base.AnnualExpense(6)),
		"Post-shock years should use the base inflation path")
}

func TestExpenseProjector_ZeroAccumulationHorizon(t *testing.T) {
	params := testParams()
	params.CurrentAge = 60

	ep := NewExpenseProjector(params, false)
	assert.True(t, ep.MonthlyExpenseAtRetirement().Equal(params.MonthlyExpense),
		"Retiring today should leave the expense unchanged")
}
