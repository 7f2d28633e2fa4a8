package simulation

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// shockDelta is added to the inflation rate for the first shockYears of
// retirement when the inflation-shock toggle is on.
var shockDelta = decimal.NewFromFloat(0.04)

const shockYears = 5

// ExpenseProjector computes the inflation-adjusted annual expense for a
// simulation year (1-indexed from retirement). The base expense is grown
// from today's terms to retirement once at construction; per-year growth
// then compounds from that base. With a non-negative inflation rate the
// projected expense is monotonically non-decreasing across years.
type ExpenseProjector struct {
	monthlyAtRetirement decimal.Decimal
	inflation           decimal.Decimal
	shockActive         bool
}

// NewExpenseProjector derives the retirement-day expense from today's
// monthly expense and the accumulation horizon.
func NewExpenseProjector(params domain.ParameterSet, shockActive bool) *ExpenseProjector {
	growth := decimal.NewFromInt(1).Add(params.InflationRate).
		Pow(decimal.NewFromInt(int64(params.YearsToRetirement())))

	return &ExpenseProjector{
		monthlyAtRetirement: params.MonthlyExpense.Mul(growth),
		inflation:           params.InflationRate,
		shockActive:         shockActive,
	}
}

// MonthlyExpenseAtRetirement returns the first-year monthly expense.
func (ep *ExpenseProjector) MonthlyExpenseAtRetirement() decimal.Decimal {
	return ep.monthlyAtRetirement
}

// AnnualExpenseBase returns the first-year annual expense, the sizing
// basis for the expense-multiple allocation and the base top-up formula.
func (ep *ExpenseProjector) AnnualExpenseBase() decimal.Decimal {
	return ep.monthlyAtRetirement.Mul(decimal.NewFromInt(12))
}

// AnnualExpense returns the inflation-adjusted annual expense for the
// given simulation year (year 1 is the first year of retirement).
func (ep *ExpenseProjector) AnnualExpense(year int) decimal.Decimal {
	inflation := ep.inflation
	if ep.shockActive && year <= shockYears {
		inflation = inflation.Add(shockDelta)
	}

	factor := decimal.NewFromInt(1).Add(inflation).
		Pow(decimal.NewFromInt(int64(year - 1)))
	return ep.AnnualExpenseBase().Mul(factor)
}
