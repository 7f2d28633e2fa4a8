package domain

import (
	"github.com/shopspring/decimal"
)

// ParameterSet carries the validated scalar inputs for one simulation run.
// It is constructed once by the config layer and never mutated afterwards;
// the engine treats it as read-only.
type ParameterSet struct {
	CurrentAge     int `json:"currentAge" yaml:"current_age"`
	RetirementAge  int `json:"retirementAge" yaml:"retirement_age"`
	LifeExpectancy int `json:"lifeExpectancy" yaml:"life_expectancy"`

	MonthlyExpense decimal.Decimal `json:"monthlyExpense" yaml:"monthly_expense"`
	MonthlyPension decimal.Decimal `json:"monthlyPension" yaml:"monthly_pension"`
	TotalCorpus    decimal.Decimal `json:"totalCorpus" yaml:"total_corpus"`

	InflationRate decimal.Decimal `json:"inflationRate" yaml:"inflation_rate"`
	CashReturn    decimal.Decimal `json:"cashReturn" yaml:"cash_return"`
	DebtReturn    decimal.Decimal `json:"debtReturn" yaml:"debt_return"`
	GrowthReturn  decimal.Decimal `json:"growthReturn" yaml:"growth_return"`
}

// YearsToRetirement returns the accumulation horizon in whole years.
func (p ParameterSet) YearsToRetirement() int {
	return p.RetirementAge - p.CurrentAge
}

// RetirementYears returns the drawdown horizon in whole years.
func (p ParameterSet) RetirementYears() int {
	return p.LifeExpectancy - p.RetirementAge
}

// AnnualPension returns the guaranteed annual pension income.
func (p ParameterSet) AnnualPension() decimal.Decimal {
	return p.MonthlyPension.Mul(decimal.NewFromInt(12))
}
