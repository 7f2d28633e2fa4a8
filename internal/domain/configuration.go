package domain

import (
	"github.com/shopspring/decimal"
)

// Household holds the retiree inputs shared by every scenario in a plan file.
type Household struct {
	CurrentAge     int             `yaml:"current_age" json:"currentAge"`
	RetirementAge  int             `yaml:"retirement_age" json:"retirementAge"`
	LifeExpectancy int             `yaml:"life_expectancy" json:"lifeExpectancy"`
	MonthlyExpense decimal.Decimal `yaml:"monthly_expense" json:"monthlyExpense"`
	MonthlyPension decimal.Decimal `yaml:"monthly_pension" json:"monthlyPension"`
	TotalCorpus    decimal.Decimal `yaml:"total_corpus" json:"totalCorpus"`
}

// Assumptions holds the deterministic rate inputs shared by every scenario.
type Assumptions struct {
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflationRate"`
	CashReturn    decimal.Decimal `yaml:"cash_return" json:"cashReturn"`
	DebtReturn    decimal.Decimal `yaml:"debt_return" json:"debtReturn"`
	GrowthReturn  decimal.Decimal `yaml:"growth_return" json:"growthReturn"`
}

// Configuration is the parsed shape of a plan file: one household, one set
// of rate assumptions, and any number of named policy scenarios.
type Configuration struct {
	Household   Household   `yaml:"household" json:"household"`
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions"`
	Scenarios   []Scenario  `yaml:"scenarios" json:"scenarios"`
}

// ParameterSet flattens household and assumptions into the immutable input
// value the engine consumes.
func (c *Configuration) ParameterSet() ParameterSet {
	return ParameterSet{
		CurrentAge:     c.Household.CurrentAge,
		RetirementAge:  c.Household.RetirementAge,
		LifeExpectancy: c.Household.LifeExpectancy,
		MonthlyExpense: c.Household.MonthlyExpense,
		MonthlyPension: c.Household.MonthlyPension,
		TotalCorpus:    c.Household.TotalCorpus,
		InflationRate:  c.Assumptions.InflationRate,
		CashReturn:     c.Assumptions.CashReturn,
		DebtReturn:     c.Assumptions.DebtReturn,
		GrowthReturn:   c.Assumptions.GrowthReturn,
	}
}

// Scenario returns the named scenario, or nil when absent.
func (c *Configuration) Scenario(name string) *Scenario {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i]
		}
	}
	return nil
}
