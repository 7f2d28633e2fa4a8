package domain

import (
	"github.com/shopspring/decimal"
)

// HealthStatus classifies plan sustainability from exhaustion timing.
type HealthStatus string

const (
	HealthGreen HealthStatus = "GREEN"
	HealthAmber HealthStatus = "AMBER"
	HealthRed   HealthStatus = "RED"
)

// SimulationResult is the sole output artifact of one engine run.
// Records holds one YearRecord per simulated year, truncated at the first
// year whose total reaches zero or below. ExhaustionAge is nil when the
// corpus survives the full horizon; AdditionalCorpusNeeded is zero exactly
// in that case.
type SimulationResult struct {
	ScenarioName string `json:"scenarioName"`

	Records []YearRecord `json:"records"`

	ExhaustionAge          *int            `json:"exhaustionAge"`
	HealthStatus           HealthStatus    `json:"healthStatus"`
	AdditionalCorpusNeeded decimal.Decimal `json:"additionalCorpusNeeded"`

	// Position at retirement, kept for the summary panels.
	MonthlyExpenseAtRetirement decimal.Decimal `json:"monthlyExpenseAtRetirement"`
	MonthlyPension             decimal.Decimal `json:"monthlyPension"`
	InitialBuckets             BucketState     `json:"initialBuckets"`

	LifeExpectancy int `json:"lifeExpectancy"`
	RetirementAge  int `json:"retirementAge"`
}

// FinalCorpus returns the total of the last simulated year, or zero when
// no years were simulated.
func (r *SimulationResult) FinalCorpus() decimal.Decimal {
	if len(r.Records) == 0 {
		return decimal.Zero
	}
	return r.Records[len(r.Records)-1].Total
}

// YearsSolvent returns how many years the corpus lasted. A plan that never
// exhausts is solvent for the full drawdown horizon.
func (r *SimulationResult) YearsSolvent() int {
	if r.ExhaustionAge == nil {
		return r.LifeExpectancy - r.RetirementAge
	}
	return *r.ExhaustionAge - r.RetirementAge
}

// MonthlyGap returns the shortfall between the inflation-adjusted expense
// at retirement and the pension. Negative values indicate a surplus.
func (r *SimulationResult) MonthlyGap() decimal.Decimal {
	return r.MonthlyExpenseAtRetirement.Sub(r.MonthlyPension)
}
