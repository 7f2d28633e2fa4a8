package stress

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// CrashPolicy perturbs the growth bucket to simulate a market downturn.
// Apply is called once per year, after withdrawals and before compounding,
// and only ever touches the growth balance.
type CrashPolicy interface {
	Name() string
	Apply(growth decimal.Decimal, year int) decimal.Decimal
}

// NoCrashPolicy leaves the growth bucket alone.
type NoCrashPolicy struct{}

func NewNoCrashPolicy() *NoCrashPolicy { return &NoCrashPolicy{} }

func (p *NoCrashPolicy) Name() string { return domain.CrashNone }

func (p *NoCrashPolicy) Apply(growth decimal.Decimal, year int) decimal.Decimal {
	return growth
}

// SustainedCrashPolicy applies the impact multiplier every year of the
// crash window (typically the first 3 or 5 years at 20%).
type SustainedCrashPolicy struct {
	Years  int
	Impact decimal.Decimal
}

func NewSustainedCrashPolicy(years int, impact decimal.Decimal) *SustainedCrashPolicy {
	return &SustainedCrashPolicy{Years: years, Impact: impact}
}

func (p *SustainedCrashPolicy) Name() string { return domain.CrashSustained }

func (p *SustainedCrashPolicy) Apply(growth decimal.Decimal, year int) decimal.Decimal {
	if year > p.Years {
		return growth
	}
	return growth.Mul(decimal.NewFromInt(1).Sub(p.Impact))
}

// OneTimeCrashPolicy applies a single, deeper hit (typically 25-30%) in
// the first retirement year only.
type OneTimeCrashPolicy struct {
	Impact decimal.Decimal
}

func NewOneTimeCrashPolicy(impact decimal.Decimal) *OneTimeCrashPolicy {
	return &OneTimeCrashPolicy{Impact: impact}
}

func (p *OneTimeCrashPolicy) Name() string { return domain.CrashOneTime }

func (p *OneTimeCrashPolicy) Apply(growth decimal.Decimal, year int) decimal.Decimal {
	if year != 1 {
		return growth
	}
	return growth.Mul(decimal.NewFromInt(1).Sub(p.Impact))
}

// CreatePolicy creates the crash policy for a scenario, defaulting to no
// crash for unknown names.
func CreatePolicy(scenario *domain.Scenario) CrashPolicy {
	if scenario == nil {
		return NewNoCrashPolicy()
	}

	switch scenario.Crash {
	case domain.CrashSustained:
		return NewSustainedCrashPolicy(scenario.CrashYears, scenario.CrashImpact)
	case domain.CrashOneTime:
		return NewOneTimeCrashPolicy(scenario.CrashImpact)
	default:
		return NewNoCrashPolicy()
	}
}
