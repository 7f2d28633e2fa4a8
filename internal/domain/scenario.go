package domain

import (
	"github.com/shopspring/decimal"
)

// Policy names recognized by the strategy factories. Config validation
// rejects anything outside these sets before the engine runs.
const (
	AllocationExpenseMultiple = "expense_multiple"
	AllocationDurationBased   = "duration_based"
	AllocationFixedPercentage = "fixed_percentage"

	WithdrawalStrictHierarchy = "strict_hierarchy"
	WithdrawalFullCascade     = "full_cascade"
	WithdrawalSurplusReinvest = "surplus_reinvest"

	ReplenishPeriodicRebalance = "periodic_rebalance"
	ReplenishRefillOnEmpty     = "refill_on_empty"

	CrashNone      = "none"
	CrashSustained = "sustained"
	CrashOneTime   = "one_time"

	TopUpBasisBaseExpense     = "base_expense"
	TopUpBasisRealizedExpense = "realized_expense"
)

// Scenario bundles the policy selections and stress toggles for one run.
// Empty fields fall back to the defaults applied by ApplyDefaults, so a
// scenario in a plan file only needs to name what it changes.
type Scenario struct {
	Name string `yaml:"name" json:"name"`

	Allocation   string `yaml:"allocation" json:"allocation"`
	Bucket1Years int    `yaml:"bucket1_years" json:"bucket1Years"`
	Bucket2Years int    `yaml:"bucket2_years" json:"bucket2Years"`

	Withdrawal string `yaml:"withdrawal" json:"withdrawal"`

	Replenishment    string `yaml:"replenishment" json:"replenishment"`
	RebalanceCadence int    `yaml:"rebalance_cadence" json:"rebalanceCadence"`

	Crash       string          `yaml:"crash" json:"crash"`
	CrashYears  int             `yaml:"crash_years" json:"crashYears"`
	CrashImpact decimal.Decimal `yaml:"crash_impact" json:"crashImpact"`

	InflationShock bool `yaml:"inflation_shock" json:"inflationShock"`

	TopUpBasis string `yaml:"topup_basis" json:"topupBasis"`
}

// ApplyDefaults fills unset policy fields with the baseline policy bundle:
// expense-multiple allocation, strict hierarchy withdrawal, 3-year periodic
// rebalancing, no crash, base-expense top-up.
func (s *Scenario) ApplyDefaults() {
	if s.Allocation == "" {
		s.Allocation = AllocationExpenseMultiple
	}
	if s.Allocation == AllocationDurationBased {
		if s.Bucket1Years == 0 {
			s.Bucket1Years = 3
		}
		if s.Bucket2Years == 0 {
			s.Bucket2Years = 7
		}
	}
	if s.Withdrawal == "" {
		s.Withdrawal = WithdrawalStrictHierarchy
	}
	if s.Replenishment == "" {
		s.Replenishment = ReplenishPeriodicRebalance
	}
	if s.RebalanceCadence == 0 {
		s.RebalanceCadence = 3
	}
	if s.Crash == "" {
		s.Crash = CrashNone
	}
	if s.Crash == CrashSustained && s.CrashYears == 0 {
		s.CrashYears = 3
	}
	if s.CrashImpact.IsZero() {
		switch s.Crash {
		case CrashSustained:
			s.CrashImpact = decimal.NewFromFloat(0.20)
		case CrashOneTime:
			s.CrashImpact = decimal.NewFromFloat(0.25)
		}
	}
	if s.TopUpBasis == "" {
		s.TopUpBasis = TopUpBasisBaseExpense
	}
}
