package config

import (
	"fmt"
	"os"

	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan configuration from a YAML file, applies
// scenario defaults, and validates the result.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range config.Scenarios {
		config.Scenarios[i].ApplyDefaults()
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. The engine
// itself never validates; everything out-of-range is rejected here.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateHousehold(&config.Household); err != nil {
		return fmt.Errorf("household validation failed: %w", err)
	}
	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name: %s", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateHousehold validates ages and currency amounts.
func (ip *InputParser) validateHousehold(h *domain.Household) error {
	if h.CurrentAge <= 0 {
		return fmt.Errorf("current age must be positive")
	}
	if h.CurrentAge >= h.RetirementAge {
		return fmt.Errorf("retirement age (%d) must be after current age (%d)", h.RetirementAge, h.CurrentAge)
	}
	if h.RetirementAge >= h.LifeExpectancy {
		return fmt.Errorf("life expectancy (%d) must be after retirement age (%d)", h.LifeExpectancy, h.RetirementAge)
	}
	if h.MonthlyExpense.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly expense cannot be negative")
	}
	if h.MonthlyPension.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly pension cannot be negative")
	}
	if h.TotalCorpus.LessThan(decimal.Zero) {
		return fmt.Errorf("total corpus cannot be negative")
	}
	return nil
}

// validateAssumptions validates the rate inputs. Rates are fractions in
// [0, 1); percent-style values like 6.0 are a common plan-file mistake
// and rejected outright.
func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"inflation_rate", a.InflationRate},
		{"cash_return", a.CashReturn},
		{"debt_return", a.DebtReturn},
		{"growth_return", a.GrowthReturn},
	}
	one := decimal.NewFromInt(1)
	for _, r := range rates {
		if r.value.LessThan(decimal.Zero) || r.value.GreaterThanOrEqual(one) {
			return fmt.Errorf("%s must be a fraction in [0, 1), got %s", r.name, r.value.String())
		}
	}
	return nil
}

// validateScenario validates one policy bundle.
func (ip *InputParser) validateScenario(s *domain.Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	switch s.Allocation {
	case domain.AllocationExpenseMultiple, domain.AllocationFixedPercentage:
	case domain.AllocationDurationBased:
		if s.Bucket1Years <= 0 || s.Bucket2Years <= 0 {
			return fmt.Errorf("duration-based allocation requires positive bucket1_years and bucket2_years")
		}
	default:
		return fmt.Errorf("unknown allocation policy: %s", s.Allocation)
	}

	switch s.Withdrawal {
	case domain.WithdrawalStrictHierarchy, domain.WithdrawalFullCascade, domain.WithdrawalSurplusReinvest:
	default:
		return fmt.Errorf("unknown withdrawal policy: %s", s.Withdrawal)
	}

	switch s.Replenishment {
	case domain.ReplenishPeriodicRebalance:
		if s.RebalanceCadence < 1 {
			return fmt.Errorf("rebalance cadence must be at least 1 year")
		}
	case domain.ReplenishRefillOnEmpty:
	default:
		return fmt.Errorf("unknown replenishment policy: %s", s.Replenishment)
	}

	switch s.Crash {
	case domain.CrashNone:
	case domain.CrashSustained:
		if s.CrashYears != 3 && s.CrashYears != 5 {
			return fmt.Errorf("sustained crash duration must be 3 or 5 years, got %d", s.CrashYears)
		}
		if err := validateImpact(s.CrashImpact); err != nil {
			return err
		}
	case domain.CrashOneTime:
		if err := validateImpact(s.CrashImpact); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown crash policy: %s", s.Crash)
	}

	switch s.TopUpBasis {
	case domain.TopUpBasisBaseExpense, domain.TopUpBasisRealizedExpense:
	default:
		return fmt.Errorf("unknown topup basis: %s", s.TopUpBasis)
	}

	return nil
}

func validateImpact(impact decimal.Decimal) error {
	if impact.LessThanOrEqual(decimal.Zero) || impact.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("crash impact must be a fraction in (0, 1), got %s", impact.String())
	}
	return nil
}
