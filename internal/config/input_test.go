package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bucketwise/bucketwise/internal/domain"
)

func validConfiguration() *domain.Configuration {
	scenario := domain.Scenario{Name: "Base"}
	scenario.ApplyDefaults()

	return &domain.Configuration{
		Household: domain.Household{
			CurrentAge:     55,
			RetirementAge:  60,
			LifeExpectancy: 85,
			MonthlyExpense: decimal.NewFromInt(75000),
			MonthlyPension: decimal.NewFromInt(40000),
			TotalCorpus:    decimal.NewFromInt(11000000),
		},
		Assumptions: domain.Assumptions{
			InflationRate: decimal.NewFromFloat(0.06),
			CashReturn:    decimal.NewFromFloat(0.04),
			DebtReturn:    decimal.NewFromFloat(0.06),
			GrowthReturn:  decimal.NewFromFloat(0.09),
		},
		Scenarios: []domain.Scenario{scenario},
	}
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	cfg, err := parser.LoadFromFile("testdata/plan.yaml")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 60, cfg.Household.RetirementAge)
	assert.True(t, cfg.Household.TotalCorpus.Equal(decimal.NewFromInt(11000000)))
	assert.True(t, cfg.Assumptions.GrowthReturn.Equal(decimal.NewFromFloat(0.09)))
	require.Len(t, cfg.Scenarios, 3)

	base := cfg.Scenario("Base")
	require.NotNil(t, base)
	assert.Equal(t, domain.AllocationExpenseMultiple, base.Allocation, "Defaults should be applied on load")
	assert.Equal(t, domain.WithdrawalStrictHierarchy, base.Withdrawal)
	assert.Equal(t, 3, base.RebalanceCadence)

	crash := cfg.Scenario("EarlyCrash")
	require.NotNil(t, crash)
	assert.Equal(t, domain.CrashSustained, crash.Crash)
	assert.True(t, crash.CrashImpact.Equal(decimal.NewFromFloat(0.20)), "Sustained crash impact should default to 20%")

	duration := cfg.Scenario("TightDuration")
	require.NotNil(t, duration)
	assert.Equal(t, domain.ReplenishRefillOnEmpty, duration.Replenishment)
	assert.Equal(t, domain.TopUpBasisRealizedExpense, duration.TopUpBasis)
	assert.True(t, duration.InflationShock)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()

	cfg, err := parser.LoadFromFile("testdata/nonexistent.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestValidateConfiguration_Valid(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidateConfiguration(validConfiguration()))
}

func TestValidateConfiguration_Household(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr string
	}{
		{
			"retirement before current age",
			func(c *domain.Configuration) { c.Household.RetirementAge = 50 },
			"retirement age",
		},
		{
			"life expectancy before retirement",
			func(c *domain.Configuration) { c.Household.LifeExpectancy = 60 },
			"life expectancy",
		},
		{
			"negative expense",
			func(c *domain.Configuration) { c.Household.MonthlyExpense = decimal.NewFromInt(-1) },
			"monthly expense cannot be negative",
		},
		{
			"negative corpus",
			func(c *domain.Configuration) { c.Household.TotalCorpus = decimal.NewFromInt(-1) },
			"total corpus cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfiguration()
			tt.mutate(cfg)

			err := parser.ValidateConfiguration(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfiguration_PercentStyleRateRejected(t *testing.T) {
	parser := NewInputParser()

	cfg := validConfiguration()
	cfg.Assumptions.InflationRate = decimal.NewFromInt(6)

	err := parser.ValidateConfiguration(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inflation_rate must be a fraction")
}

func TestValidateConfiguration_NoScenarios(t *testing.T) {
	parser := NewInputParser()

	cfg := validConfiguration()
	cfg.Scenarios = nil

	err := parser.ValidateConfiguration(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenarios provided")
}

func TestValidateConfiguration_DuplicateScenarioNames(t *testing.T) {
	parser := NewInputParser()

	cfg := validConfiguration()
	cfg.Scenarios = append(cfg.Scenarios, cfg.Scenarios[0])

	err := parser.ValidateConfiguration(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate scenario name")
}

func TestValidateConfiguration_ScenarioPolicies(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(*domain.Scenario)
		wantErr string
	}{
		{
			"unknown allocation",
			func(s *domain.Scenario) { s.Allocation = "bogus" },
			"unknown allocation policy",
		},
		{
			"duration allocation without years",
			func(s *domain.Scenario) { s.Allocation = domain.AllocationDurationBased },
			"positive bucket1_years",
		},
		{
			"unknown withdrawal",
			func(s *domain.Scenario) { s.Withdrawal = "bogus" },
			"unknown withdrawal policy",
		},
		{
			"unknown replenishment",
			func(s *domain.Scenario) { s.Replenishment = "bogus" },
			"unknown replenishment policy",
		},
		{
			"zero cadence",
			func(s *domain.Scenario) { s.RebalanceCadence = -1 },
			"rebalance cadence",
		},
		{
			"unknown crash",
			func(s *domain.Scenario) { s.Crash = "bogus" },
			"unknown crash policy",
		},
		{
			"sustained crash with odd duration",
			func(s *domain.Scenario) {
				s.Crash = domain.CrashSustained
				s.CrashYears = 4
				s.CrashImpact = decimal.NewFromFloat(0.20)
			},
			"must be 3 or 5 years",
		},
		{
			"crash impact out of range",
			func(s *domain.Scenario) {
				s.Crash = domain.CrashOneTime
				s.CrashImpact = decimal.NewFromFloat(1.5)
			},
			"crash impact must be a fraction",
		},
		{
			"unknown topup basis",
			func(s *domain.Scenario) { s.TopUpBasis = "bogus" },
			"unknown topup basis",
		},
		{
			"missing name",
			func(s *domain.Scenario) { s.Name = "" },
			"scenario name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfiguration()
			tt.mutate(&cfg.Scenarios[0])

			err := parser.ValidateConfiguration(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
