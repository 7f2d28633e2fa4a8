package allocation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bucketwise/bucketwise/internal/domain"
)

func TestExpenseMultipleStrategy_Initialize(t *testing.T) {
	strategy := NewExpenseMultipleStrategy()

	alloc := strategy.Initialize(Inputs{
		TotalCorpus:               decimal.NewFromInt(10000000),
		AnnualExpenseAtRetirement: decimal.NewFromInt(1200000),
		BaseAnnualGap:             decimal.NewFromInt(700000),
	})

	assert.True(t, alloc.Buckets.Cash.Equal(decimal.NewFromInt(3600000)), "Cash should be 3x the annual expense")
	assert.True(t, alloc.Buckets.Debt.Equal(decimal.NewFromInt(3200000)), "Debt should get half the remainder")
	assert.True(t, alloc.Buckets.Growth.Equal(decimal.NewFromInt(3200000)), "Growth should get half the remainder")
	assert.True(t, alloc.Buckets.Total().Equal(decimal.NewFromInt(10000000)), "Allocation should preserve the corpus")
	assert.True(t, alloc.Bucket1Target.Equal(alloc.Buckets.Cash), "Bucket 1 target should match the initial cash")
}

func TestExpenseMultipleStrategy_ClampsToCorpus(t *testing.T) {
	strategy := NewExpenseMultipleStrategy()

	alloc := strategy.Initialize(Inputs{
		TotalCorpus:               decimal.NewFromInt(2000000),
		AnnualExpenseAtRetirement: decimal.NewFromInt(1200000),
	})

	assert.True(t, alloc.Buckets.Cash.Equal(decimal.NewFromInt(2000000)), "Cash should absorb the whole corpus when the target exceeds it")
	assert.True(t, alloc.Buckets.Debt.IsZero(), "Debt should start empty")
	assert.True(t, alloc.Buckets.Growth.IsZero(), "Growth should start empty")
}

func TestDurationBasedStrategy_Initialize(t *testing.T) {
	strategy := NewDurationBasedStrategy(3, 7)

	alloc := strategy.Initialize(Inputs{
		TotalCorpus:   decimal.NewFromInt(10000000),
		BaseAnnualGap: decimal.NewFromInt(600000),
	})

	assert.True(t, alloc.Buckets.Cash.Equal(decimal.NewFromInt(1800000)), "Cash should cover 3 years of the gap")
	assert.True(t, alloc.Buckets.Debt.Equal(decimal.NewFromInt(4200000)), "Debt should cover 7 years of the gap")
	assert.True(t, alloc.Buckets.Growth.Equal(decimal.NewFromInt(4000000)), "Growth should take the remainder")
}

func TestDurationBasedStrategy_UnderfundedSeedNotClamped(t *testing.T) {
	strategy := NewDurationBasedStrategy(3, 7)

	alloc := strategy.Initialize(Inputs{
		TotalCorpus:   decimal.NewFromInt(5000000),
		BaseAnnualGap: decimal.NewFromInt(600000),
	})

	assert.True(t, alloc.Buckets.Growth.Equal(decimal.NewFromInt(-1000000)),
		"An under-funded corpus should surface as a negative growth seed")
	assert.True(t, alloc.Buckets.Total().Equal(decimal.NewFromInt(5000000)), "Allocation should still preserve the corpus")
}

func TestFixedPercentageStrategy_Initialize(t *testing.T) {
	strategy := NewFixedPercentageStrategy()

	alloc := strategy.Initialize(Inputs{
		TotalCorpus: decimal.NewFromInt(10000000),
	})

	assert.True(t, alloc.Buckets.Cash.Equal(decimal.NewFromInt(2000000)), "Cash should get 20%")
	assert.True(t, alloc.Buckets.Debt.Equal(decimal.NewFromInt(3000000)), "Debt should get 30%")
	assert.True(t, alloc.Buckets.Growth.Equal(decimal.NewFromInt(5000000)), "Growth should get the remaining 50%")
}

func TestCreateStrategy(t *testing.T) {
	tests := []struct {
		name       string
		allocation string
		wantName   string
	}{
		{"expense multiple", domain.AllocationExpenseMultiple, domain.AllocationExpenseMultiple},
		{"duration based", domain.AllocationDurationBased, domain.AllocationDurationBased},
		{"fixed percentage", domain.AllocationFixedPercentage, domain.AllocationFixedPercentage},
		{"unknown falls back", "bogus", domain.AllocationExpenseMultiple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := CreateStrategy(&domain.Scenario{Allocation: tt.allocation, Bucket1Years: 3, Bucket2Years: 7})
			assert.Equal(t, tt.wantName, strategy.Name())
		})
	}

	assert.Equal(t, domain.AllocationExpenseMultiple, CreateStrategy(nil).Name(), "Nil scenario should use the default strategy")
}
