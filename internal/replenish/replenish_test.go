package replenish

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bucketwise/bucketwise/internal/allocation"
	"github.com/bucketwise/bucketwise/internal/domain"
)

func buckets(cash, debt, growth int64) domain.BucketState {
	return domain.BucketState{
		Cash:   decimal.NewFromInt(cash),
		Debt:   decimal.NewFromInt(debt),
		Growth: decimal.NewFromInt(growth),
	}
}

func TestRefillOnEmpty_RefillsCashFromDebt(t *testing.T) {
	s := NewRefillOnEmptyStrategy(decimal.NewFromInt(1000), decimal.NewFromInt(2000))

	b := buckets(0, 5000, 3000)
	s.AfterWithdrawal(&b, 1)

	assert.True(t, b.Cash.Equal(decimal.NewFromInt(1000)), "Cash should be refilled to its sizing target")
	assert.True(t, b.Debt.Equal(decimal.NewFromInt(4000)), "Refill should come out of debt")
	assert.True(t, b.Growth.Equal(decimal.NewFromInt(3000)), "Growth should be untouched while debt is funded")
}

func TestRefillOnEmpty_CappedAtDebtBalance(t *testing.T) {
	s := NewRefillOnEmptyStrategy(decimal.NewFromInt(1000), decimal.NewFromInt(2000))

	b := buckets(0, 600, 3000)
	s.AfterWithdrawal(&b, 1)

	assert.True(t, b.Cash.Equal(decimal.NewFromInt(600)), "Refill should be capped at the debt balance")
	assert.True(t, b.Debt.IsZero(), "Debt should be drained, not driven negative")
}

func TestRefillOnEmpty_RefillsDebtFromGrowth(t *testing.T) {
	s := NewRefillOnEmptyStrategy(decimal.NewFromInt(1000), decimal.NewFromInt(2000))

	b := buckets(500, 0, 5000)
	s.AfterWithdrawal(&b, 1)

	assert.True(t, b.Debt.Equal(decimal.NewFromInt(2000)), "Debt should be refilled to its sizing target")
	assert.True(t, b.Growth.Equal(decimal.NewFromInt(3000)), "Refill should come out of growth")
	assert.True(t, b.Cash.Equal(decimal.NewFromInt(500)), "A funded cash bucket should be left alone")
}

func TestRefillOnEmpty_EmptySourceMovesNothing(t *testing.T) {
	s := NewRefillOnEmptyStrategy(decimal.NewFromInt(1000), decimal.NewFromInt(2000))

	b := buckets(0, 0, 0)
	s.AfterWithdrawal(&b, 1)

	assert.True(t, b.Cash.IsZero(), "An empty debt bucket cannot refill cash")
	assert.True(t, b.Debt.IsZero())
	assert.True(t, b.Growth.IsZero())
}

func TestRefillOnEmpty_NoOpWhenFunded(t *testing.T) {
	s := NewRefillOnEmptyStrategy(decimal.NewFromInt(1000), decimal.NewFromInt(2000))

	b := buckets(500, 700, 3000)
	before := b
	s.AfterWithdrawal(&b, 1)

	assert.Equal(t, before, b, "Funded buckets should not trigger any transfer")
}

func TestRefillOnEmpty_AfterGrowthIsNoOp(t *testing.T) {
	s := NewRefillOnEmptyStrategy(decimal.NewFromInt(1000), decimal.NewFromInt(2000))

	b := buckets(0, 5000, 3000)
	s.AfterGrowth(&b, 3)

	assert.True(t, b.Cash.IsZero(), "Refill-on-empty should not act in the post-growth phase")
}

func TestPeriodicRebalance_OnCadenceYear(t *testing.T) {
	s := NewPeriodicRebalanceStrategy(3, decimal.NewFromInt(1000))

	b := buckets(200, 3000, 5000)
	s.AfterGrowth(&b, 3)

	assert.True(t, b.Cash.Equal(decimal.NewFromInt(1000)), "Cash should be topped up to its target")
	// Debt gave 800 to cash (2200), then moves toward half of the 7200 pool.
	assert.True(t, b.Debt.Equal(decimal.NewFromInt(3600)), "Debt should end at half the debt+growth pool")
	assert.True(t, b.Growth.Equal(decimal.NewFromInt(3600)), "Growth should fund the debt top-up")
	assert.True(t, b.Total().Equal(decimal.NewFromInt(8200)), "Rebalancing must conserve the corpus")
}

func TestPeriodicRebalance_OffCadenceYearIsNoOp(t *testing.T) {
	s := NewPeriodicRebalanceStrategy(3, decimal.NewFromInt(1000))

	b := buckets(200, 3000, 5000)
	before := b
	s.AfterGrowth(&b, 4)

	assert.Equal(t, before, b, "Non-cadence years should not move anything")
}

func TestPeriodicRebalance_DebtAlreadyAboveHalf(t *testing.T) {
	s := NewPeriodicRebalanceStrategy(3, decimal.NewFromInt(1000))

	b := buckets(1000, 6000, 2000)
	s.AfterGrowth(&b, 3)

	assert.True(t, b.Debt.Equal(decimal.NewFromInt(6000)), "An over-allocated debt bucket should not shed to growth")
	assert.True(t, b.Growth.Equal(decimal.NewFromInt(2000)))
}

func TestPeriodicRebalance_AfterWithdrawalIsNoOp(t *testing.T) {
	s := NewPeriodicRebalanceStrategy(3, decimal.NewFromInt(1000))

	b := buckets(0, 3000, 5000)
	s.AfterWithdrawal(&b, 3)

	assert.True(t, b.Cash.IsZero(), "Periodic rebalancing should not act right after withdrawal")
}

func TestNewPeriodicRebalanceStrategy_CadenceFloor(t *testing.T) {
	s := NewPeriodicRebalanceStrategy(0, decimal.Zero)
	assert.Equal(t, 3, s.Cadence, "A non-positive cadence should fall back to 3 years")
}

func TestTransferUpTo(t *testing.T) {
	from := decimal.NewFromInt(500)
	to := decimal.NewFromInt(100)

	moved := transferUpTo(&from, &to, decimal.NewFromInt(800))
	assert.True(t, moved.Equal(decimal.NewFromInt(500)), "Transfer should be capped at the source balance")
	assert.True(t, from.IsZero())
	assert.True(t, to.Equal(decimal.NewFromInt(600)))

	moved = transferUpTo(&from, &to, decimal.NewFromInt(-50))
	assert.True(t, moved.IsZero(), "A non-positive want should move nothing")
}

func TestCreateStrategy(t *testing.T) {
	alloc := allocation.Allocation{
		Bucket1Target: decimal.NewFromInt(1000),
		Bucket2Target: decimal.NewFromInt(2000),
	}

	refill := CreateStrategy(&domain.Scenario{Replenishment: domain.ReplenishRefillOnEmpty}, alloc)
	assert.Equal(t, domain.ReplenishRefillOnEmpty, refill.Name())

	rebalance := CreateStrategy(&domain.Scenario{Replenishment: domain.ReplenishPeriodicRebalance, RebalanceCadence: 3}, alloc)
	assert.Equal(t, domain.ReplenishPeriodicRebalance, rebalance.Name())

	fallback := CreateStrategy(nil, alloc)
	assert.Equal(t, domain.ReplenishPeriodicRebalance, fallback.Name(), "Nil scenario should use the rebalance default")
}
