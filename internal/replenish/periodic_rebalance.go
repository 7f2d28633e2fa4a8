package replenish

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// PeriodicRebalanceStrategy rebalances on a fixed cadence (every third
// year by default): first cash is topped up toward its sizing target
// strictly from debt, then debt is brought toward a 50% share of the
// combined debt+growth pool strictly from growth.
type PeriodicRebalanceStrategy struct {
	Cadence       int
	Bucket1Target decimal.Decimal
}

func NewPeriodicRebalanceStrategy(cadence int, bucket1Target decimal.Decimal) *PeriodicRebalanceStrategy {
	if cadence < 1 {
		cadence = 3
	}
	return &PeriodicRebalanceStrategy{
		Cadence:       cadence,
		Bucket1Target: bucket1Target,
	}
}

func (s *PeriodicRebalanceStrategy) Name() string { return domain.ReplenishPeriodicRebalance }

func (s *PeriodicRebalanceStrategy) AfterWithdrawal(buckets *domain.BucketState, year int) {}

func (s *PeriodicRebalanceStrategy) AfterGrowth(buckets *domain.BucketState, year int) {
	if year%s.Cadence != 0 {
		return
	}

	shortfall := s.Bucket1Target.Sub(buckets.Cash)
	transferUpTo(&buckets.Debt, &buckets.Cash, shortfall)

	desiredDebt := buckets.Debt.Add(buckets.Growth).Div(decimal.NewFromInt(2))
	transferUpTo(&buckets.Growth, &buckets.Debt, desiredDebt.Sub(buckets.Debt))
}
