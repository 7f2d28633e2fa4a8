package replenish

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// RefillOnEmptyStrategy tops a bucket back up the moment a withdrawal
// empties it: cash from debt, debt from growth, each toward its original
// sizing target. Nothing happens on years where the buckets stay funded.
type RefillOnEmptyStrategy struct {
	Bucket1Target decimal.Decimal
	Bucket2Target decimal.Decimal
}

func NewRefillOnEmptyStrategy(bucket1Target, bucket2Target decimal.Decimal) *RefillOnEmptyStrategy {
	return &RefillOnEmptyStrategy{
		Bucket1Target: bucket1Target,
		Bucket2Target: bucket2Target,
	}
}

func (s *RefillOnEmptyStrategy) Name() string { return domain.ReplenishRefillOnEmpty }

func (s *RefillOnEmptyStrategy) AfterWithdrawal(buckets *domain.BucketState, year int) {
	if buckets.Cash.LessThanOrEqual(decimal.Zero) && buckets.Debt.GreaterThan(decimal.Zero) {
		transferUpTo(&buckets.Debt, &buckets.Cash, s.Bucket1Target)
	}
	if buckets.Debt.LessThanOrEqual(decimal.Zero) && buckets.Growth.GreaterThan(decimal.Zero) {
		transferUpTo(&buckets.Growth, &buckets.Debt, s.Bucket2Target)
	}
}

func (s *RefillOnEmptyStrategy) AfterGrowth(buckets *domain.BucketState, year int) {}
