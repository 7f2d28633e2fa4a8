package allocation

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// FixedPercentageStrategy splits the corpus 20/30/50 regardless of the
// expense level.
type FixedPercentageStrategy struct{}

func NewFixedPercentageStrategy() *FixedPercentageStrategy {
	return &FixedPercentageStrategy{}
}

func (s *FixedPercentageStrategy) Name() string { return domain.AllocationFixedPercentage }

func (s *FixedPercentageStrategy) Initialize(in Inputs) Allocation {
	b1 := in.TotalCorpus.Mul(decimal.NewFromFloat(0.20))
	b2 := in.TotalCorpus.Mul(decimal.NewFromFloat(0.30))
	b3 := in.TotalCorpus.Sub(b1).Sub(b2)

	return Allocation{
		Buckets: domain.BucketState{
			Cash:   b1,
			Debt:   b2,
			Growth: b3,
		},
		Bucket1Target: b1,
		Bucket2Target: b2,
	}
}
