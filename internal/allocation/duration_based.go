package allocation

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// DurationBasedStrategy sizes buckets 1 and 2 to cover a fixed number of
// years of the base annual gap each, leaving the remainder in growth. The
// growth seed may come out negative when the corpus cannot fund both
// durations; that is a legitimate under-funded starting state and is
// deliberately not clamped, so the simulation surfaces it as early
// exhaustion instead of hiding it.
type DurationBasedStrategy struct {
	Bucket1Years int64
	Bucket2Years int64
}

func NewDurationBasedStrategy(bucket1Years, bucket2Years int) *DurationBasedStrategy {
	return &DurationBasedStrategy{
		Bucket1Years: int64(bucket1Years),
		Bucket2Years: int64(bucket2Years),
	}
}

func (s *DurationBasedStrategy) Name() string { return domain.AllocationDurationBased }

func (s *DurationBasedStrategy) Initialize(in Inputs) Allocation {
	b1 := in.BaseAnnualGap.Mul(decimal.NewFromInt(s.Bucket1Years))
	b2 := in.BaseAnnualGap.Mul(decimal.NewFromInt(s.Bucket2Years))
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
