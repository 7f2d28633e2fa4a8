package allocation

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// ExpenseMultipleStrategy sizes bucket 1 as a multiple of the first-year
// expense (three years by default), splitting whatever remains 50/50
// between the debt and growth buckets. When the target alone exceeds the
// corpus, bucket 1 absorbs everything and buckets 2/3 start empty.
type ExpenseMultipleStrategy struct {
	Multiple int64
}

func NewExpenseMultipleStrategy() *ExpenseMultipleStrategy {
	return &ExpenseMultipleStrategy{Multiple: 3}
}

func (s *ExpenseMultipleStrategy) Name() string { return domain.AllocationExpenseMultiple }

func (s *ExpenseMultipleStrategy) Initialize(in Inputs) Allocation {
	target := in.AnnualExpenseAtRetirement.Mul(decimal.NewFromInt(s.Multiple))
	remaining := in.TotalCorpus.Sub(target)
	if remaining.IsNegative() {
		target = in.TotalCorpus
		remaining = decimal.Zero
	}

	half := remaining.Div(decimal.NewFromInt(2))
	return Allocation{
		Buckets: domain.BucketState{
			Cash:   target,
			Debt:   half,
			Growth: half,
		},
		Bucket1Target: target,
		Bucket2Target: half,
	}
}
