package allocation

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// Inputs carries everything an allocation strategy may need to size the
// initial buckets. BaseAnnualGap is the first-year expense/pension gap,
// clamped at zero; AnnualExpenseAtRetirement is the full first-year expense.
type Inputs struct {
	TotalCorpus               decimal.Decimal
	AnnualExpenseAtRetirement decimal.Decimal
	BaseAnnualGap             decimal.Decimal
}

// Allocation is the sized starting state plus the per-bucket sizing targets
// the replenishment policies refill toward.
type Allocation struct {
	Buckets       domain.BucketState
	Bucket1Target decimal.Decimal
	Bucket2Target decimal.Decimal
}

// Strategy sizes the initial bucket split from the total corpus.
// Implementations are pure: same inputs, same allocation.
type Strategy interface {
	Name() string
	Initialize(in Inputs) Allocation
}
