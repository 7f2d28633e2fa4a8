package withdrawal

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// StrictHierarchyStrategy: cash -> debt, growth untouchable.
// The growth bucket is reserved for compounding; expenses never draw from
// it. A pension surplus is ignored rather than reinvested.
type StrictHierarchyStrategy struct{}

func NewStrictHierarchyStrategy() *StrictHierarchyStrategy { return &StrictHierarchyStrategy{} }

func (s *StrictHierarchyStrategy) Name() string { return domain.WithdrawalStrictHierarchy }

func (s *StrictHierarchyStrategy) Withdraw(buckets *domain.BucketState, netCashflow decimal.Decimal) Result {
	res := Result{}
	if netCashflow.GreaterThanOrEqual(decimal.Zero) {
		return res
	}

	gap := netCashflow.Neg()
	res.FromCash = drawFrom(&buckets.Cash, gap)
	gap = gap.Sub(res.FromCash)
	res.FromDebt = drawFrom(&buckets.Debt, gap)
	gap = gap.Sub(res.FromDebt)

	res.Unmet = gap
	return res
}
