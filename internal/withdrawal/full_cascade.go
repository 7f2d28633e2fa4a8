package withdrawal

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// FullCascadeStrategy: cash -> debt -> growth.
// Growth is a last-resort expense source once the first two buckets run
// dry; a pension surplus is ignored.
type FullCascadeStrategy struct{}

func NewFullCascadeStrategy() *FullCascadeStrategy { return &FullCascadeStrategy{} }

func (s *FullCascadeStrategy) Name() string { return domain.WithdrawalFullCascade }

func (s *FullCascadeStrategy) Withdraw(buckets *domain.BucketState, netCashflow decimal.Decimal) Result {
	res := Result{}
	if netCashflow.GreaterThanOrEqual(decimal.Zero) {
		return res
	}

	gap := netCashflow.Neg()
	res.FromCash = drawFrom(&buckets.Cash, gap)
	gap = gap.Sub(res.FromCash)
	res.FromDebt = drawFrom(&buckets.Debt, gap)
	gap = gap.Sub(res.FromDebt)
	res.FromGrowth = drawFrom(&buckets.Growth, gap)
	gap = gap.Sub(res.FromGrowth)

	res.Unmet = gap
	return res
}
