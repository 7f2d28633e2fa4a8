package withdrawal

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// SurplusReinvestStrategy treats the year's net cashflow as signed: a
// pension surplus is credited back into the cash bucket instead of being
// clamped away, a gap cascades cash -> debt with growth reserved.
type SurplusReinvestStrategy struct{}

func NewSurplusReinvestStrategy() *SurplusReinvestStrategy { return &SurplusReinvestStrategy{} }

func (s *SurplusReinvestStrategy) Name() string { return domain.WithdrawalSurplusReinvest }

func (s *SurplusReinvestStrategy) Withdraw(buckets *domain.BucketState, netCashflow decimal.Decimal) Result {
	res := Result{}
	if netCashflow.GreaterThanOrEqual(decimal.Zero) {
		buckets.Cash = buckets.Cash.Add(netCashflow)
		res.Reinvested = netCashflow
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
