package withdrawal

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// Result captures what a withdrawal strategy actually moved in one year.
// FromCash/FromDebt/FromGrowth are the amounts drawn from each bucket,
// Reinvested is any pension surplus credited back to cash, and Unmet is
// the residual gap left after all permitted buckets were exhausted. An
// unmet gap is not carried as debt; exhaustion classification is what
// turns it into a reportable failure.
type Result struct {
	FromCash   decimal.Decimal
	FromDebt   decimal.Decimal
	FromGrowth decimal.Decimal
	Reinvested decimal.Decimal
	Unmet      decimal.Decimal
}

// TotalWithdrawn sums the amounts drawn across all buckets.
func (r Result) TotalWithdrawn() decimal.Decimal {
	return r.FromCash.Add(r.FromDebt).Add(r.FromGrowth)
}

// Strategy resolves one year's net cashflow against the buckets.
// netCashflow is annual pension minus annual expense: negative values are
// a gap to fund, positive values a surplus the strategy may reinvest or
// ignore. Every draw is capped at the source bucket's current balance.
type Strategy interface {
	Name() string
	Withdraw(buckets *domain.BucketState, netCashflow decimal.Decimal) Result
}

// drawFrom moves up to need out of balance, returning the amount moved.
func drawFrom(balance *decimal.Decimal, need decimal.Decimal) decimal.Decimal {
	if need.LessThanOrEqual(decimal.Zero) || balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	take := need
	if take.GreaterThan(*balance) {
		take = *balance
	}
	*balance = balance.Sub(take)
	return take
}
