package replenish

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// Strategy restores depleted buckets from lower-priority ones. Exactly one
// strategy is active per run; the two hooks let each policy act at its own
// point in the year pipeline. Refill-on-empty reacts immediately after the
// withdrawal step, periodic rebalancing runs after growth on cadence years.
// Every transfer is capped at the source bucket's balance, so a transfer
// can never drive a bucket negative.
type Strategy interface {
	Name() string
	AfterWithdrawal(buckets *domain.BucketState, year int)
	AfterGrowth(buckets *domain.BucketState, year int)
}

// transferUpTo moves min(want, *from) out of from into to.
func transferUpTo(from, to *decimal.Decimal, want decimal.Decimal) decimal.Decimal {
	if want.LessThanOrEqual(decimal.Zero) || from.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	amount := want
	if amount.GreaterThan(*from) {
		amount = *from
	}
	*from = from.Sub(amount)
	*to = to.Add(amount)
	return amount
}
