package domain

import (
	"github.com/shopspring/decimal"
)

// BucketState holds the three bucket balances for a single plan.
// Cash is drawn first, Debt second; Growth is reserved for compounding
// unless the withdrawal policy explicitly permits drawing from it.
// Balances are mutated in place once per simulated year and are never
// driven negative by a withdrawal or transfer (every movement is capped
// at the source bucket's balance). A negative Growth seed from an
// under-funded duration-based allocation is the one legitimate negative
// starting state and is carried through as-is.
type BucketState struct {
	Cash   decimal.Decimal `json:"cash"`
	Debt   decimal.Decimal `json:"debt"`
	Growth decimal.Decimal `json:"growth"`
}

// Total returns the combined corpus across all three buckets.
func (b BucketState) Total() decimal.Decimal {
	return b.Cash.Add(b.Debt).Add(b.Growth)
}

// YearRecord is an immutable snapshot appended once per simulated year.
type YearRecord struct {
	Age            int             `json:"age"`
	MonthlyExpense decimal.Decimal `json:"monthlyExpense"`
	Cash           decimal.Decimal `json:"cash"`
	Debt           decimal.Decimal `json:"debt"`
	Growth         decimal.Decimal `json:"growth"`
	Total          decimal.Decimal `json:"total"`
}
