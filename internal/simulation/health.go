package simulation

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// amberWindowYears is how close to life expectancy an exhaustion may land
// and still be classed as marginal rather than failed.
const amberWindowYears = 3

// ClassifyHealth derives the sustainability status from exhaustion timing.
// It is a pure function of the exhaustion age and life expectancy: GREEN
// when the corpus never exhausts, AMBER when it exhausts within the last
// three years before life expectancy, RED otherwise.
func ClassifyHealth(exhaustionAge *int, lifeExpectancy int) domain.HealthStatus {
	switch {
	case exhaustionAge == nil:
		return domain.HealthGreen
	case *exhaustionAge >= lifeExpectancy-amberWindowYears:
		return domain.HealthAmber
	default:
		return domain.HealthRed
	}
}

// AdditionalCorpusNeeded computes the suggested top-up for an exhausted
// plan: the average annual gap times the years left uncovered. The gap
// basis is a policy choice: the base (first-year) expense, or the mean
// realized inflation-adjusted expense across the simulated years.
func AdditionalCorpusNeeded(
	records []domain.YearRecord,
	annualExpenseBase decimal.Decimal,
	annualPension decimal.Decimal,
	exhaustionAge *int,
	lifeExpectancy int,
	basis string,
) decimal.Decimal {
	if exhaustionAge == nil {
		return decimal.Zero
	}

	annualExpense := annualExpenseBase
	if basis == domain.TopUpBasisRealizedExpense && len(records) > 0 {
		sum := decimal.Zero
		for _, rec := range records {
			sum = sum.Add(rec.MonthlyExpense)
		}
		meanMonthly := sum.Div(decimal.NewFromInt(int64(len(records))))
		annualExpense = meanMonthly.Mul(decimal.NewFromInt(12))
	}

	gap := annualExpense.Sub(annualPension)
	if gap.IsNegative() {
		gap = decimal.Zero
	}

	remainingYears := lifeExpectancy - *exhaustionAge
	return gap.Mul(decimal.NewFromInt(int64(remainingYears)))
}
