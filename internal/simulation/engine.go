package simulation

import (
	"github.com/bucketwise/bucketwise/internal/allocation"
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/bucketwise/bucketwise/internal/replenish"
	"github.com/bucketwise/bucketwise/internal/stress"
	"github.com/bucketwise/bucketwise/internal/withdrawal"
	"github.com/shopspring/decimal"
)

// Engine drives the year-by-year drawdown simulation. It owns no state
// between runs: every Run allocates a fresh BucketState, so concurrent
// callers only need to pass independent ParameterSets.
type Engine struct {
	logger Logger
}

// NewEngine creates a simulation engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{logger: NopLogger{}}
}

// SetLogger swaps the engine's logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.logger = l
}

// Run simulates one scenario to life expectancy or exhaustion, whichever
// comes first. The per-year pipeline is fixed: withdrawal, immediate
// refill (refill-on-empty policy only), crash, growth, cadence rebalance
// (periodic policy only), snapshot, exhaustion check. Compounding always
// happens after the year's cash movements so returns apply to balances
// net of withdrawals and crash effects.
func (e *Engine) Run(params domain.ParameterSet, scenario *domain.Scenario) (*domain.SimulationResult, error) {
	sc := *scenario
	sc.ApplyDefaults()

	projector := NewExpenseProjector(params, sc.InflationShock)
	annualPension := params.AnnualPension()

	baseGap := projector.AnnualExpenseBase().Sub(annualPension)
	if baseGap.IsNegative() {
		baseGap = decimal.Zero
	}

	alloc := allocation.CreateStrategy(&sc).Initialize(allocation.Inputs{
		TotalCorpus:               params.TotalCorpus,
		AnnualExpenseAtRetirement: projector.AnnualExpenseBase(),
		BaseAnnualGap:             baseGap,
	})

	withdraw := withdrawal.CreateStrategy(&sc)
	refill := replenish.CreateStrategy(&sc, alloc)
	crash := stress.CreatePolicy(&sc)

	e.logger.Infof("scenario %s: allocation=%s withdrawal=%s replenishment=%s crash=%s",
		sc.Name, sc.Allocation, withdraw.Name(), refill.Name(), crash.Name())

	buckets := alloc.Buckets
	result := &domain.SimulationResult{
		ScenarioName:               sc.Name,
		MonthlyExpenseAtRetirement: projector.MonthlyExpenseAtRetirement(),
		MonthlyPension:             params.MonthlyPension,
		InitialBuckets:             buckets,
		LifeExpectancy:             params.LifeExpectancy,
		RetirementAge:              params.RetirementAge,
	}

	onePlusCash := decimal.NewFromInt(1).Add(params.CashReturn)
	onePlusDebt := decimal.NewFromInt(1).Add(params.DebtReturn)
	onePlusGrowth := decimal.NewFromInt(1).Add(params.GrowthReturn)

	for year := 1; year <= params.RetirementYears(); year++ {
		annualExpense := projector.AnnualExpense(year)
		net := annualPension.Sub(annualExpense)

		wres := withdraw.Withdraw(&buckets, net)
		if wres.Unmet.GreaterThan(decimal.Zero) {
			e.logger.Debugf("year %d: unmet gap %s", year, wres.Unmet.StringFixed(0))
		}

		refill.AfterWithdrawal(&buckets, year)

		buckets.Growth = crash.Apply(buckets.Growth, year)

		buckets.Cash = buckets.Cash.Mul(onePlusCash)
		buckets.Debt = buckets.Debt.Mul(onePlusDebt)
		buckets.Growth = buckets.Growth.Mul(onePlusGrowth)

		refill.AfterGrowth(&buckets, year)

		age := params.RetirementAge + year - 1
		total := buckets.Total()
		result.Records = append(result.Records, domain.YearRecord{
			Age:            age,
			MonthlyExpense: annualExpense.Div(decimal.NewFromInt(12)),
			Cash:           buckets.Cash,
			Debt:           buckets.Debt,
			Growth:         buckets.Growth,
			Total:          total,
		})

		if total.LessThanOrEqual(decimal.Zero) {
			exhaustionAge := age
			result.ExhaustionAge = &exhaustionAge
			e.logger.Warnf("scenario %s: corpus exhausted at age %d", sc.Name, age)
			break
		}
	}

	result.HealthStatus = ClassifyHealth(result.ExhaustionAge, params.LifeExpectancy)
	result.AdditionalCorpusNeeded = AdditionalCorpusNeeded(
		result.Records,
		projector.AnnualExpenseBase(),
		annualPension,
		result.ExhaustionAge,
		params.LifeExpectancy,
		sc.TopUpBasis,
	)

	return result, nil
}
