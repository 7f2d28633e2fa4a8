package compare

import (
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario with its key metrics and
// deltas against the base scenario.
type ComparisonResult struct {
	ScenarioName string                   `json:"scenarioName"`
	Result       *domain.SimulationResult `json:"result"`

	// Key metrics
	HealthStatus           domain.HealthStatus `json:"healthStatus"`
	YearsSolvent           int                 `json:"yearsSolvent"`
	ExhaustionAge          *int                `json:"exhaustionAge"`
	FinalCorpus            decimal.Decimal     `json:"finalCorpus"`
	AdditionalCorpusNeeded decimal.Decimal     `json:"additionalCorpusNeeded"`

	// Deltas from base
	YearsSolventDiff   int             `json:"yearsSolventDiff"`
	FinalCorpusDiff    decimal.Decimal `json:"finalCorpusDiff"`
	FinalCorpusPctDiff decimal.Decimal `json:"finalCorpusPctDiff"`
}

// ComparisonSet represents a collection of scenario comparisons against
// one base scenario.
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts key metrics from simulation results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for one simulation result.
func (mc *MetricsCalculator) CalculateMetrics(result *domain.SimulationResult) ComparisonResult {
	return ComparisonResult{
		ScenarioName:           result.ScenarioName,
		Result:                 result,
		HealthStatus:           result.HealthStatus,
		YearsSolvent:           result.YearsSolvent(),
		ExhaustionAge:          result.ExhaustionAge,
		FinalCorpus:            result.FinalCorpus(),
		AdditionalCorpusNeeded: result.AdditionalCorpusNeeded,
	}
}

// CalculateComparison fills a scenario's deltas against the base result.
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.YearsSolventDiff = scenario.YearsSolvent - base.YearsSolvent
	scenario.FinalCorpusDiff = scenario.FinalCorpus.Sub(base.FinalCorpus)

	if !base.FinalCorpus.IsZero() {
		scenario.FinalCorpusPctDiff = scenario.FinalCorpusDiff.
			Div(base.FinalCorpus).
			Mul(decimal.NewFromInt(100))
	}

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Longest-lasting plan
	bestLongevity := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.YearsSolvent > bestLongevity.YearsSolvent {
			bestLongevity = alt
		}
	}
	if bestLongevity != compSet.BaseResult {
		yearsDiff := bestLongevity.YearsSolvent - compSet.BaseResult.YearsSolvent
		recommendations = append(recommendations,
			"Best Longevity: "+bestLongevity.ScenarioName+" keeps the corpus solvent "+
				plural(yearsDiff, "year")+" longer than the base scenario")
	}

	// Largest final corpus
	bestCorpus := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.FinalCorpus.GreaterThan(bestCorpus.FinalCorpus) {
			bestCorpus = alt
		}
	}
	if bestCorpus != compSet.BaseResult {
		diff := bestCorpus.FinalCorpus.Sub(compSet.BaseResult.FinalCorpus)
		recommendations = append(recommendations,
			"Best Final Corpus: "+bestCorpus.ScenarioName+" ends with "+
				diff.StringFixed(0)+" more than the base scenario")
	}

	// Any RED scenario with a concrete top-up
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.HealthStatus == domain.HealthRed && alt.AdditionalCorpusNeeded.GreaterThan(decimal.Zero) {
			recommendations = append(recommendations,
				"Shortfall: "+alt.ScenarioName+" needs roughly "+
					alt.AdditionalCorpusNeeded.StringFixed(0)+" of additional corpus to reach life expectancy")
		}
	}

	return recommendations
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return decimal.NewFromInt(int64(n)).String() + " " + unit + "s"
}
