package compare

import (
	"fmt"

	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/bucketwise/bucketwise/internal/simulation"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	SimEngine         *simulation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(simEngine *simulation.Engine) *CompareEngine {
	return &CompareEngine{
		SimEngine:         simEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareScenarios runs the base scenario and each named alternative and
// computes per-scenario deltas against the base. An empty alternative list
// compares the base against every other scenario in the configuration.
func (ce *CompareEngine) CompareScenarios(
	config *domain.Configuration,
	baseScenarioName string,
	alternativeScenarioNames []string,
) (*ComparisonSet, error) {

	baseScenario := config.Scenario(baseScenarioName)
	if baseScenario == nil {
		return nil, fmt.Errorf("base scenario %s not found in configuration", baseScenarioName)
	}

	params := config.ParameterSet()

	baseSummary, err := ce.SimEngine.Run(params, baseScenario)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseSummary)

	if len(alternativeScenarioNames) == 0 {
		for _, sc := range config.Scenarios {
			if sc.Name != baseScenarioName {
				alternativeScenarioNames = append(alternativeScenarioNames, sc.Name)
			}
		}
	}

	alternatives := []ComparisonResult{}
	for _, altName := range alternativeScenarioNames {
		altScenario := config.Scenario(altName)
		if altScenario == nil {
			return nil, fmt.Errorf("alternative scenario %s not found", altName)
		}

		altSummary, err := ce.SimEngine.Run(params, altScenario)
		if err != nil {
			return nil, fmt.Errorf("failed to simulate scenario %s: %w", altName, err)
		}

		altResult := ce.MetricsCalculator.CalculateMetrics(altSummary)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
