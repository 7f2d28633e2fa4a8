package allocation

import (
	"github.com/bucketwise/bucketwise/internal/domain"
)

// CreateStrategy creates an allocation strategy from the scenario's policy
// selection. Unknown names fall back to the expense-multiple default; config
// validation rejects them before a scenario reaches this point.
func CreateStrategy(scenario *domain.Scenario) Strategy {
	if scenario == nil {
		return NewExpenseMultipleStrategy()
	}

	switch scenario.Allocation {
	case domain.AllocationExpenseMultiple:
		return NewExpenseMultipleStrategy()
	case domain.AllocationDurationBased:
		return NewDurationBasedStrategy(scenario.Bucket1Years, scenario.Bucket2Years)
	case domain.AllocationFixedPercentage:
		return NewFixedPercentageStrategy()
	default:
		return NewExpenseMultipleStrategy()
	}
}
