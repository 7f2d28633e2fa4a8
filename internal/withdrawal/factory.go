package withdrawal

import (
	"github.com/bucketwise/bucketwise/internal/domain"
)

// CreateStrategy creates a withdrawal strategy from the scenario's policy
// selection, falling back to the strict hierarchy default for unknown names.
func CreateStrategy(scenario *domain.Scenario) Strategy {
	if scenario == nil {
		return NewStrictHierarchyStrategy()
	}

	switch scenario.Withdrawal {
	case domain.WithdrawalStrictHierarchy:
		return NewStrictHierarchyStrategy()
	case domain.WithdrawalFullCascade:
		return NewFullCascadeStrategy()
	case domain.WithdrawalSurplusReinvest:
		return NewSurplusReinvestStrategy()
	default:
		return NewStrictHierarchyStrategy()
	}
}
