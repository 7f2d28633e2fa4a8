package replenish

import (
	"github.com/bucketwise/bucketwise/internal/allocation"
	"github.com/bucketwise/bucketwise/internal/domain"
)

// CreateStrategy creates the replenishment strategy for a scenario, sized
// from the allocation's bucket targets. Unknown names fall back to the
// periodic-rebalance default.
func CreateStrategy(scenario *domain.Scenario, alloc allocation.Allocation) Strategy {
	if scenario == nil {
		return NewPeriodicRebalanceStrategy(3, alloc.Bucket1Target)
	}

	switch scenario.Replenishment {
	case domain.ReplenishRefillOnEmpty:
		return NewRefillOnEmptyStrategy(alloc.Bucket1Target, alloc.Bucket2Target)
	case domain.ReplenishPeriodicRebalance:
		return NewPeriodicRebalanceStrategy(scenario.RebalanceCadence, alloc.Bucket1Target)
	default:
		return NewPeriodicRebalanceStrategy(scenario.RebalanceCadence, alloc.Bucket1Target)
	}
}
