package tui

import (
	"github.com/bucketwise/bucketwise/internal/domain"
)

// ConfigLoadedMsg is sent when the plan file has been parsed and validated
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// ResultMsg carries a finished simulation for the selected scenario
type ResultMsg struct {
	Result *domain.SimulationResult
}

// ErrorMsg carries a load or simulation error
type ErrorMsg struct {
	Err error
}
