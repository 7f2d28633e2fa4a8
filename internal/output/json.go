package output

import (
	"encoding/json"

	"github.com/bucketwise/bucketwise/internal/domain"
)

// JSONFormatter emits the full SimulationResult as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
