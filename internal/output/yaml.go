package output

import (
	"gopkg.in/yaml.v3"

	"github.com/bucketwise/bucketwise/internal/domain"
)

// YAMLFormatter emits the SimulationResult as YAML, handy for diffing two
// runs or feeding downstream tooling that already speaks the plan format.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	return yaml.Marshal(result)
}
