package compare

import (
	"encoding/json"
)

// JSONFormatter formats comparison results as pretty-printed JSON
type JSONFormatter struct{}

// Format generates JSON output for a comparison set
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	data, err := json.MarshalIndent(compSet, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
