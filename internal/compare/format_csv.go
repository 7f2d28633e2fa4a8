package compare

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVFormatter formats comparison results as CSV (one row per scenario)
type CSVFormatter struct{}

// Format generates CSV output for a comparison set
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Scenario", "Health", "YearsSolvent", "ExhaustionAge",
		"FinalCorpus", "AdditionalCorpusNeeded", "YearsSolventDiff", "FinalCorpusDiff",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	rows := make([]*ComparisonResult, 0, len(compSet.AlternativeResults)+1)
	rows = append(rows, compSet.BaseResult)
	for i := range compSet.AlternativeResults {
		rows = append(rows, &compSet.AlternativeResults[i])
	}

	for _, r := range rows {
		exhaustion := ""
		if r.ExhaustionAge != nil {
			exhaustion = fmt.Sprintf("%d", *r.ExhaustionAge)
		}
		row := []string{
			r.ScenarioName,
			string(r.HealthStatus),
			fmt.Sprintf("%d", r.YearsSolvent),
			exhaustion,
			r.FinalCorpus.StringFixed(2),
			r.AdditionalCorpusNeeded.StringFixed(2),
			fmt.Sprintf("%d", r.YearsSolventDiff),
			r.FinalCorpusDiff.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
