package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/bucketwise/bucketwise/internal/domain"
)

// CSVFormatter implements the spreadsheet export: one row per simulated
// year followed by a summary block with the exhaustion and health fields.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Age", "MonthlyExpense", "Cash", "Debt", "Growth", "Total"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, rec := range result.Records {
		row := []string{
			fmt.Sprintf("%d", rec.Age),
			rec.MonthlyExpense.StringFixed(2),
			rec.Cash.StringFixed(2),
			rec.Debt.StringFixed(2),
			rec.Growth.StringFixed(2),
			rec.Total.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	// Summary block appended below the projection, spreadsheet-style.
	if err := w.Write([]string{}); err != nil {
		return nil, err
	}
	exhaustion := "not exhausted"
	if result.ExhaustionAge != nil {
		exhaustion = fmt.Sprintf("%d", *result.ExhaustionAge)
	}
	summary := [][]string{
		{"Scenario", result.ScenarioName},
		{"LifeExpectancy", fmt.Sprintf("%d", result.LifeExpectancy)},
		{"ExhaustionAge", exhaustion},
		{"HealthStatus", string(result.HealthStatus)},
		{"AdditionalCorpusNeeded", result.AdditionalCorpusNeeded.StringFixed(2)},
	}
	for _, row := range summary {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
