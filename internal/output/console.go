package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders the full simulation report as plain text:
// position at retirement, health analysis, and the year-wise projection
// table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "THREE-BUCKET RETIREMENT PROJECTION")
	fmt.Fprintln(buf, strings.Repeat("=", 78))
	fmt.Fprintf(buf, "Scenario: %s\n\n", result.ScenarioName)

	c.writePosition(buf, result)
	c.writeHealth(buf, result)
	c.writeProjection(buf, result)

	return buf.Bytes(), nil
}

// writePosition renders the position-at-retirement panel.
func (c ConsoleFormatter) writePosition(buf *bytes.Buffer, result *domain.SimulationResult) {
	fmt.Fprintf(buf, "POSITION AT RETIREMENT (AGE %d)\n", result.RetirementAge)
	fmt.Fprintln(buf, strings.Repeat("-", 78))
	fmt.Fprintf(buf, "Monthly Expense at Retirement: %s\n", FormatAmount(result.MonthlyExpenseAtRetirement))
	fmt.Fprintf(buf, "Monthly Pension:               %s\n", FormatAmount(result.MonthlyPension))

	gap := result.MonthlyGap()
	if gap.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "Monthly Shortfall:             %s\n", FormatAmount(gap))
	} else {
		fmt.Fprintf(buf, "Monthly Surplus:               %s\n", FormatAmount(gap.Abs()))
	}

	fmt.Fprintf(buf, "Initial Buckets:               cash %s / debt %s / growth %s\n\n",
		FormatAmount(result.InitialBuckets.Cash),
		FormatAmount(result.InitialBuckets.Debt),
		FormatAmount(result.InitialBuckets.Growth))
}

// writeHealth renders the sustainability classification and, when the plan
// exhausts, the suggested corpus top-up.
func (c ConsoleFormatter) writeHealth(buf *bytes.Buffer, result *domain.SimulationResult) {
	fmt.Fprintln(buf, "RETIREMENT HEALTH ANALYSIS")
	fmt.Fprintln(buf, strings.Repeat("-", 78))

	switch result.HealthStatus {
	case domain.HealthGreen:
		fmt.Fprintln(buf, "Status: GREEN - sustainable till life expectancy")
	case domain.HealthAmber:
		fmt.Fprintln(buf, "Status: AMBER - marginal, improvement recommended")
	case domain.HealthRed:
		fmt.Fprintln(buf, "Status: RED - corpus exhausted before life expectancy")
	}

	fmt.Fprintf(buf, "Life Expectancy:      %d\n", result.LifeExpectancy)
	if result.ExhaustionAge != nil {
		fmt.Fprintf(buf, "Corpus Exhaustion Age: %d\n", *result.ExhaustionAge)
		fmt.Fprintf(buf, "Suggested Additional Corpus: %s\n", FormatAmount(result.AdditionalCorpusNeeded))
	} else {
		fmt.Fprintln(buf, "Corpus Exhaustion Age: not exhausted")
	}
	fmt.Fprintln(buf)
}

// writeProjection renders the year-wise table, one row per YearRecord.
func (c ConsoleFormatter) writeProjection(buf *bytes.Buffer, result *domain.SimulationResult) {
	fmt.Fprintln(buf, "YEAR-WISE PROJECTION")
	fmt.Fprintln(buf, strings.Repeat("-", 78))
	fmt.Fprintf(buf, "%4s %16s %13s %13s %13s %14s\n",
		"Age", "Monthly Expense", "Cash", "Debt", "Growth", "Total")

	for _, rec := range result.Records {
		fmt.Fprintf(buf, "%4d %16s %13s %13s %13s %14s\n",
			rec.Age,
			FormatAmount(rec.MonthlyExpense),
			FormatAmount(rec.Cash),
			FormatAmount(rec.Debt),
			FormatAmount(rec.Growth),
			FormatAmount(rec.Total))
	}
}
