package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bucketwise/bucketwise/internal/output"
)

// View renders the active tab (required by tea.Model)
func (m Model) View() string {
	if m.err != nil {
		return appStyle.Render(errorStyle.Render("Error: "+m.err.Error()) + "\n\n" + helpStyle.Render("q: quit"))
	}
	if m.loading || m.result == nil {
		return appStyle.Render("Running simulation...")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Bucketwise — " + m.result.ScenarioName))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.activeTab {
	case TabSummary:
		b.WriteString(m.renderSummary())
	case TabProjection:
		b.WriteString(m.projTable.View())
	case TabChart:
		b.WriteString(m.renderChart())
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: switch view  s: next scenario  q: quit"))

	return appStyle.Render(b.String())
}

// renderTabs renders the tab bar with the active tab highlighted
func (m Model) renderTabs() string {
	tabs := make([]string, 0, int(tabCount))
	for t := TabSummary; t < tabCount; t++ {
		if t == m.activeTab {
			tabs = append(tabs, activeTab.Render(t.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderSummary renders the position and health panels
func (m Model) renderSummary() string {
	r := m.result
	var b strings.Builder

	metric := func(label, value string) {
		b.WriteString(metricLabelStyle.Render(label))
		b.WriteString(metricValueStyle.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("Position at Retirement (Age %d)", r.RetirementAge)))
	b.WriteString("\n\n")
	metric("Monthly Expense at Retirement", output.FormatAmount(r.MonthlyExpenseAtRetirement))
	metric("Monthly Pension", output.FormatAmount(r.MonthlyPension))
	if gap := r.MonthlyGap(); gap.IsPositive() {
		metric("Monthly Shortfall", output.FormatAmount(gap))
	} else {
		metric("Monthly Surplus", output.FormatAmount(gap.Abs()))
	}
	metric("Initial Cash Bucket", output.FormatAmount(r.InitialBuckets.Cash))
	metric("Initial Debt Bucket", output.FormatAmount(r.InitialBuckets.Debt))
	metric("Initial Growth Bucket", output.FormatAmount(r.InitialBuckets.Growth))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Health"))
	b.WriteString("\n\n")

	statusStyle, ok := statusStyles[string(r.HealthStatus)]
	if !ok {
		statusStyle = metricValueStyle
	}
	b.WriteString(metricLabelStyle.Render("Status"))
	b.WriteString(statusStyle.Render(string(r.HealthStatus)))
	b.WriteString("\n")

	metric("Life Expectancy", fmt.Sprintf("%d", r.LifeExpectancy))
	if r.ExhaustionAge != nil {
		metric("Corpus Exhaustion Age", fmt.Sprintf("%d", *r.ExhaustionAge))
		metric("Suggested Additional Corpus", output.FormatAmount(r.AdditionalCorpusNeeded))
	} else {
		metric("Corpus Exhaustion Age", "not exhausted")
		metric("Final Corpus", output.FormatAmount(r.FinalCorpus()))
	}

	return b.String()
}

// renderChart renders the bucket trend chart sized to the terminal
func (m Model) renderChart() string {
	chart := output.BucketTrendChart(m.result)

	width := m.width - 8
	if width < 40 {
		width = 40
	}
	height := m.height - 12
	if height < 8 {
		height = 8
	}
	chart.WithSize(width, height)

	return chart.Render()
}
