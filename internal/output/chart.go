package output

import (
	"fmt"
	"math"
	"strings"

	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	chartTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	chartAxisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	chartLegendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	seriesColors = []lipgloss.Color{"42", "214", "168", "75"}
)

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart displays a simple multi-series line chart in the terminal.
// Chart rendering is the one place the decimal domain values are lowered
// to float64; precision loss is irrelevant at character resolution.
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Labels     []string
	Width      int
	Height     int
	ShowLegend bool
}

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Series:     []*DataSeries{},
		Labels:     []string{},
		Width:      72,
		Height:     15,
		ShowLegend: true,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64) *ASCIIChart {
	color := seriesColors[len(c.Series)%len(seriesColors)]
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithLabels sets the X-axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return chartLegendStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		content.WriteString(chartTitleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	globalMin, globalMax := c.getGlobalMinMax()
	content.WriteString(c.renderGrid(globalMin, globalMax))

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

// getGlobalMinMax finds the min and max values across all series
func (c *ASCIIChart) getGlobalMinMax() (float64, float64) {
	globalMin := math.Inf(1)
	globalMax := math.Inf(-1)

	for _, series := range c.Series {
		for _, point := range series.Points {
			if point < globalMin {
				globalMin = point
			}
			if point > globalMax {
				globalMax = point
			}
		}
	}

	if globalMin == globalMax {
		globalMax = globalMin + 1
	}

	// 10% headroom so lines don't hug the frame
	padding := (globalMax - globalMin) * 0.1
	return globalMin - padding, globalMax + padding
}

// renderGrid renders the chart grid with data points
func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 12
	chartWidth := c.Width - yAxisWidth

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for seriesIdx, series := range c.Series {
		if len(series.Points) == 0 {
			continue
		}
		pointChar := c.getSeriesChar(seriesIdx)

		for i, point := range series.Points {
			x := 0
			if len(series.Points) > 1 {
				x = int(float64(i) / float64(len(series.Points)-1) * float64(chartWidth-1))
			}
			y := c.Height - 1 - int((point-minVal)/(maxVal-minVal)*float64(c.Height-1))

			if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
				grid[y][x] = pointChar
			}

			if i > 0 {
				prevX := int(float64(i-1) / float64(len(series.Points)-1) * float64(chartWidth-1))
				prevY := c.Height - 1 - int((series.Points[i-1]-minVal)/(maxVal-minVal)*float64(c.Height-1))
				c.drawLine(grid, prevX, prevY, x, y, pointChar)
			}
		}
	}

	var out strings.Builder
	valueRange := maxVal - minVal

	for i, row := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*valueRange
		label := fmt.Sprintf("%*s", yAxisWidth, formatChartValue(yValue))
		out.WriteString(chartAxisStyle.Render(label))
		out.WriteString(" │ ")
		out.WriteString(string(row))
		out.WriteString("\n")
	}

	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", chartWidth))
	out.WriteString("\n")

	if len(c.Labels) > 0 {
		out.WriteString(c.renderXAxisLabels(yAxisWidth, chartWidth))
	}

	return out.String()
}

// getSeriesChar returns the character to use for a series
func (c *ASCIIChart) getSeriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine draws a simple line between two points using Bresenham's algorithm
func (c *ASCIIChart) drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx := intAbs(x1 - x0)
	dy := intAbs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for {
		if x >= 0 && x < len(grid[0]) && y >= 0 && y < len(grid) {
			if grid[y][x] == ' ' {
				grid[y][x] = char
			}
		}

		if x == x1 && y == y1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// renderXAxisLabels renders up to five evenly spaced X-axis labels
func (c *ASCIIChart) renderXAxisLabels(yAxisWidth, chartWidth int) string {
	maxLabels := 5
	step := len(c.Labels) / maxLabels
	if step == 0 {
		step = 1
	}

	var out strings.Builder
	out.WriteString(strings.Repeat(" ", yAxisWidth+3))

	for i := 0; i < len(c.Labels); i += step {
		if i > 0 {
			spacing := chartWidth / maxLabels
			out.WriteString(strings.Repeat(" ", spacing-len(c.Labels[i-step])))
		}
		out.WriteString(chartAxisStyle.Render(c.Labels[i]))
	}
	out.WriteString("\n")

	return out.String()
}

// renderLegend renders the chart legend
func (c *ASCIIChart) renderLegend() string {
	var items []string

	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(c.getSeriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, series.Name))
	}

	return chartLegendStyle.Render("Legend: " + strings.Join(items, "  "))
}

// formatChartValue formats a value for display on the Y-axis
func formatChartValue(value float64) string {
	if math.Abs(value) >= 10000000 {
		return fmt.Sprintf("%.1fCr", value/10000000)
	} else if math.Abs(value) >= 100000 {
		return fmt.Sprintf("%.1fL", value/100000)
	} else if math.Abs(value) >= 1000 {
		return fmt.Sprintf("%.0fK", value/1000)
	}
	return fmt.Sprintf("%.0f", value)
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// BucketTrendChart builds the three-bucket balance chart for a result.
func BucketTrendChart(result *domain.SimulationResult) *ASCIIChart {
	cash := make([]float64, len(result.Records))
	debt := make([]float64, len(result.Records))
	growth := make([]float64, len(result.Records))
	labels := make([]string, len(result.Records))

	for i, rec := range result.Records {
		cash[i] = rec.Cash.InexactFloat64()
		debt[i] = rec.Debt.InexactFloat64()
		growth[i] = rec.Growth.InexactFloat64()
		labels[i] = fmt.Sprintf("%d", rec.Age)
	}

	return NewASCIIChart("Bucket Trend").
		AddSeries("Cash", cash).
		AddSeries("Debt", debt).
		AddSeries("Growth", growth).
		WithLabels(labels)
}

// ExpenseTrendChart builds the inflation-adjusted monthly expense chart.
func ExpenseTrendChart(result *domain.SimulationResult) *ASCIIChart {
	expense := make([]float64, len(result.Records))
	labels := make([]string, len(result.Records))

	for i, rec := range result.Records {
		expense[i] = rec.MonthlyExpense.InexactFloat64()
		labels[i] = fmt.Sprintf("%d", rec.Age)
	}

	return NewASCIIChart("Expense Trend").
		AddSeries("Monthly Expense", expense).
		WithLabels(labels)
}
