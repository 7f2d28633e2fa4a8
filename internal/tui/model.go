package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bucketwise/bucketwise/internal/config"
	"github.com/bucketwise/bucketwise/internal/domain"
	"github.com/bucketwise/bucketwise/internal/output"
	"github.com/bucketwise/bucketwise/internal/simulation"
)

// Tab identifies one of the result views
type Tab int

const (
	TabSummary Tab = iota
	TabProjection
	TabChart
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabSummary:
		return "Summary"
	case TabProjection:
		return "Projection"
	case TabChart:
		return "Chart"
	default:
		return "?"
	}
}

// Model is the interactive results browser: it loads a plan file, runs the
// selected scenario through the simulation engine, and lets the user flip
// between the summary panel, the year-wise table, and the bucket chart.
type Model struct {
	configPath string
	config     *domain.Configuration
	simEngine  *simulation.Engine

	scenarioIdx int
	result      *domain.SimulationResult

	activeTab Tab
	projTable table.Model

	width  int
	height int

	loading bool
	err     error
}

// NewModel creates the application model for one plan file
func NewModel(configPath string) Model {
	return Model{
		configPath: configPath,
		simEngine:  simulation.NewEngine(),
		loading:    true,
		width:      80,
		height:     24,
	}
}

// Init loads the plan file (required by tea.Model)
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd returns a command that loads and validates the plan file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// runScenarioCmd returns a command that simulates one scenario
func runScenarioCmd(engine *simulation.Engine, cfg *domain.Configuration, idx int) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.Run(cfg.ParameterSet(), &cfg.Scenarios[idx])
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ResultMsg{Result: result}
	}
}

// Update handles messages (required by tea.Model)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.scenarioIdx = 0
		return m, runScenarioCmd(m.simEngine, m.config, m.scenarioIdx)

	case ResultMsg:
		m.loading = false
		m.result = msg.Result
		m.projTable = buildProjectionTable(msg.Result, m.height)
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab", "left", "h":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "s", "n":
			if m.config != nil && len(m.config.Scenarios) > 1 {
				m.scenarioIdx = (m.scenarioIdx + 1) % len(m.config.Scenarios)
				m.loading = true
				return m, runScenarioCmd(m.simEngine, m.config, m.scenarioIdx)
			}
			return m, nil
		}

		if m.activeTab == TabProjection {
			var cmd tea.Cmd
			m.projTable, cmd = m.projTable.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// buildProjectionTable constructs the year-wise bubbles table
func buildProjectionTable(result *domain.SimulationResult, height int) table.Model {
	columns := []table.Column{
		{Title: "Age", Width: 5},
		{Title: "Expense/mo", Width: 12},
		{Title: "Cash", Width: 14},
		{Title: "Debt", Width: 14},
		{Title: "Growth", Width: 14},
		{Title: "Total", Width: 15},
	}

	rows := make([]table.Row, 0, len(result.Records))
	for _, rec := range result.Records {
		rows = append(rows, table.Row{
			strconv.Itoa(rec.Age),
			output.FormatAmount(rec.MonthlyExpense),
			output.FormatAmount(rec.Cash),
			output.FormatAmount(rec.Debt),
			output.FormatAmount(rec.Growth),
			output.FormatAmount(rec.Total),
		})
	}

	tableHeight := height - 10
	if tableHeight < 5 {
		tableHeight = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(colorPrimary)
	s.Selected = s.Selected.Foreground(colorAmber).Bold(true)
	t.SetStyles(s)

	return t
}
