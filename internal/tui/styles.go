package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")
	colorMuted   = lipgloss.Color("243")
	colorGreen   = lipgloss.Color("42")
	colorAmber   = lipgloss.Color("214")
	colorRed     = lipgloss.Color("168")

	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	tabStyle   = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 2)
	activeTab  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 2).Underline(true)

	metricLabelStyle = lipgloss.NewStyle().Foreground(colorMuted).Width(30)
	metricValueStyle = lipgloss.NewStyle().Bold(true)

	statusStyles = map[string]lipgloss.Style{
		"GREEN": lipgloss.NewStyle().Bold(true).Foreground(colorGreen),
		"AMBER": lipgloss.NewStyle().Bold(true).Foreground(colorAmber),
		"RED":   lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	}

	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	helpStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)
