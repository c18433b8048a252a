package ui

import "github.com/charmbracelet/lipgloss"

// Scheduler palette: cool tones for chrome, warm for cpu figures.
const (
	colorFrame   = lipgloss.Color("63")
	colorHeading = lipgloss.Color("117")
	colorMuted   = lipgloss.Color("244")
	colorFigure  = lipgloss.Color("215")
	colorColumn  = lipgloss.Color("111")
	colorCursor  = lipgloss.Color("24")
	colorOnRun   = lipgloss.Color("255")
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorFrame).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().Foreground(colorHeading).Bold(true)

	algorithmTab        = lipgloss.NewStyle().Padding(0, 2)
	currentAlgorithmTab = algorithmTab.Foreground(colorOnRun).Background(colorFrame).Bold(true)
	otherAlgorithmTab   = algorithmTab.Foreground(colorMuted)

	metricNameStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	metricValueStyle = lipgloss.NewStyle().Foreground(colorFigure).Bold(true)

	columnStyle    = lipgloss.NewStyle().Foreground(colorColumn).Underline(true)
	cursorRowStyle = lipgloss.NewStyle().Foreground(colorOnRun).Background(colorCursor)

	keysStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)
