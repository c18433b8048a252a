package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Khoavu1110/CS3502-Project-2/internal/responses"
	"github.com/Khoavu1110/CS3502-Project-2/internal/schedulers"
)

// App browses the results of a simulation run, one tab per algorithm.
type App struct {
	results     []responses.ScheduleResponse
	activeTab   int
	selectedRow int
	width       int
	height      int
	utilization progress.Model
}

func NewApp(results []responses.ScheduleResponse) *App {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	return &App{
		results:     results,
		utilization: bar,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.utilization.Width = max(10, min(40, msg.Width/3))
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "right", "l", "tab":
			a.switchTab(1)
		case "left", "h", "shift+tab":
			a.switchTab(-1)
		case "down", "j":
			if r, ok := a.current(); ok && a.selectedRow < len(r.Details)-1 {
				a.selectedRow++
			}
		case "up", "k":
			if a.selectedRow > 0 {
				a.selectedRow--
			}
		}
	}
	return a, nil
}

func (a *App) switchTab(delta int) {
	if len(a.results) == 0 {
		return
	}
	a.activeTab = (a.activeTab + delta + len(a.results)) % len(a.results)
	a.selectedRow = 0
}

func (a *App) current() (responses.ScheduleResponse, bool) {
	if len(a.results) == 0 {
		return responses.ScheduleResponse{}, false
	}
	return a.results[a.activeTab], true
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("CPU scheduling simulator"))
	b.WriteString("\n\n")

	r, ok := a.current()
	if !ok {
		b.WriteString("no results\n")
		return b.String()
	}

	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render(schedulers.Algorithm(r.Algorithm).Title()),
		"",
		a.renderSummary(r),
		"",
		a.renderTable(r),
	)))
	b.WriteString("\n")
	b.WriteString(keysStyle.Render("←/→ algorithm • ↑/↓ process • q quit"))
	return b.String()
}

func (a *App) renderTabs() string {
	tabs := make([]string, 0, len(a.results))
	for i, r := range a.results {
		style := otherAlgorithmTab
		if i == a.activeTab {
			style = currentAlgorithmTab
		}
		tabs = append(tabs, style.Render(strings.ToUpper(r.Algorithm)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) renderSummary(r responses.ScheduleResponse) string {
	line := func(label, value string) string {
		return metricNameStyle.Render(fmt.Sprintf("%-16s", label)) + metricValueStyle.Render(value)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		line("CPU utilization", a.utilization.ViewAs(r.CpuUtilization/100)),
		line("Avg waiting", fmt.Sprintf("%.2f", r.AverageWaitingTime)),
		line("Avg response", fmt.Sprintf("%.2f", r.AverageResponseTime)),
		line("Avg turnaround", fmt.Sprintf("%.2f", r.AverageTurnAroundTime)),
		line("Throughput", fmt.Sprintf("%.3f", r.CpuThroughput)),
		line("Total / idle", fmt.Sprintf("%d / %d", r.TotalTime, r.IdleTime)),
	)
}

func (a *App) renderTable(r responses.ScheduleResponse) string {
	const row = "%-5s %-8s %-8s %-6s %-6s %-6s %-6s %-10s"
	lines := []string{columnStyle.Render(fmt.Sprintf(row,
		"PID", "Arrival", "Burst", "Start", "Exit", "Wait", "Resp", "Turnaround"))}

	for i, d := range r.Details {
		text := fmt.Sprintf(row,
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.TurnAroundTime))
		if i == a.selectedRow {
			text = cursorRowStyle.Render(text)
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}
