package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Khoavu1110/CS3502-Project-2/internal/responses"
)

var ErrNoResults = errors.New("nothing to plot")

var barWidth = vg.Points(18)

func save(p *plot.Plot, width, height vg.Length, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart dir: %w", err)
		}
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

func algorithmNames(results []responses.ScheduleResponse) []string {
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Algorithm)
	}
	return names
}

// SaveMetricsChart plots average waiting, response and turnaround time as
// grouped bars, one group per algorithm. The image format follows the file
// extension.
func SaveMetricsChart(path string, results []responses.ScheduleResponse) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	series := []struct {
		name  string
		value func(responses.ScheduleResponse) float64
	}{
		{"Avg waiting", func(r responses.ScheduleResponse) float64 { return r.AverageWaitingTime }},
		{"Avg response", func(r responses.ScheduleResponse) float64 { return r.AverageResponseTime }},
		{"Avg turnaround", func(r responses.ScheduleResponse) float64 { return r.AverageTurnAroundTime }},
	}

	p := plot.New()
	p.Title.Text = "Scheduling metrics"
	p.Y.Label.Text = "Time units"
	p.Legend.Top = true

	for i, s := range series {
		values := make(plotter.Values, 0, len(results))
		for _, r := range results {
			values = append(values, s.value(r))
		}
		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return fmt.Errorf("%s bars: %w", s.name, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(i-1) * barWidth
		p.Add(bars)
		p.Legend.Add(s.name, bars)
	}
	p.NominalX(algorithmNames(results)...)

	return save(p, 6*vg.Inch, 4*vg.Inch, path)
}

// SaveUtilizationChart plots cpu utilization per algorithm.
func SaveUtilizationChart(path string, results []responses.ScheduleResponse) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	values := make(plotter.Values, 0, len(results))
	for _, r := range results {
		values = append(values, r.CpuUtilization)
	}

	p := plot.New()
	p.Title.Text = "CPU utilization"
	p.Y.Label.Text = "%"
	p.Y.Min = 0
	p.Y.Max = 100

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(algorithmNames(results)...)

	return save(p, 4*vg.Inch, 4*vg.Inch, path)
}

// SaveGanttChart draws every dispatch slice of resp as a bar on its
// process row.
func SaveGanttChart(path string, resp responses.ScheduleResponse) error {
	if len(resp.Details) == 0 {
		return ErrNoResults
	}

	p := plot.New()
	p.Title.Text = resp.Algorithm + " gantt"
	p.X.Label.Text = "Time"

	labels := make([]string, 0, len(resp.Details))
	for row, d := range resp.Details {
		labels = append(labels, fmt.Sprintf("P%d", d.ProcessId))
		for _, s := range d.ScheduleTimes {
			y := float64(row)
			bar, err := plotter.NewPolygon(plotter.XYs{
				{X: float64(s.Execution), Y: y - 0.35},
				{X: float64(s.Complete), Y: y - 0.35},
				{X: float64(s.Complete), Y: y + 0.35},
				{X: float64(s.Execution), Y: y + 0.35},
			})
			if err != nil {
				return fmt.Errorf("pid %d slice: %w", d.ProcessId, err)
			}
			bar.Color = plotutil.Color(row)
			p.Add(bar)
		}
	}
	p.NominalY(labels...)
	p.X.Min = 0
	p.X.Max = float64(resp.TotalTime)
	p.Add(plotter.NewGrid())

	return save(p, 8*vg.Inch, vg.Length(len(labels)+2)*0.4*vg.Inch, path)
}
