package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Khoavu1110/CS3502-Project-2/internal/responses"
	"github.com/Khoavu1110/CS3502-Project-2/internal/schedulers"
)

func title(resp responses.ScheduleResponse) string {
	return schedulers.Algorithm(resp.Algorithm).Title()
}

// PrintSchedule writes the per-process table of one algorithm with the
// averages and throughput in the footer.
func PrintSchedule(w io.Writer, resp responses.ScheduleResponse) {
	_, _ = fmt.Fprintf(w, "%s\n", title(resp))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Arrival", "Burst", "Start", "Exit", "Response", "Wait", "Turnaround"})
	for _, d := range resp.Details {
		table.Append([]string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Utilization\n%.2f%%", resp.CpuUtilization),
		fmt.Sprintf("Average\n%.2f", resp.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Throughput: %.3f processes/unit\n\n", resp.CpuThroughput)
}

type slice struct {
	pid        int
	start, end int
}

// timeline flattens the dispatch slices of every process, ordered by start.
// Gaps are returned with pid 0.
func timeline(resp responses.ScheduleResponse) []slice {
	var slices []slice
	for _, d := range resp.Details {
		for _, s := range d.ScheduleTimes {
			slices = append(slices, slice{pid: d.ProcessId, start: s.Execution, end: s.Complete})
		}
	}
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].start < slices[j].start
	})

	var withIdle []slice
	clock := 0
	for _, s := range slices {
		if s.start > clock {
			withIdle = append(withIdle, slice{start: clock, end: s.start})
		}
		withIdle = append(withIdle, s)
		clock = s.end
	}
	return withIdle
}

// PrintGantt writes a text gantt chart; idle time shows as "-".
func PrintGantt(w io.Writer, resp responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	slices := timeline(resp)

	_, _ = fmt.Fprint(w, "|")
	for _, s := range slices {
		label := "-"
		if s.pid != 0 {
			label = fmt.Sprintf("P%d", s.pid)
		}
		padding := strings.Repeat(" ", max(1, (8-len(label))/2))
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range slices {
		_, _ = fmt.Fprint(w, s.start, "\t")
		if i == len(slices)-1 {
			_, _ = fmt.Fprint(w, s.end)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// PrintComparison writes one row per algorithm.
func PrintComparison(w io.Writer, results []responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Algorithm comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Response", "Avg Turnaround", "CPU %", "Throughput", "Total", "Idle"})
	for _, r := range results {
		table.Append([]string{
			title(r),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.CpuUtilization),
			fmt.Sprintf("%.3f", r.CpuThroughput),
			fmt.Sprint(r.TotalTime),
			fmt.Sprint(r.IdleTime),
		})
	}
	table.Render()
}
