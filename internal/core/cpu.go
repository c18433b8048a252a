package core

import (
	"fmt"
	"math"
)

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu derives busy and idle time of a single cpu from a completed run.
// TotalTime spans from time 0 to the last completion.
func MeasureCpu(processes []Process) CpuMetric {
	if len(processes) == 0 {
		panic("measure cpu: empty process list")
	}

	var metric CpuMetric
	for i := range processes {
		if !processes[i].IsCompleted {
			panic(fmt.Sprintf("measure cpu: pid %d is not completed", processes[i].ID))
		}
		metric.UtilizationTime += processes[i].BurstTime
		if processes[i].CompletionTime > metric.TotalTime {
			metric.TotalTime = processes[i].CompletionTime
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}

// MaxTime bounds every simulated timestamp. Keeping the whole schedule below
// it leaves room for the products used to compare response ratios.
const MaxTime = math.MaxInt32

// WithinTimeLimit reports whether the latest possible completion of
// processes, max arrival plus total burst, stays at or below MaxTime.
func WithinTimeLimit(processes []Process) bool {
	var latestArrival, totalBurst int
	for i := range processes {
		p := &processes[i]
		if p.ArrivalTime > MaxTime || p.BurstTime > MaxTime {
			return false
		}
		latestArrival = max(latestArrival, p.ArrivalTime)
		totalBurst += p.BurstTime
		if totalBurst > MaxTime {
			return false
		}
	}
	return latestArrival+totalBurst <= MaxTime
}
