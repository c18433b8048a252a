package util

import (
	"fmt"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
)

// CalculateAverage returns the mean waiting, response and turnaround time of a
// completed run.
func CalculateAverage(processes []core.Process) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	mustBeCompleted(processes)

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for i := range processes {
		waitingTimeSum += float64(processes[i].WaitingTime)
		responseTimeSum += float64(processes[i].ResponseTime())
		turnAroundTimeSum += float64(processes[i].TurnaroundTime)
	}

	processCount := float64(len(processes))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}

func AverageWaitTime(processes []core.Process) float64 {
	wait, _, _ := CalculateAverage(processes)
	return wait
}

func AverageTurnaroundTime(processes []core.Process) float64 {
	_, _, turnaround := CalculateAverage(processes)
	return turnaround
}

func AverageResponseTime(processes []core.Process) float64 {
	_, response, _ := CalculateAverage(processes)
	return response
}

// CpuUtilization is the percentage of the schedule length the cpu was busy.
func CpuUtilization(processes []core.Process) float64 {
	metric := core.MeasureCpu(processes)
	return float64(metric.UtilizationTime) / float64(metric.TotalTime) * 100
}

// Throughput is the number of completed processes per unit of time.
func Throughput(processes []core.Process) float64 {
	metric := core.MeasureCpu(processes)
	return float64(len(processes)) / float64(metric.TotalTime)
}

func mustBeCompleted(processes []core.Process) {
	if len(processes) == 0 {
		panic("metrics: empty process list")
	}
	for i := range processes {
		if !processes[i].IsCompleted {
			panic(fmt.Sprintf("metrics: pid %d is not completed", processes[i].ID))
		}
	}
}
