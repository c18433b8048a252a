package schedulers

import (
	"fmt"
	"log"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
	"github.com/Khoavu1110/CS3502-Project-2/internal/responses"
	"github.com/Khoavu1110/CS3502-Project-2/internal/util"
)

func generateResponse(algorithm Algorithm, processes []core.Process) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processes)
	cpuMetric := core.MeasureCpu(processes)

	details := make([]responses.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		details = append(details, generateProcessDetails(process))
	}

	response := responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        util.CpuUtilization(processes),
		CpuThroughput:         util.Throughput(processes),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               details,
	}
	log.Printf("%s: avg waiting %.2f, avg turnaround %.2f, utilization %.2f%%",
		algorithm, averageWaitingTime, averageTurnAroundTime, response.CpuUtilization)
	return response
}

// generateProcessDetails only accepts finished processes, so a zero in the
// output fields is always a real timestamp.
func generateProcessDetails(process core.Process) responses.ProcessResponse {
	if !process.IsCompleted {
		panic(fmt.Sprintf("pid: %d reported before completion", process.ID))
	}
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		StartTime:      process.StartTime,
		CompletionTime: process.CompletionTime,
		ResponseTime:   process.ResponseTime(),
		TurnAroundTime: process.TurnaroundTime,
		WaitingTime:    process.WaitingTime,
		ScheduleTimes:  append([]core.ScheduleTime(nil), process.ScheduleTimes...),
	}
}
