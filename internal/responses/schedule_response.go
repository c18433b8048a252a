package responses

import "github.com/Khoavu1110/CS3502-Project-2/internal/core"

// ProcessResponse is built from a completed process only; every timing field,
// including a StartTime of 0, is an assigned value.
type ProcessResponse struct {
	ProcessId      int                 `json:"process_id"`
	ArrivalTime    int                 `json:"arrival_time"`
	BurstTime      int                 `json:"burst_time"`
	Priority       int                 `json:"priority"`
	StartTime      int                 `json:"start_time"`
	CompletionTime int                 `json:"completion_time"`
	ResponseTime   int                 `json:"response_time"`
	TurnAroundTime int                 `json:"turn_around_time"`
	WaitingTime    int                 `json:"waiting_time"`
	ScheduleTimes  []core.ScheduleTime `json:"schedule_times"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
}

type AllResponse struct {
	Results []ScheduleResponse `json:"results"`
}
