package requests

import (
	"errors"
	"fmt"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
)

var (
	ErrEmptyJobs          = errors.New("job list is empty")
	ErrInvalidBurstTime   = errors.New("burst time must be at least 1")
	ErrInvalidArrivalTime = errors.New("arrival time must not be negative")
	ErrDuplicateProcessId = errors.New("duplicate process id")
	ErrTimeLimitExceeded  = fmt.Errorf("latest arrival plus total burst time must not exceed %d", core.MaxTime)
)

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}

func (r *ScheduleRequests) Validate() error {
	if len(r.Jobs) == 0 {
		return ErrEmptyJobs
	}
	seen := make(map[int]struct{}, len(r.Jobs))
	for _, job := range r.Jobs {
		if job.BurstTime < 1 {
			return fmt.Errorf("%w: pid %d has burst time %d", ErrInvalidBurstTime, job.ProcessId, job.BurstTime)
		}
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %d has arrival time %d", ErrInvalidArrivalTime, job.ProcessId, job.ArrivalTime)
		}
		if _, ok := seen[job.ProcessId]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateProcessId, job.ProcessId)
		}
		seen[job.ProcessId] = struct{}{}
	}
	if !core.WithinTimeLimit(r.Processes()) {
		return ErrTimeLimitExceeded
	}
	return nil
}

// Processes converts the jobs into fresh processes, preserving request order.
func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority))
	}
	return processes
}

// FromProcesses builds a request out of generated processes.
func FromProcesses(processes []core.Process) ScheduleRequests {
	jobs := make([]Job, 0, len(processes))
	for _, p := range processes {
		jobs = append(jobs, Job{
			ProcessId:   p.ID,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
		})
	}
	return ScheduleRequests{Jobs: jobs}
}
