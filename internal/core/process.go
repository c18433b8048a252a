package core

import "fmt"

// ScheduleTime is one uninterrupted run of a process on the cpu.
// Submission is when the process became ready for this run, Execution is when
// it was dispatched and Complete is when the run ended.
type ScheduleTime struct {
	Submission int `json:"submission"`
	Execution  int `json:"execution"`
	Complete   int `json:"complete"`
}

// Process is the unit every simulator schedules. Inputs are set by NewProcess;
// outputs are written by exactly one simulator through Execute and Finish.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int
	Priority    int

	StartTime      int
	CompletionTime int
	WaitingTime    int
	TurnaroundTime int

	// only used by srtf
	RemainingTime int

	IsCompleted   bool
	ScheduleTimes []ScheduleTime
}

func NewProcess(id, arrivalTime, burstTime, priority int) Process {
	return Process{
		ID:          id,
		ArrivalTime: arrivalTime,
		BurstTime:   burstTime,
		Priority:    priority,
	}
}

// Started reports whether StartTime has been assigned.
func (p *Process) Started() bool {
	return len(p.ScheduleTimes) > 0
}

// IsReady reports whether the process can be dispatched at currentTime.
func (p *Process) IsReady(currentTime int) bool {
	return !p.IsCompleted && p.ArrivalTime <= currentTime
}

// Execute records a run on the cpu from start to end. The first run fixes
// StartTime; later runs (preemptive schedulers) never move it.
func (p *Process) Execute(start, end int) {
	submission := p.ArrivalTime
	if p.Started() {
		last := &p.ScheduleTimes[len(p.ScheduleTimes)-1]
		if last.Complete == start {
			// resumed without being preempted, extend the current run
			last.Complete = end
			return
		}
		submission = last.Complete
	} else {
		p.StartTime = start
	}
	p.ScheduleTimes = append(p.ScheduleTimes, ScheduleTime{
		Submission: submission,
		Execution:  start,
		Complete:   end,
	})
}

// Finish marks the process completed at completionTime and derives the
// turnaround and waiting times from it.
func (p *Process) Finish(completionTime int) {
	if p.IsCompleted {
		panic(fmt.Sprintf("pid: %d completed twice", p.ID))
	}
	p.CompletionTime = completionTime
	p.TurnaroundTime = completionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.IsCompleted = true
}

// ResponseTime is the delay between arrival and first dispatch.
func (p *Process) ResponseTime() int {
	return p.StartTime - p.ArrivalTime
}

// Clone returns a copy that shares no memory with p.
func (p Process) Clone() Process {
	if p.ScheduleTimes != nil {
		p.ScheduleTimes = append([]ScheduleTime(nil), p.ScheduleTimes...)
	}
	return p
}

// CloneAll returns an independently owned copy of processes.
func CloneAll(processes []Process) []Process {
	cloned := make([]Process, len(processes))
	for i := range processes {
		cloned[i] = processes[i].Clone()
	}
	return cloned
}

func (p Process) String() string {
	return fmt.Sprintf("Process(pid=%d, AT=%d, BT=%d, PR=%d, ST=%d, CT=%d, WT=%d, TAT=%d)",
		p.ID, p.ArrivalTime, p.BurstTime, p.Priority, p.StartTime, p.CompletionTime, p.WaitingTime, p.TurnaroundTime)
}
