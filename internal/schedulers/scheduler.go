package schedulers

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
	"github.com/Khoavu1110/CS3502-Project-2/internal/responses"
)

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "fcfs"
	HighestResponseRatioNext   Algorithm = "hrrn"
	ShortestJobFirst           Algorithm = "sjf"
	ShortestRemainingTimeFirst Algorithm = "srtf"
	RoundRobin                 Algorithm = "rr"
	MultilevelFeedbackQueue    Algorithm = "mlfq"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrNoProcesses      = errors.New("no processes to schedule")
	ErrInvalidQuantum   = errors.New("time quantum must be at least 1")
	ErrTimeLimit        = fmt.Errorf("schedule would run past time %d", core.MaxTime)
)

// Scheduler simulates one algorithm. It never mutates its argument and
// returns an independently owned, completed copy.
type Scheduler func(processes []core.Process) []core.Process

// Options configures the quantum based algorithms.
type Options struct {
	RoundRobinTimeQuantum int
	// one round robin level per entry, followed by an fcfs level
	MultilevelFeedbackQueueLevelsTimeQuantum []int
}

func DefaultOptions() Options {
	return Options{
		RoundRobinTimeQuantum:                    4,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{5, 8},
	}
}

func (o Options) Validate() error {
	if o.RoundRobinTimeQuantum < 1 {
		return fmt.Errorf("%w: round robin quantum is %d", ErrInvalidQuantum, o.RoundRobinTimeQuantum)
	}
	for level, quantum := range o.MultilevelFeedbackQueueLevelsTimeQuantum {
		if quantum < 1 {
			return fmt.Errorf("%w: mlfq level %d quantum is %d", ErrInvalidQuantum, level, quantum)
		}
	}
	return nil
}

var titles = map[Algorithm]string{
	FirstComeFirstServe:        "First Come First Serve",
	HighestResponseRatioNext:   "Highest Response Ratio Next",
	ShortestJobFirst:           "Shortest Job First",
	ShortestRemainingTimeFirst: "Shortest Remaining Time First",
	RoundRobin:                 "Round Robin",
	MultilevelFeedbackQueue:    "Multilevel Feedback Queue",
}

// Algorithms returns the algorithms RunAll compares, in display order.
func Algorithms() []Algorithm {
	return []Algorithm{
		FirstComeFirstServe,
		HighestResponseRatioNext,
		ShortestJobFirst,
		ShortestRemainingTimeFirst,
	}
}

// QuantumAlgorithms returns the time sliced algorithms configured by Options.
func QuantumAlgorithms() []Algorithm {
	return []Algorithm{RoundRobin, MultilevelFeedbackQueue}
}

func (a Algorithm) Title() string {
	if title, ok := titles[a]; ok {
		return title
	}
	return string(a)
}

// Lookup returns the scheduler for name using DefaultOptions.
func Lookup(name string) (Scheduler, error) {
	return LookupWith(name, DefaultOptions())
}

func LookupWith(name string, opts Options) (Scheduler, error) {
	switch Algorithm(name) {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe, nil
	case HighestResponseRatioNext:
		return ScheduleHighestResponseRatioNext, nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst, nil
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst, nil
	case RoundRobin, MultilevelFeedbackQueue:
		if err := opts.Validate(); err != nil {
			return nil, err
		}
		if Algorithm(name) == RoundRobin {
			return NewRoundRobin(opts.RoundRobinTimeQuantum), nil
		}
		return NewMultilevelFeedbackQueue(opts.MultilevelFeedbackQueueLevelsTimeQuantum), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Run simulates algorithm over processes and summarizes the outcome.
func Run(algorithm Algorithm, processes []core.Process) (responses.ScheduleResponse, error) {
	return RunWith(algorithm, processes, DefaultOptions())
}

func RunWith(algorithm Algorithm, processes []core.Process, opts Options) (responses.ScheduleResponse, error) {
	scheduler, err := LookupWith(string(algorithm), opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	if len(processes) == 0 {
		return responses.ScheduleResponse{}, ErrNoProcesses
	}
	if !core.WithinTimeLimit(processes) {
		return responses.ScheduleResponse{}, ErrTimeLimit
	}
	return generateResponse(algorithm, scheduler(processes)), nil
}

// RunAll runs every algorithm of Algorithms, each on its own copy of
// processes.
func RunAll(processes []core.Process) ([]responses.ScheduleResponse, error) {
	results := make([]responses.ScheduleResponse, 0, len(Algorithms()))
	for _, algorithm := range Algorithms() {
		response, err := Run(algorithm, processes)
		if err != nil {
			return nil, err
		}
		results = append(results, response)
	}
	return results, nil
}

// rank orders two ready processes at currentTime; negative means a goes first.
type rank func(a, b *core.Process, currentTime int) int

// selectNext picks the best ranked ready process. Ties fall back to earlier
// arrival, then lower pid. ok is false when nothing is ready at currentTime.
func selectNext(processes []core.Process, currentTime int, by rank) (index int, ok bool) {
	index = -1
	for i := range processes {
		p := &processes[i]
		if !p.IsReady(currentTime) {
			continue
		}
		if index == -1 || outranks(p, &processes[index], currentTime, by) {
			index = i
		}
	}
	return index, index != -1
}

func outranks(a, b *core.Process, currentTime int, by rank) bool {
	if c := by(a, b, currentTime); c != 0 {
		return c < 0
	}
	if c := cmp.Compare(a.ArrivalTime, b.ArrivalTime); c != 0 {
		return c < 0
	}
	return a.ID < b.ID
}

// nextArrival returns the earliest arrival among incomplete processes that
// arrive after currentTime.
func nextArrival(processes []core.Process, currentTime int) (int, bool) {
	next, found := 0, false
	for i := range processes {
		p := &processes[i]
		if p.IsCompleted || p.ArrivalTime <= currentTime {
			continue
		}
		if !found || p.ArrivalTime < next {
			next, found = p.ArrivalTime, true
		}
	}
	return next, found
}

// scheduleNonPreemptive runs the ready process chosen by `by` to completion
// until every process is done. The result is in dispatch order.
func scheduleNonPreemptive(processes []core.Process, by rank) []core.Process {
	procs := core.CloneAll(processes)
	scheduled := make([]core.Process, 0, len(procs))

	currentTime := 0
	for len(scheduled) < len(procs) {
		i, ok := selectNext(procs, currentTime, by)
		if !ok {
			// cpu idle, jump to the next arrival
			next, found := nextArrival(procs, currentTime)
			if !found {
				panic("scheduler: no ready process and nothing left to arrive")
			}
			currentTime = next
			continue
		}

		p := &procs[i]
		p.Execute(currentTime, currentTime+p.BurstTime)
		p.Finish(currentTime + p.BurstTime)
		currentTime = p.CompletionTime
		scheduled = append(scheduled, *p)
	}
	return scheduled
}
