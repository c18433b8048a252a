package schedulers

import (
	"log"
	"sort"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
)

// readyQueue admits processes in arrival order and hands them out FIFO.
type readyQueue struct {
	procs   []core.Process
	arrival []int // indexes into procs sorted by arrival, then pid
	next    int
	queue   []int
}

func newReadyQueue(procs []core.Process) *readyQueue {
	arrival := make([]int, len(procs))
	for i := range arrival {
		arrival[i] = i
	}
	sort.SliceStable(arrival, func(i, j int) bool {
		a, b := &procs[arrival[i]], &procs[arrival[j]]
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.ID < b.ID
	})
	return &readyQueue{procs: procs, arrival: arrival}
}

// admit enqueues every process that has arrived by currentTime.
func (q *readyQueue) admit(currentTime int) {
	for q.next < len(q.arrival) && q.procs[q.arrival[q.next]].ArrivalTime <= currentTime {
		q.queue = append(q.queue, q.arrival[q.next])
		q.next++
	}
}

func (q *readyQueue) push(i int) {
	q.queue = append(q.queue, i)
}

func (q *readyQueue) pop() (int, bool) {
	if len(q.queue) == 0 {
		return 0, false
	}
	i := q.queue[0]
	q.queue = q.queue[1:]
	return i, true
}

// nextArrival is the arrival time of the next process not yet admitted.
func (q *readyQueue) nextArrival() (int, bool) {
	if q.next == len(q.arrival) {
		return 0, false
	}
	return q.procs[q.arrival[q.next]].ArrivalTime, true
}

// NewRoundRobin returns a round robin scheduler with the given time quantum.
// Processes that arrive while a slice runs are queued ahead of the
// preempted process.
func NewRoundRobin(timeQuantum int) Scheduler {
	if timeQuantum < 1 {
		panic(ErrInvalidQuantum)
	}
	return func(processes []core.Process) []core.Process {
		log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)

		procs := core.CloneAll(processes)
		for i := range procs {
			procs[i].RemainingTime = procs[i].BurstTime
		}
		ready := newReadyQueue(procs)
		completed := make([]core.Process, 0, len(procs))

		currentTime := 0
		for len(completed) < len(procs) {
			ready.admit(currentTime)
			i, ok := ready.pop()
			if !ok {
				next, _ := ready.nextArrival()
				currentTime = next
				continue
			}

			p := &procs[i]
			slice := min(timeQuantum, p.RemainingTime)
			p.Execute(currentTime, currentTime+slice)
			p.RemainingTime -= slice
			currentTime += slice
			ready.admit(currentTime)

			if p.RemainingTime == 0 {
				p.Finish(currentTime)
				completed = append(completed, *p)
				continue
			}
			log.Println("pid:", p.ID, "context switch detected. send process to roundRobin queue")
			ready.push(i)
		}
		return completed
	}
}
