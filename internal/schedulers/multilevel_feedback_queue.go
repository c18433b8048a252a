package schedulers

import (
	"log"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
)

// NewMultilevelFeedbackQueue returns a scheduler with one round robin level
// per entry of levelsTimeQuantum followed by a final fcfs level. Every process
// enters the first level and drops one level each time it uses up its
// quantum. The highest non-empty level always runs next; a running slice is
// never interrupted.
func NewMultilevelFeedbackQueue(levelsTimeQuantum []int) Scheduler {
	for _, quantum := range levelsTimeQuantum {
		if quantum < 1 {
			panic(ErrInvalidQuantum)
		}
	}
	levels := append([]int(nil), levelsTimeQuantum...)

	return func(processes []core.Process) []core.Process {
		log.Println("mlfq algorithm with timeQuantum = ", levels)

		procs := core.CloneAll(processes)
		for i := range procs {
			procs[i].RemainingTime = procs[i].BurstTime
		}
		arrivals := newReadyQueue(procs)
		// the last queue is the fcfs level
		queues := make([][]int, len(levels)+1)
		completed := make([]core.Process, 0, len(procs))

		admit := func(currentTime int) {
			arrivals.admit(currentTime)
			for {
				i, ok := arrivals.pop()
				if !ok {
					return
				}
				queues[0] = append(queues[0], i)
			}
		}

		currentTime := 0
		for len(completed) < len(procs) {
			admit(currentTime)

			level := -1
			for l := range queues {
				if len(queues[l]) > 0 {
					level = l
					break
				}
			}
			if level == -1 {
				next, _ := arrivals.nextArrival()
				currentTime = next
				continue
			}

			i := queues[level][0]
			queues[level] = queues[level][1:]
			p := &procs[i]

			slice := p.RemainingTime
			if level < len(levels) {
				slice = min(levels[level], slice)
			}
			p.Execute(currentTime, currentTime+slice)
			p.RemainingTime -= slice
			currentTime += slice
			admit(currentTime)

			if p.RemainingTime == 0 {
				p.Finish(currentTime)
				completed = append(completed, *p)
				continue
			}
			demoted := min(level+1, len(levels))
			log.Println("pid:", p.ID, "moved to level", demoted)
			queues[demoted] = append(queues[demoted], i)
		}
		return completed
	}
}
