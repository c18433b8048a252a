package schedulers

import (
	"log"
	"sort"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
)

// ScheduleFirstComeFirstServe dispatches processes in arrival order, keeping
// the input order among equal arrivals. The result is sorted by arrival time.
func ScheduleFirstComeFirstServe(processes []core.Process) []core.Process {
	log.Println("running fcfs algorithm ...")

	// sort jobs by arrival time
	jobs := core.CloneAll(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	currentTime := 0
	for i := range jobs {
		p := &jobs[i]
		if currentTime < p.ArrivalTime {
			currentTime = p.ArrivalTime
		}
		p.Execute(currentTime, currentTime+p.BurstTime)
		p.Finish(currentTime + p.BurstTime)
		currentTime = p.CompletionTime
	}
	return jobs
}
