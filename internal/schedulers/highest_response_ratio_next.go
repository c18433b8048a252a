package schedulers

import (
	"cmp"
	"log"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
)

// ScheduleHighestResponseRatioNext is non-preemptive; at every decision point
// it dispatches the ready process with the highest (wait + burst) / burst.
func ScheduleHighestResponseRatioNext(processes []core.Process) []core.Process {
	log.Println("running hrrn algorithm ...")
	return scheduleNonPreemptive(processes, byResponseRatio)
}

// byResponseRatio compares (wa+ba)/ba against (wb+bb)/bb without division.
// Both factors stay below core.MaxTime, so the products fit in an int64.
func byResponseRatio(a, b *core.Process, currentTime int) int {
	left := int64(currentTime-a.ArrivalTime+a.BurstTime) * int64(b.BurstTime)
	right := int64(currentTime-b.ArrivalTime+b.BurstTime) * int64(a.BurstTime)
	// higher ratio first
	return cmp.Compare(right, left)
}

// ResponseRatio is the hrrn priority of p at currentTime.
func ResponseRatio(p *core.Process, currentTime int) float64 {
	return float64(currentTime-p.ArrivalTime+p.BurstTime) / float64(p.BurstTime)
}
