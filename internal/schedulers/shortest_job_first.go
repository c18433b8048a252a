package schedulers

import (
	"cmp"
	"log"

	"github.com/Khoavu1110/CS3502-Project-2/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive; at every decision point it
// dispatches the ready process with the smallest burst time.
func ScheduleShortestJobFirst(processes []core.Process) []core.Process {
	log.Println("running sjf algorithm ...")
	return scheduleNonPreemptive(processes, byBurstTime)
}

func byBurstTime(a, b *core.Process, _ int) int {
	return cmp.Compare(a.BurstTime, b.BurstTime)
}
